package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCategoryIndexInsertAndContains tests exact membership semantics.
func TestCategoryIndexInsertAndContains(t *testing.T) {
	idx := NewCategoryIndex()
	idx.Insert("Fraud")
	idx.Insert("  tax  ")
	idx.Insert("fraud") // duplicate after folding
	idx.Insert("")      // ignored

	assert.Equal(t, 2, idx.Len())
	assert.True(t, idx.Contains("fraud"))
	assert.True(t, idx.Contains("FRAUD"))
	assert.True(t, idx.Contains(" tax "))
	assert.False(t, idx.Contains("frau"))
	assert.False(t, idx.Contains("fraudulent"))
	assert.False(t, idx.Contains(""))
}

// TestCategoryIndexNamesOrder tests that names come back in insertion order.
func TestCategoryIndexNamesOrder(t *testing.T) {
	idx := NewCategoryIndex()
	idx.Insert("tax")
	idx.Insert("fraud")
	idx.Insert("Tax") // duplicate, keeps original position
	idx.Insert("employment")

	assert.Equal(t, []string{"tax", "fraud", "employment"}, idx.Names())
}

// TestCategoryIndexSimilar tests the approximate-match scan.
func TestCategoryIndexSimilar(t *testing.T) {
	catalog := []string{
		"harassment",
		"workplace discrimination",
		"domestic violence",
		"family disputes",
		"fraud",
		"tax",
	}
	idx := BuildCategoryIndex(catalog)

	tests := []struct {
		name       string
		query      string
		maxResults int
		expected   []string
	}{
		{
			name:       "prefix of stored name",
			query:      "fra",
			maxResults: 5,
			expected:   []string{"fraud"},
		},
		{
			name:       "stored name is prefix of query",
			query:      "fraudulent billing",
			maxResults: 5,
			expected:   []string{"fraud"},
		},
		{
			name:       "substring relation",
			query:      "discrimination",
			maxResults: 5,
			expected:   []string{"workplace discrimination"},
		},
		{
			name:       "exact name matches itself",
			query:      "tax",
			maxResults: 5,
			expected:   []string{"tax"},
		},
		{
			name:       "case folded query",
			query:      "  FRAUD  ",
			maxResults: 5,
			expected:   []string{"fraud"},
		},
		{
			name:       "no relation",
			query:      "maritime",
			maxResults: 5,
			expected:   nil,
		},
		{
			name:       "empty query matches nothing",
			query:      "",
			maxResults: 5,
			expected:   nil,
		},
		{
			name:       "zero max results",
			query:      "fraud",
			maxResults: 0,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, idx.Similar(tt.query, tt.maxResults))
		})
	}
}

// TestCategoryIndexSimilarStopsAtMax tests that the scan stops once
// maxResults names are found, walking in insertion order.
func TestCategoryIndexSimilarStopsAtMax(t *testing.T) {
	idx := NewCategoryIndex()
	idx.Insert("tax")
	idx.Insert("tax law")
	idx.Insert("tax fraud")
	idx.Insert("income tax")

	assert.Equal(t, []string{"tax", "tax law"}, idx.Similar("tax", 2))
	assert.Len(t, idx.Similar("tax", 10), 4)
}

// TestCategoryIndexFraudAndTaxUnrelated guards against fraud and tax
// bleeding into each other's similarity results.
func TestCategoryIndexFraudAndTaxUnrelated(t *testing.T) {
	idx := BuildCategoryIndex([]string{"fraud", "tax"})

	assert.Equal(t, []string{"fraud"}, idx.Similar("fraud", 5))
	assert.Equal(t, []string{"tax"}, idx.Similar("tax", 5))
}
