// Package core has core logic for category indexing, scoring and ranking.
package core

import (
	"strings"

	"github.com/lawyerconnect/lawmatch/schema"
)

// indexNode is one node of the category trie, mapping a rune to its child.
type indexNode struct {
	children map[rune]*indexNode
	terminal bool
}

func newIndexNode() *indexNode {
	return &indexNode{children: make(map[rune]*indexNode)}
}

// CategoryIndex is a trie-backed, case-folded index over category names.
// Exact membership runs over the trie; Similar runs a best-effort scan over
// the stored names in insertion order. It is built fresh for every match
// request and must not be shared across concurrent requests.
type CategoryIndex struct {
	root  *indexNode
	seen  map[string]struct{}
	names []string // distinct names in insertion order, for deterministic scans
}

// NewCategoryIndex returns an empty index.
func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{
		root: newIndexNode(),
		seen: make(map[string]struct{}),
	}
}

// BuildCategoryIndex constructs an index from a category catalog.
func BuildCategoryIndex(categories []string) *CategoryIndex {
	idx := NewCategoryIndex()
	for _, c := range categories {
		idx.Insert(c)
	}
	return idx
}

// Insert adds a category name to the index. Names are case-folded and
// trimmed; empty and duplicate names are ignored.
func (ci *CategoryIndex) Insert(name string) {
	cleaned := schema.NormalizeCategory(name)
	if cleaned == "" {
		return
	}
	if _, ok := ci.seen[cleaned]; ok {
		return
	}
	ci.seen[cleaned] = struct{}{}
	ci.names = append(ci.names, cleaned)

	node := ci.root
	for _, r := range cleaned {
		child, ok := node.children[r]
		if !ok {
			child = newIndexNode()
			node.children[r] = child
		}
		node = child
	}
	node.terminal = true
}

// Contains reports exact case-insensitive membership.
func (ci *CategoryIndex) Contains(name string) bool {
	cleaned := schema.NormalizeCategory(name)
	if cleaned == "" {
		return false
	}
	node := ci.root
	for _, r := range cleaned {
		child, ok := node.children[r]
		if !ok {
			return false
		}
		node = child
	}
	return node.terminal
}

// Len returns the number of distinct names stored.
func (ci *CategoryIndex) Len() int {
	return len(ci.names)
}

// Names returns the stored names in insertion order.
func (ci *CategoryIndex) Names() []string {
	out := make([]string, len(ci.names))
	copy(out, ci.names)
	return out
}

// Similar returns up to maxResults stored names related to the query by a
// prefix relation in either direction, or failing that a substring relation
// in either direction. Candidates are checked in insertion order and the
// scan stops as soon as maxResults matches are found. This is a best-effort
// approximate-match helper, not a ranked similarity search: no ordering
// among the results is guaranteed beyond "first found in index order".
// An empty query matches nothing.
func (ci *CategoryIndex) Similar(name string, maxResults int) []string {
	cleaned := schema.NormalizeCategory(name)
	if cleaned == "" || maxResults <= 0 {
		return nil
	}

	var similar []string
	for _, cat := range ci.names {
		if strings.HasPrefix(cat, cleaned) || strings.HasPrefix(cleaned, cat) {
			similar = append(similar, cat)
		} else if strings.Contains(cat, cleaned) || strings.Contains(cleaned, cat) {
			similar = append(similar, cat)
		}
		if len(similar) >= maxResults {
			break
		}
	}
	return similar
}
