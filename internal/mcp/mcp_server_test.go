package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/internal/dbstore"
	mcp_internal "github.com/lawyerconnect/lawmatch/internal/mcp"
	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func baseTestConfig(t *testing.T) *contract.Config {
	t.Helper()
	cfg := &contract.Config{}
	input := &contract.ConfigRawInput{
		Category:       "fraud",
		BudgetMin:      1000,
		BudgetMax:      5000,
		ResultLimit:    10,
		Precision:      2,
		Output:         "json",
		Engine:         "dynamic",
		RosterBackend:  "none",
		HistoryBackend: "none",
	}
	require.NoError(t, contract.ProcessAndValidate(cfg, input))
	return cfg
}

func callToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := baseTestConfig(t)

	// A dummy manager is enough, validation errors never reach the stores
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("match_lawyers unknown category", func(t *testing.T) {
		tool := s.GetTool("match_lawyers")
		require.NotNil(t, tool, "Tool match_lawyers should exist")

		req := callToolRequest("match_lawyers", map[string]any{
			"category": "underwater basket weaving",
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, resultText(t, res), "unknown category")
	})

	t.Run("find_similar_categories missing name", func(t *testing.T) {
		tool := s.GetTool("find_similar_categories")
		require.NotNil(t, tool)

		req := callToolRequest("find_similar_categories", map[string]any{
			"name": "",
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "name is required")
	})
}

func TestMCPServerHandlers_ReadOnlyTools(t *testing.T) {
	baseCfg := baseTestConfig(t)

	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("list_categories returns catalog", func(t *testing.T) {
		tool := s.GetTool("list_categories")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callToolRequest("list_categories", nil))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var names []string
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &names))
		assert.ElementsMatch(t, baseCfg.Catalog, names)
	})

	t.Run("find_similar_categories finds relations", func(t *testing.T) {
		tool := s.GetTool("find_similar_categories")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callToolRequest("find_similar_categories", map[string]any{
			"name": "employ",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var decoded struct {
			Name    string   `json:"name"`
			Similar []string `json:"similar"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
		assert.Equal(t, "employ", decoded.Name)
		assert.Contains(t, decoded.Similar, "employment")
	})

	t.Run("get_weight_profiles returns every segment", func(t *testing.T) {
		tool := s.GetTool("get_weight_profiles")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callToolRequest("get_weight_profiles", nil))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var profiles map[string]map[string]float64
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &profiles))
		assert.Len(t, profiles, len(schema.AllSegments))
	})
}

func TestMCPServerHandlers_MatchLawyers(t *testing.T) {
	baseCfg := baseTestConfig(t)

	lawyers := []*schema.Lawyer{
		{
			ID:          1,
			Name:        "Dana Reyes",
			Categories:  []string{"fraud"},
			Rating:      4.8,
			SuccessRate: 0.9,
			HourlyRate:  200,
			IsAvailable: true,
			MaxCases:    10,
			Account:     &schema.Account{ID: 1, IsLawyer: true},
		},
	}

	roster := &dbstore.MockRosterStore{}
	roster.On("LoadLawyers", mock.Anything).Return(lawyers, nil)

	mgr := &dbstore.MockStoreManager{}
	mgr.On("GetRosterStore").Return(roster)
	mgr.On("GetHistoryStore").Return(nil)

	s := mcp_internal.NewMCPServer(baseCfg, mgr)
	tool := s.GetTool("match_lawyers")
	require.NotNil(t, tool)

	res, err := tool.Handler(context.Background(), callToolRequest("match_lawyers", map[string]any{
		"category": "fraud",
		"limit":    5.0,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var summary schema.MatchSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &summary))
	assert.NotEmpty(t, summary.RequestID)
	assert.Equal(t, 1, summary.TotalCandidates)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "Dana Reyes", summary.Results[0].Lawyer.Name)
	assert.Greater(t, summary.Results[0].Score, 0.0)

	roster.AssertExpectations(t)
	mgr.AssertExpectations(t)
}
