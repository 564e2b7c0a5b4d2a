package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lawyerconnect/lawmatch/core"
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleMatchLawyers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := contract.RevalidateIssue(cfg, request.GetString("category", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid match parameters: %v", err)), nil
	}
	cfg.Issue.BudgetMin = request.GetFloat("budget_min", cfg.Issue.BudgetMin)
	cfg.Issue.BudgetMax = request.GetFloat("budget_max", cfg.Issue.BudgetMax)
	if u := request.GetString("urgency", ""); u != "" {
		cfg.Issue.Urgency = u
	}
	if p := request.GetString("pricing", ""); p != "" {
		cfg.Issue.PreferredPricing = p
	}
	if e := request.GetString("engine", ""); e != "" {
		cfg.Engine = schema.EngineMode(e)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	summary, err := core.RunMatch(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("matching failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idx := core.BuildCategoryIndex(h.baseCfg.Catalog)

	jsonData, _ := json.MarshalIndent(idx.Names(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFindSimilarCategories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	limit := request.GetInt("limit", h.baseCfg.MaxSimilar)
	if limit <= 0 {
		limit = contract.DefaultMaxSimilar
	}

	idx := core.BuildCategoryIndex(h.baseCfg.Catalog)
	similar := idx.Similar(name, limit)

	result := map[string]any{
		"name":    schema.NormalizeCategory(name),
		"similar": similar,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWeightProfiles(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.baseCfg.ComputedProfiles, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
