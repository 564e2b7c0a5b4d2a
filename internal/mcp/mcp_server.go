// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Lawmatch MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Lawmatch Matching Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: match_lawyers ---
	s.AddTool(mcp.NewTool("match_lawyers",
		mcp.WithDescription("Match lawyers to a legal issue and return the ranked candidates with factor scores."),
		mcp.WithString("category", mcp.Description("Issue category from the catalog (e.g. 'fraud', 'tax').")),
		mcp.WithNumber("budget_min", mcp.Description("Lower bound of the client's budget.")),
		mcp.WithNumber("budget_max", mcp.Description("Upper bound of the client's budget.")),
		mcp.WithString("urgency", mcp.Description("Issue urgency (normal, high, urgent). Defaults to 'normal'."), mcp.Enum("normal", "high", "urgent")),
		mcp.WithString("pricing", mcp.Description("Preferred pricing model (hourly, fixed, contingency)."), mcp.Enum("hourly", "fixed", "contingency")),
		mcp.WithString("engine", mcp.Description("Matching engine (dynamic, legacy). Defaults to 'dynamic'."), mcp.Enum("dynamic", "legacy")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleMatchLawyers)

	// --- 2. Tool: list_categories ---
	s.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the active legal issue category catalog."),
	), h.handleListCategories)

	// --- 3. Tool: find_similar_categories ---
	s.AddTool(mcp.NewTool("find_similar_categories",
		mcp.WithDescription("Find catalog categories similar to a given name by prefix or substring relation."),
		mcp.WithString("name", mcp.Description("The category name to look up."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Maximum number of similar categories to return.")),
	), h.handleFindSimilarCategories)

	// --- 4. Tool: get_weight_profiles ---
	s.AddTool(mcp.NewTool("get_weight_profiles",
		mcp.WithDescription("Get the active scoring weight profile for every client segment."),
	), h.handleGetWeightProfiles)

	return s
}

// StartMCPServer starts the Lawmatch MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
