package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/export"
	"github.com/mark3labs/mcp-go/mcp"
)

// ─── SaveTool ───────────────────────────────────────────────────────────────

// SaveTool handles the brief_save MCP tool.
type SaveTool struct {
	defaultMode analyzer.Mode
	store       briefs.Store
}

// NewSaveTool creates a SaveTool.
func NewSaveTool(defaultMode analyzer.Mode, store briefs.Store) *SaveTool {
	return &SaveTool{defaultMode: defaultMode, store: store}
}

// Definition returns the MCP tool definition for brief_save.
func (t *SaveTool) Definition() mcp.Tool {
	return mcp.NewTool("brief_save",
		mcp.WithDescription("Analyze a brief and save it with its analysis for later review."),
		mcp.WithString("brief",
			mcp.Required(),
			mcp.Description("The full text of the client's brief"),
		),
		mcp.WithString("title",
			mcp.Description("Title for the saved brief (default: 'Brief DD/MM/YYYY')"),
		),
		mcp.WithString("id",
			mcp.Description("Existing brief ID to overwrite (default: a new ID)"),
		),
	)
}

// Handle processes the brief_save tool call.
func (t *SaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brief, errResult := briefArg(req)
	if errResult != nil {
		return errResult, nil
	}

	analysis := analyzer.Analyze(brief, t.defaultMode)
	saved := briefs.NewSavedBrief(req.GetString("title", ""), brief, analysis, timeNow())
	if id := req.GetString("id", ""); id != "" {
		saved.ID = id
	}

	if err := t.store.Save(saved); err != nil {
		return storeError("save brief", saved.ID, err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Brief saved: %q\nID: %s\nRisk score: %d/100 (%s)",
		saved.Title, saved.ID, analysis.RiskScore, analyzer.LevelFor(analysis.RiskScore),
	)), nil
}

// ─── ListTool ───────────────────────────────────────────────────────────────

// ListTool handles the brief_list MCP tool.
type ListTool struct {
	store briefs.Store
}

// NewListTool creates a ListTool.
func NewListTool(store briefs.Store) *ListTool {
	return &ListTool{store: store}
}

// Definition returns the MCP tool definition for brief_list.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("brief_list",
		mcp.WithDescription("List saved briefs, most recently saved first."),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: all)"),
		),
	)
}

// Handle processes the brief_list tool call.
func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.store.List()
	if err != nil {
		return storeError("list briefs", "", err), nil
	}
	if limit := intArg(req, "limit", 0); limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No saved briefs."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Saved briefs (%d)\n\n", len(list))
	for _, b := range list {
		sb.WriteString(briefLine(b))
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ─── GetTool ────────────────────────────────────────────────────────────────

// GetTool handles the brief_get MCP tool.
type GetTool struct {
	store briefs.Store
}

// NewGetTool creates a GetTool.
func NewGetTool(store briefs.Store) *GetTool {
	return &GetTool{store: store}
}

// Definition returns the MCP tool definition for brief_get.
func (t *GetTool) Definition() mcp.Tool {
	return mcp.NewTool("brief_get",
		mcp.WithDescription("Show a saved brief: the original text and its full analysis."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Saved brief ID (from brief_list or brief_search)"),
		),
	)
}

// Handle processes the brief_get tool call.
func (t *GetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	b, err := t.store.Get(id)
	if err != nil {
		return storeError("get brief", id, err), nil
	}

	var sb strings.Builder
	sb.WriteString(export.Markdown(b.Title, b.Analysis))
	sb.WriteString("\n## Original brief\n\n")
	sb.WriteString(b.Content)
	fmt.Fprintf(&sb, "\n\n---\nID: %s | saved %s\n", b.ID, b.CreatedAt.Format("2006-01-02 15:04"))
	return mcp.NewToolResultText(sb.String()), nil
}

// ─── DeleteTool ─────────────────────────────────────────────────────────────

// DeleteTool handles the brief_delete MCP tool.
type DeleteTool struct {
	store briefs.Store
}

// NewDeleteTool creates a DeleteTool.
func NewDeleteTool(store briefs.Store) *DeleteTool {
	return &DeleteTool{store: store}
}

// Definition returns the MCP tool definition for brief_delete.
func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("brief_delete",
		mcp.WithDescription("Delete a saved brief permanently."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Saved brief ID to delete"),
		),
	)
}

// Handle processes the brief_delete tool call.
func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	if err := t.store.Delete(id); err != nil {
		return storeError("delete brief", id, err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Brief %s deleted", id)), nil
}

// ─── SearchTool ─────────────────────────────────────────────────────────────

// SearchTool handles the brief_search MCP tool.
type SearchTool struct {
	store briefs.Store
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(store briefs.Store) *SearchTool {
	return &SearchTool{store: store}
}

// Definition returns the MCP tool definition for brief_search.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("brief_search",
		mcp.WithDescription("Full-text search over saved brief titles and contents."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keywords to search for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: 10, max: 20)"),
		),
	)
}

// Handle processes the brief_search tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	results, err := t.store.Search(query, intArg(req, "limit", 10))
	if err != nil {
		return storeError("search briefs", "", err), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No saved briefs match %q.", query)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d brief(s) for %q:\n\n", len(results), query)
	for _, b := range results {
		sb.WriteString(briefLine(b))
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}
