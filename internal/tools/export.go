package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/export"
	"github.com/mark3labs/mcp-go/mcp"
)

// ExportTool handles the brief_export MCP tool.
type ExportTool struct {
	defaultMode analyzer.Mode
	store       briefs.Store
}

// NewExportTool creates an ExportTool. store may be nil; exporting by id
// then reports that storage is disabled.
func NewExportTool(defaultMode analyzer.Mode, store briefs.Store) *ExportTool {
	return &ExportTool{defaultMode: defaultMode, store: store}
}

// Definition returns the MCP tool definition for brief_export.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("brief_export",
		mcp.WithDescription(
			"Export an analysis as a downloadable document. Pass either the ID of a saved brief "+
				"or the text of a new brief.",
		),
		mcp.WithString("id",
			mcp.Description("Saved brief ID to export"),
		),
		mcp.WithString("brief",
			mcp.Description("Brief text to analyze and export (used when no id is given)"),
		),
		mcp.WithString("format",
			mcp.Description("json (default), yaml, markdown or html"),
		),
	)
}

// Handle processes the brief_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := export.ParseFormat(req.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var (
		title    string
		analysis analyzer.ProjectAnalysis
	)
	if id := req.GetString("id", ""); id != "" {
		if t.store == nil {
			return mcp.NewToolResultError(errStorageDisabled.Error()), nil
		}
		b, err := t.store.Get(id)
		if err != nil {
			return storeError("get brief", id, err), nil
		}
		title, analysis = b.Title, b.Analysis
	} else {
		brief, errResult := briefArg(req)
		if errResult != nil {
			return mcp.NewToolResultError("either 'id' or 'brief' is required"), nil
		}
		analysis = analyzer.Analyze(brief, t.defaultMode)
	}

	body, err := export.Encode(format, title, analysis)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to export: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"File: %s\nContent-Type: %s\n\n%s",
		export.FileName(format, timeNow()), format.ContentType(), body,
	)), nil
}
