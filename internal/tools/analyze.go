package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/export"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnalyzeTool handles the brief_analyze MCP tool.
type AnalyzeTool struct {
	defaultMode analyzer.Mode
	store       briefs.Store
}

// NewAnalyzeTool creates an AnalyzeTool. store may be nil, in which case
// the save option reports that storage is disabled.
func NewAnalyzeTool(defaultMode analyzer.Mode, store briefs.Store) *AnalyzeTool {
	return &AnalyzeTool{defaultMode: defaultMode, store: store}
}

// Definition returns the MCP tool definition for brief_analyze.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("brief_analyze",
		mcp.WithDescription(
			"Analyze a client project brief. Returns red flags, project type, client personality, "+
				"a 0-100 risk score, effort/budget/timeline estimates, questions to ask the client "+
				"and a draft reply email.",
		),
		mcp.WithString("brief",
			mcp.Required(),
			mcp.Description("The full text of the client's brief"),
		),
		mcp.WithString("mode",
			mcp.Description("Analysis mode: quick or deep (default from server config)"),
		),
		mcp.WithString("format",
			mcp.Description("Report format: markdown (default), json or yaml"),
		),
		mcp.WithBoolean("save",
			mcp.Description("Also save the brief and its analysis (default: false)"),
		),
		mcp.WithString("title",
			mcp.Description("Title used when saving (default: 'Brief DD/MM/YYYY')"),
		),
	)
}

// Handle processes the brief_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brief, errResult := briefArg(req)
	if errResult != nil {
		return errResult, nil
	}

	mode := t.defaultMode
	if name := req.GetString("mode", ""); name != "" {
		m, err := analyzer.ParseMode(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		mode = m
	}

	format, err := export.ParseFormat(req.GetString("format", string(export.FormatMarkdown)))
	if err != nil || format == export.FormatHTML {
		return mcp.NewToolResultError("'format' must be markdown, json or yaml"), nil
	}

	title := req.GetString("title", "")
	analysis := analyzer.Analyze(brief, mode)

	body, err := export.Encode(format, title, analysis)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
	}
	response := string(body)

	if boolArg(req, "save", false) {
		if t.store == nil {
			return mcp.NewToolResultError(errStorageDisabled.Error()), nil
		}
		saved := briefs.NewSavedBrief(title, brief, analysis, timeNow())
		if err := t.store.Save(saved); err != nil {
			return storeError("save brief", saved.ID, err), nil
		}
		response += fmt.Sprintf("\n\nSaved as %q (ID: %s)", saved.Title, saved.ID)
	}

	return mcp.NewToolResultText(response), nil
}
