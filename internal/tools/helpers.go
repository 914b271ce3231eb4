// Package tools provides the MCP tool handlers for brief analysis.
//
// Each tool follows the same shape:
//   - A struct with its dependencies injected via constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() validates arguments and returns a result
//
// Validation and storage failures are returned as tool-level errors
// (mcp.NewToolResultError) with a nil Go error, so the host sees a
// readable message instead of a transport failure.
package tools

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/mark3labs/mcp-go/mcp"
)

// timeNow is a package-level var for test injection.
var timeNow = time.Now

// errStorageDisabled is reported by tools that need a store when none is wired.
var errStorageDisabled = errors.New("saved briefs are unavailable: storage is disabled")

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// briefArg returns the brief text, or an error result when it is blank.
func briefArg(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	brief := req.GetString("brief", "")
	if strings.TrimSpace(brief) == "" {
		return "", mcp.NewToolResultError("'brief' is required")
	}
	return brief, nil
}

// storeError maps a store failure to a tool error message.
func storeError(action, id string, err error) *mcp.CallToolResult {
	if errors.Is(err, briefs.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("brief %q not found", id))
	}
	return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %v", action, err))
}

// briefLine is the one-line listing form used by list and search.
func briefLine(b briefs.SavedBrief) string {
	return fmt.Sprintf("- [%s] %s | risk %d/100 | %s | saved %s",
		b.ID, b.Title, b.Analysis.RiskScore, b.Analysis.ProjectType,
		b.CreatedAt.Format(time.RFC3339))
}
