// Package resources implements MCP resource handlers for saved briefs.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (brief://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

const (
	SavedURI = "brief://saved"
	ModesURI = "brief://modes"
)

// Handler manages brief resource endpoints.
type Handler struct {
	store briefs.Store
	log   zerolog.Logger
}

// NewHandler creates a resource Handler. store may be nil, in which case
// the saved list is always empty.
func NewHandler(store briefs.Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// SavedResource returns the MCP resource definition for the saved list.
func (h *Handler) SavedResource() mcp.Resource {
	return mcp.NewResource(
		SavedURI,
		"Saved briefs",
		mcp.WithResourceDescription("All saved briefs with their analyses, most recent first"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleSaved returns the saved briefs as JSON. An unreadable store is
// served as an empty list.
func (h *Handler) HandleSaved(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var list []briefs.SavedBrief
	if h.store != nil {
		list = briefs.SafeList(h.store, h.log)
	} else {
		list = []briefs.SavedBrief{}
	}
	return jsonResource(req.Params.URI, list)
}

// ModesResource returns the MCP resource definition for analysis modes.
func (h *Handler) ModesResource() mcp.Resource {
	return mcp.NewResource(
		ModesURI,
		"Analysis modes",
		mcp.WithResourceDescription("Analysis modes accepted by brief_analyze"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleModes returns the available analysis modes as JSON.
func (h *Handler) HandleModes(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, analyzer.Modes())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
