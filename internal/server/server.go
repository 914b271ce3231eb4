// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources that depend on them.
// No business logic lives here, only wiring.
package server

import (
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/config"
	"github.com/HendryAvila/briefcheck/internal/prompts"
	"github.com/HendryAvila/briefcheck/internal/resources"
	"github.com/HendryAvila/briefcheck/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Version is set at build time via ldflags.
var Version = "dev"

// OpenStore opens the SQLite store described by cfg.
//
// Storage is an optional subsystem: if it fails to open, the error is
// logged and a nil store is returned so analysis keeps working. The
// returned cleanup function is always non-nil and safe to call.
func OpenStore(cfg *config.Config, log zerolog.Logger) (briefs.Store, func()) {
	store, err := briefs.NewSQLiteStore(cfg.Store())
	if err != nil {
		log.Warn().Err(err).Str("data_dir", cfg.DataDir).Msg("brief storage disabled")
		return nil, noop
	}
	log.Debug().Str("data_dir", cfg.DataDir).Msg("brief storage ready")
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("brief store close")
		}
	}
}

// New creates and configures the MCP server with all tools, prompts and
// resources registered. store may be nil: analysis and export of new
// briefs stay available, the saved-brief tools are not registered.
func New(cfg *config.Config, store briefs.Store, log zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"briefcheck",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register analysis tools ---

	analyzeTool := tools.NewAnalyzeTool(cfg.DefaultMode, store)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	exportTool := tools.NewExportTool(cfg.DefaultMode, store)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	// --- Register saved-brief tools ---

	if store != nil {
		registerStoreTools(s, cfg, store)
	} else {
		log.Warn().Msg("saved-brief tools not registered: storage is disabled")
	}

	// --- Register prompts ---

	reviewPrompt := prompts.NewReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	historyPrompt := prompts.NewHistoryPrompt()
	s.AddPrompt(historyPrompt.Definition(), historyPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(store, log)
	s.AddResource(resourceHandler.SavedResource(), resourceHandler.HandleSaved)
	s.AddResource(resourceHandler.ModesResource(), resourceHandler.HandleModes)

	return s
}

// noop is the cleanup used when storage is disabled.
func noop() {}

// registerStoreTools registers the MCP tools that need a store.
func registerStoreTools(s *server.MCPServer, cfg *config.Config, store briefs.Store) {
	saveTool := tools.NewSaveTool(cfg.DefaultMode, store)
	s.AddTool(saveTool.Definition(), saveTool.Handle)

	listTool := tools.NewListTool(store)
	s.AddTool(listTool.Definition(), listTool.Handle)

	getTool := tools.NewGetTool(store)
	s.AddTool(getTool.Definition(), getTool.Handle)

	deleteTool := tools.NewDeleteTool(store)
	s.AddTool(deleteTool.Definition(), deleteTool.Handle)

	searchTool := tools.NewSearchTool(store)
	s.AddTool(searchTool.Definition(), searchTool.Handle)
}

// serverInstructions returns the system instructions that tell the AI
// how to use briefcheck.
func serverInstructions() string {
	return `You have access to briefcheck, a risk analyzer for client project briefs.

## WHEN TO USE IT

Use brief_analyze when the user:
- Pastes a request from a client, a job post or a project brief
- Asks whether a project is risky, underpaid or vague
- Asks for a quote, an estimate or questions to send to a client

## WHAT YOU GET

brief_analyze returns red flags, the project type, the client's likely
personality, a risk score from 0 to 100, hours/budget/timeline estimates,
questions to ask and a draft reply email. Scores up to 30 are low risk,
up to 60 medium, above 60 high.

## SAVED BRIEFS

- brief_save stores a brief with its analysis
- brief_list, brief_get and brief_search find them again
- brief_delete removes one permanently
- brief_export renders an analysis as json, yaml, markdown or html

## RULES

- Never invent numbers: quote the estimates exactly as returned
- The analysis is heuristic; present it as a starting point for the
  conversation with the client, not as a verdict
- Adapt the reply email to the user's voice before they send it`
}
