package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HendryAvila/briefcheck/internal/api"
	"github.com/HendryAvila/briefcheck/internal/server"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on stdin/stdout. Add it to your AI tool's MCP config:

  {
    "mcpServers": {
      "briefcheck": {
        "command": "briefcheck",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup := server.OpenStore(a.cfg, a.log)
			defer cleanup()

			s := server.New(a.cfg, store, a.log)
			a.log.Info().Str("version", server.Version).Msg("MCP server starting on stdio")
			if err := mcpserver.ServeStdio(s); err != nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	}
}

func (a *app) newHTTPCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.HTTPAddr
			}

			store, cleanup := server.OpenStore(a.cfg, a.log)
			defer cleanup()

			router := api.NewRouter(api.Dependencies{
				Version:     server.Version,
				DefaultMode: a.cfg.DefaultMode,
				Store:       store,
				Log:         a.log,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx, addr, router, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from BRIEFCHECK_HTTP_ADDR)")
	return cmd
}
