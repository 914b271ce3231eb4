// Package cli builds the briefcheck command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/config"
	"github.com/HendryAvila/briefcheck/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Env is the process environment the commands run in.
type Env struct {
	Version string
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	// Load returns the runtime configuration; nil means config.Load.
	Load func() (*config.Config, error)
}

// DefaultEnv wires the real stdio streams.
func DefaultEnv(version string) Env {
	return Env{Version: version, In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// app carries what every subcommand needs once the config is loaded.
type app struct {
	env Env
	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd builds the root command with every subcommand attached.
func NewRootCmd(env Env) *cobra.Command {
	a := &app{env: env}

	rootCmd := &cobra.Command{
		Use:   "briefcheck",
		Short: "Risk analysis for client project briefs",
		Long: `briefcheck reads a client's project brief and reports red flags, the project
type, the client's likely personality, a 0-100 risk score, effort/budget/timeline
estimates, questions to ask and a draft reply email.

It runs as a CLI, as an MCP server over stdio, or as an HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetIn(env.In)
	rootCmd.SetOut(env.Out)
	rootCmd.SetErr(env.Err)

	rootCmd.AddCommand(
		a.newAnalyzeCmd(),
		a.newSavedCmd(),
		a.newExportCmd(),
		a.newServeCmd(),
		a.newHTTPCmd(),
		newVersionCmd(env),
	)

	return rootCmd
}

func (a *app) init() error {
	load := a.env.Load
	if load == nil {
		load = config.Load
	}
	cfg, err := load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.log = logging.NewWithWriter(a.env.Err, cfg.LogLevel)
	return nil
}

// openStore opens the durable store; commands that need it fail without it.
func (a *app) openStore() (*briefs.SQLiteStore, error) {
	store, err := briefs.NewSQLiteStore(a.cfg.Store())
	if err != nil {
		return nil, fmt.Errorf("opening saved briefs: %w", err)
	}
	return store, nil
}

func newVersionCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// The version needs no config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "briefcheck version %s\n", env.Version)
		},
	}
}
