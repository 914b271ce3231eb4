package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/export"
	"github.com/HendryAvila/briefcheck/internal/render"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errBlankBrief mirrors the boundary rule shared by every surface.
var errBlankBrief = errors.New("brief is required")

type analyzeOptions struct {
	output string
	mode   string
	text   string
	save   bool
	title  string
	out    string
}

func (a *app) newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [FILE|-]",
		Short: "Analyze a client brief",
		Long: `Analyze a client brief read from FILE, from standard input ("-" or no
argument), or from --text.

Examples:
  # Analyze a brief saved in a file
  briefcheck analyze brief.txt

  # Pipe a brief and get JSON
  pbpaste | briefcheck analyze -o json

  # Analyze and save under a title
  briefcheck analyze brief.txt --save --title "Bakery website"

  # Write an HTML report next to the brief
  briefcheck analyze brief.txt -o html --out .`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", render.OutputHuman, "Output format (human, json, yaml, markdown, html)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Analysis mode (quick, deep); default from BRIEFCHECK_DEFAULT_MODE")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Brief text (instead of FILE or stdin)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the brief and its analysis")
	cmd.Flags().StringVar(&opts.title, "title", "", "Title for the saved brief (default: 'Brief DD/MM/YYYY')")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write the report to this file, or into this directory with a generated name")

	return cmd
}

func (a *app) runAnalyze(ctx context.Context, opts *analyzeOptions, args []string) error {
	brief, err := a.readBrief(opts.text, args)
	if err != nil {
		return err
	}

	mode := a.cfg.DefaultMode
	if opts.mode != "" {
		if mode, err = analyzer.ParseMode(strings.ToLower(opts.mode)); err != nil {
			return err
		}
	}

	if opts.out != "" && opts.output == render.OutputHuman {
		return fmt.Errorf("--out needs a file format: use -o json, yaml, markdown or html")
	}

	analysis, err := a.analyzeWithProgress(ctx, brief, mode, opts.output == render.OutputHuman)
	if err != nil {
		return err
	}

	if opts.out != "" {
		path, err := writeReport(opts.out, opts.output, opts.title, analysis)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.env.Err, "Report written to %s\n", path)
	} else if err := render.Write(a.env.Out, opts.output, opts.title, analysis); err != nil {
		return err
	}

	if opts.save {
		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		saved := briefs.NewSavedBrief(opts.title, brief, analysis, time.Now())
		if err := store.Save(saved); err != nil {
			return fmt.Errorf("saving brief: %w", err)
		}
		a.log.Debug().Str("id", saved.ID).Msg("brief saved")
		fmt.Fprintf(a.env.Err, "%s Saved as %q (ID: %s)\n", color.GreenString("✓"), saved.Title, saved.ID)
	}
	return nil
}

// readBrief resolves the brief source: --text, a file, or stdin.
func (a *app) readBrief(text string, args []string) (string, error) {
	var brief string
	switch {
	case text != "":
		brief = text
	case len(args) == 1 && args[0] != "-":
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading brief: %w", err)
		}
		brief = string(data)
	default:
		data, err := io.ReadAll(a.env.In)
		if err != nil {
			return "", fmt.Errorf("reading brief from stdin: %w", err)
		}
		brief = string(data)
	}

	if strings.TrimSpace(brief) == "" {
		return "", errBlankBrief
	}
	return brief, nil
}

// analyzeWithProgress runs the analysis behind a spinner when the output is
// meant for a person. The configured delay only paces the spinner.
func (a *app) analyzeWithProgress(ctx context.Context, brief string, mode analyzer.Mode, interactive bool) (analyzer.ProjectAnalysis, error) {
	if !interactive || a.cfg.AnalysisDelay <= 0 {
		return analyzer.Analyze(brief, mode), nil
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(a.env.Err))
	s.Suffix = fmt.Sprintf(" Analyzing brief (%s)...", mode.Label)
	s.Start()
	defer s.Stop()

	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-time.After(a.cfg.AnalysisDelay):
	case <-ctx.Done():
		return analyzer.ProjectAnalysis{}, ctx.Err()
	}
	return analyzer.Analyze(brief, mode), nil
}

// writeReport encodes the analysis into out. When out is an existing
// directory the file gets the standard generated name.
func writeReport(out, output, title string, analysis analyzer.ProjectAnalysis) (string, error) {
	format, err := export.ParseFormat(output)
	if err != nil {
		return "", err
	}
	body, err := export.Encode(format, title, analysis)
	if err != nil {
		return "", err
	}

	path := out
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		path = filepath.Join(out, export.FileName(format, time.Now()))
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
