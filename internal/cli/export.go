package cli

import (
	"fmt"

	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/export"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) newExportCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export the analysis of a saved brief to a file",
		Long: `Export the analysis of a saved brief as json, yaml, markdown or html.

Without --out the file is written to the current directory as
brief-analysis-<timestamp>.<ext>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.withStore(func(store *briefs.SQLiteStore) error {
				b, err := store.Get(args[0])
				if err != nil {
					return err
				}
				path, err := writeReport(out, string(f), b.Title, b.Analysis)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.env.Out, "%s Exported %s to %s\n", color.GreenString("✓"), b.ID, path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "Export format (json, yaml, markdown, html)")
	cmd.Flags().StringVar(&out, "out", ".", "Target file, or directory for a generated name")
	return cmd
}
