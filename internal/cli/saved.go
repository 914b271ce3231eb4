package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/render"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) newSavedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "saved",
		Aliases: []string{"briefs"},
		Short:   "Manage saved briefs",
	}
	cmd.AddCommand(
		a.newSavedListCmd(),
		a.newSavedShowCmd(),
		a.newSavedDeleteCmd(),
		a.newSavedSearchCmd(),
		a.newSavedDumpCmd(),
		a.newSavedRestoreCmd(),
	)
	return cmd
}

// withStore opens the store for the duration of fn.
func (a *app) withStore(fn func(store *briefs.SQLiteStore) error) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("brief store close")
		}
	}()
	return fn(store)
}

func (a *app) newSavedListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved briefs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *briefs.SQLiteStore) error {
				list := briefs.SafeList(store, a.log)
				if limit > 0 && len(list) > limit {
					list = list[:limit]
				}
				render.BriefList(a.env.Out, list)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Max briefs to show (0 = all)")
	return cmd
}

func (a *app) newSavedShowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved brief and its analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *briefs.SQLiteStore) error {
				b, err := store.Get(args[0])
				if err != nil {
					return err
				}
				if output == render.OutputHuman {
					color.New(color.FgCyan, color.Bold).Fprintf(a.env.Out, "%s\n", b.Title)
					fmt.Fprintf(a.env.Out, "%s  %s\n\n", color.HiBlackString(b.ID), b.CreatedAt.Local().Format(time.DateTime))
					fmt.Fprintln(a.env.Out, strings.TrimSpace(b.Content))
				}
				return render.Write(a.env.Out, output, b.Title, b.Analysis)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", render.OutputHuman, "Output format (human, json, yaml, markdown, html)")
	return cmd
}

func (a *app) newSavedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a saved brief",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *briefs.SQLiteStore) error {
				if err := store.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(a.env.Out, "%s Deleted %s\n", color.GreenString("✓"), args[0])
				return nil
			})
		},
	}
}

func (a *app) newSavedSearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Full-text search over saved briefs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *briefs.SQLiteStore) error {
				results, err := store.Search(strings.Join(args, " "), limit)
				if err != nil {
					return err
				}
				render.BriefList(a.env.Out, results)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Max results")
	return cmd
}

func (a *app) newSavedDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [FILE]",
		Short: "Write every saved brief as JSON (stdout if no FILE)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *briefs.SQLiteStore) error {
				data, err := briefs.Dump(store, time.Now())
				if err != nil {
					return err
				}
				raw, err := json.MarshalIndent(data, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding dump: %w", err)
				}
				if len(args) == 0 {
					_, err = fmt.Fprintln(a.env.Out, string(raw))
					return err
				}
				if err := os.WriteFile(args[0], raw, 0o600); err != nil {
					return fmt.Errorf("writing dump: %w", err)
				}
				fmt.Fprintf(a.env.Err, "%s Dumped %d brief(s) to %s\n", color.GreenString("✓"), len(data.Briefs), args[0])
				return nil
			})
		},
	}
}

func (a *app) newSavedRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore FILE|-",
		Short: "Load briefs from a dump, replacing briefs with the same ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if args[0] == "-" {
				raw, err = io.ReadAll(a.env.In)
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading dump: %w", err)
			}

			var data briefs.DumpData
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("parsing dump: %w", err)
			}
			if data.Version != briefs.DumpVersion {
				return fmt.Errorf("unsupported dump version %q (want %s)", data.Version, briefs.DumpVersion)
			}

			return a.withStore(func(store *briefs.SQLiteStore) error {
				n, err := briefs.Restore(store, &data)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.env.Out, "%s Restored %d brief(s)\n", color.GreenString("✓"), n)
				return nil
			})
		},
	}
}
