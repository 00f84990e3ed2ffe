package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func addAdd(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "add <bucket> <text...>",
		Short: "Add an item to today",
		Example: `
dayboard add morning drink water
dayboard add evening read a chapter
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := model.ParseBucket(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				it, ok := a.board.Add(cmd.Context(), text, bucket)
				if !ok {
					return model.ErrEmptyText
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s: %s\n", shortID(it.ID), it.Bucket.Label(), it.Text)
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addList(topLevel *cobra.Command, ro *rootOptions) {
	oo := &outputOptions{}
	var date string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show today's checklist, or a retained day with --date",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				if date != "" && date != a.board.TodayKey() {
					if err := a.board.OpenHistoryDay(date); err != nil {
						return err
					}
				}
				snap := a.board.Snapshot()
				if oo.JSON {
					return writeJSON(cmd.OutOrStdout(), snap)
				}
				printDay(cmd.OutOrStdout(), snap)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", `Day to show, example: --date="2024-01-31".`)
	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "toggle <id-prefix>",
		Short: "Flip an item between done and open",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				it, err := resolve(a.board.Items(), args[0])
				if err != nil {
					return err
				}
				a.board.Toggle(cmd.Context(), it.ID)
				state := "done"
				if it.Done {
					state = "open"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", state, shortID(it.ID), it.Text)
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "remove <id-prefix>",
		Aliases: []string{"rm"},
		Short:   "Delete an item from today",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				it, err := resolve(a.board.Items(), args[0])
				if err != nil {
					return err
				}
				a.board.Remove(cmd.Context(), it.ID)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s: %s\n", shortID(it.ID), it.Text)
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove completed items from today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				n := a.board.ClearCompleted(cmd.Context())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %d completed item(s)\n", n)
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addDone(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "done <bucket>",
		Short: "Mark every item in a bucket done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := model.ParseBucket(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				n := a.board.MarkAllDone(cmd.Context(), bucket)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "marked %d %s item(s) done\n", n, bucket.Label())
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command, ro *rootOptions) {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace today's list with a fresh copy of the templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("reset discards today's items; pass --yes to confirm")
			}
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				n := a.board.ResetToday(cmd.Context())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reset today to %d template item(s)\n", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset.")
	topLevel.AddCommand(cmd)
}

func addApply(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Replace today's list with the current templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				n := a.board.ApplyTemplatesToToday(cmd.Context())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "applied templates: %d item(s)\n", n)
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}
