package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func addTemplates(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"tpl"},
		Short:   "Manage the items every new day starts with",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	oo := &outputOptions{}
	list := &cobra.Command{
		Use:   "list",
		Short: "Show the templates per bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				if oo.JSON {
					return writeJSON(cmd.OutOrStdout(), a.board.Templates())
				}
				printTemplates(cmd.OutOrStdout(), a.board.Templates())
				return nil
			})
		},
	}
	addOutputArg(list, oo)

	add := &cobra.Command{
		Use:     "add <bucket> <text...>",
		Short:   "Add a template at the top of a bucket",
		Example: "dayboard templates add noon go for a walk",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := model.ParseBucket(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				if !a.board.AddTemplate(cmd.Context(), bucket, strings.Join(args[1:], " ")) {
					return model.ErrEmptyText
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "template added to %s\n", bucket.Label())
				return nil
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <bucket> <position>",
		Short: "Remove a template by its 1-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := model.ParseBucket(args[0])
			if err != nil {
				return err
			}
			pos, err := strconv.Atoi(args[1])
			if err != nil || pos < 1 {
				return fmt.Errorf("position must be a positive number: %s", args[1])
			}
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				if !a.board.RemoveTemplate(cmd.Context(), bucket, pos-1) {
					return fmt.Errorf("no %s template at position %d", bucket.Label(), pos)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "template removed from %s\n", bucket.Label())
				return nil
			})
		},
	}

	cmd.AddCommand(list, add, rm)
	topLevel.AddCommand(cmd)
}
