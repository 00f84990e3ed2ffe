package cli

import (
	"github.com/spf13/cobra"
)

func addHistory(topLevel *cobra.Command, ro *rootOptions) {
	oo := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the retained days with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), ro, cmdLogger(cmd), func(a *app) error {
				days := a.board.History()
				if oo.JSON {
					return writeJSON(cmd.OutOrStdout(), days)
				}
				printHistory(cmd.OutOrStdout(), days)
				return nil
			})
		},
	}
	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
