package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/dayboard/internal/config"
)

type rootOptions struct {
	v          *viper.Viper
	configFile string
}

func (o *rootOptions) load() (config.RuntimeConfig, error) {
	return config.Load(o.v, o.configFile)
}

func New() *cobra.Command {
	ro := &rootOptions{v: config.New()}

	cmd := &cobra.Command{
		Use:   "dayboard",
		Short: "A daily morning, noon and evening checklist.",
		Long: `dayboard keeps a checklist for today split into morning, noon and evening.
Each new day is seeded from your templates and the last 7 days are kept.
Run without a subcommand to open the interactive board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ro.load()
			if err != nil {
				return err
			}
			return runUI(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&ro.configFile, "config", "", "Path to a dayboard.yaml config file.")
	flags.String("backend", "", "Storage backend: sqlite, diskv, file or memory.")
	flags.String("store", "", "Storage location for the selected backend.")
	flags.Int("history-days", 0, "Number of days to keep.")
	_ = ro.v.BindPFlag(config.KeyStoreBackend, flags.Lookup("backend"))
	_ = ro.v.BindPFlag(config.KeyStorePath, flags.Lookup("store"))
	_ = ro.v.BindPFlag(config.KeyHistoryDays, flags.Lookup("history-days"))

	AddCommands(cmd, ro)
	return cmd
}

func AddCommands(topLevel *cobra.Command, ro *rootOptions) {
	addAdd(topLevel, ro)
	addList(topLevel, ro)
	addToggle(topLevel, ro)
	addRemove(topLevel, ro)
	addClear(topLevel, ro)
	addDone(topLevel, ro)
	addReset(topLevel, ro)
	addApply(topLevel, ro)
	addHistory(topLevel, ro)
	addTemplates(topLevel, ro)
}
