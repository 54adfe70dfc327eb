package cli

import (
	"github.com/spf13/cobra"

	"github.com/airquant/tradingflow/internal/config"
)

// configPath is the persisted config file selected with --config. Empty means
// environment-backed defaults for analyze, and the user config dir for the
// config subcommand.
var configPath string

// NewRootCmd wires the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tradingflow",
		Short: "Multi-agent trading analysis pipeline",
		Long: "TradingFlow runs a staged multi-agent pipeline over a ticker and date:\n" +
			"analyst reports, a bull/bear research debate, a trading plan, a\n" +
			"three-way risk debate, and a final BUY/SELL/HOLD ruling.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a persisted config file")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newModelsCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// loadRunConfig resolves the configuration for one run: the persisted file
// when --config is set, environment-backed defaults otherwise.
func loadRunConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	m, err := config.NewManager(configPath)
	if err != nil {
		return nil, err
	}
	cfg := m.Get()
	return &cfg, nil
}
