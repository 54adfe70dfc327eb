package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/airquant/tradingflow/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the persisted configuration file",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigWatchCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the persisted configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.NewManager(configPath)
			if err != nil {
				return err
			}
			cfg := m.Get()
			data, err := json.MarshalIndent(&cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(dimStyle.Render(m.Path()))
			fmt.Println(string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update one configuration value and persist it",
		Long: "Keys: provider, quick-model, deep-model, backend-url, results-dir,\n" +
			"debate-rounds, risk-rounds, debug",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.NewManager(configPath)
			if err != nil {
				return err
			}
			cfg := m.Get()
			if err := applyConfigKey(&cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := m.Update(cfg); err != nil {
				return err
			}
			fmt.Println(okStyle.Render("Updated " + args[0]))
			return nil
		},
	}
}

func applyConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "provider":
		cfg.LLMProvider = value
	case "quick-model":
		cfg.QuickThinkLLM = value
	case "deep-model":
		cfg.DeepThinkLLM = value
	case "backend-url":
		cfg.BackendURL = value
	case "results-dir":
		cfg.ResultsDir = value
	case "debate-rounds":
		n, err := parsePositiveInt(value)
		if err != nil {
			return fmt.Errorf("debate-rounds: %w", err)
		}
		cfg.MaxDebateRounds = n
	case "risk-rounds":
		n, err := parsePositiveInt(value)
		if err != nil {
			return fmt.Errorf("risk-rounds: %w", err)
		}
		cfg.MaxRiskDiscussRounds = n
	case "debug":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("debug: %w", err)
		}
		cfg.Debug = enabled
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// newConfigWatchCmd follows the config file and prints every applied change
// until interrupted. Useful while editing the file from another terminal.
func newConfigWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the config file and print applied changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.NewManager(configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			err = m.Watch(ctx, func(cfg config.Config) {
				fmt.Printf("%s provider=%s quick=%s deep=%s debate=%d risk=%d\n",
					okStyle.Render("config reloaded:"),
					cfg.LLMProvider, cfg.QuickThinkLLM, cfg.DeepThinkLLM,
					cfg.MaxDebateRounds, cfg.MaxRiskDiscussRounds)
			})
			if err != nil {
				return err
			}

			fmt.Println(dimStyle.Render("Watching " + m.Path() + " (ctrl-c to stop)"))
			<-ctx.Done()
			return nil
		},
	}
}
