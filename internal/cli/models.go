package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airquant/tradingflow/internal/llm"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage local models",
	}
	cmd.AddCommand(newModelsListCmd())
	cmd.AddCommand(newModelsCheckCmd())
	cmd.AddCommand(newModelsPullCmd())
	cmd.AddCommand(newModelsValidateCmd())
	return cmd
}

func newModelsListCmd() *cobra.Command {
	var ramGB float64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recommended local models that fit the given RAM",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := llm.Recommendations(ramGB)
			for _, tier := range []string{llm.TierQuickThink, llm.TierDeepThink} {
				fmt.Println(sectionStyle.Render(tier))
				if len(recs[tier]) == 0 {
					fmt.Println(dimStyle.Render("  no model fits in the available RAM"))
					continue
				}
				for _, rec := range recs[tier] {
					fmt.Printf("  %-24s %-16s %-8s %s\n", rec.Name, rec.Ollama, rec.Size, rec.Description)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&ramGB, "ram", 32, "available RAM in GB")
	return cmd
}

func newModelsCheckCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check local server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, msg := llm.CheckServerHealth(baseURL)
			if ok {
				fmt.Println(okStyle.Render(msg))
			} else {
				fmt.Println(errStyle.Render(msg))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", llm.DefaultOllamaBaseURL, "local server base URL")
	return cmd
}

func newModelsPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <model>",
		Short: "Pull a model onto the local server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, msg := llm.PullModel(args[0])
			if ok {
				fmt.Println(okStyle.Render(msg))
			} else {
				fmt.Println(errStyle.Render(msg))
			}
			return nil
		},
	}
}

func newModelsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a GGUF model file and estimate its memory needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, msg := llm.ValidateModelPath(args[0])
			if !ok {
				fmt.Println(errStyle.Render(msg))
				return nil
			}
			fmt.Println(okStyle.Render(msg))
			if mem, ok := llm.EstimateMemoryGB(args[0]); ok {
				fmt.Printf("Estimated inference memory: %.1f GB\n", mem)
			}
			return nil
		},
	}
}
