package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/classify"
	"github.com/mongle/monglectl/internal/config"
	"github.com/mongle/monglectl/internal/enrich"
	"github.com/mongle/monglectl/internal/storage"
	"github.com/mongle/monglectl/internal/ui"
)

var showNoAnalyze bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a diary entry with emotion analysis",
	Long: `Show the full text of a diary entry, then analyze its emotion.

The first time an entry is shown it is sent for emotion classification and
the resulting label (fear, anger, joy, sadness, disgust) is stored with the
entry. Already classified entries reuse the stored label without another
call. Analysis needs MONGLECTL_OPENAI_API_KEY or OPENAI_API_KEY to be set;
without a key the entry text is shown and analysis is skipped.`,
	Example: `  monglectl show a3kf9x2m
  monglectl show a3kf9x2m --no-analyze`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		e, err := repo.Get(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Error: entry %s not found\n", id)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if !jsonOutput {
			ui.FormatEntryFull(os.Stdout, e, appTheme)
		}

		if showNoAnalyze {
			if jsonOutput {
				return ui.FormatJSON(os.Stdout, e)
			}
			return nil
		}

		client, err := classify.New(config.APIKey(), classify.Options{
			BaseURL:    appConfig.OpenAI.BaseURL,
			Model:      appConfig.OpenAI.Model,
			MaxRetries: appConfig.OpenAI.MaxRetries,
			RetryDelay: appConfig.OpenAI.RetryDelay,
		})
		if err != nil {
			if jsonOutput {
				return ui.FormatJSON(os.Stdout, e)
			}
			ui.FormatFallback(os.Stdout, "No API key set, skipping emotion analysis.", appTheme)
			return nil
		}

		coordinator := enrich.NewCoordinator(repo, client)
		result, err := coordinator.Enrich(cmd.Context(), e)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, ui.EnrichmentJSON{
				ID:      e.ID,
				State:   result.State.String(),
				Emotion: string(result.Emotion),
				Message: result.Message,
			})
		}

		switch result.State {
		case enrich.Enriched:
			ui.FormatEmotion(os.Stdout, result.Emotion, result.Message, appTheme)
		case enrich.Failed:
			ui.FormatFallback(os.Stdout, result.Message, appTheme)
		}

		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showNoAnalyze, "no-analyze", false, "show the entry without emotion analysis")
	rootCmd.AddCommand(showCmd)
}
