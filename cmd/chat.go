package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/classify"
	"github.com/mongle/monglectl/internal/config"
	"github.com/mongle/monglectl/internal/enrich"
	"github.com/mongle/monglectl/internal/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message...|-]",
	Short: "Chat with the AI companion",
	Long: `Send a free-form message to the AI companion and print its reply.

If a message is provided as arguments, one exchange is made and the command
exits. If "-" is provided, the message is read from stdin. With no message an
interactive loop starts; finish with Ctrl-D. Each exchange is stateless.

Chat needs MONGLECTL_OPENAI_API_KEY or OPENAI_API_KEY to be set. When a
reply cannot be fetched the fallback notice is shown and the conversation
continues.`,
	Example: `  monglectl chat "요즘 잠이 잘 안 와"
  echo "고민이 있어" | monglectl chat -
  monglectl chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := classify.New(config.APIKey(), classify.Options{
			BaseURL:    appConfig.OpenAI.BaseURL,
			Model:      appConfig.OpenAI.Model,
			MaxRetries: appConfig.OpenAI.MaxRetries,
			RetryDelay: appConfig.OpenAI.RetryDelay,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: chat requires MONGLECTL_OPENAI_API_KEY or OPENAI_API_KEY to be set")
			os.Exit(1)
		}

		if len(args) > 0 {
			message, err := gatherText(args, "")
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			return chatTurn(cmd.Context(), client, message, os.Stdout)
		}

		// Interactive loop; every line is one exchange
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(os.Stdout, appTheme.MutedStyle().Render("메시지를 입력하세요...")+" ")
			if !scanner.Scan() {
				fmt.Fprintln(os.Stdout)
				break
			}
			message := scanner.Text()
			if message == "" {
				continue
			}
			if err := chatTurn(cmd.Context(), client, message, os.Stdout); err != nil {
				return err
			}
		}
		return scanner.Err()
	},
}

// chatTurn makes one exchange. A failed call shows the fallback notice
// instead of aborting, matching the enrichment path.
func chatTurn(ctx context.Context, client *classify.Client, message string, w io.Writer) error {
	reply, err := client.Chat(ctx, message)
	if err != nil {
		if jsonOutput {
			return ui.FormatJSON(w, ui.ChatJSON{Message: message, Reply: enrich.FallbackMessage, Failed: true})
		}
		ui.FormatFallback(w, enrich.FallbackMessage, appTheme)
		return nil
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ChatJSON{Message: message, Reply: reply})
	}
	fmt.Fprintln(w, reply)
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
