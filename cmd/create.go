package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/ui"
)

var createDate string

var createCmd = &cobra.Command{
	Use:   "create [text...]",
	Short: "Create a new diary entry",
	Long: `Create a new diary entry.

If text is provided as arguments, it is used directly.
If "-" is provided, text is read from stdin.
If no text is provided, your editor is opened.`,
	Example: `  monglectl create "오늘은 좋은 하루였다"
  monglectl create --date 2024-03-15 "지난 일기"
  echo "piped content" | monglectl create -
  monglectl create`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := gatherText(args, "")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		if err := entry.ValidateText(text); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		date := time.Now()
		if createDate != "" {
			date, err = time.ParseInLocation("2006-01-02", createDate, time.Local)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error: invalid date format (use YYYY-MM-DD):", createDate)
				os.Exit(1)
			}
		}

		e, err := repo.Create(strings.TrimSpace(text), date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, e)
		} else {
			ui.FormatEntryCreated(os.Stdout, e)
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(createCmd)
}
