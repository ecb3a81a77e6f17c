package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/storage"
	"github.com/mongle/monglectl/internal/ui"
)

var editDate string

var editCmd = &cobra.Command{
	Use:   "edit <id> [text...]",
	Short: "Edit a diary entry",
	Long: `Edit an existing diary entry.

If text is provided as arguments, it replaces the entry text directly.
If "-" is provided, replacement text is read from stdin.
If no text is provided, your editor is opened with the current text.`,
	Example: `  monglectl edit a3kf9x2m
  monglectl edit a3kf9x2m "고쳐 쓴 일기"
  monglectl edit a3kf9x2m --date 2024-03-14`,
	Args: cobra.MinimumNArgs(1),
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

		text, err := gatherText(args[1:], e.Text)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if err := entry.ValidateText(text); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		date := e.Date
		if editDate != "" {
			date, err = time.ParseInLocation("2006-01-02", editDate, time.Local)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error: invalid date format (use YYYY-MM-DD):", editDate)
				os.Exit(1)
			}
		}

		if err := repo.Update(id, strings.TrimSpace(text), date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		updated, err := repo.Get(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, updated)
		} else {
			ui.FormatEntryUpdated(os.Stdout, updated)
		}

		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "change entry date (YYYY-MM-DD)")
	rootCmd.AddCommand(editCmd)
}
