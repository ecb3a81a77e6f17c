package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/diary"
	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/ui"
)

var (
	listMonth  string
	listSearch string
	listIDOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries",
	Long:  "List diary entries with preview, sorted by date (newest first). Locked entries are masked.",
	Example: `  monglectl list
  monglectl list --month 2024-03
  monglectl list --search 여행
  monglectl list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listIDOnly {
			for _, e := range filteredEntries(listMonth, listSearch) {
				fmt.Fprintln(cmd.OutOrStdout(), e.ID)
			}
			return nil
		}
		return listRun(os.Stdout, listMonth, listSearch)
	},
}

// filteredEntries applies the search and month filters in that order.
func filteredEntries(month, search string) []entry.Entry {
	entries := repo.Search(search)
	if month != "" {
		ref, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: invalid month format (use YYYY-MM):", month)
			os.Exit(1)
		}
		entries = diary.FilterByMonth(entries, ref)
	}
	return entries
}

func listRun(w io.Writer, month, search string) error {
	entries := filteredEntries(month, search)

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSummaries(entries))
	}
	ui.FormatEntryList(w, entries, appTheme)
	return nil
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "filter by month (YYYY-MM)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by text (case-sensitive substring)")
	listCmd.Flags().BoolVar(&listIDOnly, "id-only", false, "print just entry IDs, one per line")
	rootCmd.AddCommand(listCmd)
}
