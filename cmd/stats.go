package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/stats"
	"github.com/mongle/monglectl/internal/ui"
)

var statsMonth string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show monthly emotion statistics",
	Long:  "Count classified emotions for one calendar month. Entries that were never analyzed are not counted.",
	Example: `  monglectl stats
  monglectl stats --month 2024-03`,
	RunE: func(cmd *cobra.Command, args []string) error {
		month := time.Now()
		if statsMonth != "" {
			var err error
			month, err = time.ParseInLocation("2006-01", statsMonth, time.Local)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error: invalid month format (use YYYY-MM):", statsMonth)
				os.Exit(1)
			}
		}

		counts := stats.ForMonth(repo.Entries(), month)

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, ui.ToStatsJSON(month, counts))
		}
		ui.FormatMonthStats(os.Stdout, month, counts, appTheme)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsMonth, "month", "", "month to aggregate (YYYY-MM, default current)")
	rootCmd.AddCommand(statsCmd)
}
