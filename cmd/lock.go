package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/storage"
	"github.com/mongle/monglectl/internal/ui"
)

var lockCmd = &cobra.Command{
	Use:   "lock <id>",
	Short: "Lock or unlock a diary entry",
	Long: `Toggle the lock on a diary entry.

Locked entries show the mask text instead of their content in lists and
search results. Running lock again on a locked entry unlocks it.`,
	Example: `  monglectl lock a3kf9x2m`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if _, err := repo.Get(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Error: entry %s not found\n", id)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if err := repo.ToggleLock(id); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		e, err := repo.Get(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, e)
		} else {
			ui.FormatLockToggled(os.Stdout, e)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)
}
