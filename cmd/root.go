package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mongle/monglectl/internal/config"
	"github.com/mongle/monglectl/internal/diary"
	"github.com/mongle/monglectl/internal/editor"
	"github.com/mongle/monglectl/internal/storage"
	"github.com/mongle/monglectl/internal/storage/jsonfile"
	"github.com/mongle/monglectl/internal/storage/sqlite"
	"github.com/mongle/monglectl/internal/ui"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	appTheme       ui.Theme
	store          storage.Store
	repo           *diary.Repository
)

var rootCmd = &cobra.Command{
	Use:   "monglectl",
	Short: "A personal diary CLI with emotion analysis",
	Long:  "monglectl is a command-line tool for keeping a personal diary with lockable entries, AI emotion analysis, and monthly emotion statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		// Initialize storage backend
		switch appConfig.Storage {
		case "json":
			store, err = jsonfile.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing json storage: %w", err)
			}
		case "sqlite":
			store, err = sqlite.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing sqlite storage: %w", err)
			}
		default:
			return fmt.Errorf("unknown storage backend: %s", appConfig.Storage)
		}

		repo, err = diary.NewRepository(store)
		if err != nil {
			return fmt.Errorf("loading diary collection: %w", err)
		}

		appTheme = ui.ResolveTheme(appConfig.Theme)
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			appTheme.MarkdownStyle = "notty"
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: show the collection, newest first
		return listRun(os.Stdout, "", "")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (json|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// gatherText resolves entry text from args, stdin ("-"), or the editor.
// initial seeds the editor buffer when no args are given.
func gatherText(args []string, initial string) (string, error) {
	switch {
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil

	case len(args) > 0:
		return strings.Join(args, " "), nil

	default:
		editorCmd := editor.Resolve(appConfig.Editor)
		text, changed, err := editor.Edit(editorCmd, initial)
		if err != nil {
			return "", fmt.Errorf("editor: %w", err)
		}
		if !changed && initial == "" {
			return "", fmt.Errorf("empty content")
		}
		return text, nil
	}
}
