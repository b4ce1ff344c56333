// Package cli defines the Cobra command tree for the recents CLI. Each file
// in this package registers one top-level command (record, list, init,
// version) with the root command. Commands are thin demo wrappers: all
// registry logic lives in the library, the CLI only handles flags, config
// and output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/recents"
	"github.com/MrSnakeDoc/recents/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "recents",
	Short: "Record and inspect the desktop recently-used file registry",
	Long: `recents maintains ~/.local/share/recently-used.xbel, the shared
freedesktop registry of recently accessed files, so that applications can
record file-open events and read a common recents list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var flagFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "",
		"registry file to operate on (default: ~/.local/share/recently-used.xbel)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// registryPath resolves the registry file for one invocation:
// --file flag, then config file / RECENTS_FILE, then the well-known default.
func registryPath(cfg *config.Config) (string, error) {
	if flagFile != "" {
		return flagFile, nil
	}
	if cfg.File != "" {
		return cfg.File, nil
	}
	return recents.DefaultPath()
}
