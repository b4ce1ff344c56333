package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/recents"
	"github.com/MrSnakeDoc/recents/internal/config"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing registry file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap an empty registry file",
	Long: `Write an empty recently-used.xbel document. The record command treats a
missing registry as an error rather than creating one, so init is the
explicit opt-in for starting from scratch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		target, err := registryPath(cfg)
		if err != nil {
			return err
		}

		if !initForce {
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists (use --force to replace it)", target)
			}
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating registry directory: %w", err)
		}
		if err := recents.NewStore(target).WriteEmpty(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "initialized empty registry at %s\n", target)
		return nil
	},
}
