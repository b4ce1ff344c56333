package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/recents"
	"github.com/MrSnakeDoc/recents/internal/config"
	"github.com/MrSnakeDoc/recents/internal/logger"
)

var (
	recordApp   string
	recordExec  string
	recordOwner string
)

func init() {
	recordCmd.Flags().StringVar(&recordApp, "app", "", "application name to record (or RECENTS_APP)")
	recordCmd.Flags().StringVar(&recordExec, "exec", "", "launch command to record (default: the app name)")
	recordCmd.Flags().StringVar(&recordOwner, "owner", "", "metadata owner for new bookmarks")
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record <path>",
	Short: "Record a file-access event into the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.New(cfg.LogLevel, cfg.PrettyLog)
		defer func() { _ = log.Sync() }()

		app := firstNonEmpty(recordApp, cfg.App)
		if app == "" {
			return fmt.Errorf("an application name is required (--app or RECENTS_APP)")
		}
		exec := firstNonEmpty(recordExec, cfg.Exec, app)
		owner := firstNonEmpty(recordOwner, cfg.Owner)

		// The library expects an absolute, canonicalized path.
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %q: %w", args[0], err)
		}

		target, err := registryPath(cfg)
		if err != nil {
			return err
		}

		if err := recents.NewStore(target).RecordAccess(path, app, exec, owner); err != nil {
			return fmt.Errorf("recording access to %s: %w", path, err)
		}

		log.Info("recorded access",
			logger.String("path", path),
			logger.String("app", app),
			logger.String("registry", target))
		return nil
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
