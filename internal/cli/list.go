package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/recents"
	"github.com/MrSnakeDoc/recents/internal/config"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the registry's bookmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		target, err := registryPath(cfg)
		if err != nil {
			return err
		}

		reg, err := recents.NewStore(target).Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, b := range reg.Bookmarks {
			fmt.Fprintf(out, "%s\n", b.Href)
			fmt.Fprintf(out, "  added=%s modified=%s visited=%s\n", b.Added, b.Modified, b.Visited)
			if b.Info == nil {
				continue
			}
			if mt := b.Info.Metadata.MimeType; mt != nil {
				fmt.Fprintf(out, "  mime-type=%s\n", mt.Type)
			}
			for _, app := range b.Info.Metadata.Applications.Applications {
				fmt.Fprintf(out, "  app=%s exec=%q count=%d modified=%s\n",
					app.Name, app.Exec, app.Count, app.Modified)
			}
		}
		return nil
	},
}
