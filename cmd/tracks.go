package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathplanner/internal/catalog"
	"github.com/abhisek/pathplanner/internal/roadmap"
)

func newTracksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List catalog tracks and their topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, t := range cat.Tracks() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				name := t.Name
				if name == "" {
					name = catalog.TrackDisplayName(t.ID)
				}
				fmt.Fprintf(out, "%s (%s): %d topics, %s order\n",
					name, t.ID, len(t.Topics), roadmap.PolicyForTrack(t.ID).Kind)
				fmt.Fprintln(out, strings.Repeat("─", 48))
				for _, topic := range t.Topics {
					fmt.Fprintf(out, "  • %s\n", topic)
				}
			}
			return nil
		},
	}
}
