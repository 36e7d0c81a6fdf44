package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathplanner/internal/resources"
)

func newResourcesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "resources",
		Short: "Find study links for a topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			offline, _ := cmd.Flags().GetBool("offline")

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			finder := resources.Chain{resources.StaticFinder{Catalog: cat}}
			if !offline {
				finder = append(finder, resources.NewSearchFinder(resources.DefaultSearchConfig(), logger))
			}

			links := finder.Find(context.Background(), topic)
			out := cmd.OutOrStdout()
			if len(links) == 0 {
				fmt.Fprintf(out, "No resources found for %q.\n", topic)
				return nil
			}
			for _, l := range links {
				fmt.Fprintf(out, "%s\n  %s\n", l.Title, l.URL)
			}
			return nil
		},
	}
	c.Flags().String("topic", "", "Topic to look up")
	c.Flags().Bool("offline", false, "Only use the catalog's links")
	_ = c.MarkFlagRequired("topic")
	return c
}
