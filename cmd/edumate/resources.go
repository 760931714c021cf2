package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edumate-ai/edumate/internal/resources"
)

func newResourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resources <topic>",
		Short: "Find study materials and question banks on the web",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			active, err := app.requireSession()
			if err != nil {
				return err
			}
			if app.cfg.Gemini.APIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY is not set")
			}

			client := resources.NewClient(app.cfg.Gemini.APIKey, app.cfg.Gemini.Model)
			found, err := client.Search(cmd.Context(), strings.Join(args, " "), active.Profile)
			if err != nil {
				return err
			}

			if len(found) == 0 {
				fmt.Println("No resources found, try a broader topic.")
				return nil
			}
			for _, resource := range found {
				fmt.Printf("- %s\n  %s\n", resource.Title, resource.URL)
			}
			return nil
		},
	}
}
