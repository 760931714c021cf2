package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edumate-ai/edumate/internal/cli"
)

func newDoubtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doubt",
		Short: "Chat with the AI tutor about anything you are stuck on",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			active, err := app.requireSession()
			if err != nil {
				return err
			}
			client, err := app.collaborator()
			if err != nil {
				return err
			}

			fmt.Println("Ask your doubts one at a time. Type quit to end.")
			doubtCLI := cli.NewDoubtCLI(client, active.Profile)
			return doubtCLI.Run(cmd.Context(), doubtCLI)
		},
	}
}
