package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edumate-ai/edumate/internal/cli"
	"github.com/edumate-ai/edumate/internal/exam"
	"github.com/edumate-ai/edumate/internal/student"
)

func newExamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exam",
		Short: "Take a timed mock test graded from a photo of your answers",
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

			engine := exam.NewEngine(client, app.results, active.Profile)
			examCLI := cli.NewExamCLI(engine, active.Profile)
			return examCLI.Run(cmd.Context(), examCLI)
		},
	}
}

func newResultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "List your past mock test results",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			active, err := app.requireSession()
			if err != nil {
				return err
			}

			if len(active.Results) == 0 {
				fmt.Println("No tests taken yet. Run edumate exam to take one.")
				return nil
			}
			for _, result := range active.Results {
				chapter := result.Chapter
				if chapter == "" {
					chapter = student.FullSyllabus
				}
				fmt.Printf("%s  %s / %s: %d of %d\n",
					result.Date.Format("2006-01-02"), result.Subject, chapter, result.Score, result.TotalMarks)
			}
			return nil
		},
	}
}
