package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edumate-ai/edumate/internal/cli"
	"github.com/edumate-ai/edumate/internal/schedule"
	"github.com/edumate-ai/edumate/internal/student"
)

func newTimetableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timetable",
		Short: "Build and edit your weekly study plan",
	}
	cmd.AddCommand(
		newTimetableGenerateCommand(),
		newTimetableShowCommand(),
		newTimetableEditCommand(),
	)
	return cmd
}

func newTimetableGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <school-end-time>",
		Short: "Generate a fresh weekly timetable starting after school",
		Args:  cobra.ExactArgs(1),
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

			editor := schedule.NewEditor(client, app.schedules, active.Profile.Email)
			entries, err := editor.Regenerate(cmd.Context(), args[0], active.Profile)
			if err != nil {
				return err
			}

			printTimetable(entries)
			return nil
		},
	}
}

func newTimetableShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved weekly timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			active, err := app.requireSession()
			if err != nil {
				return err
			}

			if len(active.Timetable) == 0 {
				fmt.Println("No timetable yet. Run edumate timetable generate <school-end-time>.")
				return nil
			}
			printTimetable(active.Timetable)
			return nil
		},
	}
}

func newTimetableEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit timetable slots interactively (save keeps changes)",
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

			editor := schedule.NewEditor(client, app.schedules, active.Profile.Email)
			if err := editor.Load(); err != nil {
				return err
			}

			timetableCLI := cli.NewTimetableCLI(editor, active.Profile)
			return timetableCLI.Run(cmd.Context(), timetableCLI)
		},
	}
}

func printTimetable(entries []student.TimeTableEntry) {
	for _, entry := range entries {
		fmt.Println(entry.Day)
		for i, slot := range entry.Slots {
			fmt.Printf("  %d. %s  %s (%s)\n", i+1, slot.Time, slot.Activity, slot.Type)
		}
	}
}
