package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edumate-ai/edumate/internal/notes"
	"github.com/edumate-ai/edumate/internal/pdf"
)

func newNotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Generate and keep study notes",
	}
	cmd.AddCommand(
		newNotesGenerateCommand(),
		newNotesSaveCommand(),
		newNotesListCommand(),
		newNotesShowCommand(),
		newNotesDeleteCommand(),
		newNotesExportCommand(),
	)
	return cmd
}

func newNotesGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <subject> <chapter>",
		Short: "Generate a study note draft for a chapter",
		Args:  cobra.ExactArgs(2),
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

			manager := notes.NewManager(client, app.notes)
			draft, err := manager.Generate(cmd.Context(), args[0], args[1], active.Profile)
			if err != nil {
				return err
			}
			if err := app.drafts.Put(active.Profile.Email, draft); err != nil {
				return err
			}

			fmt.Println(draft.Content)
			fmt.Println()
			fmt.Println("This draft is not saved yet. Run edumate notes save to keep it.")
			return nil
		},
	}
}

func newNotesSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the last generated note draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			active, err := app.requireSession()
			if err != nil {
				return err
			}
			email := active.Profile.Email

			draft, err := app.drafts.Get(email)
			if err != nil {
				return err
			}
			if draft == nil {
				return fmt.Errorf("no note draft, run edumate notes generate first")
			}

			manager := notes.NewManager(nil, app.notes)
			if err := manager.Save(email, *draft); err != nil {
				return err
			}
			if err := app.drafts.Clear(email); err != nil {
				return err
			}
			fmt.Printf("Saved note %s (%s / %s).\n", draft.ID, draft.Subject, draft.Chapter)
			return nil
		},
	}
}

func newNotesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your saved notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			active, err := app.requireSession()
			if err != nil {
				return err
			}

			if len(active.Notes) == 0 {
				fmt.Println("No saved notes yet.")
				return nil
			}
			for _, note := range active.Notes {
				fmt.Printf("%s  %s / %s (%s)\n",
					note.ID, note.Subject, note.Chapter, note.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newNotesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved note",
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

			manager := notes.NewManager(nil, app.notes)
			note, err := manager.Get(active.Profile.Email, args[0])
			if err != nil {
				return err
			}
			fmt.Println(note.Content)
			return nil
		},
	}
}

func newNotesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved note",
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

			manager := notes.NewManager(nil, app.notes)
			if err := manager.Delete(active.Profile.Email, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func newNotesExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <id>",
		Short: "Export a saved note as a PDF file",
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

			manager := notes.NewManager(nil, app.notes)
			note, err := manager.Get(active.Profile.Email, args[0])
			if err != nil {
				return err
			}

			if err := os.MkdirAll(app.cfg.Outputs.NotesDirectory, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", app.cfg.Outputs.NotesDirectory, err)
			}
			path, err := pdf.RenderNote(note, active.Profile.Board, app.cfg.Outputs.NotesDirectory)
			if err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}
}
