package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edumate-ai/edumate/internal/cli"
)

func newRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a student account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			input, err := cli.NewRegistrationForm().Fill()
			if err != nil {
				return err
			}

			profile, err := app.accounts.Register(input)
			if err != nil {
				return err
			}

			if err := app.sessions.Start(profile); err != nil {
				return fmt.Errorf("sessions.Start() > %w", err)
			}
			fmt.Printf("Welcome %s! You are registered and logged in.\n", profile.Name)
			return nil
		},
	}
}

func newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Log in as a registered student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			password, err := promptLine("Password: ")
			if err != nil {
				return err
			}

			profile, err := app.accounts.Authenticate(args[0], password)
			if err != nil {
				return err
			}

			if err := app.sessions.Start(profile); err != nil {
				return fmt.Errorf("sessions.Start() > %w", err)
			}
			fmt.Printf("Welcome back, %s!\n", profile.Name)
			return nil
		},
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			if _, err := app.requireSession(); err != nil {
				return err
			}
			if err := app.sessions.End(); err != nil {
				return fmt.Errorf("sessions.End() > %w", err)
			}
			fmt.Println("Logged out. Your records are kept on this device.")
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in student",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			active, err := app.requireSession()
			if err != nil {
				return err
			}

			profile := active.Profile
			fmt.Printf("%s <%s>\n", profile.Name, profile.Email)
			fmt.Printf("Class %s, %s", profile.Standard, profile.Board)
			if profile.Stream != "" {
				fmt.Printf(", %s stream", profile.Stream)
			}
			fmt.Println()
			fmt.Printf("Subjects: %s\n", strings.Join(profile.Subjects, ", "))
			fmt.Printf("Tests taken: %d, saved notes: %d\n", len(active.Results), len(active.Notes))
			return nil
		},
	}
}

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account maintenance",
	}
	cmd.AddCommand(newAccountDeleteCommand())
	return cmd
}

func newAccountDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the logged in account and every record it owns",
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

			fmt.Println("This permanently removes your account, test results, timetable, and notes.")
			confirmEmail, err := promptLine("Type your email to confirm: ")
			if err != nil {
				return err
			}
			confirmPassword, err := promptLine("Password: ")
			if err != nil {
				return err
			}

			if err := app.accounts.Delete(email, confirmEmail, confirmPassword); err != nil {
				return err
			}
			if err := app.sessions.End(); err != nil {
				return fmt.Errorf("sessions.End() > %w", err)
			}
			fmt.Println("Account deleted.")
			return nil
		},
	}
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
