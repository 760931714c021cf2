package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type ExportFormat string

func (f *ExportFormat) Set(val string) error {
	for _, format := range allExportFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f ExportFormat) String() string {
	return string(f)
}

func (f *ExportFormat) Type() string {
	return "ExportFormat"
}

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
)

var (
	_                pflag.Value = (*ExportFormat)(nil)
	allExportFormats             = []ExportFormat{ExportFormatJSON, ExportFormatYAML}
)

func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "admin",
		Short:  "Inspect the local account database",
		Hidden: true,
	}
	cmd.AddCommand(newAdminListCommand(), newAdminExportCommand())
	return cmd
}

// checkAdminPassword gates the admin commands behind the configured
// password. Unset password means the commands are disabled.
func checkAdminPassword(app *app) error {
	if app.cfg.Admin.Password == "" {
		return fmt.Errorf("admin access is disabled, set EDUMATE_ADMIN_PASSWORD to enable it")
	}
	password, err := promptLine("Admin password: ")
	if err != nil {
		return err
	}
	if password != app.cfg.Admin.Password {
		return fmt.Errorf("wrong admin password")
	}
	return nil
}

func newAdminListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered account on this device",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := checkAdminPassword(app); err != nil {
				return err
			}

			summaries, err := app.accounts.ListAccounts()
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Println("No registered accounts.")
				return nil
			}
			for _, summary := range summaries {
				profile := summary.Profile
				fmt.Printf("%s <%s>  class %s %s, %d tests\n",
					profile.Name, profile.Email, profile.Standard, profile.Board, summary.TestCount)
			}
			return nil
		},
	}
}

func newAdminExportCommand() *cobra.Command {
	var outputFile string
	format := ExportFormatJSON

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every account summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := checkAdminPassword(app); err != nil {
				return err
			}

			summaries, err := app.accounts.ListAccounts()
			if err != nil {
				return err
			}

			var encoded []byte
			switch format {
			case ExportFormatYAML:
				encoded, err = yaml.Marshal(summaries)
				if err != nil {
					return fmt.Errorf("yaml.Marshal() > %w", err)
				}
			case ExportFormatJSON:
				fallthrough
			default:
				encoded, err = json.MarshalIndent(summaries, "", "  ")
				if err != nil {
					return fmt.Errorf("json.MarshalIndent() > %w", err)
				}
			}

			if outputFile == "" {
				fmt.Println(string(encoded))
				return nil
			}
			if err := os.WriteFile(outputFile, encoded, 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", outputFile, err)
			}
			fmt.Printf("Exported %d accounts to %s\n", len(summaries), outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().Var(&format, "format", fmt.Sprintf("Export format. Possible values are %v", allExportFormats))
	return cmd
}
