// Package main provides the actions-context CLI application.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/cicd-ai-toolkit/actions-context/pkg/ghactions"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showFormat string

// showCmd prints the full invocation context.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the full invocation context",
	Long: `Load the GitHub Actions context from the environment and print all
fields, including the event payload, as JSON or YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext(cmd)
		if err != nil {
			return err
		}
		out, err := render(ctx, showFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "json", "output format (json|yaml)")
	rootCmd.AddCommand(showCmd)
}

// loadContext builds the context and warns when we are clearly not running
// under GitHub Actions, since every field will then hold its default.
func loadContext(cmd *cobra.Command) (*ghactions.Context, error) {
	if !ghactions.RunningInActions() {
		log.Warn("not running under GitHub Actions, context will hold defaults")
	}
	return ghactions.New(cmd.Context())
}

// render serializes v in the requested format.
func render(v any, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}
}
