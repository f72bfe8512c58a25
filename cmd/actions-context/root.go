// Package main provides the actions-context CLI application.
package main

import (
	"github.com/cicd-ai-toolkit/actions-context/pkg/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "actions-context",
	Short: "GitHub Actions invocation context",
	Long: `actions-context reads the ambient GitHub Actions environment
(GITHUB_* variables plus the JSON event payload) and prints it in a form
automation scripts can consume without re-parsing either source.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
