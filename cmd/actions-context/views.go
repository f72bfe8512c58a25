// Package main provides the actions-context CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	repoFormat  string
	issueFormat string
)

// repoCmd prints the derived repository view.
var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Print the repository owner and name",
	Long: `Derive the repository identity from GITHUB_REPOSITORY or, failing
that, from the repository object in the event payload. Exits non-zero when
neither source is available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext(cmd)
		if err != nil {
			return err
		}
		repo, err := ctx.Repo()
		if err != nil {
			return err
		}
		out, err := render(repo, repoFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// issueCmd prints the derived issue / pull request view.
var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Print the issue or pull request the event refers to",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext(cmd)
		if err != nil {
			return err
		}
		issue, err := ctx.Issue()
		if err != nil {
			return err
		}
		out, err := render(issue, issueFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	repoCmd.Flags().StringVar(&repoFormat, "format", "json", "output format (json|yaml)")
	issueCmd.Flags().StringVar(&issueFormat, "format", "json", "output format (json|yaml)")
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(issueCmd)
}
