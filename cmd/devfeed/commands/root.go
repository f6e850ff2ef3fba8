// Package commands implements the devfeed CLI
package commands

import (
	"github.com/spf13/cobra"
)

// outputFormat controls output format (text, json)
var outputFormat string

// NewRootCmd builds the command tree
// every invocation gets fresh flag state so tests can run commands back to back
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "devfeed",
		Short: "Developer activity across GitHub, Stack Overflow and dev.to",
		Long: `devfeed aggregates a developer's public GitHub repositories, Stack Overflow
questions and dev.to posts into one activity timeline.

Accounts are read from GITHUB_USERNAME, STACKOVERFLOW_USER_ID and
DEVTO_USERNAME (MEDIUM_USERNAME is accepted as a fallback).`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(
		&outputFormat, "format", "text",
		"Output format: text, json",
	)

	root.AddCommand(
		newServeCmd(),
		newActivityCmd(),
		newReposCmd(),
		newQuestionsCmd(),
		newPostsCmd(),
		newCacheKeyCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
