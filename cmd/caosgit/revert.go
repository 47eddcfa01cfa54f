package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

// NewRevertCommand creates the 'revert' command for the CLI.
func NewRevertCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "revert <commit_hash>",
		Short: "Record that a commit was reverted.",
		Long: `Records a commit "Revert commit <commit_hash>" on the current branch.
The changes made by that commit are not undone in the working tree.`,
		Args:              requireArgs("commit_hash"),
		ValidArgsFunction: commitCompletions(env),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Revert(env.context(cmd), args[0])
		},
	}
}
