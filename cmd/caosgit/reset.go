package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

// NewResetCommand creates the 'reset' command for the CLI.
func NewResetCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <commit_hash>",
		Short: "Move the current branch to another commit.",
		Long: `Moves the current branch to the given commit, identified by its full hash
or a unique prefix of at least four characters. Commits left unreachable are
kept in the object store.`,
		Args:              requireArgs("commit_hash"),
		ValidArgsFunction: commitCompletions(env),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Reset(env.context(cmd), args[0])
		},
	}
}
