package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

// NewJumpCommand creates the 'jump' command for the CLI.
func NewJumpCommand(env *cliEnv) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "jump -b <branch>",
		Short: "Make another branch the current one.",
		Long: `Points HEAD at another branch. Unlike a conventional checkout, files in
the working tree are left exactly as they are, so the next status compares
them against the new branch's latest commit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag(cmd, "branch", "-b <branch>"); err != nil {
				return err
			}
			return commands.Jump(env.context(cmd), branch)
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "The branch to switch to")
	_ = cmd.RegisterFlagCompletionFunc("branch", branchCompletions(env))
	return cmd
}
