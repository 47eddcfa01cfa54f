package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

func NewNewBranchCommand(env *cliEnv) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "new_branch -b <branch>",
		Short: "Create a branch at the current commit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag(cmd, "branch", "-b <branch>"); err != nil {
				return err
			}
			return commands.NewBranch(env.context(cmd), branch)
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "The name of the new branch")
	return cmd
}
