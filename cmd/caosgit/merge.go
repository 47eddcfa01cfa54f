package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

// NewMergeCommand creates the 'merge' command for the CLI.
func NewMergeCommand(env *cliEnv) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "merge -b <branch>",
		Short: "Record a merge of another branch.",
		Long: `Records a commit "Merge branch <branch>" on the current branch. The commit
has a single parent and snapshots the working tree as it is: files from the
merged branch are not applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag(cmd, "branch", "-b <branch>"); err != nil {
				return err
			}
			return commands.Merge(env.context(cmd), branch)
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "The branch to merge")
	_ = cmd.RegisterFlagCompletionFunc("branch", branchCompletions(env))
	return cmd
}
