package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

func NewCommitCommand(env *cliEnv) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit -m <message>",
		Short: "Record a snapshot of the whole working tree.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag(cmd, "message", "-m <message>"); err != nil {
				return err
			}
			return commands.Commit(env.context(cmd), message)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "A message to associate with the commit")
	return cmd
}
