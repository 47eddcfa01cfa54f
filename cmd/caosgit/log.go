package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

func NewLogCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "List the commits of the current branch, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Log(env.context(cmd))
		},
	}
}
