package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

func NewInitCommand(env *cliEnv) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init --path <directory>",
		Short: "Create an empty repository.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag(cmd, "path", "--path <directory>"); err != nil {
				return err
			}
			return commands.Init(env.context(cmd), path)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "The directory to initialize (created if missing)")
	return cmd
}
