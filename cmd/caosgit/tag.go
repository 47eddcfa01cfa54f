package main

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/spf13/cobra"
)

// NewTagCommand creates the 'tag' command for the CLI.
func NewTagCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <tag_name> <commit_hash>",
		Short: "Create or move a tag.",
		Args:  requireArgs("tag_name", "commit_hash"),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			// Only the second argument is a commit.
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return commitCompletions(env)(cmd, nil, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Tag(env.context(cmd), args[0], args[1])
		},
	}
}

func NewTagsCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List all tags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Tags(env.context(cmd))
		},
	}
}
