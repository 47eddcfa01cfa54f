package main

import (
	"fmt"
	"strings"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/repository"
	"github.com/spf13/cobra"
)

type completionFunc = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

// branchCompletions provides dynamic tab completion for branch names.
func branchCompletions(env *cliEnv) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		repo, err := repository.Open(env.fs, env.cwd)
		if err != nil {
			// Don't return an error, just fail to complete.
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		branches, err := repo.Branches()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var suggestions []string
		for _, branch := range branches {
			if strings.HasPrefix(branch, toComplete) {
				suggestions = append(suggestions, branch)
			}
		}
		return suggestions, cobra.ShellCompDirectiveNoFileComp
	}
}

// commitCompletions suggests the commits of the current branch, newest first,
// with their message as the description.
func commitCompletions(env *cliEnv) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		// This completion function is for the first argument only.
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		repo, err := repository.Open(env.fs, env.cwd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		entries, err := repo.Log()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var suggestions []string
		for _, entry := range entries {
			if strings.HasPrefix(entry.Hash, toComplete) {
				suggestions = append(suggestions, fmt.Sprintf("%s\t%s", entry.Hash, entry.Message))
			}
		}
		return suggestions, cobra.ShellCompDirectiveNoFileComp
	}
}
