package main

import (
	"fmt"
	"os"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/lib"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		exitError(err)
	}

	rootCmd := newRootCmd(&cliEnv{fs: afero.NewOsFs(), cwd: cwd})
	if err := rootCmd.Execute(); err != nil {
		exitError(err)
	}
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newRootCmd(env *cliEnv) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "caosgit",
		Short:         "A minimal local version-control tool",
		SilenceErrors: true,
		SilenceUsage:  true,
		// Running without a command is an error, unlike cobra's default of
		// printing help.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q. Use --help for instructions", args[0])
			}
			return fmt.Errorf("%w: no command provided. Use --help for instructions", lib.ErrMissingArgument)
		},
		Args: cobra.ArbitraryArgs,
	}

	// Add commands
	rootCmd.AddCommand(NewInitCommand(env))
	rootCmd.AddCommand(NewStatusCommand(env))
	rootCmd.AddCommand(NewCommitCommand(env))
	rootCmd.AddCommand(NewNewBranchCommand(env))
	rootCmd.AddCommand(NewJumpCommand(env))
	rootCmd.AddCommand(NewMergeCommand(env))
	rootCmd.AddCommand(NewLogCommand(env))
	rootCmd.AddCommand(NewRevertCommand(env))
	rootCmd.AddCommand(NewResetCommand(env))
	rootCmd.AddCommand(NewTagCommand(env))
	rootCmd.AddCommand(NewTagsCommand(env))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}
