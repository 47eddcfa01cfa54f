package main

import (
	"fmt"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/commands"
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/lib"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// cliEnv is the filesystem and working directory the commands run against.
type cliEnv struct {
	fs  afero.Fs
	cwd string
}

func (e *cliEnv) context(cmd *cobra.Command) commands.Context {
	return commands.Context{
		Fs:  e.fs,
		Dir: e.cwd,
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}

// requireArgs is like cobra.MinimumNArgs but reports ErrMissingArgument,
// naming the first missing argument.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf("%w: %s", lib.ErrMissingArgument, names[len(args)])
		}
		if len(args) > len(names) {
			return fmt.Errorf("accepts %d arg(s), received %d", len(names), len(args))
		}
		return nil
	}
}

// requireFlag reports ErrMissingArgument if the named flag was not given on
// the command line. An explicitly empty value counts as given.
func requireFlag(cmd *cobra.Command, name, usage string) error {
	if !cmd.Flags().Changed(name) {
		return fmt.Errorf("%w: %s", lib.ErrMissingArgument, usage)
	}
	return nil
}
