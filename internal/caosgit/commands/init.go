package commands

import (
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/lib"
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/repository"
)

// Init is the main function for the 'init' command.
func Init(ctx Context, path string) error {
	repo, err := repository.Init(ctx.Fs, ctx.resolve(path))
	if err != nil {
		return err
	}
	ctx.printf("Initialized empty caosgit repository in %s\n", lib.GetMetaDir(repo.Root()))
	return nil
}
