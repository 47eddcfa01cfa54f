package commands

// Commit is the main function for the 'commit' command.
func Commit(ctx Context, message string) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	hash, err := repo.Commit(message)
	if err != nil {
		return err
	}
	ctx.printf("Committed as %s with message: %s\n", hash, message)
	return nil
}

// Revert is the main function for the 'revert' command. It records a marker
// commit; file contents are not rolled back.
func Revert(ctx Context, hash string) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	if _, err := repo.Revert(hash); err != nil {
		return err
	}
	ctx.printf("Reverted commit %s\n", hash)
	return nil
}

// Reset is the main function for the 'reset' command.
func Reset(ctx Context, ident string) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	hash, err := repo.Reset(ident)
	if err != nil {
		return err
	}
	ctx.printf("Reset current branch to %s\n", hash)
	return nil
}
