package commands

// NewBranch is the main function for the 'new_branch' command.
func NewBranch(ctx Context, name string) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	if _, err := repo.NewBranch(name); err != nil {
		return err
	}
	ctx.printf("New branch created: %s\n", name)
	return nil
}

// Jump is the main function for the 'jump' command. Only HEAD moves; files
// in the working tree stay as they are.
func Jump(ctx Context, name string) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	if err := repo.Jump(name); err != nil {
		return err
	}
	ctx.printf("Switched to branch %s\n", name)
	return nil
}

// Merge is the main function for the 'merge' command.
func Merge(ctx Context, name string) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	result, err := repo.Merge(name)
	if err != nil {
		return err
	}
	if result.NothingToMerge {
		ctx.printf("Nothing to merge.\n")
		return nil
	}
	ctx.printf("Merged branch %s into %s\n", name, result.Into)
	return nil
}
