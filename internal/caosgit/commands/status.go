package commands

// Status is the main function for the 'status' command. It prints one line
// per changed path, sorted by path, or "No changes." when the working tree
// matches the latest commit.
func Status(ctx Context) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	entries, err := repo.Status()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.printf("No changes.\n")
		return nil
	}
	for _, entry := range entries {
		ctx.printf("%s: %s\n", entry.Status, entry.Path)
	}
	return nil
}
