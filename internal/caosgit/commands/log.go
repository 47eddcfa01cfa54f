package commands

// Log is the main function for the 'log' command. It prints "<hash> <message>"
// for each commit of the current branch, newest first.
func Log(ctx Context) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	entries, err := repo.Log()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		ctx.printf("%s %s\n", entry.Hash, entry.Message)
	}
	return nil
}
