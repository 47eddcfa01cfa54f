package commands

// Tag is the main function for the 'tag' command. The tag is written even if
// hash names no stored commit; a warning is printed in that case.
func Tag(ctx Context, name, hash string) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	if err := repo.Tag(name, hash); err != nil {
		return err
	}
	ctx.printf("Tag %s created for commit %s\n", name, hash)

	if exists, err := repo.HasCommit(hash); err == nil && !exists {
		ctx.warnf("commit %s does not exist", hash)
	}
	return nil
}

// Tags is the main function for the 'tags' command.
func Tags(ctx Context) error {
	repo, err := ctx.open()
	if err != nil {
		return err
	}

	tags, err := repo.Tags()
	if err != nil {
		return err
	}
	for _, tag := range tags {
		ctx.printf("%s -> %s\n", tag.Name, tag.Hash)
	}
	return nil
}
