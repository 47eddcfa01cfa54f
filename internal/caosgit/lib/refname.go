package lib

import (
	"fmt"
	"strings"
)

// validateRefName checks that name can be stored as a single flat file under
// refs/.
func validateRefName(name string) error {
	// the name cannot:
	// - be empty
	// - be HEAD
	// - start with a dot
	// - end with ".lock"
	if name == "" || name == HeadFileName || name[0] == '.' || strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("%w: %q", ErrInvalidRefName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidRefName, name)
	}
	for _, c := range name {
		if c < 32 || c == 127 {
			return fmt.Errorf("%w: %q", ErrInvalidRefName, name)
		}
		switch c {
		case '/', '\\', ' ', '*', '?', '[', ':', '^', '~':
			return fmt.Errorf("%w: %q", ErrInvalidRefName, name)
		}
	}
	return nil
}

// ValidateBranchName reports whether name is usable as a branch. Branch names
// may not start with TagPrefix, which would collide with the tag namespace.
func ValidateBranchName(name string) error {
	if err := validateRefName(name); err != nil {
		return err
	}
	if strings.HasPrefix(name, TagPrefix) {
		return fmt.Errorf("%w: %q uses the reserved %q prefix", ErrInvalidRefName, name, TagPrefix)
	}
	return nil
}

// ValidateTagName reports whether name is usable as a tag.
func ValidateTagName(name string) error {
	return validateRefName(name)
}
