package cmdline

import "strings"

// validatePath rejects empty paths and paths containing characters that the
// host filesystem cannot store.
func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsAny(path, invalidPathChars) {
		return ErrInvalidPath
	}
	return nil
}
