package config

import (
	"os"
	"strings"
)

// ResolveDirectory returns the directory to process from user input.
// Surrounding whitespace is trimmed; blank input falls back to the current working directory.
func ResolveDirectory(input string) (string, error) {
	dir := strings.TrimSpace(input)
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// ValidateDirectory checks that dir exists and is a directory.
// Symlinks to directories are accepted.
func ValidateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &ConfigError{
			Type: DirectoryNotFound,
			Path: dir,
			Err:  err,
		}
	}
	if !info.IsDir() {
		return &ConfigError{
			Type:    DirectoryNotFound,
			Path:    dir,
			Message: "path is not a directory",
		}
	}
	return nil
}

// Warnings reports settings that are valid but probably not what the user meant.
func (c *Configuration) Warnings() []string {
	var warnings []string

	target := c.TargetSuffix()
	protected := false
	for _, pattern := range c.PreservedPatterns {
		if strings.Contains(target, pattern) {
			protected = true
		}
		if !strings.HasSuffix(strings.ToLower(pattern), strings.ToLower(c.Extension)) {
			warnings = append(warnings, "preserved pattern "+quote(pattern)+" does not end with extension "+quote(c.Extension))
		}
	}
	if !protected {
		warnings = append(warnings, "renamed files ending in "+quote(target)+" are not covered by any preserved pattern; a second run will rename them again")
	}

	return warnings
}

func quote(s string) string {
	return "\"" + s + "\""
}
