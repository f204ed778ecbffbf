// Package matcher handles filename matching for iconrename.
package matcher

import (
	"strings"

	"iconrename/internal/config"
)

// MatchResult represents the result of matching a filename against the naming convention.
type MatchResult struct {
	Eligible  bool   // Filename ends with the configured extension (case-insensitive)
	Preserved bool   // Filename contains one of the preserved patterns
	Pattern   string // The first preserved pattern found, if any
}

// HasExtension reports whether filename ends with ext, ignoring case.
func HasExtension(filename, ext string) bool {
	if len(filename) < len(ext) {
		return false
	}
	return strings.EqualFold(filename[len(filename)-len(ext):], ext)
}

// PreservedPattern returns the first pattern contained anywhere in filename.
// The comparison is case-sensitive.
func PreservedPattern(filename string, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		if strings.Contains(filename, pattern) {
			return pattern, true
		}
	}
	return "", false
}

// Match evaluates a filename against the extension and preserved patterns in cfg.
// Preservation is only checked for eligible files.
func Match(filename string, cfg *config.Configuration) *MatchResult {
	if !HasExtension(filename, cfg.Extension) {
		return &MatchResult{Eligible: false}
	}

	pattern, ok := PreservedPattern(filename, cfg.PreservedPatterns)
	return &MatchResult{
		Eligible:  true,
		Preserved: ok,
		Pattern:   pattern,
	}
}
