// Package classifier decides what iconrename does with each file.
package classifier

import (
	"iconrename/internal/config"
	"iconrename/internal/matcher"
	"iconrename/internal/normalizer"
)

// ClassificationType identifies the action for a file.
type ClassificationType string

const (
	// Ignored files do not carry the configured extension and are skipped silently.
	Ignored ClassificationType = "IGNORED"
	// Preserved files already follow the naming convention.
	Preserved ClassificationType = "PRESERVED"
	// Rename files should be renamed to TargetName.
	Rename ClassificationType = "RENAME"
)

// Classification represents the result of classifying a file.
type Classification struct {
	Type       ClassificationType
	Pattern    string // Preserved pattern that matched (Preserved only)
	TargetName string // Candidate new filename (Rename only)
}

// Classify determines what should happen to filename under the naming convention in cfg.
func Classify(filename string, cfg *config.Configuration) *Classification {
	return ClassifyWithMatchResult(filename, matcher.Match(filename, cfg), cfg)
}

// ClassifyWithMatchResult classifies a file given an existing match result.
func ClassifyWithMatchResult(filename string, match *matcher.MatchResult, cfg *config.Configuration) *Classification {
	if !match.Eligible {
		return &Classification{Type: Ignored}
	}
	if match.Preserved {
		return &Classification{
			Type:    Preserved,
			Pattern: match.Pattern,
		}
	}
	return &Classification{
		Type:       Rename,
		TargetName: normalizer.Normalize(filename, cfg.TargetSuffix()),
	}
}

// IsIgnored returns true if the file is not subject to the naming convention.
func (c *Classification) IsIgnored() bool {
	return c.Type == Ignored
}

// IsPreserved returns true if the file already follows the naming convention.
func (c *Classification) IsPreserved() bool {
	return c.Type == Preserved
}

// NeedsRename returns true if the file should be renamed.
func (c *Classification) NeedsRename() bool {
	return c.Type == Rename
}
