// Package normalizer builds target filenames for iconrename.
package normalizer

import "strings"

// StripExtension removes the part of filename after its final dot.
// Leading dots do not start an extension, so ".svg" and "..svg" are returned unchanged.
func StripExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i <= 0 {
		return filename
	}
	if strings.TrimLeft(filename[:i], ".") == "" {
		return filename
	}
	return filename[:i]
}

// Normalize rewrites a filename into the naming convention by replacing its
// extension with targetSuffix.
//
// Examples with targetSuffix "-light.svg":
//   - "icon.svg" -> "icon-light.svg"
//   - "ICON.SVG" -> "ICON-light.svg"
//   - "a.b.svg" -> "a.b-light.svg"
func Normalize(filename string, targetSuffix string) string {
	return StripExtension(filename) + targetSuffix
}
