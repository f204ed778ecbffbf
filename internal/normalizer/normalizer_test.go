package normalizer

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomizeCase applies random casing to a string based on a seed
func randomizeCase(s string, seed int64) string {
	runes := []rune(s)
	for i := range runes {
		if (seed>>uint(i%64))&1 == 1 {
			runes[i] = unicode.ToUpper(runes[i])
		} else {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	return string(runes)
}

// genNonEmptyAlphaString generates non-empty alphabetic strings
func genNonEmptyAlphaString() gopter.Gen {
	return gen.AlphaString().SuchThat(func(s string) bool {
		return len(s) > 0
	})
}

func TestNormalizationPreservesBaseName(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Base name is kept exactly and the extension is replaced", prop.ForAll(
		func(base string, casingSeed int64) bool {
			filename := base + randomizeCase(".svg", casingSeed)
			result := Normalize(filename, "-light.svg")
			expected := base + "-light.svg"
			if result != expected {
				t.Logf("Normalize(%q) = %q, expected %q", filename, result, expected)
				return false
			}
			return true
		},
		genNonEmptyAlphaString(),
		gen.Int64(),
	))

	properties.Property("Normalized names always end with the target suffix", prop.ForAll(
		func(parts []string) bool {
			filename := strings.Join(parts, ".") + ".svg"
			return strings.HasSuffix(Normalize(filename, "-light.svg"), "-light.svg")
		},
		gen.SliceOfN(3, genNonEmptyAlphaString()),
	))

	properties.TestingRun(t)
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"icon.svg", "icon"},
		{"ICON.SVG", "ICON"},
		{"a.b.svg", "a.b"},
		{"archive.tar.svg", "archive.tar"},
		{"noext", "noext"},
		{".svg", ".svg"},
		{"..svg", "..svg"},
		{".hidden.svg", ".hidden"},
		{"trailing.", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := StripExtension(tt.filename); got != tt.expected {
				t.Errorf("StripExtension(%q) = %q, expected %q", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		filename string
		suffix   string
		expected string
	}{
		{"icon.svg", "-light.svg", "icon-light.svg"},
		{"Icon.SVG", "-light.svg", "Icon-light.svg"},
		{"arrow.right.svg", "-light.svg", "arrow.right-light.svg"},
		{".svg", "-light.svg", ".svg-light.svg"},
		{"logo.svg", "-thin.svg", "logo-thin.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Normalize(tt.filename, tt.suffix); got != tt.expected {
				t.Errorf("Normalize(%q, %q) = %q, expected %q", tt.filename, tt.suffix, got, tt.expected)
			}
		})
	}
}
