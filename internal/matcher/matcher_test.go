package matcher

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"iconrename/internal/config"
)

// randomizeCase applies random casing to a string
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

func TestCaseInsensitiveExtensionMatching(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	cfg := config.DefaultConfiguration()

	properties.Property("Match is eligible regardless of extension casing", prop.ForAll(
		func(base string, casingSeed int64) bool {
			filename := base + randomizeCase(".svg", casingSeed)
			result := Match(filename, cfg)
			if !result.Eligible {
				t.Logf("Expected %q to be eligible", filename)
				return false
			}
			return true
		},
		genNonEmptyAlphaString(),
		gen.Int64(),
	))

	properties.Property("Files without the extension are never eligible", prop.ForAll(
		func(base string, ext string) bool {
			filename := base + "." + ext
			if strings.EqualFold(ext, "svg") {
				return true
			}
			result := Match(filename, cfg)
			return !result.Eligible && !result.Preserved
		},
		genNonEmptyAlphaString(),
		genNonEmptyAlphaString(),
	))

	properties.TestingRun(t)
}

func TestPreservedPatternsMatchAnywhere(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	cfg := config.DefaultConfiguration()

	properties.Property("A protected pattern anywhere in the name preserves the file", prop.ForAll(
		func(before, after, pattern string) bool {
			filename := before + pattern + after + ".svg"
			result := Match(filename, cfg)
			return result.Eligible && result.Preserved && strings.Contains(filename, result.Pattern)
		},
		genNonEmptyAlphaString(),
		gen.AlphaString(),
		gen.OneConstOf("-light.svg", "-fill.svg"),
	))

	properties.TestingRun(t)
}

func TestMatch(t *testing.T) {
	cfg := config.DefaultConfiguration()

	tests := []struct {
		filename  string
		eligible  bool
		preserved bool
		pattern   string
	}{
		{"icon.svg", true, false, ""},
		{"ICON.SVG", true, false, ""},
		{"icon.Svg", true, false, ""},
		{"arrow-light.svg", true, true, "-light.svg"},
		{"badge-fill.svg", true, true, "-fill.svg"},
		{"arrow-light.svg.bak.svg", true, true, "-light.svg"},
		{"both-light.svg-fill.svg", true, true, "-light.svg"},
		{"arrow-LIGHT.svg", true, false, ""},
		{"arrow-light.SVG", true, false, ""},
		{"readme.txt", false, false, ""},
		{"svg", false, false, ""},
		{"icon.svgz", false, false, ""},
		{"icon-light.svg.txt", false, false, ""},
		{".svg", true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			result := Match(tt.filename, cfg)
			if result.Eligible != tt.eligible {
				t.Errorf("Eligible: expected %v, got %v", tt.eligible, result.Eligible)
			}
			if result.Preserved != tt.preserved {
				t.Errorf("Preserved: expected %v, got %v", tt.preserved, result.Preserved)
			}
			if result.Pattern != tt.pattern {
				t.Errorf("Pattern: expected %q, got %q", tt.pattern, result.Pattern)
			}
		})
	}
}

func TestMatchCustomConvention(t *testing.T) {
	cfg := config.DefaultConfiguration()
	cfg.Extension = ".png"
	cfg.PreservedPatterns = []string{"@2x.png"}

	if !Match("logo.PNG", cfg).Eligible {
		t.Error("expected logo.PNG to be eligible for .png extension")
	}
	if Match("logo.svg", cfg).Eligible {
		t.Error("expected logo.svg to be ineligible for .png extension")
	}
	if r := Match("logo@2x.png", cfg); !r.Preserved || r.Pattern != "@2x.png" {
		t.Errorf("expected logo@2x.png to be preserved, got %+v", r)
	}
}
