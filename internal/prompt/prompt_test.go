package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPromptForDirectory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain path", "/home/user/icons\n", "/home/user/icons"},
		{"trims whitespace", "   ./icons \t\n", "./icons"},
		{"blank line", "\n", ""},
		{"whitespace only", "    \n", ""},
		{"no trailing newline", "/srv/icons", "/srv/icons"},
		{"end of input", "", ""},
		{"path with spaces", "  /tmp/my icons  \n", "/tmp/my icons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &bytes.Buffer{}
			prompter := NewDirectoryPrompter(strings.NewReader(tt.input), output)

			dir, err := prompter.PromptForDirectory()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dir != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, dir)
			}
			if !strings.Contains(output.String(), "Enter the directory to process") {
				t.Errorf("prompt not shown, got: %q", output.String())
			}
		})
	}
}

func TestPromptReadsOneLinePerCall(t *testing.T) {
	prompter := NewDirectoryPrompter(strings.NewReader("first\nsecond\n"), &bytes.Buffer{})

	first, _ := prompter.PromptForDirectory()
	second, _ := prompter.PromptForDirectory()

	if first != "first" || second != "second" {
		t.Errorf("expected first/second, got %q/%q", first, second)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestPromptReadError(t *testing.T) {
	prompter := NewDirectoryPrompter(failingReader{}, &bytes.Buffer{})

	_, err := prompter.PromptForDirectory()
	if err == nil || !strings.Contains(err.Error(), "terminal gone") {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}

func TestReadDirectoryPrintsNothing(t *testing.T) {
	output := &bytes.Buffer{}
	prompter := NewDirectoryPrompter(strings.NewReader("  /srv/icons\n"), output)

	dir, err := prompter.ReadDirectory()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/srv/icons" {
		t.Errorf("expected /srv/icons, got %q", dir)
	}
	if output.Len() > 0 {
		t.Errorf("expected no prompt text, got %q", output.String())
	}
}

func TestReadDirectoryEndOfInput(t *testing.T) {
	prompter := NewDirectoryPrompter(strings.NewReader(""), &bytes.Buffer{})

	dir, err := prompter.ReadDirectory()
	if err != nil || dir != "" {
		t.Errorf("expected empty answer at end of input, got %q, %v", dir, err)
	}
}
