// Package prompt asks the operator for input on the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive returns true if stdin is a terminal.
// It returns false for piped or redirected input.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// DirectoryPrompter asks for the directory to process.
type DirectoryPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewDirectoryPrompter creates a new DirectoryPrompter with the given reader and writer.
// Use os.Stdin and os.Stdout for normal operation, or buffers for testing.
func NewDirectoryPrompter(reader io.Reader, writer io.Writer) *DirectoryPrompter {
	return &DirectoryPrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// PromptForDirectory asks for a directory path and returns it with surrounding
// whitespace trimmed. An empty answer, or end of input, yields "" so the caller
// can fall back to the current working directory.
func (p *DirectoryPrompter) PromptForDirectory() (string, error) {
	fmt.Fprint(p.writer, "Enter the directory to process (default: current directory): ")

	dir, eof, err := p.readLine()
	if eof && dir == "" {
		// Keep the terminal tidy when the prompt is closed with Ctrl-D.
		fmt.Fprintln(p.writer)
	}
	return dir, err
}

// ReadDirectory reads the directory path like PromptForDirectory without
// printing the question, for input piped in from another program.
func (p *DirectoryPrompter) ReadDirectory() (string, error) {
	dir, _, err := p.readLine()
	return dir, err
}

func (p *DirectoryPrompter) readLine() (line string, eof bool, err error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(input), err == io.EOF, nil
}
