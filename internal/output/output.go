// Package output writes the console messages of iconrename.
// Informational lines go to Writer; warnings and errors go to ErrWriter.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// RuleWidth is the width of the separator line printed around a run.
const RuleWidth = 50

// progressClearWidth is how many columns are blanked to erase the progress line.
const progressClearWidth = 60

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Show skip traces and the run summary
	Writer    io.Writer // Defaults to os.Stdout
	ErrWriter io.Writer // Defaults to os.Stderr
	IsTTY     bool      // Writer is a terminal; enables progress and styling
	Color     bool      // Style level prefixes; only honored when IsTTY is set
}

// Output prints messages and the transient progress line.
type Output struct {
	config Config
	styles styles

	mu       sync.Mutex
	progress progress
}

type progress struct {
	active bool
	total  int
}

type styles struct {
	enabled bool
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	faint   lipgloss.Style
}

// New returns an Output for config, filling in the standard streams when unset.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{config: config, styles: newStyles(config)}
}

func newStyles(config Config) styles {
	if !config.IsTTY || !config.Color {
		return styles{}
	}
	r := lipgloss.NewRenderer(config.Writer)
	return styles{
		enabled: true,
		success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		faint:   r.NewStyle().Faint(true),
	}
}

// DefaultConfig detects whether stdout is a terminal.
// Color is enabled on terminals unless NO_COLOR is set or TERM is "dumb".
func DefaultConfig() Config {
	return Config{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
		Color:     os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb",
	}
}

func (o *Output) render(style lipgloss.Style, s string) string {
	if !o.styles.enabled {
		return s
	}
	return style.Render(s)
}

// emit clears any progress line and writes one message line to w.
// A non-empty label is styled and separated from the message by a space.
func (o *Output) emit(w io.Writer, label string, style lipgloss.Style, format string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")

	o.mu.Lock()
	defer o.mu.Unlock()
	o.clearLocked()

	if label != "" {
		msg = o.render(style, label) + " " + msg
	}
	fmt.Fprintln(w, msg)
}

// Verbose prints a dimmed trace line when verbose mode is on.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	o.emit(o.config.Writer, "", lipgloss.Style{}, "%s", o.render(o.styles.faint, fmt.Sprintf(format, args...)))
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	o.emit(o.config.Writer, "", lipgloss.Style{}, format, args...)
}

// Success prints an informational message with a highlighted label.
func (o *Output) Success(label string, format string, args ...interface{}) {
	o.emit(o.config.Writer, label, o.styles.success, format, args...)
}

// Warn prints "Warning: <msg>" to ErrWriter.
func (o *Output) Warn(format string, args ...interface{}) {
	o.emit(o.config.ErrWriter, "Warning:", o.styles.warning, format, args...)
}

// Error prints "Error: <msg>" to ErrWriter.
func (o *Output) Error(format string, args ...interface{}) {
	o.emit(o.config.ErrWriter, "Error:", o.styles.failure, format, args...)
}

// Rule prints a separator line.
func (o *Output) Rule() {
	o.emit(o.config.Writer, "", lipgloss.Style{}, "%s", strings.Repeat("-", RuleWidth))
}

// showsProgress reports whether the progress line is drawn at all.
// Verbose output would interleave with it, so it is off in that mode.
func (o *Output) showsProgress() bool {
	return o.config.IsTTY && !o.config.Verbose
}

// clearLocked erases the progress line. The caller holds o.mu.
func (o *Output) clearLocked() {
	if o.progress.active && o.config.IsTTY {
		fmt.Fprint(o.config.Writer, "\r"+strings.Repeat(" ", progressClearWidth)+"\r")
	}
}

// StartProgress begins a progress session over total files.
func (o *Output) StartProgress(total int) {
	if !o.showsProgress() {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress = progress{active: true, total: total}
}

// UpdateProgress redraws the progress line in place as "Checking file N/M...".
// A non-empty message replaces "Checking file".
func (o *Output) UpdateProgress(current int, message string) {
	if !o.showsProgress() {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.progress.active {
		return
	}
	if message == "" {
		message = "Checking file"
	}
	fmt.Fprintf(o.config.Writer, "\r%s %d/%d...", message, current, o.progress.total)
}

// EndProgress erases the progress line.
func (o *Output) EndProgress() {
	if !o.showsProgress() {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.progress.active {
		return
	}
	o.clearLocked()
	o.progress = progress{}
}

// IsVerbose returns whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}

// IsTTY returns whether the output is a terminal.
func (o *Output) IsTTY() bool {
	return o.config.IsTTY
}
