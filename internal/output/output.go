// Package output renders shell messages for a terminal console or for the
// explorer's text pane.
package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

// Mode selects how messages are decorated.
type Mode int

const (
	// Console writes bracketed tags, coloured when the sink is a terminal.
	Console Mode = iota

	// GUI writes glyph-decorated plain text with every escape sequence removed.
	GUI
)

// Level classifies a message.
type Level int

const (
	LevelOK Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) tag() string {
	switch l {
	case LevelOK:
		return "[OK]"
	case LevelInfo:
		return "[INFO]"
	case LevelWarn:
		return "[WARNING]"
	default:
		return "[ERROR]"
	}
}

func (l Level) glyph() string {
	switch l {
	case LevelOK:
		return "✅"
	case LevelInfo:
		return "ℹ️"
	case LevelWarn:
		return "⚠️"
	default:
		return "❌"
	}
}

// Writer formats messages onto an io.Writer. It is safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	w    io.Writer
	mode Mode

	tags    map[Level]lipgloss.Style
	heading lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

// New returns a Writer for w. In Console mode colours are only emitted when
// w is a terminal.
func New(w io.Writer, mode Mode) *Writer {
	r := lipgloss.NewRenderer(w)
	return &Writer{
		w:    w,
		mode: mode,
		tags: map[Level]lipgloss.Style{
			LevelOK:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
			LevelInfo:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D7FF")),
			LevelWarn:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500")),
			LevelError: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4B4B")),
		},
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF77AA")),
		border:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
	}
}

// Mode returns the decoration mode.
func (o *Writer) Mode() Mode { return o.mode }

// Message writes one line prefixed with the level's tag.
func (o *Writer) Message(level Level, format string, args ...any) {
	o.message("", level, format, args...)
}

// Detail writes a tagged line indented under the previous message.
func (o *Writer) Detail(level Level, format string, args ...any) {
	o.message("   ", level, format, args...)
}

func (o *Writer) message(indent string, level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	var prefix string
	if o.mode == GUI {
		prefix = level.glyph()
	} else {
		prefix = o.tags[level].Render(level.tag())
	}
	o.write(indent + prefix + " " + msg + "\n")
}

// OK writes a success message.
func (o *Writer) OK(format string, args ...any) { o.Message(LevelOK, format, args...) }

// Info writes an informational message.
func (o *Writer) Info(format string, args ...any) { o.Message(LevelInfo, format, args...) }

// Warn writes a warning.
func (o *Writer) Warn(format string, args ...any) { o.Message(LevelWarn, format, args...) }

// Error writes an error message.
func (o *Writer) Error(format string, args ...any) { o.Message(LevelError, format, args...) }

// Printf writes undecorated text.
func (o *Writer) Printf(format string, args ...any) {
	o.write(fmt.Sprintf(format, args...))
}

// Heading writes a highlighted section title on its own line.
func (o *Writer) Heading(title string) {
	o.write(o.heading.Render(title) + "\n")
}

// Table writes a bordered table.
func (o *Writer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(o.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return o.header
			}
			return o.cell
		})
	o.write(t.String() + "\n")
}

func (o *Writer) write(s string) {
	if o.mode == GUI {
		s = ansi.Strip(s)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	io.WriteString(o.w, s)
}

// Lines splits rendered output into lines without the trailing newline.
func Lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
