package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/output"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/shell"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/vfs"
)

// Layout constants
const (
	SidePanelWidth  = 36 // width of the process/memory column, borders included
	MaxHistory      = 100
	DefaultPollRate = 100 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Kernel   kernel.Options
	VFSPath  string
	Autoload bool

	// PollInterval is how often panels refresh while a command runs.
	// Zero disables polling; the display then updates when the command ends.
	PollInterval time.Duration
}

// commandDoneMsg reports the end of an asynchronous command.
type commandDoneMsg struct {
	line string
	quit bool
}

// pollMsg refreshes the display while a command runs.
type pollMsg struct{}

// clearStatusMsg clears the status bar.
type clearStatusMsg struct{}

// Model is the main application model
type Model struct {
	sh   *shell.Shell
	k    *kernel.Kernel
	term *transcript
	keys KeyMap

	viewport viewport.Model
	input    textinput.Model
	width    int
	height   int

	// Command execution
	running bool
	cancel  context.CancelFunc
	poll    time.Duration

	// Input history, oldest first. histIdx == len(history) means a fresh line.
	history []string
	histIdx int

	showHelp      bool
	statusMessage string
	quitting      bool
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	term := &transcript{}
	k := kernel.New(opts.Kernel)
	sh := shell.New(k, vfs.New(), output.New(term, output.GUI), shell.Options{
		VFSPath: opts.VFSPath,
		Logger:  logger.L,
	})
	sh.Banner()
	if opts.Autoload {
		if err := sh.LoadVFS(); err != nil {
			logger.Warn("vfs autoload failed", "error", err)
		}
	}

	in := textinput.New()
	in.Prompt = promptStyle.Render(shell.Prompt)
	in.Placeholder = "Escribe un comando (Ayuda para ver la lista)"
	in.CharLimit = 1024
	in.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent(term.String())

	return Model{
		sh:       sh,
		k:        k,
		term:     term,
		keys:     DefaultKeyMap(),
		viewport: vp,
		input:    in,
		poll:     opts.PollInterval,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close interrupts a running command.
func (m Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// runCommand executes line on the shell in a background command.
func (m *Model) runCommand(line string) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.term.Write([]byte("\n🔹 " + shell.Prompt + line + "\n"))
	m.refresh()

	sh := m.sh
	run := func() tea.Msg {
		defer cancel()
		quit := sh.Handle(ctx, line)
		return commandDoneMsg{line: line, quit: quit}
	}
	if m.poll <= 0 {
		return run
	}
	return tea.Batch(run, m.pollCmd())
}

func (m Model) pollCmd() tea.Cmd {
	return tea.Tick(m.poll, func(time.Time) tea.Msg { return pollMsg{} })
}

// refresh copies the transcript into the viewport and follows its tail.
func (m *Model) refresh() {
	m.viewport.SetContent(m.term.String())
	m.viewport.GotoBottom()
}

// pushHistory records a submitted line.
func (m *Model) pushHistory(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		if len(m.history) > MaxHistory {
			m.history = m.history[1:]
		}
	}
	m.histIdx = len(m.history)
}

// resize recomputes component sizes from the window size.
func (m *Model) resize() {
	// header + toolbar + input + status, plus the pane border
	contentHeight := max(m.height-6, 3)
	m.viewport.Width = max(m.width-SidePanelWidth-4, 20)
	m.viewport.Height = contentHeight
	m.input.Width = max(m.width-len(shell.Prompt)-4, 10)
	m.viewport.GotoBottom()
}
