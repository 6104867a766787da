package main

import tea "github.com/charmbracelet/bubbletea"

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model   Model
	lastCmd tea.Cmd
}

// NewTestHelper creates a test helper whose kernel runs without delay and
// whose VFS dump lives at vfsPath
func NewTestHelper(vfsPath string) *TestHelper {
	return NewTestHelperWithOptions(Options{VFSPath: vfsPath})
}

// NewTestHelperWithOptions creates a test helper from explicit options
func NewTestHelperWithOptions(opts Options) *TestHelper {
	opts.PollInterval = 0
	return &TestHelper{model: NewModel(opts)}
}

func (h *TestHelper) update(msg tea.Msg) *TestHelper {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	h.lastCmd = cmd
	return h
}

// SendKey simulates a key press but does not execute async commands
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	return h.update(tea.KeyMsg{Type: keyType})
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	return h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// TypeText types s into the input one rune at a time
func (h *TestHelper) TypeText(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	return h.update(tea.WindowSizeMsg{Width: width, Height: height})
}

// Send delivers an arbitrary message
func (h *TestHelper) Send(msg tea.Msg) *TestHelper {
	return h.update(msg)
}

// RunCommand executes the command returned by the last key press that
// started a shell command, and feeds its result back to the model
func (h *TestHelper) RunCommand() *TestHelper {
	if h.lastCmd == nil {
		return h
	}
	msg := h.lastCmd()
	return h.update(msg)
}

// Submit types line, presses Enter and runs the resulting command
func (h *TestHelper) Submit(line string) *TestHelper {
	return h.TypeText(line).SendKey(tea.KeyEnter).RunCommand()
}

// PressAndRun presses a toolbar key and runs the resulting command
func (h *TestHelper) PressAndRun(keyType tea.KeyType) *TestHelper {
	return h.SendKey(keyType).RunCommand()
}

// LastCmd returns the command produced by the last message
func (h *TestHelper) LastCmd() tea.Cmd {
	return h.lastCmd
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// GetTranscript returns everything the shell has written
func (h *TestHelper) GetTranscript() string {
	return h.model.term.String()
}
