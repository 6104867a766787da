package main

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
)

// statusTTL is how long a status message stays visible.
const statusTTL = 3 * time.Second

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pollMsg:
		if !m.running {
			return m, nil
		}
		m.refresh()
		return m, m.pollCmd()

	case commandDoneMsg:
		m.running = false
		m.cancel = nil
		m.refresh()
		logger.Debug("command finished", "line", msg.line, "quit", msg.quit)
		if msg.quit || m.quitting {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If help is showing, any of these keys closes it
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Overlay) || key.Matches(msg, m.keys.Submit) {
			m.showHelp = false
			return m, nil
		}
		if !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.running {
			// Let the command observe cancellation before exiting.
			m.cancel()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Esc):
		if m.running {
			m.cancel()
			return m.setStatus("⏹ Interrumpiendo...")
		}
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.WriteAll(m.term.String()); err != nil {
			logger.Warn("clipboard write failed", "error", err)
			return m.setStatus("❌ No se pudo copiar al portapapeles")
		}
		return m.setStatus("📋 Terminal copiado al portapapeles")

	case key.Matches(msg, m.keys.Clear):
		m.term.Reset()
		m.refresh()
		return m.setStatus("🧹 Terminal limpiado")

	case key.Matches(msg, m.keys.Overlay) && m.input.Value() == "":
		m.showHelp = true
		return m, nil
	}

	if m.running {
		// One command at a time; typing ahead is still allowed.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if line, status, ok := m.toolbarCommand(msg); ok {
		return m.submit(line, status)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if line == "" {
			return m, nil
		}
		m.pushHistory(line)
		return m.submit(line, "")

	case key.Matches(msg, m.keys.HistPrev):
		if m.histIdx > 0 {
			m.histIdx--
			m.input.SetValue(m.history[m.histIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.HistNext):
		if m.histIdx < len(m.history) {
			m.histIdx++
		}
		if m.histIdx == len(m.history) {
			m.input.Reset()
		} else {
			m.input.SetValue(m.history[m.histIdx])
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// toolbarCommand maps a toolbar key to its command line and status text.
func (m Model) toolbarCommand(msg tea.KeyMsg) (line, status string, ok bool) {
	switch {
	case key.Matches(msg, m.keys.Help):
		return "Ayuda", "📖 Mostrando ayuda", true
	case key.Matches(msg, m.keys.Procs):
		return "ListarProcesos", "⚡ Listando procesos", true
	case key.Matches(msg, m.keys.Memory):
		return "MostrarMapaMemoria", "💾 Mostrando mapa de memoria", true
	case key.Matches(msg, m.keys.Files):
		return "ListarArchivos", "📂 Listando archivos", true
	case key.Matches(msg, m.keys.SaveFS):
		return "GuardarFS", "💾 VFS guardado", true
	case key.Matches(msg, m.keys.LoadFS):
		return "CargarFS", "📁 VFS cargado", true
	}
	return "", "", false
}

// submit starts line and optionally sets a status message.
func (m Model) submit(line, status string) (tea.Model, tea.Cmd) {
	logger.Debug("command submitted", "line", line)
	run := m.runCommand(line)
	if status == "" {
		return m, run
	}
	m.statusMessage = status
	if m.poll <= 0 {
		// Keep a single command so tests can execute it directly.
		return m, run
	}
	return m, tea.Batch(run, clearStatusAfter())
}

func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusMessage = s
	return m, clearStatusAfter()
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
