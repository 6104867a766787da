package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MainViewModel wraps the main UI for use as overlay background
type MainViewModel struct {
	model *Model
}

func NewMainViewModel(m *Model) *MainViewModel {
	return &MainViewModel{model: m}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Updates are handled by the parent Model; this only provides View()
	return m, nil
}

func (m *MainViewModel) View() string {
	return m.model.renderMain()
}

// helpView is the keyboard shortcut overlay
type helpView struct {
	keys KeyMap
}

func (h helpView) Init() tea.Cmd { return nil }

func (h helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h helpView) View() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Atajos de teclado"))
	b.WriteString("\n")

	sections := []struct {
		title string
		keys  []key.Binding
	}{
		{"Barra rapida", h.keys.toolbar()},
		{"Entrada", []key.Binding{h.keys.Submit, h.keys.HistPrev, h.keys.HistNext, h.keys.Esc}},
		{"Terminal", []key.Binding{h.keys.PageUp, h.keys.PageDown, h.keys.Copy, h.keys.Overlay, h.keys.Quit}},
	}
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(panelTitleStyle.Render(s.title))
		b.WriteString("\n")
		for _, k := range s.keys {
			hk := k.Help()
			b.WriteString(helpKeyStyle.Render(hk.Key))
			b.WriteString(" ")
			b.WriteString(helpDescStyle.Render(hk.Desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(helpDescStyle.Render("esc o ? para cerrar"))
	return modalStyle.Render(b.String())
}
