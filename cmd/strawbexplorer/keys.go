package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Toolbar
	Help    key.Binding
	Clear   key.Binding
	Procs   key.Binding
	Memory  key.Binding
	Files   key.Binding
	SaveFS  key.Binding
	LoadFS  key.Binding
	Overlay key.Binding

	// Input
	Submit   key.Binding
	Esc      key.Binding
	HistPrev key.Binding
	HistNext key.Binding

	// Terminal
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Ayuda"),
		),
		Clear: key.NewBinding(
			key.WithKeys("f2", "ctrl+l"),
			key.WithHelp("F2", "Limpiar"),
		),
		Procs: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "Procesos"),
		),
		Memory: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "Memoria"),
		),
		Files: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "Archivos"),
		),
		SaveFS: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("F6", "Guardar"),
		),
		LoadFS: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("F7", "Cargar"),
		),
		Overlay: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "atajos"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ejecutar"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "interrumpir / limpiar entrada"),
		),
		HistPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "comando anterior"),
		),
		HistNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "comando siguiente"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "subir"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "bajar"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copiar terminal"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "salir"),
		),
	}
}

// toolbar returns the quick-access bindings in display order.
func (k KeyMap) toolbar() []key.Binding {
	return []key.Binding{k.Help, k.Clear, k.Procs, k.Memory, k.Files, k.SaveFS, k.LoadFS}
}
