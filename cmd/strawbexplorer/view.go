package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/mem"
)

// View renders the entire UI
func (m Model) View() string {
	if m.quitting && !m.running {
		return ""
	}

	if m.showHelp {
		helpOverlay := overlay.New(
			helpView{keys: m.keys},
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return helpOverlay.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderToolbar(),
		m.renderContent(),
		m.input.View(),
		m.renderStatus(),
	)
}

// renderHeader renders the title and the scheduler state
func (m Model) renderHeader() string {
	state := idleStyle.Render("● Listo")
	if m.running {
		state = runningStyle.Render("● Ejecutando (esc para interrumpir)")
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("🍓 CinnamStrawbOS"),
		"  ",
		state,
	)
}

// renderToolbar renders the quick-access keys
func (m Model) renderToolbar() string {
	var b strings.Builder
	for _, k := range m.keys.toolbar() {
		h := k.Help()
		b.WriteString(toolbarKeyStyle.Render(h.Key))
		b.WriteString(toolbarLabelStyle.Render(h.Desc))
	}
	return b.String()
}

// renderContent renders the terminal pane and the side panels
func (m Model) renderContent() string {
	term := activePaneStyle.Render(m.viewport.View())

	// Width covers the padding but not the border.
	panelWidth := SidePanelWidth - 2
	textWidth := panelWidth - 2
	procs := paneStyle.Width(panelWidth).Render(m.renderProcesses(textWidth))
	memory := paneStyle.Width(panelWidth).Render(m.renderMemory(textWidth))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		term,
		lipgloss.JoinVertical(lipgloss.Left, procs, memory),
	)
}

// renderProcesses lists the process table from the kernel snapshot
func (m Model) renderProcesses(width int) string {
	procs := m.k.Processes()

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("⚡ Procesos (%d listos)", m.k.Ready())))
	b.WriteString("\n")
	if len(procs) == 0 {
		b.WriteString(deadStyle.Render("sin procesos"))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%-3s %-12s %9s", "ID", "Nombre", "Restante"))
	for _, p := range procs {
		name := ansi.Truncate(p.Name, 12, "…")
		line := fmt.Sprintf("%-3d %-12s %4d/%-4d", p.ID, name, p.Remaining, p.Burst)
		b.WriteString("\n")
		if !p.Alive {
			b.WriteString(deadStyle.Render(line))
			continue
		}
		b.WriteString(line)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

// renderMemory draws an occupancy bar and summary from the arena
func (m Model) renderMemory(width int) string {
	blocks, st := m.k.MemoryState()

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("💾 Memoria"))
	b.WriteString("\n")
	b.WriteString(memoryBar(blocks, st.Capacity, width))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Usado %s de %s (%.0f%%)",
		humanize.IBytes(uint64(st.UsedBytes)), humanize.IBytes(uint64(st.Capacity)), st.Utilization()*100))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Bloques %d/%d", st.Blocks, st.MaxBlocks))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Mayor hueco %s", humanize.IBytes(uint64(st.LargestFree))))
	return b.String()
}

// memoryBar renders the block map scaled to width cells.
func memoryBar(blocks []mem.Block, capacity, width int) string {
	if capacity <= 0 || width <= 0 {
		return ""
	}
	cells := make([]bool, width) // true = used
	for _, blk := range blocks {
		if blk.Free {
			continue
		}
		from := blk.Start * width / capacity
		to := (blk.End()*width + capacity - 1) / capacity
		for i := from; i < min(to, width); i++ {
			cells[i] = true
		}
	}

	var b strings.Builder
	for _, used := range cells {
		if used {
			b.WriteString(usedCellStyle.Render("█"))
		} else {
			b.WriteString(freeCellStyle.Render("░"))
		}
	}
	return b.String()
}

// renderStatus renders the status bar
func (m Model) renderStatus() string {
	if m.statusMessage != "" {
		return statusStyle.Width(m.width).Render(m.statusMessage)
	}

	var help strings.Builder
	help.WriteString(helpStyle.Render("enter: Ejecutar"))
	help.WriteString(" │ ")
	help.WriteString(helpStyle.Render("↑/↓: Historial"))
	help.WriteString(" │ ")
	help.WriteString(helpStyle.Render("ctrl+y: Copiar"))
	help.WriteString(" │ ")
	help.WriteString(helpStyle.Render("?: Atajos"))
	help.WriteString(" │ ")
	help.WriteString(helpStyle.Render("ctrl+c: Salir"))
	return statusStyle.Width(m.width).Render(help.String())
}
