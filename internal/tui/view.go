package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.screen == screenSetup {
		if m.width == 0 || m.height == 0 {
			return m.setup.View()
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.setup.View())
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.session.Snapshot()

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(1, m.width-2)).
		Height(max(1, actionHeight))
	if m.focusedPane == paneInput {
		actionStyle = actionStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	actionPane := actionStyle.Render(actionContent)

	// Table and cards (top left)
	tableContent := renderTable(snap, tableWidth, tableHeight) + "\n\n" + renderCards(snap.Cards)
	tablePane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Render(tableContent)

	// Sidebar (top right)
	sidebarContent := renderSidebar(snap)
	sidebarWidth := max(25, lipgloss.Width(sidebarContent))
	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(max(1, lipgloss.Height(tableContent))).
		Render(sidebarContent)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, tablePane, sidebarPane)

	// Log pane fills what is left
	logWidth := max(1, m.width-2)
	logHeight := max(1, m.height-lipgloss.Height(topRow)-lipgloss.Height(actionPane)-2)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight)
	if m.focusedPane == paneLog {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, topRow, logPane, actionPane)
}

// renderActionPane renders the actions and the input field
func (m *Model) renderActionPane() string {
	var content strings.Builder
	snap := m.session.Snapshot()

	if p, ok := snap.CurrentPlayer(); ok {
		content.WriteString(CurrentPlayerStyle.Render(" " + p.Name + " to act "))
		content.WriteString("  ")
	} else if w, ok := snap.Winner(); ok {
		content.WriteString(WinnerPlayerStyle.Render(w.Name + " wins!"))
		content.WriteString("  ")
	}
	content.WriteString(renderAvailableActions(snap))
	content.WriteString("\n")

	if snap.GameOver {
		m.actionInput.Placeholder = "Enter for the next round, 'quit' to exit"
	} else {
		m.actionInput.Placeholder = "raise 5, draw 3, help"
	}
	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	help := "Tab to scroll log • Enter to submit • Ctrl+C to quit"
	if m.focusedPane == paneLog {
		help = "Log focused: ↑↓ scroll, PgUp/PgDn, Tab to input"
	}
	content.WriteString(InfoStyle.Render(help))

	return content.String()
}
