package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/partycards/internal/game"
)

// SetupModel is the settings screen shown before the first round.
type SetupModel struct {
	Players int
	Cards   int
	Done    bool
}

// NewSetupModel starts from the given values, clamped to the table limits
func NewSetupModel(players, cards int) SetupModel {
	m := SetupModel{Players: players, Cards: cards}
	m.clamp()
	return m
}

func (m *SetupModel) clamp() {
	m.Players = max(game.MinPlayers, min(m.Players, game.MaxPlayers))
	m.Cards = max(m.Players, min(m.Cards, game.MaxCards))
}

// Update handles the arrow keys: up/down for players, left/right for cards
func (m SetupModel) Update(msg tea.KeyMsg) SetupModel {
	switch msg.String() {
	case "up", "k":
		if m.Players < game.MaxPlayers {
			m.Players++
		}
	case "down", "j":
		if m.Players > game.MinPlayers {
			m.Players--
		}
	case "right", "l":
		if m.Cards < game.MaxCards {
			m.Cards++
		}
	case "left", "h":
		if m.Cards > m.Players {
			m.Cards--
		}
	case "enter":
		m.Done = true
	}
	// More players never leave fewer cards than seats
	m.clamp()
	return m
}

// Config returns the table configuration chosen on this screen
func (m SetupModel) Config(mode game.GenerationMode) game.Config {
	return game.Config{Players: m.Players, Cards: m.Cards, Mode: mode}
}

// View renders the settings screen
func (m SetupModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" Game Settings "))
	b.WriteString("\n\n")
	b.WriteString(WarningStyle.Render(fmt.Sprintf("Players: %d", m.Players)))
	b.WriteString("\n")
	b.WriteString(WarningStyle.Render(fmt.Sprintf("Cards: %d", m.Cards)))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Up/Down: players, Left/Right: cards"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Enter to start • Ctrl+C to quit"))
	return b.String()
}
