package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lox/partycards/internal/game"
)

const (
	tableWidth   = 56
	tableHeight  = 15
	cardsPerLine = 10
)

// SeatPosition is where a seat label is centred on the table grid
type SeatPosition struct {
	X, Y int
}

// SeatPositions lays n seats out on an ellipse of the given grid size.
// Terminal cells are about twice as tall as wide, so the horizontal radius
// is doubled.
func SeatPositions(n, width, height int) []SeatPosition {
	cx, cy := float64(width)/2, float64(height)/2
	ry := float64(height)/2 - 1
	rx := math.Min(ry*2, float64(width)/2-6)

	positions := make([]SeatPosition, n)
	for i := range positions {
		angle := game.SeatAngle(i, n)
		positions[i] = SeatPosition{
			X: int(math.Round(cx + rx*math.Cos(angle))),
			Y: int(math.Round(cy + ry*math.Sin(angle))),
		}
	}
	return positions
}

type placement struct {
	x     int
	text  string
	style lipgloss.Style
}

// renderTable draws the seats around the table with the pot in the middle
func renderTable(snap game.Snapshot, width, height int) string {
	rows := make([][]placement, height)
	put := func(x, y int, text string, style lipgloss.Style) {
		if y < 0 || y >= height {
			return
		}
		x -= lipgloss.Width(text) / 2
		x = max(0, min(x, width-lipgloss.Width(text)))
		rows[y] = append(rows[y], placement{x: x, text: text, style: style})
	}

	for i, pos := range SeatPositions(len(snap.Players), width, height) {
		p := snap.Players[i]
		put(pos.X, pos.Y, seatLabel(p), seatStyle(p))
	}

	put(width/2, height/2-1, fmt.Sprintf("Round %d", snap.Round), HeaderStyle)
	put(width/2, height/2, fmt.Sprintf("Pot $%d", snap.Pot), PotStyle)
	put(width/2, height/2+1, fmt.Sprintf("Draws owed: %d %s", snap.ForcedDraws, directionArrow(snap.Direction)), InfoStyle)

	var b strings.Builder
	for y, row := range rows {
		sort.Slice(row, func(i, j int) bool { return row[i].x < row[j].x })
		cursor := 0
		for _, pl := range row {
			if pl.x < cursor {
				pl.x = cursor + 1
			}
			// Labels pushed right by a neighbour are cut at the table edge
			room := width - pl.x
			if room <= 0 {
				break
			}
			text := pl.text
			if lipgloss.Width(text) > room {
				text = ansi.Truncate(text, room, "…")
			}
			b.WriteString(strings.Repeat(" ", pl.x-cursor))
			b.WriteString(pl.style.Render(text))
			cursor = pl.x + lipgloss.Width(text)
		}
		if y < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func seatLabel(p game.PlayerView) string {
	mark := ""
	switch p.Status {
	case game.StatusEliminated:
		mark = " ✗"
	case game.StatusWinner:
		mark = " ★"
	}
	label := fmt.Sprintf("%s $%d%s", p.Name, p.Money, mark)
	if p.Current {
		label = "▶ " + label
	}
	return label
}

func seatStyle(p game.PlayerView) lipgloss.Style {
	switch {
	case p.Status == game.StatusWinner:
		return WinnerPlayerStyle
	case p.Status == game.StatusEliminated:
		return EliminatedPlayerStyle
	case p.Current:
		return CurrentPlayerStyle
	default:
		return ActivePlayerStyle
	}
}

func directionArrow(dir int) string {
	if dir < 0 {
		return "↺"
	}
	return "↻"
}

// renderCards draws the pool as numbered cards, face up once revealed
func renderCards(cards []game.CardView) string {
	var lines []string
	var line []string
	for i, c := range cards {
		line = append(line, renderCard(c))
		if (i+1)%cardsPerLine == 0 || i == len(cards)-1 {
			lines = append(lines, strings.Join(line, " "))
			line = nil
		}
	}
	return strings.Join(lines, "\n")
}

func renderCard(c game.CardView) string {
	if !c.Revealed {
		return HiddenCardStyle.Render(fmt.Sprintf("[%2d  ]", c.Number))
	}

	text := fmt.Sprintf("[%2d %s]", c.Number, cardLetter(c.Type))
	if !c.Used {
		// Revealed at the end of the round without being drawn
		text = fmt.Sprintf("(%2d %s)", c.Number, cardLetter(c.Type))
	}

	switch c.Type {
	case game.CardWin:
		return WinCardStyle.Render(text)
	case game.CardDead:
		return DeadCardStyle.Render(text)
	default:
		return SafeCardStyle.Render(text)
	}
}

func cardLetter(t game.CardType) string {
	switch t {
	case game.CardWin:
		return "W"
	case game.CardDead:
		return "D"
	case game.CardSafe:
		return "S"
	default:
		return "?"
	}
}

// renderSidebar lists the round counters and every seat
func renderSidebar(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString(WarningStyle.Render(fmt.Sprintf("Round %d", snap.Round)))
	b.WriteString("\n")
	b.WriteString(PotStyle.Render(fmt.Sprintf("Total Money: $%d", snap.Pot)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Draw Count: %d", snap.ForcedDraws))
	b.WriteString("\n")
	if snap.CurrentWager > 0 {
		b.WriteString(fmt.Sprintf("Last raise: $%d", snap.CurrentWager))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Direction: %s", directionArrow(snap.Direction)))
	b.WriteString("\n\n")

	b.WriteString(InfoStyle.Render("Players:"))
	b.WriteString("\n")
	for _, p := range snap.Players {
		b.WriteString(seatStyle(p).Render(fmt.Sprintf("  %-3s $%-3d %s", p.Name, p.Money, p.Status)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderAvailableActions renders the legal actions for the current frame
func renderAvailableActions(snap game.Snapshot) string {
	if snap.GameOver {
		return ActionsStyle.Render("Round over: ") + SuccessStyle.Render("[next]")
	}

	var actions []string
	for _, tier := range snap.AllowedWagers {
		actions = append(actions, WarningStyle.Render(fmt.Sprintf("[raise %d]", tier)))
	}
	actions = append(actions, SuccessStyle.Render("[draw <n>]"))

	return ActionsStyle.Render("Actions: " + strings.Join(actions, " "))
}
