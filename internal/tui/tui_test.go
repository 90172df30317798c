package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/partycards/internal/game"
	"github.com/lox/partycards/internal/randutil"
)

func TestMain(m *testing.M) {
	// Plain text output so assertions can match rendered strings
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.RNG == nil {
		opts.RNG = randutil.New(42)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewMock(t)
	}
	m, err := NewModel(quietLogger(), opts)
	require.NoError(t, err)
	return m
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestNewModelRequiresRNG(t *testing.T) {
	_, err := NewModel(quietLogger(), Options{Players: 2, Cards: 2})
	assert.Error(t, err)
}

func TestSetupScreen(t *testing.T) {
	t.Run("starts at two players and two cards", func(t *testing.T) {
		m := newTestModel(t, Options{Players: 2, Cards: 2})
		assert.Nil(t, m.Session())
		assert.Contains(t, m.View(), "Players: 2")
		assert.Contains(t, m.View(), "Cards: 2")
	})

	t.Run("more players pull cards up", func(t *testing.T) {
		s := NewSetupModel(2, 2)
		s = s.Update(key(tea.KeyUp))
		s = s.Update(key(tea.KeyUp))
		assert.Equal(t, 4, s.Players)
		assert.Equal(t, 4, s.Cards)

		s = s.Update(key(tea.KeyLeft))
		assert.Equal(t, 4, s.Cards, "cards never drop below players")

		s = s.Update(key(tea.KeyRight))
		assert.Equal(t, 5, s.Cards)

		s = s.Update(key(tea.KeyDown))
		assert.Equal(t, 3, s.Players)
		assert.Equal(t, 5, s.Cards, "fewer players keep the card count")
	})

	t.Run("bounds", func(t *testing.T) {
		s := NewSetupModel(8, 30)
		s = s.Update(key(tea.KeyUp))
		s = s.Update(key(tea.KeyRight))
		assert.Equal(t, 8, s.Players)
		assert.Equal(t, 30, s.Cards)

		s = NewSetupModel(1, 50)
		assert.Equal(t, 2, s.Players)
		assert.Equal(t, 30, s.Cards)
		s = s.Update(key(tea.KeyDown))
		assert.Equal(t, 2, s.Players)
	})

	t.Run("enter starts the session", func(t *testing.T) {
		m := newTestModel(t, Options{Players: 2, Cards: 2})
		m.Update(key(tea.KeyUp))
		m.Update(key(tea.KeyRight))
		m.Update(key(tea.KeyRight))
		m.Update(key(tea.KeyEnter))

		require.NotNil(t, m.Session())
		cfg := m.Session().Config()
		assert.Equal(t, 3, cfg.Players)
		assert.Equal(t, 5, cfg.Cards)
		assert.Equal(t, 1, m.Session().State.Number)
		require.NotEmpty(t, m.Log())
		assert.Contains(t, m.Log()[0], "ROUND 1")
	})
}

func TestSubmitDrivesSession(t *testing.T) {
	m := newTestModel(t, Options{Players: 2, Cards: 4, SkipSetup: true})
	s := m.Session()
	require.NotNil(t, s)
	current := s.State.Current

	m.Submit("raise 5")
	assert.Equal(t, 5, s.Players[current].Money)
	assert.Equal(t, 1, s.State.ForcedDraws)

	// Illegal tier is logged and ignored
	m.Submit("raise 5")
	assert.Equal(t, 5, s.State.Pot)
	assert.Contains(t, m.Log()[len(m.Log())-1], "ignored raise 5")

	m.Submit("what")
	assert.Contains(t, m.Log()[len(m.Log())-1], "unknown command: what")

	m.Submit("help")
	assert.Contains(t, strings.Join(m.Log(), "\n"), "Commands:")

	assert.True(t, m.Submit("quit"))
}

func TestSubmitPlaysRoundToNext(t *testing.T) {
	m := newTestModel(t, Options{Players: 3, Cards: 6, SkipSetup: true})
	s := m.Session()

	for n := 1; n <= 6 && !s.State.Over(); n++ {
		m.Submit(fmt.Sprintf("draw %d", n))
	}
	require.True(t, s.State.Over())

	// Bare Enter deals the next round once the round is over
	m.Submit("")
	assert.Equal(t, 2, s.State.Number)
	assert.False(t, s.State.Over())
	assert.Contains(t, m.Log()[0], "ROUND 2")
}

func TestEnterKeySubmitsInput(t *testing.T) {
	m := newTestModel(t, Options{Players: 2, Cards: 3, SkipSetup: true})
	m.actionInput.SetValue("d 1")
	m.Update(key(tea.KeyEnter))

	assert.True(t, m.Session().Pool[0].Used)
	assert.Empty(t, m.actionInput.Value())
}

func TestTabSwitchesFocus(t *testing.T) {
	m := newTestModel(t, Options{Players: 2, Cards: 3, SkipSetup: true})
	m.Update(key(tea.KeyTab))
	assert.Equal(t, paneLog, m.focusedPane)

	// Enter in the log pane does nothing
	m.actionInput.SetValue("d 1")
	m.Update(key(tea.KeyEnter))
	assert.False(t, m.Session().Pool[0].Used)

	m.Update(key(tea.KeyTab))
	assert.Equal(t, paneInput, m.focusedPane)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, Options{Players: 2, Cards: 2})
	_, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestViewRendersTable(t *testing.T) {
	m := newTestModel(t, Options{Players: 4, Cards: 8, SkipSetup: true})
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	view := m.View()

	for _, name := range []string{"P1 $0", "P2 $0", "P3 $0", "P4 $0"} {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "Pot $0")
	assert.Contains(t, view, "Total Money: $0")
	assert.Contains(t, view, "Draw Count: 0")
	assert.Contains(t, view, "[raise 5]")
	assert.Contains(t, view, "[raise 10]")
	assert.Contains(t, view, "[ 8  ]")
	assert.Contains(t, view, "to act")
}

func TestRenderCards(t *testing.T) {
	cards := []game.CardView{
		{ID: 0, Number: 1},
		{ID: 1, Number: 2, Used: true, Revealed: true, Type: game.CardDead},
		{ID: 2, Number: 3, Revealed: true, Type: game.CardWin},
		{ID: 3, Number: 4, Used: true, Revealed: true, Type: game.CardSafe},
	}
	out := renderCards(cards)
	for _, want := range []string{"[ 1  ]", "[ 2 D]", "( 3 W)", "[ 4 S]"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\n")

	many := make([]game.CardView, 12)
	for i := range many {
		many[i] = game.CardView{ID: i, Number: i + 1}
	}
	lines := strings.Split(renderCards(many), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "[11  ]"))
}

func TestSeatPositionsFollowSeatingOrder(t *testing.T) {
	pos := SeatPositions(4, tableWidth, tableHeight)
	require.Len(t, pos, 4)

	// Seat 0 at the top, then clockwise: right, bottom, left
	assert.Less(t, pos[0].Y, pos[1].Y)
	assert.Greater(t, pos[1].X, pos[0].X)
	assert.Greater(t, pos[2].Y, pos[1].Y)
	assert.Less(t, pos[3].X, pos[2].X)
	assert.Equal(t, pos[0].X, pos[2].X)
}

func TestRenderTableMarksStatus(t *testing.T) {
	snap := game.Snapshot{
		Round:     3,
		Pot:       15,
		Direction: -1,
		Players: []game.PlayerView{
			{Seat: 0, Name: "P1", Money: 5, Alive: true, Status: game.StatusActive, Current: true},
			{Seat: 1, Name: "P2", Money: 10, Alive: false, Status: game.StatusEliminated},
			{Seat: 2, Name: "P3", Alive: true, Status: game.StatusWinner},
		},
	}
	out := renderTable(snap, tableWidth, tableHeight)
	assert.Contains(t, out, "▶ P1 $5")
	assert.Contains(t, out, "P2 $10 ✗")
	assert.Contains(t, out, "P3 $0 ★")
	assert.Contains(t, out, "Round 3")
	assert.Contains(t, out, "Pot $15")
	assert.Contains(t, out, "↺")
	assert.Len(t, strings.Split(out, "\n"), tableHeight)
}

func TestRenderTableStaysInsideWidth(t *testing.T) {
	players := make([]game.PlayerView, game.MaxPlayers)
	for i := range players {
		players[i] = game.PlayerView{
			Seat:   i,
			Name:   fmt.Sprintf("P%d", i+1),
			Money:  45,
			Alive:  true,
			Status: game.StatusWinner,
		}
	}
	players[7].Current = true
	snap := game.Snapshot{Round: 12, Pot: 360, ForcedDraws: 3, Direction: 1, Players: players}

	for _, width := range []int{tableWidth, 30, 20} {
		out := renderTable(snap, width, tableHeight)
		for i, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d line %d: %q", width, i, line)
		}
	}

	// The full table has room for every label
	out := renderTable(snap, tableWidth, tableHeight)
	assert.Contains(t, out, "▶ P8 $45 ★")
}
