package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/partycards/internal/game"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input     string
		roundOver bool
		expected  Command
	}{
		{"raise 5", false, Command{Action: game.RaiseAction{Tier: 5}}},
		{"R 10", false, Command{Action: game.RaiseAction{Tier: 10}}},
		{"bet 15", false, Command{Action: game.RaiseAction{Tier: 15}}},
		{"draw 7", false, Command{Action: game.DrawAction{Card: 6}}},
		{"d 1", false, Command{Action: game.DrawAction{Card: 0}}},
		{"  12 ", false, Command{Action: game.DrawAction{Card: 11}}},
		{"next", false, Command{Action: game.NextRoundAction{}}},
		{"", true, Command{Action: game.NextRoundAction{}}},
		{"help", false, Command{Help: true}},
		{"q", false, Command{Quit: true}},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.input, tt.roundOver)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"", "enter an action"},
		{"raise", "usage: raise <number>"},
		{"draw x", "invalid number: x"},
		{"raise 5 10", "usage"},
		{"fold", "unknown command: fold"},
	}

	for _, tt := range tests {
		_, err := ParseCommand(tt.input, false)
		require.Error(t, err, "input %q", tt.input)
		assert.Contains(t, err.Error(), tt.contains)
	}
}
