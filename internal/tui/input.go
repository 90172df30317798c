package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/partycards/internal/game"
)

// Command is a parsed line from the action input. Exactly one of Action,
// Quit or Help is set.
type Command struct {
	Action game.Action
	Quit   bool
	Help   bool
}

var errEmptyCommand = errors.New("enter an action (raise 5, draw 3, next)")

// ParseCommand maps a line of input to a semantic command. roundOver lets a
// bare Enter deal the next round.
func ParseCommand(input string, roundOver bool) (Command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		if roundOver {
			return Command{Action: game.NextRoundAction{}}, nil
		}
		return Command{}, errEmptyCommand
	}

	name, args := parts[0], parts[1:]

	// A bare number draws that card
	if n, err := strconv.Atoi(name); err == nil && len(args) == 0 {
		return Command{Action: game.DrawAction{Card: n - 1}}, nil
	}

	switch name {
	case "raise", "r", "bet", "b":
		n, err := numberArg(name, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Action: game.RaiseAction{Tier: n}}, nil

	case "draw", "d":
		n, err := numberArg(name, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Action: game.DrawAction{Card: n - 1}}, nil

	case "next", "n":
		return Command{Action: game.NextRoundAction{}}, nil

	case "help", "?":
		return Command{Help: true}, nil

	case "quit", "q", "exit":
		return Command{Quit: true}, nil

	default:
		return Command{}, fmt.Errorf("unknown command: %s. Type 'help' for available commands", name)
	}
}

func numberArg(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <number>", name)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", args[0])
	}
	return n, nil
}

// helpLines lists the commands for the log pane
var helpLines = []string{
	"Commands:",
	"  raise <5|10|15>  stake money; the next player owes tier/5 draws",
	"  draw <n>, <n>    draw card number n",
	"  next, Enter      deal the next round once a round is over",
	"  quit             leave the table",
}
