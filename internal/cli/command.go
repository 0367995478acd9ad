package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

type CommandKind int

const (
	CommandContinue CommandKind = iota
	CommandSwap
	CommandSource
	CommandTarget
	CommandRestart
	CommandHelp
	CommandQuit
)

// Command is one parsed input line. Arg holds the language code of CommandSource and CommandTarget.
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand reads a line of input. An empty line continues.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Kind: CommandContinue}, nil
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "n", "next":
		return Command{Kind: CommandContinue}, nil
	case "s", "swap":
		return Command{Kind: CommandSwap}, nil
	case "src", "source", "tgt", "target":
		kind := CommandSource
		if name == "tgt" || name == "target" {
			kind = CommandTarget
		}
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%w: %s <language>", ErrMissingArgument, name)
		}
		return Command{Kind: kind, Arg: args[0]}, nil
	case "r", "restart":
		return Command{Kind: CommandRestart}, nil
	case "?", "h", "help":
		return Command{Kind: CommandHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}
