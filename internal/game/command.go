package game

import "fmt"

// Command is one discrete player intent. The game loop applies at most one
// command per input event.
type Command int

const (
	None Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Expose
	Flag
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Expose:
		return "expose"
	case Flag:
		return "flag"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Outcome is the state of the game after a command.
type Outcome int

const (
	Playing Outcome = iota
	Lost
	Won
	Quitting
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Quitting:
		return "quitting"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
