package input

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Command is a discrete navigation command that carries no direction.
type Command int

const (
	NoCommand Command = iota
	Clear
	Activate
	SelectAll
	JumpToStart
	JumpToEnd
	ZoomIn
	ZoomOut
	ZoomReset
)

var commandNames = [...]string{
	"none", "clear", "activate", "select-all", "jump-to-start", "jump-to-end",
	"zoom-in", "zoom-out", "zoom-reset",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Action is the result of classifying a key press: either a move
// (Command == NoCommand) or a command.
type Action struct {
	Command   Command
	Direction Direction
	Step      Step
}

// Move builds a move action.
func Move(d Direction, s Step) Action {
	return Action{Direction: d, Step: s}
}

// IsMove reports whether the action is a directional move.
func (a Action) IsMove() bool { return a.Command == NoCommand }

func (a Action) String() string {
	if a.IsMove() {
		return a.Direction.String() + "/" + a.Step.String()
	}
	return a.Command.String()
}

// commandMods are treated as the "command" modifier. Terminals rarely
// deliver super, so ctrl stands in for it.
const commandMods = tea.ModCtrl | tea.ModSuper

// Classify maps a key press to an Action. paging selects page-sized steps
// for keys that would otherwise move by a viewport. It reports false for
// keys it does not recognize.
func Classify(msg tea.KeyPressMsg, paging bool) (Action, bool) {
	command := msg.Mod&commandMods != 0
	alternate := msg.Mod&tea.ModAlt != 0

	switch msg.Code {
	case tea.KeyUp:
		return Move(Up, arrowStep(command, alternate, paging)), true
	case tea.KeyDown:
		return Move(Down, arrowStep(command, alternate, paging)), true
	case tea.KeyLeft:
		return Move(Left, arrowStep(command, alternate, paging)), true
	case tea.KeyRight:
		return Move(Right, arrowStep(command, alternate, paging)), true
	case tea.KeySpace:
		if msg.Mod&tea.ModShift != 0 {
			return Move(Backwards, pageStep(paging)), true
		}
		return Move(Forwards, pageStep(paging)), true
	case tea.KeyPgUp:
		return Move(Up, pageStep(paging)), true
	case tea.KeyPgDown:
		return Move(Down, pageStep(paging)), true
	case tea.KeyHome:
		return Move(Backwards, End), true
	case tea.KeyEnd:
		return Move(Forwards, End), true
	case tea.KeyEscape:
		return Action{Command: Clear}, true
	case tea.KeyEnter:
		return Action{Command: Activate}, true
	}

	if command && msg.Code == 'a' {
		return Action{Command: SelectAll}, true
	}
	if command || alternate {
		return Action{}, false
	}

	switch {
	case key.Matches(msg, Keys.JumpStart):
		return Action{Command: JumpToStart}, true
	case key.Matches(msg, Keys.JumpEnd):
		return Action{Command: JumpToEnd}, true
	case key.Matches(msg, Keys.ZoomIn):
		return Action{Command: ZoomIn}, true
	case key.Matches(msg, Keys.ZoomOut):
		return Action{Command: ZoomOut}, true
	case key.Matches(msg, Keys.ZoomReset):
		return Action{Command: ZoomReset}, true
	}

	// Vim-style letters move like unmodified arrows.
	switch msg.Text {
	case "k":
		return Move(Up, arrowStep(false, false, paging)), true
	case "j":
		return Move(Down, arrowStep(false, false, paging)), true
	case "h":
		return Move(Left, arrowStep(false, false, paging)), true
	case "l":
		return Move(Right, arrowStep(false, false, paging)), true
	}
	return Action{}, false
}

func arrowStep(command, alternate, paging bool) Step {
	switch {
	case command:
		return End
	case paging:
		return Page
	case alternate:
		return Viewport
	default:
		return Nudge
	}
}

func pageStep(paging bool) Step {
	if paging {
		return Page
	}
	return Viewport
}
