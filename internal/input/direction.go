// Package input classifies key presses into navigation intents: a direction
// plus a step size for moves, or a discrete command.
package input

// Direction is a movement direction. Backwards and Forwards are semantic and
// must be resolved to a cardinal direction before use.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Backwards
	Forwards
)

var directionNames = [...]string{"up", "down", "left", "right", "backwards", "forwards"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// IsCardinal reports whether d is one of Up, Down, Left, Right.
func (d Direction) IsCardinal() bool {
	return d >= Up && d <= Right
}

// Axis returns the axis a cardinal direction moves along. Semantic
// directions report Vertical.
func (d Direction) Axis() Axis {
	if d == Left || d == Right {
		return Horizontal
	}
	return Vertical
}

// Sign is -1 for directions towards smaller coordinates and +1 otherwise.
func (d Direction) Sign() float64 {
	switch d {
	case Up, Left, Backwards:
		return -1
	default:
		return 1
	}
}

// Step is the size of a move, independent of its direction.
type Step int

const (
	Nudge Step = iota
	Viewport
	Page
	End
)

var stepNames = [...]string{"nudge", "viewport", "page", "end"}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Axis is a scroll axis.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// LayoutDirection is the reading direction of the host layout.
type LayoutDirection int

const (
	LeftToRight LayoutDirection = iota
	RightToLeft
)

func (l LayoutDirection) String() string {
	if l == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Resolve maps a semantic direction to a cardinal one. Cardinal directions
// are returned unchanged. The result depends only on the three arguments.
func Resolve(d Direction, primary Axis, layout LayoutDirection) Direction {
	switch d {
	case Backwards:
		if primary == Vertical {
			return Up
		}
		if layout == RightToLeft {
			return Right
		}
		return Left
	case Forwards:
		if primary == Vertical {
			return Down
		}
		if layout == RightToLeft {
			return Left
		}
		return Right
	default:
		return d
	}
}
