package input

import "fmt"

// Key is a host-independent key name. The window layer translates its own key
// codes into these; anything it does not know becomes KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyN
	KeyEscape
)

// Action is what happened to a key.
type Action int

const (
	Press Action = iota
	Repeat
	Release
)

// KeyEvent is one key notification delivered by the host.
type KeyEvent struct {
	Key    Key
	Action Action
}

// Direction is one of the four tracked movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	DirectionCount // Sentinel value for array sizing
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Direction maps an arrow key to its direction. Other keys report false.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyArrowUp:
		return Up, true
	case KeyArrowDown:
		return Down, true
	case KeyArrowLeft:
		return Left, true
	case KeyArrowRight:
		return Right, true
	}
	return 0, false
}

// KeyState records which directions are currently held.
type KeyState [DirectionCount]bool

// Set marks d as held.
func (s *KeyState) Set(d Direction) {
	if d >= 0 && d < DirectionCount {
		s[d] = true
	}
}

// Clear marks d as released.
func (s *KeyState) Clear(d Direction) {
	if d >= 0 && d < DirectionCount {
		s[d] = false
	}
}

// Held reports whether d is held.
func (s *KeyState) Held(d Direction) bool {
	if d < 0 || d >= DirectionCount {
		return false
	}
	return s[d]
}

// Reset releases every direction.
func (s *KeyState) Reset() {
	*s = KeyState{}
}
