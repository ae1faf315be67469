// Package transition defines the descriptor shared by every navigation
// controller and the driver that animates a screen change from it.
package transition

import (
	"errors"
	"fmt"
	"time"
)

// DefaultDuration is the length of every screen-to-screen slide.
const DefaultDuration = 300 * time.Millisecond

// Direction says which way the screens slide.
type Direction int

const (
	Forward  Direction = iota // outgoing leaves to the left, incoming enters from the right
	Backward                  // mirror of Forward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Descriptor describes one screen-to-screen animation. It is produced fresh
// for every navigation action and consumed once by a Driver.
type Descriptor struct {
	Direction Direction
	Duration  time.Duration
}

// IsZero reports whether d carries no animation, as returned by navigation
// calls that did not change what is visible.
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// Forwards returns a forward descriptor lasting d.
func Forwards(d time.Duration) Descriptor {
	return Descriptor{Direction: Forward, Duration: d}
}

// Backwards returns a backward descriptor lasting d.
func Backwards(d time.Duration) Descriptor {
	return Descriptor{Direction: Backward, Duration: d}
}

// ErrInvalidTransition reports a navigation request outside the state
// machine contract. It signals a wiring bug in the calling screen, never a
// user-facing condition.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrInvalidDuration is returned by Driver.Run for a non-positive duration.
var ErrInvalidDuration = errors.New("transition duration must be positive")
