package overlay

import (
	"fmt"
	"math"
	"time"

	"github.com/blinkapp/blink/internal/transition"
)

// Default swipe thresholds: 100 of 350 points, or a flick of 0.5 points/ms.
const (
	DefaultDistanceThreshold = 0.28
	DefaultVelocityThreshold = 0.5
	DefaultDirectionLock     = 8.0
)

// velocityWindow is how long a velocity sample stays valid. A finger that
// stops before lifting has no flick velocity.
const velocityWindow = 100 * time.Millisecond

// SwipeState is the gesture state.
type SwipeState int

const (
	SwipeIdle SwipeState = iota
	SwipeDragging
	SwipeCommitting
	SwipeSnappingBack
)

func (s SwipeState) String() string {
	switch s {
	case SwipeIdle:
		return "idle"
	case SwipeDragging:
		return "dragging"
	case SwipeCommitting:
		return "committing"
	case SwipeSnappingBack:
		return "snapping-back"
	default:
		return fmt.Sprintf("SwipeState(%d)", int(s))
	}
}

// SwipeConfig holds the gesture guards. Distances are in the same unit as
// the coordinates passed to Begin and Move.
type SwipeConfig struct {
	Width             float64
	DistanceThreshold float64 // fraction of Width
	VelocityThreshold float64 // units per millisecond
	DirectionLock     float64 // units of horizontal travel before the drag engages
	Duration          time.Duration
}

// DefaultSwipeConfig returns the default guards for a viewport width.
func DefaultSwipeConfig(width float64) SwipeConfig {
	return SwipeConfig{
		Width:             width,
		DistanceThreshold: DefaultDistanceThreshold,
		VelocityThreshold: DefaultVelocityThreshold,
		DirectionLock:     DefaultDirectionLock,
		Duration:          transition.DefaultDuration,
	}
}

// Action is what a finished gesture asks the navigator to do.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionClose
)

// Decision is the outcome of a released or cancelled gesture. Transition
// and From describe the settle animation: it continues the slide the drag
// started (commit) or plays it in reverse (snap back).
type Decision struct {
	Action     Action
	Transition transition.Descriptor
	From       float64
	Target     float64
}

// Swipe is the horizontal drag between the feed and the saved list.
// Progress is the absolute position of the saved panel: 0 with the feed at
// rest, -1 with the saved list fully shown. A closed panel only follows
// leftward drags, an open one only rightward drags.
type Swipe struct {
	cfg   SwipeConfig
	state SwipeState

	tracking bool
	open     bool
	originX  float64
	originY  float64
	lastX    float64
	lastT    time.Time
	velocity float64
	progress float64
	target   float64
}

// NewSwipe creates an idle gesture tracker.
func NewSwipe(cfg SwipeConfig) *Swipe {
	return &Swipe{cfg: cfg}
}

// SetWidth updates the viewport width, e.g. after a resize.
func (s *Swipe) SetWidth(w float64) {
	s.cfg.Width = w
}

// Begin starts tracking a pointer press. savedOpen is whether the saved list
// is currently visible.
func (s *Swipe) Begin(x, y float64, at time.Time, savedOpen bool) {
	s.tracking = true
	s.open = savedOpen
	s.state = SwipeIdle
	s.originX, s.originY = x, y
	s.lastX, s.lastT = x, at
	s.velocity = 0
	s.progress = rest(savedOpen)
	s.target = s.progress
}

// Move feeds one pointer sample. The drag engages once horizontal travel in
// the allowed direction passes the direction lock and dominates vertical
// travel.
func (s *Swipe) Move(x, y float64, at time.Time) {
	if !s.tracking {
		return
	}
	dx, dy := x-s.originX, y-s.originY

	if s.state == SwipeIdle {
		if !s.engages(dx, dy) {
			s.lastX, s.lastT = x, at
			return
		}
		s.state = SwipeDragging
	}

	if ms := float64(at.Sub(s.lastT)) / float64(time.Millisecond); ms > 0 {
		s.velocity = (x - s.lastX) / ms
	}
	s.lastX, s.lastT = x, at

	disp := 0.0
	if s.cfg.Width > 0 {
		disp = dx / s.cfg.Width
	}
	if s.open {
		disp = math.Max(0, math.Min(disp, 1))
	} else {
		disp = math.Min(0, math.Max(disp, -1))
	}
	s.progress = clampUnit(rest(s.open) + disp)
}

// End releases the pointer and decides between committing and snapping back.
func (s *Swipe) End(at time.Time) Decision {
	if !s.tracking {
		return Decision{Target: s.progress}
	}
	s.tracking = false

	if s.state != SwipeDragging {
		s.state = SwipeIdle
		return Decision{Target: s.progress}
	}

	velocity := s.velocity
	if at.Sub(s.lastT) > velocityWindow {
		velocity = 0
	}

	// Travel and velocity measured in the allowed direction.
	travel := s.Displacement()
	speed := velocity
	if !s.open {
		speed = -velocity
	}

	if travel >= s.cfg.DistanceThreshold || speed >= s.cfg.VelocityThreshold {
		return s.commit()
	}
	return s.snapBack()
}

// Cancel abandons the gesture, e.g. when another component claims the
// pointer. An engaged drag snaps back.
func (s *Swipe) Cancel() Decision {
	if !s.tracking {
		return Decision{Target: s.progress}
	}
	s.tracking = false
	if s.state != SwipeDragging {
		s.state = SwipeIdle
		return Decision{Target: s.progress}
	}
	return s.snapBack()
}

// Settle finishes a commit or snap back once its animation completes.
func (s *Swipe) Settle() {
	s.progress = s.target
	s.state = SwipeIdle
}

// State returns the gesture state.
func (s *Swipe) State() SwipeState {
	return s.state
}

// Tracking reports whether a pointer is down.
func (s *Swipe) Tracking() bool {
	return s.tracking
}

// Progress returns the absolute panel position in [-1, 1].
func (s *Swipe) Progress() float64 {
	return s.progress
}

// Displacement returns how far the drag has moved the panel from rest, in [0, 1].
func (s *Swipe) Displacement() float64 {
	return math.Abs(s.progress - rest(s.open))
}

// Direction returns the slide direction the drag is performing: revealing
// the saved list slides forward, hiding it slides backward.
func (s *Swipe) Direction() transition.Direction {
	if s.open {
		return transition.Backward
	}
	return transition.Forward
}

// Velocity returns the last horizontal velocity sample in units per ms.
func (s *Swipe) Velocity() float64 {
	return s.velocity
}

func (s *Swipe) engages(dx, dy float64) bool {
	if math.Abs(dx) <= math.Abs(dy) {
		return false
	}
	if s.open {
		return dx > s.cfg.DirectionLock
	}
	return dx < -s.cfg.DirectionLock
}

func (s *Swipe) commit() Decision {
	s.state = SwipeCommitting
	travel := s.Displacement()
	d := Decision{
		Transition: transition.Descriptor{Direction: s.Direction(), Duration: s.duration()},
		From:       travel,
	}
	if s.open {
		d.Action = ActionClose
		d.Target = rest(false)
	} else {
		d.Action = ActionOpen
		d.Target = rest(true)
	}
	s.target = d.Target
	return d
}

func (s *Swipe) snapBack() Decision {
	s.state = SwipeSnappingBack
	s.target = rest(s.open)
	return Decision{
		Action:     ActionNone,
		Transition: transition.Descriptor{Direction: s.Direction().Reverse(), Duration: s.duration()},
		From:       1 - s.Displacement(),
		Target:     s.target,
	}
}

// Apply commits a gesture decision to the navigator. Snap-backs and
// unengaged gestures leave it untouched and return a zero descriptor.
func Apply(n *Navigator, d Decision) (transition.Descriptor, error) {
	switch d.Action {
	case ActionOpen:
		return n.Open(Saved, nil)
	case ActionClose:
		desc, _ := n.Close(Saved)
		return desc, nil
	}
	return transition.Descriptor{}, nil
}

func (s *Swipe) duration() time.Duration {
	if s.cfg.Duration > 0 {
		return s.cfg.Duration
	}
	return transition.DefaultDuration
}

func rest(open bool) float64 {
	if open {
		return -1
	}
	return 0
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(v, 1))
}
