// Package flow drives an ordered sequence of steps such as the onboarding
// wizard. The step index only ever moves by one and never leaves [0, total).
package flow

import (
	"fmt"
	"slices"
	"time"

	"github.com/blinkapp/blink/internal/transition"
)

// Step is one position in the sequence.
type Step struct {
	Index int
	Total int
}

// IsFirst reports whether s is the first step.
func (s Step) IsFirst() bool { return s.Index == 0 }

// IsLast reports whether s is the last step.
func (s Step) IsLast() bool { return s.Index == s.Total-1 }

// EventKind identifies what happened to the flow.
type EventKind int

const (
	EventAdvanced EventKind = iota
	EventRetreated
	// EventComplete fires on every Advance at the last step.
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventAdvanced:
		return "advanced"
	case EventRetreated:
		return "retreated"
	case EventComplete:
		return "complete"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is delivered to subscribers after the state has changed.
type Event struct {
	Kind     EventKind
	Current  Step
	Previous Step
}

// Listener receives flow events.
type Listener func(Event)

// Controller owns the current and previous step of a linear flow.
type Controller struct {
	total     int
	current   int
	previous  int
	duration  time.Duration
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Controller.
type Option func(*Controller)

// WithDuration overrides the duration of the descriptors the controller emits.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.duration = d
	}
}

// New creates a controller positioned at step 0 of total steps.
func New(total int, opts ...Option) (*Controller, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: flow needs at least one step, got %d", transition.ErrInvalidTransition, total)
	}
	c := &Controller{
		total:    total,
		duration: transition.DefaultDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Subscribe registers l for every subsequent event and returns a function
// that removes it.
func (c *Controller) Subscribe(l Listener) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, subscription{id: id, fn: l})
	return func() {
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Advance moves to the next step and returns the forward transition. At the
// last step it leaves the index alone, notifies EventComplete and returns
// false; the owner is expected to discard the controller.
func (c *Controller) Advance() (transition.Descriptor, bool) {
	if c.current == c.total-1 {
		c.emit(EventComplete)
		return transition.Descriptor{}, false
	}
	c.previous = c.current
	c.current++
	c.emit(EventAdvanced)
	return transition.Forwards(c.duration), true
}

// Retreat moves to the previous step and returns the backward transition.
// At step 0 it does nothing and returns false.
func (c *Controller) Retreat() (transition.Descriptor, bool) {
	if c.current == 0 {
		return transition.Descriptor{}, false
	}
	c.previous = c.current
	c.current--
	c.emit(EventRetreated)
	return transition.Backwards(c.duration), true
}

// CompletionRatio returns (index+1)/total, a value in (0, 1].
func (c *Controller) CompletionRatio() float64 {
	return float64(c.current+1) / float64(c.total)
}

// Current returns the visible step.
func (c *Controller) Current() Step {
	return Step{Index: c.current, Total: c.total}
}

// Previous returns the step shown before the last move.
func (c *Controller) Previous() Step {
	return Step{Index: c.previous, Total: c.total}
}

// Total returns the number of steps.
func (c *Controller) Total() int {
	return c.total
}

func (c *Controller) emit(kind EventKind) {
	ev := Event{Kind: kind, Current: c.Current(), Previous: c.Previous()}
	// Listeners may unsubscribe while being notified.
	for _, sub := range slices.Clone(c.listeners) {
		sub.fn(ev)
	}
}
