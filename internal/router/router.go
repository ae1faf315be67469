package router

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/blinkapp/blink/internal/screen"
	"github.com/blinkapp/blink/internal/transition"
	"github.com/blinkapp/blink/internal/ui/components"
)

// Channel is the animation channel of router transitions.
const Channel = "router"

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router manages a stack of screens and slides between them.
type Router struct {
	stack    []screen.Screen
	outgoing screen.Screen
	anim     *transition.Animator
	duration time.Duration
	size     *tea.WindowSizeMsg
}

// Option configures a Router.
type Option func(*Router)

// WithDuration sets the slide duration. Zero disables animation.
func WithDuration(d time.Duration) Option {
	return func(r *Router) {
		r.duration = d
	}
}

// WithCurve sets the slide easing curve.
func WithCurve(c transition.Curve) Option {
	return func(r *Router) {
		r.anim = transition.NewAnimator(Channel, transition.NewDriver(transition.WithCurve(c)))
	}
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen, opts ...Option) *Router {
	r := &Router{
		stack:    []screen.Screen{initial},
		duration: transition.DefaultDuration,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.anim == nil {
		r.anim = transition.NewAnimator(Channel, nil)
	}
	return r
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	prev := r.Active()
	r.stack = append(r.stack, s)
	return tea.Batch(r.enter(), r.slide(prev, transition.Forward))
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	popped := r.Active()
	r.stack = r.stack[:len(r.stack)-1]
	return r.slide(popped, transition.Backward)
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	old := r.Active()
	r.stack[len(r.stack)-1] = s
	return tea.Batch(r.enter(), r.slide(old, transition.Forward))
}

// enter initialises the new top screen and tells it the window size seen so
// far, since the program only reports a resize once.
func (r *Router) enter() tea.Cmd {
	top := len(r.stack) - 1
	cmd := r.stack[top].Init()
	if r.size == nil {
		return cmd
	}
	updated, sizeCmd := r.stack[top].Update(*r.size)
	r.stack[top] = updated
	return tea.Batch(cmd, sizeCmd)
}

func (r *Router) slide(outgoing screen.Screen, dir transition.Direction) tea.Cmd {
	if outgoing == nil || r.duration <= 0 {
		return nil
	}
	r.outgoing = outgoing
	cmd, err := r.anim.Start(transition.Descriptor{Direction: dir, Duration: r.duration}, func() {
		r.outgoing = nil
	})
	if err != nil {
		r.outgoing = nil
		return nil
	}
	return cmd
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Animating reports whether a slide is in flight.
func (r *Router) Animating() bool {
	return r.outgoing != nil && r.anim.Active()
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if cmd, ok := r.anim.Update(msg); ok {
		return cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.size = &msg
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen, composited with the outgoing one while a
// slide is in flight.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	if !r.Animating() {
		return active.View(width, height)
	}
	out, in := r.anim.Driver().Offsets()
	return components.Slide(r.outgoing.View(width, height), active.View(width, height), width, height, out, in)
}
