package transition

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FrameInterval is the animation clock resolution (~60fps).
const FrameInterval = 16 * time.Millisecond

// FrameMsg is one animation-clock tick for the animator on Channel.
type FrameMsg struct {
	Channel string
	Gen     uint64
}

// Animator pumps Bubble Tea ticks into a Driver. Each animator owns one
// transition channel; a new Start supersedes the previous run and the
// previous run's pending frames are discarded when they arrive.
type Animator struct {
	channel  string
	driver   *Driver
	interval time.Duration
}

// NewAnimator creates an animator for channel. A nil driver gets a default one.
func NewAnimator(channel string, d *Driver) *Animator {
	if d == nil {
		d = NewDriver()
	}
	return &Animator{
		channel:  channel,
		driver:   d,
		interval: FrameInterval,
	}
}

// Driver returns the underlying driver.
func (a *Animator) Driver() *Driver {
	return a.driver
}

// Channel returns the channel name carried by this animator's frames.
func (a *Animator) Channel() string {
	return a.channel
}

// Active reports whether a transition is in flight.
func (a *Animator) Active() bool {
	return a.driver.Running()
}

// Start runs desc and returns the command that schedules its first frame.
// onComplete runs inside Update once the final frame lands.
func (a *Animator) Start(desc Descriptor, onComplete func()) (tea.Cmd, error) {
	if err := a.driver.Run(desc, onComplete); err != nil {
		return nil, err
	}
	return a.frame(a.driver.Generation()), nil
}

// StartFrom is Start for a transition already partially completed by a
// gesture.
func (a *Animator) StartFrom(desc Descriptor, from float64, onComplete func()) (tea.Cmd, error) {
	if err := a.driver.RunFrom(desc, from, onComplete); err != nil {
		return nil, err
	}
	return a.frame(a.driver.Generation()), nil
}

// Update consumes frames addressed to this animator. The bool reports
// whether msg belonged to it.
func (a *Animator) Update(msg tea.Msg) (tea.Cmd, bool) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.Channel != a.channel {
		return nil, false
	}
	if fm.Gen != a.driver.Generation() || !a.driver.Running() {
		return nil, true
	}

	a.driver.Advance(a.interval)
	if a.driver.Running() && a.driver.Generation() == fm.Gen {
		return a.frame(fm.Gen), true
	}
	return nil, true
}

func (a *Animator) frame(gen uint64) tea.Cmd {
	channel := a.channel
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return FrameMsg{Channel: channel, Gen: gen}
	})
}
