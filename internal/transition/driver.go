package transition

import (
	"fmt"
	"time"
)

// Driver interpolates a single progress value from 0 to 1 over the duration
// of a Descriptor and calls a completion callback exactly once when it gets
// there. At most one run is in flight; starting another supersedes it.
//
// A Driver is not safe for concurrent use. Bubble Tea delivers every message
// to Update on one goroutine, which is where drivers are stepped.
type Driver struct {
	curve Curve

	gen        uint64
	running    bool
	direction  Direction
	from       float64
	value      float64
	elapsed    time.Duration
	remaining  time.Duration
	onComplete func()
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithCurve sets the easing curve. The default is EaseOutCubic.
func WithCurve(c Curve) DriverOption {
	return func(d *Driver) {
		if c != nil {
			d.curve = c
		}
	}
}

// NewDriver creates an idle driver resting at progress 1.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{
		curve: EaseOutCubic,
		value: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run starts animating desc. If a run is already in flight its callback is
// dropped and never fires. A run that reverses the in-flight direction
// resumes from the mirrored position so neither screen jumps; a run in the
// same direction starts from 0.
func (d *Driver) Run(desc Descriptor, onComplete func()) error {
	from := 0.0
	if d.running && desc.Direction != d.direction {
		from = 1 - d.value
	}
	return d.RunFrom(desc, from, onComplete)
}

// RunFrom starts animating desc from an explicit progress value, used when a
// gesture hands over a partially completed transition. The duration is
// scaled by the distance left to travel.
func (d *Driver) RunFrom(desc Descriptor, from float64, onComplete func()) error {
	if desc.Duration <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidDuration, desc.Duration)
	}
	from = clamp01(from)

	d.gen++
	d.running = true
	d.direction = desc.Direction
	d.from = from
	d.value = from
	d.elapsed = 0
	d.remaining = time.Duration(float64(desc.Duration) * (1 - from))
	if d.remaining <= 0 {
		// Already at the destination: finish on the next frame.
		d.remaining = time.Nanosecond
	}
	d.onComplete = onComplete
	return nil
}

// Advance moves the animation clock forward by dt.
func (d *Driver) Advance(dt time.Duration) {
	if !d.running || dt <= 0 {
		return
	}

	d.elapsed += dt
	t := float64(d.elapsed) / float64(d.remaining)
	if t < 1 {
		next := d.from + (1-d.from)*d.curve(t)
		if next > d.value {
			d.value = next
		}
		return
	}

	d.value = 1
	d.running = false
	cb := d.onComplete
	d.onComplete = nil
	if cb != nil {
		cb()
	}
}

// Progress returns the current progress in [0, 1].
func (d *Driver) Progress() float64 {
	return d.value
}

// Running reports whether a run is in flight.
func (d *Driver) Running() bool {
	return d.running
}

// Direction returns the direction of the current or last run.
func (d *Driver) Direction() Direction {
	return d.direction
}

// Generation increments on every Run. Frame sources use it to recognise
// ticks scheduled for a superseded run.
func (d *Driver) Generation() uint64 {
	return d.gen
}

// Offsets returns the horizontal positions of the outgoing and incoming
// screens as fractions of the viewport width. 0 is on screen, negative is
// off to the left, positive off to the right. Both derive from the same
// progress value so the screens move in lockstep.
func (d *Driver) Offsets() (outgoing, incoming float64) {
	p := d.value
	if d.direction == Backward {
		return p, p - 1
	}
	return -p, 1 - p
}
