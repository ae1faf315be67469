package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinkapp/blink/internal/transition"
)

var t0 = time.Date(2025, 10, 19, 9, 41, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func newTestSwipe() *Swipe {
	return NewSwipe(DefaultSwipeConfig(350))
}

func TestSlowDragPastDistanceThresholdCommits(t *testing.T) {
	s := newTestSwipe()
	s.Begin(350, 10, at(0), false)
	s.Move(300, 10, at(200))
	s.Move(245, 10, at(400))
	assert.Equal(t, SwipeDragging, s.State())
	assert.InDelta(t, -0.30, s.Progress(), 1e-9)

	d := s.End(at(420))
	assert.Equal(t, ActionOpen, d.Action)
	assert.Equal(t, SwipeCommitting, s.State())
	assert.Equal(t, transition.Forward, d.Transition.Direction)
	assert.InDelta(t, 0.30, d.From, 1e-9)
	assert.Equal(t, -1.0, d.Target)

	s.Settle()
	assert.Equal(t, SwipeIdle, s.State())
	assert.Equal(t, -1.0, s.Progress())
}

func TestShortSlowDragSnapsBack(t *testing.T) {
	s := newTestSwipe()
	s.Begin(350, 10, at(0), false)
	s.Move(297.5, 10, at(300))
	assert.InDelta(t, -0.15, s.Progress(), 1e-9)

	d := s.End(at(320))
	assert.Equal(t, ActionNone, d.Action)
	assert.Equal(t, SwipeSnappingBack, s.State())
	assert.Equal(t, transition.Backward, d.Transition.Direction)
	assert.InDelta(t, 0.85, d.From, 1e-9)
	assert.Equal(t, 0.0, d.Target)

	s.Settle()
	assert.Equal(t, 0.0, s.Progress())
}

func TestFlickCommitsOnVelocity(t *testing.T) {
	s := newTestSwipe()
	s.Begin(350, 10, at(0), false)
	s.Move(340, 10, at(20))
	s.Move(320, 10, at(40))
	require.Less(t, s.Displacement(), DefaultDistanceThreshold)
	assert.InDelta(t, -1.0, s.Velocity(), 1e-9)

	d := s.End(at(50))
	assert.Equal(t, ActionOpen, d.Action)
}

func TestPausedFlickLosesVelocity(t *testing.T) {
	s := newTestSwipe()
	s.Begin(350, 10, at(0), false)
	s.Move(340, 10, at(20))
	s.Move(320, 10, at(40))

	d := s.End(at(300))
	assert.Equal(t, ActionNone, d.Action)
}

func TestDirectionLock(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		engage bool
	}{
		{"inside lock", 345, 10, false},
		{"vertical dominates", 340, 40, false},
		{"wrong direction", 380, 10, false},
		{"past lock", 341, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSwipe()
			s.Begin(350, 10, at(0), false)
			s.Move(tt.x, tt.y, at(100))
			if tt.engage {
				assert.Equal(t, SwipeDragging, s.State())
				return
			}
			assert.Equal(t, SwipeIdle, s.State())
			assert.Equal(t, 0.0, s.Progress())

			d := s.End(at(110))
			assert.Equal(t, ActionNone, d.Action)
			assert.True(t, d.Transition.IsZero())
			assert.Equal(t, SwipeIdle, s.State())
		})
	}
}

func TestDragIsClampedToAllowedDirection(t *testing.T) {
	s := newTestSwipe()
	s.Begin(350, 10, at(0), false)
	s.Move(330, 10, at(100))
	s.Move(400, 10, at(200))
	assert.Equal(t, 0.0, s.Progress())

	s.Move(-500, 10, at(300))
	assert.Equal(t, -1.0, s.Progress())
}

func TestClosingDragFromOpenState(t *testing.T) {
	s := newTestSwipe()
	s.Begin(0, 10, at(0), true)
	assert.Equal(t, -1.0, s.Progress())

	s.Move(60, 10, at(200))
	s.Move(120, 10, at(400))
	assert.InDelta(t, -1+120.0/350, s.Progress(), 1e-9)

	d := s.End(at(410))
	assert.Equal(t, ActionClose, d.Action)
	assert.Equal(t, transition.Backward, d.Transition.Direction)
	assert.InDelta(t, 120.0/350, d.From, 1e-9)
	assert.Equal(t, 0.0, d.Target)
}

func TestCancelSnapsBack(t *testing.T) {
	s := newTestSwipe()
	s.Begin(350, 10, at(0), false)
	s.Move(200, 10, at(300))

	d := s.Cancel()
	assert.Equal(t, ActionNone, d.Action)
	assert.Equal(t, SwipeSnappingBack, s.State())
	assert.False(t, s.Tracking())
}

func TestEndWithoutBeginIsNoop(t *testing.T) {
	s := newTestSwipe()
	d := s.End(at(0))
	assert.Equal(t, ActionNone, d.Action)
	assert.Equal(t, SwipeIdle, s.State())
}

func TestApplyDecision(t *testing.T) {
	n := NewNavigator()

	d, err := Apply(n, Decision{Action: ActionOpen})
	require.NoError(t, err)
	assert.Equal(t, transition.Forward, d.Direction)
	assert.True(t, n.IsOpen(Saved))

	d, err = Apply(n, Decision{Action: ActionNone})
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.True(t, n.IsOpen(Saved))

	d, err = Apply(n, Decision{Action: ActionClose})
	require.NoError(t, err)
	assert.Equal(t, transition.Backward, d.Direction)
	assert.False(t, n.IsOpen(Saved))
}

func TestApplyOpenWhileDetailShowing(t *testing.T) {
	n := NewNavigator()
	_, err := n.Open(Detail, nil)
	require.NoError(t, err)

	_, err = Apply(n, Decision{Action: ActionOpen})
	require.ErrorIs(t, err, transition.ErrInvalidTransition)
	assert.False(t, n.IsOpen(Saved))
}
