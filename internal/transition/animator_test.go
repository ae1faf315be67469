package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatorStartSchedulesFrame(t *testing.T) {
	a := NewAnimator("test", nil)
	cmd, err := a.Start(Forwards(DefaultDuration), nil)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.True(t, a.Active())
}

func TestAnimatorRejectsBadDescriptor(t *testing.T) {
	a := NewAnimator("test", nil)
	cmd, err := a.Start(Descriptor{Direction: Forward}, nil)
	require.ErrorIs(t, err, ErrInvalidDuration)
	assert.Nil(t, cmd)
}

func TestAnimatorIgnoresOtherChannels(t *testing.T) {
	a := NewAnimator("mine", nil)
	_, err := a.Start(Forwards(DefaultDuration), nil)
	require.NoError(t, err)

	cmd, handled := a.Update(FrameMsg{Channel: "theirs", Gen: a.Driver().Generation()})
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, a.Driver().Progress())
}

func TestAnimatorDropsStaleFrames(t *testing.T) {
	a := NewAnimator("test", nil)
	_, err := a.Start(Forwards(DefaultDuration), nil)
	require.NoError(t, err)
	stale := a.Driver().Generation()

	_, err = a.Start(Forwards(DefaultDuration), nil)
	require.NoError(t, err)

	cmd, handled := a.Update(FrameMsg{Channel: "test", Gen: stale})
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, a.Driver().Progress())
}

func TestAnimatorRunsToCompletion(t *testing.T) {
	a := NewAnimator("test", nil)
	done := 0
	_, err := a.Start(Forwards(DefaultDuration), func() { done++ })
	require.NoError(t, err)

	gen := a.Driver().Generation()
	frames := 0
	for a.Active() {
		cmd, handled := a.Update(FrameMsg{Channel: "test", Gen: gen})
		require.True(t, handled)
		frames++
		if a.Active() {
			require.NotNil(t, cmd, "an active run must schedule its next frame")
		} else {
			assert.Nil(t, cmd)
		}
		require.Less(t, frames, 100)
	}

	assert.Equal(t, 1, done)
	// 300ms at 16ms per frame.
	assert.Equal(t, 19, frames)
}
