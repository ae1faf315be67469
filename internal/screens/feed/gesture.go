package feed

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/blinkapp/blink/internal/overlay"
)

// mouse drives the saved-panel swipe from mouse drags. A right click closes
// the innermost overlay.
func (m *Model) mouse(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseRight {
			return func() tea.Msg { return overlay.BackMsg{} }
		}
		if msg.Button != tea.MouseLeft || !m.canSwipe() {
			return nil
		}
		m.swipe.Begin(float64(msg.X), float64(msg.Y), m.now(), m.nav.IsOpen(overlay.Saved))

	case tea.MouseMotionMsg:
		m.swipe.Move(float64(msg.X), float64(msg.Y), m.now())

	case tea.MouseReleaseMsg:
		if !m.swipe.Tracking() {
			return nil
		}
		return m.settle(m.swipe.End(m.now()))
	}
	return nil
}

// canSwipe reports whether a drag may start: the window size is known, the
// feed or the saved panel is on top and nothing is sliding.
func (m *Model) canSwipe() bool {
	if m.clock != nil || m.anim.Active() || m.width <= 0 {
		return false
	}
	k := m.nav.Top().Kind
	return k == overlay.None || k == overlay.SavedNews
}

// settle applies a released gesture and animates the rest of the way,
// continuing the drag on commit or reversing it on snap back.
func (m *Model) settle(d overlay.Decision) tea.Cmd {
	if d.Transition.IsZero() {
		m.swipe.Settle()
		return nil
	}
	if _, err := overlay.Apply(m.nav, d); err != nil {
		m.reject(overlay.Saved, err)
		m.swipe.Settle()
		return nil
	}

	switch d.Action {
	case overlay.ActionOpen:
		m.log.Info("overlay opened", slog.String("overlay", overlay.Saved.String()), slog.String("via", "swipe"))
	case overlay.ActionClose:
		m.log.Info("overlay closed", slog.String("overlay", overlay.Saved.String()), slog.String("via", "swipe"))
	}

	// The other half of the feed/saved pair is the one leaving the screen.
	from := layer{kind: savedLayer}
	if m.nav.IsOpen(overlay.Saved) {
		from = layer{kind: feedLayer}
	}
	return m.slideFrom(from, d.Transition, d.From, m.swipe.Settle)
}
