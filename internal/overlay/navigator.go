// Package overlay tracks which full-screen overlay sits above the news feed.
// There is one primary overlay slot (news detail, settings or saved news)
// and a settings sub-page slot that is only usable while settings is open.
package overlay

import (
	"fmt"
	"time"

	"github.com/blinkapp/blink/internal/transition"
)

// Kind names an overlay.
type Kind int

const (
	None Kind = iota
	NewsDetail
	Settings
	SavedNews
	SettingsSubScreen
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case NewsDetail:
		return "newsDetail"
	case Settings:
		return "settings"
	case SavedNews:
		return "savedNews"
	case SettingsSubScreen:
		return "settingsSubScreen"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsPrimary reports whether k occupies the primary slot.
func (k Kind) IsPrimary() bool {
	return k == NewsDetail || k == Settings || k == SavedNews
}

// Overlay identifies an overlay. Sub is the page ID for SettingsSubScreen
// and empty otherwise.
type Overlay struct {
	Kind Kind
	Sub  string
}

// Primary overlays.
var (
	Detail = Overlay{Kind: NewsDetail}
	Menu   = Overlay{Kind: Settings}
	Saved  = Overlay{Kind: SavedNews}
)

// SubScreen returns the settings sub-page overlay with the given ID.
func SubScreen(id string) Overlay {
	return Overlay{Kind: SettingsSubScreen, Sub: id}
}

func (o Overlay) String() string {
	if o.Kind == SettingsSubScreen {
		return fmt.Sprintf("%s(%s)", o.Kind, o.Sub)
	}
	return o.Kind.String()
}

// TransitionError is returned when a caller asks for a navigation the
// overlay state machine does not allow.
type TransitionError struct {
	Op        string
	Active    Overlay
	Requested Overlay
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: cannot %s %s while %s is active", transition.ErrInvalidTransition, e.Op, e.Requested, e.Active)
}

func (e *TransitionError) Unwrap() error { return transition.ErrInvalidTransition }

// Navigator is the single source of truth for the visible overlay.
type Navigator struct {
	primary  Kind
	payload  any
	sub      string
	duration time.Duration
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithDuration overrides the duration of emitted descriptors.
func WithDuration(d time.Duration) Option {
	return func(n *Navigator) {
		n.duration = d
	}
}

// NewNavigator returns a navigator with nothing open.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{duration: transition.DefaultDuration}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Open shows o with the optional payload and returns the forward transition.
// Opening a primary overlay while a different one is open, or a settings
// sub-page outside settings, fails with a *TransitionError and leaves the
// state unchanged. Re-opening the overlay that is already showing only
// replaces its payload and returns a zero descriptor.
func (n *Navigator) Open(o Overlay, payload any) (transition.Descriptor, error) {
	switch {
	case o.Kind.IsPrimary():
		if n.primary == o.Kind {
			n.payload = payload
			return transition.Descriptor{}, nil
		}
		if n.primary != None {
			return transition.Descriptor{}, n.reject("open", o)
		}
		n.primary = o.Kind
		n.payload = payload
		return n.forward(), nil

	case o.Kind == SettingsSubScreen:
		if n.primary != Settings || o.Sub == "" {
			return transition.Descriptor{}, n.reject("open", o)
		}
		if n.sub == o.Sub {
			return transition.Descriptor{}, nil
		}
		if n.sub != "" {
			return transition.Descriptor{}, n.reject("open", o)
		}
		n.sub = o.Sub
		return n.forward(), nil
	}
	return transition.Descriptor{}, n.reject("open", o)
}

// Close hides o and returns the backward transition. Closing settings also
// closes its sub-page. Closing an overlay that is not open returns false.
func (n *Navigator) Close(o Overlay) (transition.Descriptor, bool) {
	if !n.IsOpen(o) {
		return transition.Descriptor{}, false
	}
	if o.Kind == SettingsSubScreen {
		n.sub = ""
		return n.backward(), true
	}
	n.sub = ""
	n.primary = None
	n.payload = nil
	return n.backward(), true
}

// Back closes whatever is on top: the settings sub-page if there is one,
// otherwise the primary overlay.
func (n *Navigator) Back() (Overlay, transition.Descriptor, bool) {
	top := n.Top()
	if top.Kind == None {
		return top, transition.Descriptor{}, false
	}
	d, ok := n.Close(top)
	return top, d, ok
}

// IsOpen reports whether o is visible. SubScreen("") matches any open
// settings sub-page.
func (n *Navigator) IsOpen(o Overlay) bool {
	switch {
	case o.Kind.IsPrimary():
		return n.primary == o.Kind
	case o.Kind == SettingsSubScreen:
		return n.sub != "" && (o.Sub == "" || o.Sub == n.sub)
	}
	return false
}

// Active returns the primary overlay, or None.
func (n *Navigator) Active() Overlay {
	return Overlay{Kind: n.primary}
}

// Top returns the innermost visible overlay.
func (n *Navigator) Top() Overlay {
	if n.sub != "" {
		return SubScreen(n.sub)
	}
	return n.Active()
}

// SubScreenID returns the open settings sub-page, if any.
func (n *Navigator) SubScreenID() (string, bool) {
	return n.sub, n.sub != ""
}

// Payload returns the payload of the primary overlay.
func (n *Navigator) Payload() any {
	return n.payload
}

func (n *Navigator) reject(op string, o Overlay) error {
	return &TransitionError{Op: op, Active: n.Top(), Requested: o}
}

func (n *Navigator) forward() transition.Descriptor {
	return transition.Forwards(n.duration)
}

func (n *Navigator) backward() transition.Descriptor {
	return transition.Backwards(n.duration)
}
