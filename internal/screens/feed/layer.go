package feed

import (
	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/screens/detail"
	"github.com/blinkapp/blink/internal/screens/settings"
)

type layerKind int

const (
	feedLayer layerKind = iota
	detailLayer
	savedLayer
	menuLayer
	subLayer
	clockLayer
)

// layer is something the feed can render full-screen. Outgoing layers keep
// the references they need after the state that produced them is gone.
type layer struct {
	kind   layerKind
	sub    string
	detail *detail.Model
	clock  *clockFlow
	step   int
}

func (m *Model) top() layer {
	if m.clock != nil {
		return layer{kind: clockLayer, clock: m.clock, step: m.clock.ctrl.Current().Index}
	}
	switch t := m.nav.Top(); t.Kind {
	case overlay.NewsDetail:
		return layer{kind: detailLayer, detail: m.detail}
	case overlay.Settings:
		return layer{kind: menuLayer}
	case overlay.SettingsSubScreen:
		return layer{kind: subLayer, sub: t.Sub}
	case overlay.SavedNews:
		return layer{kind: savedLayer}
	}
	return layer{kind: feedLayer}
}

func (l layer) title(m *Model) string {
	switch l.kind {
	case detailLayer:
		if l.detail != nil {
			return l.detail.Item().Category
		}
	case savedLayer:
		return "Saved"
	case menuLayer:
		return "Settings"
	case subLayer:
		return settings.TitleOf(l.sub)
	case clockLayer:
		return "Reading Window"
	}
	return "Headlines"
}

func (m *Model) render(l layer, width, height int) string {
	switch l.kind {
	case detailLayer:
		if l.detail != nil {
			return l.detail.View(width, height)
		}
	case savedLayer:
		return m.saved.View(width, height)
	case menuLayer:
		return m.settings.ViewMenu(width, height)
	case subLayer:
		return m.settings.ViewPage(width, height)
	case clockLayer:
		return l.clock.pages[l.step].View(width, height)
	}
	return m.viewFeed(width, height)
}
