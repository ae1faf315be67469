// Package prefs holds the reader's choices for the lifetime of the program.
// Nothing here is persisted.
package prefs

import (
	"errors"
	"fmt"
	"slices"
)

// FeedSizes are the selectable headline counts.
var FeedSizes = []int{3, 6, 9, 12, 15}

// Topics are the followable categories.
var Topics = []string{"Business", "Science & Tech", "Music", "Film & Media", "Breaking News", "Art", "Fashion"}

// Referrals are the answers to "Where did you hear about us?".
var Referrals = []string{"App Store", "TikTok", "Instagram", "X", "YouTube", "Google"}

// Languages are the selectable interface languages.
var Languages = []string{"English", "Deutsch", "Español", "Français", "Italiano"}

// ErrInvalidFeedSize is returned for a feed size outside FeedSizes.
var ErrInvalidFeedSize = errors.New("invalid feed size")

// Clock is a wall-clock time of day with minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// String formats c as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Add returns c moved by minutes, wrapping around midnight.
func (c Clock) Add(minutes int) Clock {
	total := ((c.Hour*60+c.Minute+minutes)%1440 + 1440) % 1440
	return Clock{Hour: total / 60, Minute: total % 60}
}

// Preferences are the reader's choices.
type Preferences struct {
	StartTime     Clock
	EndTime       Clock
	FeedSize      int
	Categories    []string
	Referral      string
	Notifications bool
	Language      string
}

// Default returns the preferences before onboarding.
func Default() *Preferences {
	return &Preferences{
		StartTime: Clock{Hour: 9, Minute: 41},
		EndTime:   Clock{Hour: 18},
		FeedSize:  FeedSizes[0],
		Language:  Languages[0],
	}
}

// SetFeedSize sets the headline count.
func (p *Preferences) SetFeedSize(n int) error {
	if !slices.Contains(FeedSizes, n) {
		return fmt.Errorf("%w: %d", ErrInvalidFeedSize, n)
	}
	p.FeedSize = n
	return nil
}

// SetCategories replaces the followed categories, keeping Topics order.
func (p *Preferences) SetCategories(cats []string) {
	out := make([]string, 0, len(cats))
	for _, t := range Topics {
		if slices.Contains(cats, t) {
			out = append(out, t)
		}
	}
	p.Categories = out
}

// Follows reports whether category is followed.
func (p *Preferences) Follows(category string) bool {
	return slices.Contains(p.Categories, category)
}

// Window formats the reading window.
func (p *Preferences) Window() string {
	return p.StartTime.String() + "–" + p.EndTime.String()
}

// FeedSizeLabel describes a feed size.
func FeedSizeLabel(n int) string {
	switch n {
	case 6:
		return "Moderate"
	case 9:
		return "Detailed"
	case 12:
		return "Comprehensive"
	case 15:
		return "Extensive"
	default:
		return "Balanced"
	}
}
