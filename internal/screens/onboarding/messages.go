package onboarding

// NextMsg asks the wizard to advance one page.
type NextMsg struct{}

// BackMsg asks the wizard to go back one page.
type BackMsg struct{}

// DoneMsg is emitted when the reader continues past the last page.
type DoneMsg struct{}
