package overlay

// OpenMsg asks the overlay owner to open an overlay. Screens send it instead
// of holding a reference to the navigator.
type OpenMsg struct {
	Overlay Overlay
	Payload any
}

// CloseMsg asks the overlay owner to close an overlay.
type CloseMsg struct {
	Overlay Overlay
}

// BackMsg asks the overlay owner to close the innermost overlay.
type BackMsg struct{}
