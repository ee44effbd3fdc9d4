package tui

import "time"

// TickMsg is delivered by the timer subscription identified by Gen.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// VisibilityMsg tells the model the display was hidden or shown by the host.
type VisibilityMsg struct {
	Visible bool
}
