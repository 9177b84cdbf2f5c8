package app

// Message types for the bubbletea app.

// ToastExpiredMsg is sent when the selection toast should disappear.
type ToastExpiredMsg struct {
	ID int
}
