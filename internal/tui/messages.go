package tui

// RefreshDataMsg tells a screen to reload its data from the stores
type RefreshDataMsg struct{}
