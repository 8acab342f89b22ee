package ui

// pagerExitMsg reports the pager returning control to the UI
type pagerExitMsg struct {
	content string
	err     error
}

// quitMsg signals that the application should quit
type quitMsg struct{}
