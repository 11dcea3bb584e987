package tui

import "github.com/MKhiriev/go-chem-crm/models"

// sessionChangedMsg is injected from outside the program whenever the session
// manager reports a transition.
type sessionChangedMsg struct {
	session models.Session
}

type loginResultMsg struct {
	err error
}

type signupResultMsg struct {
	err error
}

type resetResultMsg struct {
	err error
}

type passwordChangedMsg struct {
	err error
}

type logoutDoneMsg struct{}

type rowsLoadedMsg struct {
	kind listKind
	rows []listRow
	err  error
}

type rowSavedMsg struct {
	kind listKind
	err  error
}

type rowDeletedMsg struct {
	kind listKind
	err  error
}

type staffLoadedMsg struct {
	staff []models.StaffUser
	err   error
}

type staffSavedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
