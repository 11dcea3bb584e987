package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
)

type splashModel struct {
	spinner spinner.Model
}

func newSplashModel() splashModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return splashModel{spinner: s}
}

func (m splashModel) View() string {
	return renderPage("Chem CRM", m.spinner.View()+" Connecting…", "")
}
