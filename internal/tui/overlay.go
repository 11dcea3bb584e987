package tui

import tea "github.com/charmbracelet/bubbletea"

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\n" + helpStyle.Render("enter/esc: dismiss"))
}

// confirmModel is a yes/no prompt; onConfirm fires when the user accepts.
type confirmModel struct {
	question  string
	onConfirm tea.Cmd
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.question + "\n\n" + helpStyle.Render("y: yes • n/esc: no"))
}
