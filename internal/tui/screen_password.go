package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type passwordModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newPasswordModel() passwordModel {
	current := textinput.New()
	current.Placeholder = "current password"
	current.EchoMode = textinput.EchoPassword
	current.EchoCharacter = '•'

	next := textinput.New()
	next.Placeholder = "new password"
	next.EchoMode = textinput.EchoPassword
	next.EchoCharacter = '•'

	repeat := textinput.New()
	repeat.Placeholder = "repeat new password"
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '•'

	return passwordModel{inputs: []textinput.Model{current, next, repeat}}
}

func (m passwordModel) focusCmd() tea.Cmd {
	return m.inputs[m.focus].Focus()
}

func (m appModel) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			m.password = newPasswordModel()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			return m, m.password.moveFocus(1)
		case key.Matches(keyMsg, keys.backtab):
			return m, m.password.moveFocus(-1)
		case key.Matches(keyMsg, keys.enter):
			if m.password.focus < len(m.password.inputs)-1 {
				return m, m.password.moveFocus(1)
			}
			if m.password.submitting {
				return m, nil
			}
			current := m.password.inputs[0].Value()
			next := m.password.inputs[1].Value()
			repeat := m.password.inputs[2].Value()
			if current == "" || next == "" {
				m.showErrorf("Both passwords are required.")
				return m, nil
			}
			if next != repeat {
				m.showErrorf("New passwords do not match.")
				return m, nil
			}
			m.password.submitting = true
			return m, m.cmdChangePassword(current, next)
		}
	}

	var cmd tea.Cmd
	m.password.inputs[m.password.focus], cmd = m.password.inputs[m.password.focus].Update(msg)
	return m, cmd
}

func (m *passwordModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m passwordModel) View() string {
	body := "Current:  " + m.inputs[0].View() + "\n" +
		"New:      " + m.inputs[1].View() + "\n" +
		"Repeat:   " + m.inputs[2].View()
	if m.submitting {
		body += "\n\n" + statusStyle.Render("Changing password…")
	}
	return renderPage("Change password", body, "tab: next field • enter: submit • esc: back")
}
