package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) focusCmd() tea.Cmd {
	return m.inputs[m.focus].Focus()
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAuthMenu
			m.login = newLoginModel()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			return m, m.login.moveFocus(1)
		case key.Matches(keyMsg, keys.backtab):
			return m, m.login.moveFocus(-1)
		case key.Matches(keyMsg, keys.enter):
			if m.login.focus < len(m.login.inputs)-1 {
				return m, m.login.moveFocus(1)
			}
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.showErrorf("Email and password are required.")
				return m, nil
			}
			m.login.submitting = true
			m.login.status = ""
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m loginModel) View() string {
	body := "Email:    " + m.inputs[0].View() + "\n" +
		"Password: " + m.inputs[1].View()
	if m.submitting {
		body += "\n\n" + statusStyle.Render("Signing in…")
	} else if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	return renderPage("Log in", body, "tab: next field • enter: submit • esc: back")
}
