package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type signupModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newSignupModel() signupModel {
	name := textinput.New()
	name.Placeholder = "display name"
	name.CharLimit = 128

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '•'

	return signupModel{inputs: []textinput.Model{name, email, password, repeat}}
}

func (m signupModel) focusCmd() tea.Cmd {
	return m.inputs[m.focus].Focus()
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAuthMenu
			m.signup = newSignupModel()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			return m, m.signup.moveFocus(1)
		case key.Matches(keyMsg, keys.backtab):
			return m, m.signup.moveFocus(-1)
		case key.Matches(keyMsg, keys.enter):
			if m.signup.focus < len(m.signup.inputs)-1 {
				return m, m.signup.moveFocus(1)
			}
			if m.signup.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.signup.inputs[0].Value())
			email := strings.TrimSpace(m.signup.inputs[1].Value())
			password := m.signup.inputs[2].Value()
			repeat := m.signup.inputs[3].Value()
			if name == "" || email == "" || password == "" {
				m.showErrorf("All fields are required.")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("Passwords do not match.")
				return m, nil
			}
			m.signup.submitting = true
			return m, m.cmdSignup(email, password, name)
		}
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

func (m *signupModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m signupModel) View() string {
	body := "Name:            " + m.inputs[0].View() + "\n" +
		"Email:           " + m.inputs[1].View() + "\n" +
		"Password:        " + m.inputs[2].View() + "\n" +
		"Repeat password: " + m.inputs[3].View()
	if m.submitting {
		body += "\n\n" + statusStyle.Render("Creating account…")
	}
	return renderPage("Sign up", body, "tab: next field • enter: submit • esc: back")
}
