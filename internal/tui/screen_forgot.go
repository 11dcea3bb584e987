package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type forgotModel struct {
	input      textinput.Model
	submitting bool
	status     string
}

func newForgotModel() forgotModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	return forgotModel{input: email}
}

func (m forgotModel) focusCmd() tea.Cmd {
	return m.input.Focus()
}

func (m appModel) updateForgot(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAuthMenu
			m.forgot = newForgotModel()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.forgot.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.forgot.input.Value())
			if email == "" {
				m.showErrorf("Email is required.")
				return m, nil
			}
			m.forgot.submitting = true
			m.forgot.status = ""
			return m, m.cmdForgotPassword(email)
		}
	}

	var cmd tea.Cmd
	m.forgot.input, cmd = m.forgot.input.Update(msg)
	return m, cmd
}

func (m forgotModel) View() string {
	body := "Email: " + m.input.View()
	if m.submitting {
		body += "\n\n" + statusStyle.Render("Sending…")
	} else if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	return renderPage("Forgot password", body, "enter: send reset email • esc: back")
}
