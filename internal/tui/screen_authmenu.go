package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var authMenuItems = []string{"Log in", "Sign up", "Forgot password"}

type authMenuModel struct {
	cursor int
}

func newAuthMenuModel() authMenuModel {
	return authMenuModel{}
}

func (m appModel) updateAuthMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.authMenu.cursor > 0 {
			m.authMenu.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.authMenu.cursor < len(authMenuItems)-1 {
			m.authMenu.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.authMenu.cursor {
		case 0:
			m.currentScreen = screenLogin
			return m, m.login.focusCmd()
		case 1:
			m.currentScreen = screenSignup
			return m, m.signup.focusCmd()
		case 2:
			m.currentScreen = screenForgot
			return m, m.forgot.focusCmd()
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m authMenuModel) View() string {
	body := ""
	for i, item := range authMenuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		body += cursor + item + "\n"
	}
	return renderPage("Chem CRM", body, "↑/↓: move • enter: select • q: quit")
}
