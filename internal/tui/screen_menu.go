package tui

import (
	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var menuItems = []string{
	"My tasks",
	"Price updates",
	"Ocean freight",
	"Staff",
	"Change password",
}

type menuModel struct {
	cursor int
	status string
}

func newMenuModel() menuModel {
	return menuModel{}
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.cursor < len(menuItems)-1 {
			m.menu.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.cursor {
		case 0:
			return m.openList(listTasks)
		case 1:
			return m.openList(listPriceUpdates)
		case 2:
			return m.openList(listOceanFreight)
		case 3:
			m.currentScreen = screenStaff
			m.staff = newStaffModel()
			m.staff.loading = true
			return m, tea.Batch(m.cmdLoadStaff(), m.staff.spinner.Tick)
		case 4:
			m.currentScreen = screenPassword
			m.password = newPasswordModel()
			return m, m.password.focusCmd()
		}
	case key.Matches(keyMsg, keys.logout):
		m.confirm = confirmModel{
			question:  "Log out?",
			onConfirm: m.cmdLogout(),
		}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) openList(kind listKind) (tea.Model, tea.Cmd) {
	m.currentScreen = screenList
	m.list = newListModel()
	m.list.kind = kind
	m.list.loading = true
	return m, tea.Batch(m.cmdLoadRows(kind), m.list.spinner.Tick)
}

func (m menuModel) View(s models.Session) string {
	body := ""
	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		body += cursor + item + "\n"
	}
	if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}

	title := "Chem CRM"
	if s.Account != nil && s.Account.DisplayName != "" {
		title += " — " + s.Account.DisplayName
	}
	return renderPage(title, body, "↑/↓: move • enter: open • L: log out • q: quit")
}
