package tui

import (
	"strings"

	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	staffRoles    = []string{models.StaffRoleUser, models.StaffRoleManager, models.StaffRoleAdministrator}
	staffStatuses = []string{models.StaffStatusPending, models.StaffStatusActive, models.StaffStatusInactive}
)

type staffModel struct {
	rows       []models.StaffUser
	cursor     int
	loading    bool
	adding     bool
	submitting bool

	inputs    []textinput.Model
	focus     int
	roleIndex int

	spinner spinner.Model
}

func newStaffModel() staffModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 128

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "initial password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot

	return staffModel{
		inputs:  []textinput.Model{name, email, password},
		spinner: s,
	}
}

func (m *staffModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *staffModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.roleIndex = 0
}

func (m *staffModel) moveFocus(delta int) tea.Cmd {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	// The role picker sits after the text inputs as a virtual field.
	fields := len(m.inputs) + 1
	m.focus = (m.focus + delta + fields) % fields
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func cycle(values []string, current string, delta int) string {
	for i, v := range values {
		if v == current {
			return values[(i+delta+len(values))%len(values)]
		}
	}
	return values[0]
}

func (m appModel) updateStaff(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.staff.adding {
		return m.updateStaffForm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.staff.cursor > 0 {
			m.staff.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.staff.cursor < len(m.staff.rows)-1 {
			m.staff.cursor++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.staff.adding = true
		m.staff.resetForm()
		return m, m.staff.inputs[0].Focus()
	case key.Matches(keyMsg, keys.role):
		if len(m.staff.rows) == 0 {
			return m, nil
		}
		user := m.staff.rows[m.staff.cursor]
		user.Role = cycle(staffRoles, user.Role, 1)
		return m, m.cmdUpdateStaff(user)
	case key.Matches(keyMsg, keys.status):
		if len(m.staff.rows) == 0 {
			return m, nil
		}
		user := m.staff.rows[m.staff.cursor]
		user.Status = cycle(staffStatuses, user.Status, 1)
		return m, m.cmdUpdateStaff(user)
	case key.Matches(keyMsg, keys.delete):
		if len(m.staff.rows) == 0 {
			return m, nil
		}
		user := m.staff.rows[m.staff.cursor]
		m.confirm = confirmModel{
			question:  "Remove " + user.Name + " from staff?",
			onConfirm: m.cmdDeleteStaff(user.ID),
		}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateStaffForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.staff.adding = false
		m.staff.resetForm()
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		return m, m.staff.moveFocus(1)
	case key.Matches(keyMsg, keys.backtab):
		return m, m.staff.moveFocus(-1)
	case keyMsg.Type == tea.KeyLeft:
		if m.staff.focus == len(m.staff.inputs) {
			m.staff.roleIndex = (m.staff.roleIndex - 1 + len(staffRoles)) % len(staffRoles)
			return m, nil
		}
	case keyMsg.Type == tea.KeyRight:
		if m.staff.focus == len(m.staff.inputs) {
			m.staff.roleIndex = (m.staff.roleIndex + 1) % len(staffRoles)
			return m, nil
		}
	case key.Matches(keyMsg, keys.enter):
		if m.staff.focus < len(m.staff.inputs) {
			return m, m.staff.moveFocus(1)
		}
		if m.staff.submitting {
			return m, nil
		}
		name := strings.TrimSpace(m.staff.inputs[0].Value())
		email := strings.TrimSpace(m.staff.inputs[1].Value())
		password := m.staff.inputs[2].Value()
		if name == "" || email == "" || password == "" {
			m.showErrorf("Name, email and password are required.")
			return m, nil
		}
		m.staff.submitting = true
		return m, m.cmdAddStaff(name, email, password, staffRoles[m.staff.roleIndex])
	}

	if m.staff.focus < len(m.staff.inputs) {
		var cmd tea.Cmd
		m.staff.inputs[m.staff.focus], cmd = m.staff.inputs[m.staff.focus].Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func (m staffModel) View() string {
	if m.loading {
		return renderPage("Staff", m.spinner.View()+" Loading…", "")
	}

	if m.adding {
		role := staffRoles[m.roleIndex]
		if m.focus == len(m.inputs) {
			role = "< " + role + " >"
		}
		body := "Name:     " + m.inputs[0].View() + "\n" +
			"Email:    " + m.inputs[1].View() + "\n" +
			"Password: " + m.inputs[2].View() + "\n" +
			"Role:     " + role
		if m.submitting {
			body += "\n\n" + statusStyle.Render("Creating account…")
		}
		return renderPage("New staff member", body, "tab: next field • ←/→: role • enter: save • esc: cancel")
	}

	var body string
	if len(m.rows) == 0 {
		body = helpStyle.Render("No staff yet.")
	}
	for i, user := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		body += cursor + user.Name + "  <" + user.Email + ">  " + user.Role + "  [" + user.Status + "]\n"
	}

	return renderPage("Staff", body, "n: new • r: cycle role • s: cycle status • d: delete • esc: back • q: quit")
}
