package tui

import (
	"strings"

	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type listKind int

const (
	listTasks listKind = iota
	listPriceUpdates
	listOceanFreight
)

func (k listKind) title() string {
	switch k {
	case listTasks:
		return "My tasks"
	case listPriceUpdates:
		return "Price updates"
	default:
		return "Ocean freight"
	}
}

// listRow is the uniform row shown for all three boards.
type listRow struct {
	id     string
	title  string
	date   string
	status string
}

func taskRows(tasks []models.Task) []listRow {
	rows := make([]listRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, listRow{
			id:     t.ID,
			title:  t.Text,
			date:   t.CreatedAt.Format("2006-01-02"),
			status: string(t.Status),
		})
	}
	return rows
}

func priceUpdateRows(updates []models.PriceUpdate) []listRow {
	rows := make([]listRow, 0, len(updates))
	for _, u := range updates {
		rows = append(rows, listRow{id: u.ID, title: u.Description, date: u.Date, status: u.Status})
	}
	return rows
}

func oceanFreightRows(freights []models.OceanFreight) []listRow {
	rows := make([]listRow, 0, len(freights))
	for _, f := range freights {
		rows = append(rows, listRow{id: f.ID, title: f.Description, date: f.Date, status: f.Status})
	}
	return rows
}

type listModel struct {
	kind       listKind
	rows       []listRow
	cursor     int
	loading    bool
	adding     bool
	submitting bool
	input      textinput.Model
	spinner    spinner.Model
	status     string
}

func newListModel() listModel {
	input := textinput.New()
	input.Placeholder = "description"
	input.CharLimit = 500

	s := spinner.New()
	s.Spinner = spinner.Dot

	return listModel{input: input, spinner: s}
}

func (m *listModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.adding {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.adding = false
			m.list.input.Reset()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.list.submitting {
				return m, nil
			}
			text := strings.TrimSpace(m.list.input.Value())
			if text == "" {
				return m, nil
			}
			m.list.submitting = true
			return m, m.cmdAddRow(m.list.kind, text)
		}
		var cmd tea.Cmd
		m.list.input, cmd = m.list.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.cursor < len(m.list.rows)-1 {
			m.list.cursor++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.list.adding = true
		m.list.input.Reset()
		return m, m.list.input.Focus()
	case key.Matches(keyMsg, keys.delete):
		if len(m.list.rows) == 0 {
			return m, nil
		}
		row := m.list.rows[m.list.cursor]
		m.confirm = confirmModel{
			question:  "Delete \"" + row.title + "\"?",
			onConfirm: m.cmdDeleteRow(m.list.kind, row.id),
		}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		if len(m.list.rows) == 0 {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.list.rows[m.list.cursor].title)
	case key.Matches(keyMsg, keys.toggle):
		if m.list.kind != listTasks || len(m.list.rows) == 0 {
			return m, nil
		}
		row := m.list.rows[m.list.cursor]
		next := models.TaskStatusWaiting
		if row.status == string(models.TaskStatusWaiting) {
			next = models.TaskStatusActive
		}
		return m, m.cmdToggleTask(row.id, next)
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m listModel) View() string {
	if m.loading {
		return renderPage(m.kind.title(), m.spinner.View()+" Loading…", "")
	}

	var body string
	if len(m.rows) == 0 {
		body = helpStyle.Render("Nothing here yet.")
	}
	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + row.date + "  " + row.title
		if row.status != "" {
			line += "  [" + row.status + "]"
		}
		body += line + "\n"
	}

	if m.adding {
		body += "\nNew: " + m.input.View()
	}
	if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}

	help := "n: new • d: delete • c: copy • esc: back • q: quit"
	if m.kind == listTasks {
		help = "n: new • w: toggle waiting • d: delete • c: copy • esc: back • q: quit"
	}
	if m.adding {
		help = "enter: save • esc: cancel"
	}
	return renderPage(m.kind.title(), body, help)
}
