// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/navigate"
	"github.com/MKhiriev/go-chem-crm/internal/session"
	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenSplash screen = iota
	screenAuthMenu
	screenLogin
	screenSignup
	screenForgot
	screenMenu
	screenList
	screenStaff
	screenPassword
)

type appModel struct {
	ctx      context.Context
	services Services
	gate     *navigate.Gate

	session       models.Session
	currentScreen screen

	splash   splashModel
	authMenu authMenuModel
	login    loginModel
	signup   signupModel
	forgot   forgotModel
	menu     menuModel
	list     listModel
	staff    staffModel
	password passwordModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	err error
}

func newAppModel(ctx context.Context, services Services) appModel {
	m := appModel{
		ctx:      ctx,
		services: services,
		splash:   newSplashModel(),
		authMenu: newAuthMenuModel(),
		login:    newLoginModel(),
		signup:   newSignupModel(),
		forgot:   newForgotModel(),
		menu:     newMenuModel(),
		list:     newListModel(),
		staff:    newStaffModel(),
		password: newPasswordModel(),
	}
	m.gate = navigate.NewGate(services.Sessions)
	m.session = services.Sessions.Current()
	m.currentScreen = screenForRoute(m.gate.Route(), m.currentScreen)
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.splash.spinner.Tick
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		return m.applySession(msg.session)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.confirm.onConfirm
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}

	case loginResultMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(session.UserMessage(msg.err))
		}
		// Success is not handled here: the session feed flips the screen.
		return m, nil

	case signupResultMsg:
		m.signup.submitting = false
		if msg.err != nil {
			m.showErrorf(session.UserMessage(msg.err))
			return m, nil
		}
		m.signup = newSignupModel()
		m.currentScreen = screenLogin
		m.login.status = "Account created. Check your inbox for the verification link, then log in."
		return m, nil

	case resetResultMsg:
		m.forgot.submitting = false
		if msg.err != nil {
			m.showErrorf(session.UserMessage(msg.err))
			return m, nil
		}
		m.forgot.status = "Password reset email sent."
		return m, nil

	case passwordChangedMsg:
		m.password.submitting = false
		if msg.err != nil {
			m.showErrorf(session.UserMessage(msg.err))
			return m, nil
		}
		m.password = newPasswordModel()
		m.currentScreen = screenMenu
		m.menu.status = "Password changed."
		return m, cmdClearStatus()

	case logoutDoneMsg:
		// The session feed moves us back to the auth menu.
		return m, nil

	case rowsLoadedMsg:
		if msg.kind != m.list.kind {
			return m, nil
		}
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(session.UserMessage(msg.err))
			return m, nil
		}
		m.list.rows = msg.rows
		m.list.clampCursor()
		return m, nil

	case rowSavedMsg:
		m.list.submitting = false
		if msg.err != nil {
			m.showErrorf(userFacing(msg.err))
			return m, nil
		}
		m.list.adding = false
		m.list.input.Reset()
		return m, m.cmdLoadRows(msg.kind)

	case rowDeletedMsg:
		if msg.err != nil {
			m.showErrorf(userFacing(msg.err))
			return m, nil
		}
		return m, m.cmdLoadRows(msg.kind)

	case staffLoadedMsg:
		m.staff.loading = false
		if msg.err != nil {
			m.showErrorf(userFacing(msg.err))
			return m, nil
		}
		m.staff.rows = msg.staff
		m.staff.clampCursor()
		return m, nil

	case staffSavedMsg:
		m.staff.submitting = false
		if msg.err != nil {
			m.showErrorf(userFacing(msg.err))
			return m, nil
		}
		m.staff.adding = false
		m.staff.resetForm()
		return m, m.cmdLoadStaff()

	case copiedMsg:
		m.list.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.list.status = ""
		m.menu.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		switch m.currentScreen {
		case screenSplash:
			m.splash.spinner, cmd = m.splash.spinner.Update(msg)
		case screenList:
			if m.list.loading {
				m.list.spinner, cmd = m.list.spinner.Update(msg)
			}
		case screenStaff:
			if m.staff.loading {
				m.staff.spinner, cmd = m.staff.spinner.Update(msg)
			}
		}
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenSplash:
		return m, nil
	case screenAuthMenu:
		return m.updateAuthMenu(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenSignup:
		return m.updateSignup(msg)
	case screenForgot:
		return m.updateForgot(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenList:
		return m.updateList(msg)
	case screenStaff:
		return m.updateStaff(msg)
	case screenPassword:
		return m.updatePassword(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenSplash:
		body = m.splash.View()
	case screenAuthMenu:
		body = m.authMenu.View()
	case screenLogin:
		body = m.login.View()
	case screenSignup:
		body = m.signup.View()
	case screenForgot:
		body = m.forgot.View()
	case screenMenu:
		body = m.menu.View(m.session)
	case screenList:
		body = m.list.View()
	case screenStaff:
		body = m.staff.View()
	case screenPassword:
		body = m.password.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// applySession re-routes the UI after a session transition. Only the
// top-level surface is derived from the session; movement between screens of
// the same surface is user-driven.
func (m appModel) applySession(s models.Session) (tea.Model, tea.Cmd) {
	m.session = s

	previous := m.currentScreen
	m.currentScreen = screenForRoute(navigate.RouteFor(s.Status), m.currentScreen)
	if m.currentScreen == previous {
		return m, nil
	}

	switch m.currentScreen {
	case screenAuthMenu:
		// Dropping to the auth surface invalidates everything loaded.
		m.login = newLoginModel()
		m.signup = newSignupModel()
		m.forgot = newForgotModel()
		m.list = newListModel()
		m.staff = newStaffModel()
		m.password = newPasswordModel()
		return m, nil
	case screenSplash:
		return m, m.splash.spinner.Tick
	default:
		return m, nil
	}
}

// screenForRoute maps a route to its landing screen, keeping the current
// screen when it already belongs to that route.
func screenForRoute(route navigate.Route, current screen) screen {
	switch route {
	case navigate.RouteMain:
		switch current {
		case screenMenu, screenList, screenStaff, screenPassword:
			return current
		}
		return screenMenu
	case navigate.RouteAuth:
		switch current {
		case screenAuthMenu, screenLogin, screenSignup, screenForgot:
			return current
		}
		return screenAuthMenu
	default:
		return screenSplash
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// userFacing renders CRM service errors; session errors go through
// session.UserMessage instead.
func userFacing(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Sessions
	return func() tea.Msg {
		return loginResultMsg{err: sessions.Login(ctx, email, password)}
	}
}

func (m appModel) cmdSignup(email, password, displayName string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Sessions
	return func() tea.Msg {
		return signupResultMsg{err: sessions.Signup(ctx, email, password, displayName)}
	}
}

func (m appModel) cmdForgotPassword(email string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Sessions
	return func() tea.Msg {
		return resetResultMsg{err: sessions.ForgotPassword(ctx, email)}
	}
}

func (m appModel) cmdChangePassword(current, next string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Sessions
	return func() tea.Msg {
		return passwordChangedMsg{err: sessions.ChangePassword(ctx, current, next)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Sessions
	return func() tea.Msg {
		_ = sessions.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func (m appModel) cmdLoadRows(kind listKind) tea.Cmd {
	ctx := m.ctx
	services := m.services
	userID := m.accountID()
	return func() tea.Msg {
		switch kind {
		case listTasks:
			tasks, err := services.Tasks.List(ctx, userID)
			return rowsLoadedMsg{kind: kind, rows: taskRows(tasks), err: err}
		case listPriceUpdates:
			updates, err := services.PriceUpdates.List(ctx)
			return rowsLoadedMsg{kind: kind, rows: priceUpdateRows(updates), err: err}
		default:
			freights, err := services.OceanFreight.List(ctx)
			return rowsLoadedMsg{kind: kind, rows: oceanFreightRows(freights), err: err}
		}
	}
}

func (m appModel) cmdAddRow(kind listKind, text string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	userID := m.accountID()
	return func() tea.Msg {
		var err error
		switch kind {
		case listTasks:
			_, err = services.Tasks.Add(ctx, userID, text)
		case listPriceUpdates:
			_, err = services.PriceUpdates.Add(ctx, text)
		default:
			_, err = services.OceanFreight.Add(ctx, text)
		}
		return rowSavedMsg{kind: kind, err: err}
	}
}

func (m appModel) cmdDeleteRow(kind listKind, id string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		var err error
		switch kind {
		case listTasks:
			err = services.Tasks.Delete(ctx, id)
		case listPriceUpdates:
			err = services.PriceUpdates.Delete(ctx, id)
		default:
			err = services.OceanFreight.Delete(ctx, id)
		}
		return rowDeletedMsg{kind: kind, err: err}
	}
}

func (m appModel) cmdToggleTask(id string, status models.TaskStatus) tea.Cmd {
	ctx := m.ctx
	tasks := m.services.Tasks
	return func() tea.Msg {
		return rowSavedMsg{kind: listTasks, err: tasks.UpdateStatus(ctx, id, status)}
	}
}

func (m appModel) cmdLoadStaff() tea.Cmd {
	ctx := m.ctx
	staff := m.services.Staff
	return func() tea.Msg {
		rows, err := staff.List(ctx)
		return staffLoadedMsg{staff: rows, err: err}
	}
}

func (m appModel) cmdAddStaff(name, email, password, role string) tea.Cmd {
	ctx := m.ctx
	staff := m.services.Staff
	return func() tea.Msg {
		_, err := staff.Add(ctx, name, email, password, role)
		return staffSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateStaff(user models.StaffUser) tea.Cmd {
	ctx := m.ctx
	staff := m.services.Staff
	return func() tea.Msg {
		return staffSavedMsg{err: staff.Update(ctx, user)}
	}
}

func (m appModel) cmdDeleteStaff(id string) tea.Cmd {
	ctx := m.ctx
	staff := m.services.Staff
	return func() tea.Msg {
		err := staff.Delete(ctx, id)
		return staffSavedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return rowSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m appModel) accountID() string {
	if m.session.Account == nil {
		return ""
	}
	return m.session.Account.ID
}
