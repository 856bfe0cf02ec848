package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mshevelev/vault-hub/internal/adapter"
	"github.com/mshevelev/vault-hub/internal/crypto"
	"github.com/mshevelev/vault-hub/internal/vault"
	"github.com/mshevelev/vault-hub/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenMaster
	screenList
	screenDetail
	screenForm
)

type appModel struct {
	ctx    context.Context
	vault  vault.VaultService
	server adapter.ServerAdapter

	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	master   masterModel
	list     listModel
	detail   detailModel
	form     formModel

	userID       int64
	err          error
	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, vaultService vault.VaultService, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		vault:         vaultService,
		server:        server,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
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
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.userID = msg.userID
		return m, m.cmdCheckConfigured()
	case masterStateMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.master = newMasterModel(msg.configured)
		m.currentScreen = screenMaster
		return m, nil
	case masterDoneMsg:
		m.master.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeMasterError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList()
	case listLoadedMsg:
		m.list.loading = false
		m.list.syncing = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.entries = msg.entries
		if m.list.idx >= len(m.list.entries) {
			m.list.idx = len(m.list.entries) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case revealedMsg:
		if msg.err != nil {
			m.currentScreen = screenList
			m.showErrorf(humanizeMasterError(msg.err))
			return m, nil
		}
		m.detail.payload = msg.payload
		m.detail.revealed = true
		return m, nil
	case entrySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeMasterError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList()
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Скопировано!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMaster:
		return m.updateMaster(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenMaster:
		body = m.master.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.master.submitting = v
	m.form.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			login := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Логин и пароль обязательны")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			login := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || login == "" || pass == "" {
				m.showErrorf("Имя, логин и пароль обязательны")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Пароли не совпадают")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.User{Name: name, Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateMaster(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.master = focusNextMaster(m.master)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.master = focusPrevMaster(m.master)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.master.submitting {
				return m, nil
			}
			pass := m.master.inputs[0].Value()
			if pass == "" {
				m.showErrorf("Мастер-пароль обязателен")
				return m, nil
			}
			if m.master.configured {
				m.master.submitting = true
				return m, m.cmdUnlock(pass)
			}
			if pass != m.master.inputs[1].Value() {
				m.showErrorf("Пароли не совпадают")
				return m, nil
			}
			m.master.submitting = true
			return m, m.cmdSetup(pass)
		}
	}

	var cmd tea.Cmd
	m.master.inputs[m.master.focus], cmd = m.master.inputs[m.master.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.entries)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{entry: entry}
		m.currentScreen = screenDetail
		return m, m.cmdReveal(entry)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel()
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.sync):
		if m.list.syncing {
			return m, nil
		}
		m.list.syncing = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case key.Matches(keyMsg, keys.lock):
		m.vault.Lock()
		m.master = newMasterModel(true)
		m.currentScreen = screenMaster
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if !m.detail.revealed || m.detail.payload.Secret == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.payload.Secret)
	case key.Matches(keyMsg, keys.copyUser):
		if !m.detail.revealed || m.detail.payload.Username == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.payload.Username)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if strings.TrimSpace(m.form.inputs[0].Value()) == "" || m.form.inputs[2].Value() == "" {
				m.showErrorf("Название и секрет обязательны")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdCreateEntry(m.form.toPayload())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		token, err := server.Login(ctx, user)
		if err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{userID: token.UserID}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		registered, err := server.Register(ctx, user)
		if err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{userID: registered.UserID}
	}
}

func (m appModel) cmdCheckConfigured() tea.Cmd {
	ctx := m.ctx
	vaultService := m.vault
	userID := m.userID
	return func() tea.Msg {
		configured, err := vaultService.Configured(ctx, userID)
		return masterStateMsg{configured: configured, err: err}
	}
}

func (m appModel) cmdSetup(password string) tea.Cmd {
	ctx := m.ctx
	vaultService := m.vault
	userID := m.userID
	return func() tea.Msg {
		return masterDoneMsg{err: vaultService.Setup(ctx, userID, password)}
	}
}

func (m appModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	vaultService := m.vault
	userID := m.userID
	return func() tea.Msg {
		return masterDoneMsg{err: vaultService.Unlock(ctx, userID, password)}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	vaultService := m.vault
	userID := m.userID
	return func() tea.Msg {
		entries, err := vaultService.Entries(ctx, userID)
		return listLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdReveal(entry models.VaultEntry) tea.Cmd {
	ctx := m.ctx
	vaultService := m.vault
	return func() tea.Msg {
		payload, err := vaultService.Reveal(ctx, entry)
		return revealedMsg{payload: payload, err: err}
	}
}

func (m appModel) cmdCreateEntry(payload models.SecretPayload) tea.Cmd {
	ctx := m.ctx
	vaultService := m.vault
	userID := m.userID
	return func() tea.Msg {
		_, err := vaultService.CreateEntry(ctx, userID, payload)
		return entrySavedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return entrySavedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func humanizeMasterError(err error) string {
	switch {
	case errors.Is(err, vault.ErrWrongPassword):
		return "Неверный мастер-пароль"
	case errors.Is(err, vault.ErrAlreadyConfigured):
		return "Мастер-пароль уже создан"
	case errors.Is(err, vault.ErrNotConfigured):
		return "Мастер-пароль ещё не создан"
	case errors.Is(err, vault.ErrVaultLocked):
		return "Хранилище заблокировано"
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return "Запись повреждена или мастер-пароль неверен"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextMaster(m masterModel) masterModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevMaster(m masterModel) masterModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
