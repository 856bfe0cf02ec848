// Package tui implements the interactive terminal client: account
// authentication, master-password setup and unlock, and browsing of the
// encrypted vault.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mshevelev/vault-hub/internal/adapter"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/vault"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	vault  vault.VaultService
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(vaultService vault.VaultService, server adapter.ServerAdapter, log *logger.Logger) (*TUI, error) {
	return &TUI{vault: vaultService, server: server, logger: log}, nil
}

// Run drives the whole client session in a single Bubble Tea program:
// welcome, account login or registration, master-password setup or unlock,
// then the entry list. Returns nil when the user quits normally.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.vault, t.server)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if errors.Is(result.err, ErrUserQuit) {
		return nil
	}

	return result.err
}
