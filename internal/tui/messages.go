package tui

import (
	"github.com/mshevelev/vault-hub/models"
)

type authDoneMsg struct {
	userID int64
	err    error
}

type masterStateMsg struct {
	configured bool
	err        error
}

type masterDoneMsg struct {
	err error
}

type listLoadedMsg struct {
	entries []models.VaultEntry
	err     error
}

type revealedMsg struct {
	payload models.SecretPayload
	err     error
}

type entrySavedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
