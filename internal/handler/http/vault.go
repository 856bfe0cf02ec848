package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/service"
	"github.com/mshevelev/vault-hub/internal/utils"
	"github.com/mshevelev/vault-hub/models"
)

// listEntries returns the caller's encrypted entries, newest first. The
// response carries only opaque ciphertext.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.EntryService.ListEntries(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during vault entry listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// createEntry stores a new encrypted entry for the caller and echoes it back
// with the server-assigned id and timestamp.
func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var entry models.VaultEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.EntryService.CreateEntry(ctx, userID, entry.IV, entry.Ciphertext)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEntry):
			log.Err(err).Msg("malformed vault entry")
			http.Error(w, "malformed vault entry", http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during vault entry creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
