package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/service"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/internal/utils"
	"github.com/mshevelev/vault-hub/models"
)

// getMasterSecret returns the caller's master-secret record. A user who has
// not set a master password yet gets 404 so the client can tell "run setup"
// apart from "run unlock".
func (h *Handler) getMasterSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	record, err := h.services.ProfileService.GetMasterSecret(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during master secret lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if record.IsZero() {
		http.Error(w, "master secret is not configured", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// setMasterSecret stores the caller's master-secret record, exactly once. A
// second attempt gets 409 and the stored record is left untouched.
func (h *Handler) setMasterSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var record models.MasterSecretRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.SetMasterSecret(ctx, userID, record); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMasterSecret):
			log.Err(err).Msg("malformed master secret record")
			http.Error(w, "malformed master secret record", http.StatusBadRequest)
		case errors.Is(err, store.ErrMasterSecretAlreadyExists):
			log.Err(err).Msg("master secret already configured")
			http.Error(w, "master secret already configured", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during master secret store")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}
