package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mshevelev/vault-hub/internal/service"
	"github.com/mshevelev/vault-hub/models"
)

func TestListEntries(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().
		ListEntries(gomock.Any(), int64(7)).
		Return([]models.VaultEntry{
			{ID: "id-2", IV: "aXYy", Ciphertext: "Y3Qy"},
			{ID: "id-1", IV: "aXYx", Ciphertext: "Y3Qx"},
		}, nil)

	rec := f.do(http.MethodGet, "/api/vault/entries", "", f.authed(7))

	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []models.VaultEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "id-2", entries[0].ID)
}

func TestCreateEntry(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().
		CreateEntry(gomock.Any(), int64(7), "aXY=", "Y3Q=").
		Return(models.VaultEntry{ID: "id-1", OwnerID: 7, IV: "aXY=", Ciphertext: "Y3Q="}, nil)

	rec := f.do(http.MethodPost, "/api/vault/entries",
		`{"iv":"aXY=","ciphertext":"Y3Q="}`, f.authed(7))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.VaultEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "id-1", created.ID)
}

func TestCreateEntry_Malformed(t *testing.T) {
	f := newHandlerFixture(t)

	f.entries.EXPECT().
		CreateEntry(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).
		Return(models.VaultEntry{}, service.ErrInvalidEntry)

	rec := f.do(http.MethodPost, "/api/vault/entries",
		`{"iv":"bad","ciphertext":"bad"}`, f.authed(7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
