package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mshevelev/vault-hub/internal/adapter"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/mock"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/models"
)

type syncFixture struct {
	server *mock.MockServerAdapter
	cache  store.ClientCache
	worker *cacheSyncWorker
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cache, err := store.NewClientCache("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	server := mock.NewMockServerAdapter(ctrl)
	w := NewCacheSyncWorker(server, cache, time.Minute, logger.Nop())

	return &syncFixture{
		server: server,
		cache:  cache,
		worker: w.(*cacheSyncWorker),
	}
}

func TestCacheSync_SkipsWhenNotAuthenticated(t *testing.T) {
	f := newSyncFixture(t)

	f.server.EXPECT().Token().Return("")

	f.worker.syncOnce(context.Background())

	cached, err := f.cache.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestCacheSync_MirrorsEntriesAndMasterSecret(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	entries := []models.VaultEntry{
		{ID: "b", IV: "aXYy", Ciphertext: "Y3Qy", CreatedAt: time.Now().UTC()},
		{ID: "a", IV: "aXYx", Ciphertext: "Y3Qx", CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}
	record := models.MasterSecretRecord{Salt: "c2FsdA==", VerificationHash: "aGFzaA=="}

	f.server.EXPECT().Token().Return("sometoken")
	f.server.EXPECT().ListEntries(ctx).Return(entries, nil)
	f.server.EXPECT().GetMasterSecret(ctx).Return(record, nil)

	f.worker.syncOnce(ctx)

	cached, err := f.cache.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 2)
	assert.Equal(t, "b", cached[0].ID)

	cachedRecord, err := f.cache.MasterSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, record, cachedRecord)
}

func TestCacheSync_UnconfiguredMasterSecretIsNotAnError(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.server.EXPECT().Token().Return("sometoken")
	f.server.EXPECT().ListEntries(ctx).Return([]models.VaultEntry{{ID: "a", IV: "aXY=", Ciphertext: "Y3Q="}}, nil)
	f.server.EXPECT().GetMasterSecret(ctx).Return(models.MasterSecretRecord{}, adapter.ErrNotFound)

	f.worker.syncOnce(ctx)

	cached, err := f.cache.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	record, err := f.cache.MasterSecret(ctx)
	require.NoError(t, err)
	assert.True(t, record.IsZero())
}

func TestCacheSync_ListFailureKeepsLastGoodCache(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cache.ReplaceEntries(ctx, []models.VaultEntry{{ID: "kept", IV: "aXY=", Ciphertext: "Y3Q="}}))

	f.server.EXPECT().Token().Return("sometoken")
	f.server.EXPECT().ListEntries(ctx).Return(nil, errors.New("server unreachable"))

	f.worker.syncOnce(ctx)

	cached, err := f.cache.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "kept", cached[0].ID)
}

func TestCacheSync_RunStopsOnContextCancel(t *testing.T) {
	f := newSyncFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	f.server.EXPECT().Token().Return("").AnyTimes()

	done := make(chan struct{})
	go func() {
		f.worker.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
