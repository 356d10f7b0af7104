package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
)

func TestSaveLoadClear(t *testing.T) {
	store := kv.NewMemoryStore()
	r := NewKVRepository(store)
	ctx := context.Background()

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	u := models.PublicUser{ID: "u1", Email: "a@x.com", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, r.Save(ctx, u))

	got, err = r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)

	require.NoError(t, r.Clear(ctx))
	raw, err := store.Get(ctx, Key)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLoad_Corrupt(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Key, []byte(`[]`)))

	got, err := NewKVRepository(store).Load(ctx)
	require.ErrorIs(t, err, kv.ErrCorrupt)
	assert.Nil(t, got)
}

func TestLoad_EmptyObjectIsNoSession(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Key, []byte(`{}`)))

	got, err := NewKVRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
