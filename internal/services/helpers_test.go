package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/housesell/internal/cryptox"
	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
)

var cheapParams = cryptox.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

// clock returns increasing timestamps one minute apart.
type clock struct{ t time.Time }

func newClock() *clock {
	return &clock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

// faultyStore fails selected operations of an otherwise working store.
type faultyStore struct {
	kv.Store
	getErr    error
	setErr    error
	deleteErr error
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func (f *faultyStore) SetMany(ctx context.Context, entries ...kv.Entry) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.SetMany(ctx, entries...)
}

func (f *faultyStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.Store.Delete(ctx, key)
}

func newSessions(t *testing.T, store kv.Store) *SessionManager {
	t.Helper()
	p := cheapParams
	m, err := NewSessionManager(context.Background(), store, SessionOptions{HashParams: &p, Now: newClock().Now})
	require.NoError(t, err)
	return m
}

func newListings(t *testing.T, store kv.Store, seed bool) *ListingStore {
	t.Helper()
	s, err := NewListingStore(context.Background(), store, ListingOptions{SeedSamples: seed, Now: newClock().Now})
	require.NoError(t, err)
	return s
}

func rawKey(t *testing.T, store kv.Store, key string) []byte {
	t.Helper()
	v, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func validInput() models.PropertyInput {
	return models.PropertyInput{
		Title:       "Loft",
		Description: "Open plan",
		Price:       1000,
		Location:    "Austin, TX",
		Type:        models.PropertyTypeRent,
		Bedrooms:    1,
		Bathrooms:   1,
		Area:        600,
		Contact:     "me@x.com",
		Images:      []string{"https://img/1.jpg"},
	}
}
