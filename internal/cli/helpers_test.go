package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/housesell/internal/cryptox"
	"github.com/dmitrijs2005/housesell/internal/logging"
	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
	"github.com/dmitrijs2005/housesell/internal/services"
)

// pipedStdin makes GetPassword read plain lines from the app reader.
func pipedStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func lines(ls ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(ls, "\n") + "\n"))
}

// newTestApp builds an App over real services on an in-memory store with
// the sample listings seeded.
func newTestApp(t *testing.T, input *bufio.Reader) (*App, *bytes.Buffer) {
	t.Helper()
	pipedStdin(t)

	ctx := context.Background()
	store := kv.NewMemoryStore()
	params := cryptox.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

	sessions, err := services.NewSessionManager(ctx, store, services.SessionOptions{HashParams: &params})
	require.NoError(t, err)
	listings, err := services.NewListingStore(ctx, store, services.ListingOptions{SeedSamples: true})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &App{
		store:    store,
		sessions: sessions,
		listings: listings,
		log:      logging.Discard(),
		reader:   input,
		out:      out,
	}, out
}

func signupAs(t *testing.T, a *App, email string) models.PublicUser {
	t.Helper()
	u, err := a.sessions.Signup(context.Background(), email, "pw1234")
	require.NoError(t, err)
	return u
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
