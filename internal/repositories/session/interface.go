// Package session persists the current-session pointer: the public view of
// the logged-in user under the "currentUser" key.
package session

import (
	"context"

	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
)

// Key is the blob store key of the session pointer.
const Key = "currentUser"

type Repository interface {
	// Load returns nil when nobody is logged in. An undecodable pointer is
	// nil together with an error wrapping kv.ErrCorrupt.
	Load(ctx context.Context) (*models.PublicUser, error)
	Save(ctx context.Context, u models.PublicUser) error
	Clear(ctx context.Context) error
	// Entry encodes u for a multi-key write.
	Entry(u models.PublicUser) (kv.Entry, error)
}
