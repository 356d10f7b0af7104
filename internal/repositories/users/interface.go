// Package users persists the registered-user collection as one JSON array
// under the "users" key.
package users

import (
	"context"

	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
)

// Key is the blob store key of the user collection.
const Key = "users"

type Repository interface {
	// Init writes an empty collection when none is stored yet.
	Init(ctx context.Context) error
	// Load returns the whole collection. A missing collection is empty; an
	// undecodable one is empty together with an error wrapping kv.ErrCorrupt.
	Load(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, list []models.User) error
	// Entry encodes list for a multi-key write.
	Entry(list []models.User) (kv.Entry, error)
}
