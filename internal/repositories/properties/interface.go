// Package properties persists the property-listing collection as one JSON
// array under the "properties" key.
package properties

import (
	"context"

	"github.com/dmitrijs2005/housesell/internal/models"
)

// Key is the blob store key of the property collection.
const Key = "properties"

type Repository interface {
	// Load returns the whole collection in stored order. A missing
	// collection is empty; an undecodable one is empty together with an
	// error wrapping kv.ErrCorrupt.
	Load(ctx context.Context) ([]models.Property, error)
	Save(ctx context.Context, list []models.Property) error
}
