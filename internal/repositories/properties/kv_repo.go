package properties

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
)

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Load(ctx context.Context) ([]models.Property, error) {
	list, _, err := kv.GetJSON[[]models.Property](ctx, r.store, Key)
	if list == nil {
		list = []models.Property{}
	}
	if err != nil {
		return list, fmt.Errorf("failed to load properties: %w", err)
	}
	return list, nil
}

func (r *KVRepository) Save(ctx context.Context, list []models.Property) error {
	if list == nil {
		list = []models.Property{}
	}
	if err := kv.SetJSON(ctx, r.store, Key, list); err != nil {
		return fmt.Errorf("failed to save properties: %w", err)
	}
	return nil
}
