package session

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

func (r *KVRepository) Load(ctx context.Context) (*models.PublicUser, error) {
	u, found, err := kv.GetJSON[models.PublicUser](ctx, r.store, Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !found || u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

func (r *KVRepository) Save(ctx context.Context, u models.PublicUser) error {
	e, err := r.Entry(u)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, e.Key, e.Value); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *KVRepository) Entry(u models.PublicUser) (kv.Entry, error) {
	return kv.JSONEntry(Key, u)
}
