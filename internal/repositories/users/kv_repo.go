package users

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

func (r *KVRepository) Init(ctx context.Context) error {
	raw, err := r.store.Get(ctx, Key)
	if err != nil {
		return err
	}
	if raw != nil {
		return nil
	}
	return r.Save(ctx, []models.User{})
}

func (r *KVRepository) Load(ctx context.Context) ([]models.User, error) {
	list, _, err := kv.GetJSON[[]models.User](ctx, r.store, Key)
	if list == nil {
		list = []models.User{}
	}
	if err != nil {
		return list, fmt.Errorf("failed to load users: %w", err)
	}
	return list, nil
}

func (r *KVRepository) Save(ctx context.Context, list []models.User) error {
	e, err := r.Entry(list)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, e.Key, e.Value); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (r *KVRepository) Entry(list []models.User) (kv.Entry, error) {
	if list == nil {
		list = []models.User{}
	}
	return kv.JSONEntry(Key, list)
}
