package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/housesell/internal/common"
	"github.com/dmitrijs2005/housesell/internal/logging"
	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
	"github.com/dmitrijs2005/housesell/internal/repositories/properties"
	"github.com/dmitrijs2005/housesell/internal/seed"
)

// ListingOptions tunes a ListingStore. Zero values select defaults.
type ListingOptions struct {
	// SeedSamples writes the built-in sample listings into an empty
	// collection at construction.
	SeedSamples bool
	Logger      logging.Logger
	Now         func() time.Time
}

// ListingStore manages property records. Callers pass the requester's
// identity to every mutation; nil means nobody is logged in.
type ListingStore struct {
	repo properties.Repository
	log  logging.Logger
	now  func() time.Time

	mu sync.Mutex
}

func NewListingStore(ctx context.Context, store kv.Store, opts ListingOptions) (*ListingStore, error) {
	s := &ListingStore{
		repo: properties.NewKVRepository(store),
		log:  opts.Logger,
		now:  opts.Now,
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	s.log = s.log.With("component", "listings")
	if s.now == nil {
		s.now = time.Now
	}

	if opts.SeedSamples {
		wrote, err := seed.Ensure(ctx, s.repo)
		if err != nil {
			return nil, storageErr("seed properties", err)
		}
		if wrote {
			s.log.Info(ctx, "sample properties initialized", "count", len(seed.Properties()))
		}
	}

	return s, nil
}

// load reads the stored collection; an unreadable one counts as empty.
func (s *ListingStore) load(ctx context.Context) ([]models.Property, error) {
	list, err := s.repo.Load(ctx)
	if errors.Is(err, kv.ErrCorrupt) {
		s.log.Warn(ctx, "treating unreadable property collection as empty", "error", err)
		return list, nil
	}
	if err != nil {
		return nil, storageErr("load properties", err)
	}
	return list, nil
}

func (s *ListingStore) save(ctx context.Context, list []models.Property) error {
	if err := s.repo.Save(ctx, list); err != nil {
		return storageErr("save properties", err)
	}
	return nil
}

// List returns every property, newest first.
func (s *ListingStore) List(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(list)
	return list, nil
}

// Get returns the property with the given id.
func (s *ListingStore) Get(ctx context.Context, id string) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.Property{}, err
	}

	list, err := s.load(ctx)
	if err != nil {
		return models.Property{}, err
	}
	i := indexOf(list, id)
	if i < 0 {
		return models.Property{}, common.ErrNotFound
	}
	return list[i], nil
}

// Create stores a new property owned by owner.
func (s *ListingStore) Create(ctx context.Context, in models.PropertyInput, owner *models.PublicUser) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.Property{}, err
	}
	if owner == nil {
		return models.Property{}, common.ErrNotAuthenticated
	}
	if err := in.Validate(); err != nil {
		return models.Property{}, err
	}

	list, err := s.load(ctx)
	if err != nil {
		return models.Property{}, err
	}

	now := s.now().UTC()
	p := models.Property{
		ID:         uuid.NewString(),
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyInput(&p, in)

	if err := s.save(ctx, append(list, p)); err != nil {
		return models.Property{}, err
	}

	s.log.Info(ctx, "property created", "id", p.ID, "owner", p.OwnerID)
	return p, nil
}

// Update replaces the editable fields of the property id. Only its owner may
// do so.
func (s *ListingStore) Update(ctx context.Context, id string, in models.PropertyInput, requester *models.PublicUser) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.Property{}, err
	}
	if requester == nil {
		return models.Property{}, common.ErrNotAuthenticated
	}

	list, err := s.load(ctx)
	if err != nil {
		return models.Property{}, err
	}
	i := indexOf(list, id)
	if i < 0 {
		return models.Property{}, common.ErrNotFound
	}
	if list[i].OwnerID != requester.ID {
		return models.Property{}, common.ErrNotAuthorized
	}
	if err := in.Validate(); err != nil {
		return models.Property{}, err
	}

	p := list[i]
	applyInput(&p, in)
	p.UpdatedAt = s.now().UTC()
	list[i] = p

	if err := s.save(ctx, list); err != nil {
		return models.Property{}, err
	}

	s.log.Info(ctx, "property updated", "id", p.ID, "owner", p.OwnerID)
	return p, nil
}

// Delete removes the property id. Only its owner may do so.
func (s *ListingStore) Delete(ctx context.Context, id string, requester *models.PublicUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if requester == nil {
		return common.ErrNotAuthenticated
	}

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(list, id)
	if i < 0 {
		return common.ErrNotFound
	}
	if list[i].OwnerID != requester.ID {
		return common.ErrNotAuthorized
	}

	if err := s.save(ctx, slices.Delete(list, i, i+1)); err != nil {
		return err
	}

	s.log.Info(ctx, "property deleted", "id", id, "owner", requester.ID)
	return nil
}

// EditableBy returns the property id if requester may edit it.
func (s *ListingStore) EditableBy(ctx context.Context, id string, requester *models.PublicUser) (models.Property, error) {
	if requester == nil {
		return models.Property{}, common.ErrNotAuthenticated
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if p.OwnerID != requester.ID {
		return models.Property{}, common.ErrNotAuthorized
	}
	return p, nil
}

// ListByOwner returns ownerID's properties, newest first.
func (s *ListingStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Property, 0)
	for _, p := range all {
		if p.OwnerID == ownerID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

func applyInput(p *models.Property, in models.PropertyInput) {
	p.Title = in.Title
	p.Description = in.Description
	p.Price = in.Price
	p.Location = in.Location
	p.Type = in.Type
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.Area = in.Area
	p.Contact = in.Contact
	if strings.TrimSpace(p.Contact) == "" {
		p.Contact = p.OwnerEmail
	}
	p.Images = models.CleanImages(in.Images)
}

func indexOf(list []models.Property, id string) int {
	return slices.IndexFunc(list, func(p models.Property) bool { return p.ID == id })
}
