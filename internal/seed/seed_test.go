package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
	"github.com/dmitrijs2005/housesell/internal/repositories/properties"
)

func TestProperties_Canonical(t *testing.T) {
	got := Properties()
	require.Len(t, got, 6)

	for i, p := range got {
		require.NoError(t, models.PropertyInput{
			Title: p.Title, Location: p.Location, Type: p.Type, Price: p.Price,
			Bedrooms: p.Bedrooms, Bathrooms: p.Bathrooms, Area: p.Area,
		}.Validate())
		assert.Equal(t, "sample-user-"+p.ID, p.OwnerID)
		assert.Equal(t, p.Contact, p.OwnerEmail)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
		assert.Len(t, p.Images, 2)
		if i > 0 {
			assert.True(t, got[i-1].CreatedAt.After(p.CreatedAt), "samples are newest first")
		}
	}

	assert.Equal(t, "Modern Downtown Apartment", got[0].Title)
	assert.Equal(t, float64(450000), got[0].Price)
	assert.Equal(t, "Denver, CO", got[5].Location)
}

func TestProperties_ReturnsIndependentCopies(t *testing.T) {
	a := Properties()
	a[0].Title = "changed"
	a[0].Images[0] = "changed"

	b := Properties()
	assert.Equal(t, "Modern Downtown Apartment", b[0].Title)
	assert.NotEqual(t, "changed", b[0].Images[0])
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()

	t.Run("missing collection is seeded", func(t *testing.T) {
		repo := properties.NewKVRepository(kv.NewMemoryStore())

		wrote, err := Ensure(ctx, repo)
		require.NoError(t, err)
		assert.True(t, wrote)

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 6)
	})

	t.Run("empty array is seeded", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, properties.Key, []byte(`[]`)))

		wrote, err := Ensure(ctx, properties.NewKVRepository(store))
		require.NoError(t, err)
		assert.True(t, wrote)
	})

	t.Run("existing listings are kept", func(t *testing.T) {
		repo := properties.NewKVRepository(kv.NewMemoryStore())
		require.NoError(t, repo.Save(ctx, []models.Property{{ID: "mine", Title: "Mine"}}))

		wrote, err := Ensure(ctx, repo)
		require.NoError(t, err)
		assert.False(t, wrote)

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "mine", got[0].ID)
	})
}
