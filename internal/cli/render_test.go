package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/housesell/internal/models"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0", formatMoney(0))
	assert.Equal(t, "$1,200,000", formatMoney(1200000))
	assert.Equal(t, "$1,250.50", formatMoney(1250.5))
}

func TestFormatMoney_BeyondInt64(t *testing.T) {
	assert.Equal(t, "$10,000,000,000,000,000,000", formatMoney(1e19))
	assert.Equal(t, "$100,000,000,000,000,000,000", formatMoney(1e20))
	assert.NotContains(t, formatMoney(1e300), "-")

	st := models.OwnerStats{Total: 2, ForSale: 2, TotalValue: 2e19}
	assert.Contains(t, renderStats(st), "$20,000,000,000,000,000,000")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$450,000", formatPrice(models.Property{Type: models.PropertyTypeSale, Price: 450000}))
	assert.Equal(t, "$3,500/month", formatPrice(models.Property{Type: models.PropertyTypeRent, Price: 3500}))
}

func TestRenderDetail(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	p := models.Property{
		ID: "p1", Title: "Loft", Location: "Austin, TX", Type: models.PropertyTypeSale,
		Price: 1000, Bedrooms: 1, Bathrooms: 1, Area: 1200, Contact: "me@x.com",
		OwnerEmail: "me@x.com", Images: []string{"https://img/1.jpg"},
		CreatedAt: created, UpdatedAt: created,
	}

	s := renderDetail(p, false)
	assert.Contains(t, s, "Loft")
	assert.Contains(t, s, "1,200 sq ft")
	assert.Contains(t, s, "Jan 15, 2024")
	assert.Contains(t, s, "https://img/1.jpg")
	assert.NotContains(t, s, "Updated:")
	assert.NotContains(t, s, "You own this listing")

	p.UpdatedAt = created.Add(48 * time.Hour)
	s = renderDetail(p, true)
	assert.Contains(t, s, "Updated:    Jan 17, 2024")
	assert.Contains(t, s, "edit p1")
}

func TestRenderTable(t *testing.T) {
	s := renderTable([]models.Property{
		{ID: "a", Title: "First", Location: "X", Type: models.PropertyTypeRent, Price: 900},
		{ID: "b", Title: "Second", Location: "Y", Type: models.PropertyTypeSale, Price: 90000},
	})

	assert.Contains(t, s, "TITLE")
	assert.Less(t, strings.Index(s, "First"), strings.Index(s, "Second"))
	assert.Contains(t, s, "$900/month")
	assert.Contains(t, s, "$90,000")
}

func TestRenderStats(t *testing.T) {
	s := renderStats(models.OwnerStats{Total: 3, ForSale: 1, ForRent: 2, TotalValue: 455300})
	assert.Contains(t, s, "total: 3")
	assert.Contains(t, s, "for sale: 1")
	assert.Contains(t, s, "for rent: 2")
	assert.Contains(t, s, "$455,300")
}
