package services

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/housesell/internal/models"
)

// Filter returns the properties of snapshot matching every criterion, in
// snapshot order. snapshot is not modified.
func Filter(snapshot []models.Property, c models.Criteria) []models.Property {
	loc := strings.ToLower(strings.TrimSpace(c.Location))
	out := make([]models.Property, 0, len(snapshot))
	for _, p := range snapshot {
		if loc != "" && !strings.Contains(strings.ToLower(p.Location), loc) {
			continue
		}
		if c.Type != "" && p.Type != c.Type {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortNewestFirst orders props by CreatedAt, newest first, keeping the
// relative order of equal timestamps.
func SortNewestFirst(props []models.Property) {
	slices.SortStableFunc(props, func(a, b models.Property) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// Stats aggregates props into an owner summary.
func Stats(props []models.Property) models.OwnerStats {
	var st models.OwnerStats
	for _, p := range props {
		st.Total++
		switch p.Type {
		case models.PropertyTypeSale:
			st.ForSale++
		case models.PropertyTypeRent:
			st.ForRent++
		}
		st.TotalValue += p.Price
	}
	return st
}
