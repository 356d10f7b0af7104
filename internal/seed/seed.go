// Package seed holds the built-in demonstration listings written into an
// empty property collection.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
	"github.com/dmitrijs2005/housesell/internal/repositories/properties"
)

const unsplash = "https://images.unsplash.com/"

func image(id string, w int) string {
	return fmt.Sprintf("%s%s?auto=format&fit=crop&w=%d&q=80", unsplash, id, w)
}

type sample struct {
	id, title, description, location, contact string
	typ                                       models.PropertyType
	price                                     float64
	beds, baths, area                         int
	images                                    []string
	created                                   time.Time
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

var samples = []sample{
	{
		id:    "1",
		title: "Modern Downtown Apartment",
		description: "Bright two-bedroom apartment in the heart of downtown with hardwood floors, " +
			"stainless steel appliances and a sweeping city view. Restaurants, shops and transit are a short walk away.",
		location: "New York, NY", contact: "john.doe@example.com",
		typ: models.PropertyTypeSale, price: 450000, beds: 2, baths: 2, area: 1200,
		images:  []string{image("photo-1560448204-e02f11c3d0e2", 2070), image("photo-1484154218962-a197022b5858", 2074)},
		created: at(15, 10, 30),
	},
	{
		id:    "2",
		title: "Cozy Suburban House",
		description: "Three-bedroom family house on a quiet suburban street with a large backyard, " +
			"an updated kitchen and roomy living areas. Good schools nearby.",
		location: "Austin, TX", contact: "jane.smith@example.com",
		typ: models.PropertyTypeRent, price: 2800, beds: 3, baths: 2, area: 1800,
		images:  []string{image("photo-1570129477492-45c003edd2be", 2070), image("photo-1449844908441-8829872d2607", 2070)},
		created: at(14, 14, 20),
	},
	{
		id:    "3",
		title: "Luxury Penthouse Suite",
		description: "Penthouse with panoramic views, a private terrace, marble counters and floor-to-ceiling windows. " +
			"The building offers a gym, a pool and a concierge.",
		location: "San Francisco, CA", contact: "mike.johnson@example.com",
		typ: models.PropertyTypeSale, price: 1200000, beds: 4, baths: 3, area: 2500,
		images:  []string{image("photo-1545324418-cc1a3fa10c00", 2070), image("photo-1502672260266-1c1ef2d93688", 2080)},
		created: at(13, 9, 15),
	},
	{
		id:    "4",
		title: "Beachfront Condo",
		description: "Ocean views every morning from a recently renovated beachfront condo. " +
			"Modern amenities, direct beach access and resort-style facilities.",
		location: "Miami, FL", contact: "sarah.wilson@example.com",
		typ: models.PropertyTypeRent, price: 3500, beds: 2, baths: 2, area: 1400,
		images:  []string{image("photo-1512917774080-9991f1c4c750", 2070), image("photo-1564013799919-ab600027ffc6", 2070)},
		created: at(12, 16, 45),
	},
	{
		id:    "5",
		title: "Historic Brownstone",
		description: "Restored brownstone that keeps its original details: exposed brick, hardwood floors " +
			"and a private garden in a historic district.",
		location: "Boston, MA", contact: "david.brown@example.com",
		typ: models.PropertyTypeSale, price: 750000, beds: 3, baths: 2, area: 2000,
		images:  []string{image("photo-1558618666-fcd25c85cd64", 2070), image("photo-1493809842364-78817add7ffb", 2070)},
		created: at(11, 11, 30),
	},
	{
		id:    "6",
		title: "Mountain View Cabin",
		description: "Quiet mountain retreat for weekends or year-round living, with a stone fireplace, " +
			"a wrap-around deck and hiking trails close by.",
		location: "Denver, CO", contact: "lisa.garcia@example.com",
		typ: models.PropertyTypeRent, price: 1800, beds: 2, baths: 1, area: 1000,
		images:  []string{image("photo-1449824913935-59a10b8d2000", 2070), image("photo-1506905925346-21bda4d32df4", 2070)},
		created: at(10, 13, 20),
	},
}

// Properties returns a fresh copy of the six sample listings, newest first.
// Each is owned by a synthetic "sample-user-N" whose email is the contact.
func Properties() []models.Property {
	out := make([]models.Property, 0, len(samples))
	for _, s := range samples {
		out = append(out, models.Property{
			ID:          s.id,
			Title:       s.title,
			Description: s.description,
			Price:       s.price,
			Location:    s.location,
			Type:        s.typ,
			Bedrooms:    s.beds,
			Bathrooms:   s.baths,
			Area:        s.area,
			Contact:     s.contact,
			Images:      append([]string(nil), s.images...),
			OwnerID:     "sample-user-" + s.id,
			OwnerEmail:  s.contact,
			CreatedAt:   s.created,
			UpdatedAt:   s.created,
		})
	}
	return out
}

// Ensure writes the sample listings when the stored collection is missing,
// empty or unreadable. It reports whether it wrote anything.
func Ensure(ctx context.Context, repo properties.Repository) (bool, error) {
	existing, err := repo.Load(ctx)
	if err != nil && !errors.Is(err, kv.ErrCorrupt) {
		return false, err
	}
	if err == nil && len(existing) > 0 {
		return false, nil
	}
	if err := repo.Save(ctx, Properties()); err != nil {
		return false, fmt.Errorf("failed to seed properties: %w", err)
	}
	return true, nil
}
