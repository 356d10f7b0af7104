package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/housesell/internal/common"
)

type PropertyType string

const (
	PropertyTypeSale PropertyType = "sale"
	PropertyTypeRent PropertyType = "rent"
)

func (t PropertyType) Valid() bool {
	return t == PropertyTypeSale || t == PropertyTypeRent
}

// Property is one listing.
type Property struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Location    string       `json:"location"`
	Type        PropertyType `json:"type"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Area        int          `json:"area"`
	Contact     string       `json:"contact"`
	Images      []string     `json:"images"`
	OwnerID     string       `json:"ownerId"`
	OwnerEmail  string       `json:"ownerEmail"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// PropertyInput holds the editable fields of a Property.
type PropertyInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
	Type        PropertyType
	Bedrooms    int
	Bathrooms   int
	Area        int
	Contact     string
	Images      []string
}

// Validate checks the input and returns an error wrapping
// common.ErrValidation that names the first offending field.
func (in PropertyInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return invalid("title", "is required")
	case strings.TrimSpace(in.Location) == "":
		return invalid("location", "is required")
	case !in.Type.Valid():
		return invalid("type", fmt.Sprintf("must be %q or %q, got %q", PropertyTypeSale, PropertyTypeRent, in.Type))
	case math.IsNaN(in.Price) || math.IsInf(in.Price, 0):
		return invalid("price", "must be a finite number")
	case in.Price < 0:
		return invalid("price", "must not be negative")
	case in.Bedrooms < 0:
		return invalid("bedrooms", "must not be negative")
	case in.Bathrooms < 0:
		return invalid("bathrooms", "must not be negative")
	case in.Area < 0:
		return invalid("area", "must not be negative")
	}
	return nil
}

// CleanImages returns the image URLs with surrounding whitespace removed and
// blank entries dropped. The result is never nil.
func CleanImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}

// OwnerStats summarizes one owner's listings.
type OwnerStats struct {
	Total      int
	ForSale    int
	ForRent    int
	TotalValue float64
}

func invalid(field, msg string) error {
	return fmt.Errorf("%w: %s %s", common.ErrValidation, field, msg)
}
