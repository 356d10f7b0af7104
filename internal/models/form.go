package models

import (
	"math"
	"strconv"
	"strings"
)

// PropertyForm is a PropertyInput as a form or terminal produces it: every
// field is raw text.
type PropertyForm struct {
	Title       string
	Description string
	Price       string
	Location    string
	Type        string
	Bedrooms    string
	Bathrooms   string
	Area        string
	Contact     string
	Images      []string
}

// ParsePropertyForm converts f into a PropertyInput. Numeric fields must
// parse completely; "12abc" is rejected rather than truncated. Blank numeric
// fields are rejected too. The result is not validated further; callers
// pass it to the listing store, which does.
func ParsePropertyForm(f PropertyForm) (PropertyInput, error) {
	in := PropertyInput{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Type:        PropertyType(strings.ToLower(strings.TrimSpace(f.Type))),
		Contact:     strings.TrimSpace(f.Contact),
		Images:      f.Images,
	}

	var err error
	if in.Price, err = parseFloat("price", f.Price); err != nil {
		return PropertyInput{}, err
	}
	if in.Bedrooms, err = parseInt("bedrooms", f.Bedrooms); err != nil {
		return PropertyInput{}, err
	}
	if in.Bathrooms, err = parseInt("bathrooms", f.Bathrooms); err != nil {
		return PropertyInput{}, err
	}
	if in.Area, err = parseInt("area", f.Area); err != nil {
		return PropertyInput{}, err
	}

	return in, nil
}

// FormFromProperty pre-fills a form with p's current values, the way the
// edit screen does.
func FormFromProperty(p Property) PropertyForm {
	return PropertyForm{
		Title:       p.Title,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Location:    p.Location,
		Type:        string(p.Type),
		Bedrooms:    strconv.Itoa(p.Bedrooms),
		Bathrooms:   strconv.Itoa(p.Bathrooms),
		Area:        strconv.Itoa(p.Area),
		Contact:     p.Contact,
		Images:      append([]string(nil), p.Images...),
	}
}

// ParseCriteria builds Criteria from filter text fields. Blank fields impose
// no constraint.
func ParseCriteria(location, propertyType, maxPrice, minBedrooms string) (Criteria, error) {
	c := Criteria{
		Location: strings.TrimSpace(location),
		Type:     PropertyType(strings.ToLower(strings.TrimSpace(propertyType))),
	}
	if c.Type != "" && !c.Type.Valid() {
		return Criteria{}, invalid("type", "must be sale, rent or empty")
	}

	if strings.TrimSpace(maxPrice) != "" {
		v, err := parseFloat("max price", maxPrice)
		if err != nil {
			return Criteria{}, err
		}
		c.MaxPrice = &v
	}
	if strings.TrimSpace(minBedrooms) != "" {
		v, err := parseInt("bedrooms", minBedrooms)
		if err != nil {
			return Criteria{}, err
		}
		c.MinBedrooms = &v
	}
	return c, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "must be a number")
	}
	return v, nil
}

func parseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid(field, "must be a whole number")
	}
	return v, nil
}
