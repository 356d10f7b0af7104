package models

// Criteria narrows a listing view. Zero-valued string fields and nil
// pointers impose no constraint; an explicit zero MaxPrice or MinBedrooms
// is a real bound.
type Criteria struct {
	Location    string
	Type        PropertyType
	MaxPrice    *float64
	MinBedrooms *int
}

// IsEmpty reports whether c imposes no constraint at all.
func (c Criteria) IsEmpty() bool {
	return c.Location == "" && c.Type == "" && c.MaxPrice == nil && c.MinBedrooms == nil
}
