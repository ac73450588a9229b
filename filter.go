package redk

// Default unit-price bounds, in the source currency and area-unit convention.
const (
	DefaultMinPrice = 100000
	DefaultMaxPrice = 2000000
)

// Filter holds the caller-supplied acceptance constraints. The price bounds
// are inclusive. An empty BuildingTypes list admits every building type. The
// pipeline does not validate the bounds themselves; MinPrice > MaxPrice
// simply passes no rows.
type Filter struct {
	MinPrice      float64
	MaxPrice      float64
	BuildingTypes []string
}

// NewFilter returns a Filter with the default price bounds and no
// building-type restriction.
func NewFilter() Filter {
	return Filter{
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// AdmitPrice reports whether price lies within the inclusive bounds.
func (f Filter) AdmitPrice(price float64) bool {
	return price >= f.MinPrice && price <= f.MaxPrice
}

// AdmitBuildingType reports whether bt is allowed by the categorical
// allow-list.
func (f Filter) AdmitBuildingType(bt string) bool {
	if len(f.BuildingTypes) == 0 {
		return true
	}
	for _, allowed := range f.BuildingTypes {
		if bt == allowed {
			return true
		}
	}
	return false
}
