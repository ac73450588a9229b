package redk

// Transaction is the canonical record the pipeline emits. Position is always
// exactly two finite, non-zero coordinates; Price is always within the
// filter's bounds at the moment the record is created; YearMonth always
// matches YYYY-MM. Records are never mutated after creation.
type Transaction struct {
	// Position is (longitude, latitude) in decimal degrees.
	Position     [2]float64 `json:"position"`
	Price        float64    `json:"price"`
	YearMonth    string     `json:"yearMonth"`
	Area         float64    `json:"area"`
	Address      string     `json:"address"`
	BuildingType string     `json:"buildingType"`
	TotalPrice   float64    `json:"totalPrice"`
}

// Stats counts the outcome of one pipeline run.
type Stats struct {
	Accepted int64 `json:"accepted"`
	Skipped  int64 `json:"skipped"`
}
