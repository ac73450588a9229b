// Package geohash computes spatial grid-cell keys for canonical records, so
// the visualization consumer can bucket them without re-deriving cells.
package geohash

import "github.com/mmcloughlin/geohash"

// Key returns the geohash cell key containing the coordinate, precision
// characters long.
func Key(lat, lng float64, precision int) string {
	return geohash.EncodeWithPrecision(lat, lng, uint(precision))
}
