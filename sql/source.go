// Package sql provides a redk.Source over database query results. Result
// columns are expected to use the standardized snake_case names, so the
// alias set here is small.
package sql

import (
	"database/sql"
	"io"

	"github.com/estatemap/redk"
	"github.com/pkg/errors"
)

// Source is a redk.Source reading rows from a sql.Rows result set. It is NOT
// safe for concurrent use - database/sql result sets are cursors - so run the
// pipeline over it sequentially or wrap it yourself.
type Source struct {
	rows *sql.Rows
	cols []string
	done bool
}

// NewSource returns a Source over rows. The caller keeps ownership of the
// underlying connection; the result set itself is closed when drained.
func NewSource(rows *sql.Rows) (*Source, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "getting columns")
	}
	return &Source{rows: rows, cols: cols}, nil
}

// Record returns the next result row as a map[string]interface{} keyed by
// column name. Driver []byte values become strings.
func (s *Source) Record() (interface{}, error) {
	if s.done {
		return nil, io.EOF
	}
	if !s.rows.Next() {
		s.done = true
		if err := s.rows.Err(); err != nil {
			return nil, errors.Wrap(err, "iterating rows")
		}
		if err := s.rows.Close(); err != nil {
			return nil, errors.Wrap(err, "closing rows")
		}
		return nil, io.EOF
	}
	vals := make([]interface{}, len(s.cols))
	ptrs := make([]interface{}, len(s.cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := s.rows.Scan(ptrs...); err != nil {
		return nil, errors.Wrap(err, "scanning row")
	}
	rec := make(map[string]interface{}, len(s.cols))
	for i, col := range s.cols {
		if b, ok := vals[i].([]byte); ok {
			rec[col] = string(b)
			continue
		}
		rec[col] = vals[i]
	}
	return rec, nil
}

// Aliases is the alias set for relational input: the canonical names plus
// their snake_case column forms.
func Aliases() redk.AliasConfig {
	return redk.AliasConfig{
		redk.Longitude:    {"longitude", "lng"},
		redk.Latitude:     {"latitude", "lat"},
		redk.YearMonth:    {"yearMonth", "year_month"},
		redk.Price:        {"price", "unit_price"},
		redk.Area:         {"area"},
		redk.Address:      {"address"},
		redk.BuildingType: {"buildingType", "building_type"},
		redk.TotalPrice:   {"totalPrice", "total_price"},
	}
}
