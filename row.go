package redk

import (
	"strings"

	"github.com/pkg/errors"
)

// Row is one raw record viewed as a loose key-value mapping. Get returns the
// value stored under key and whether the key was present at all - callers
// must be able to tell a missing field from a present-but-falsy one, since
// zero is a legal area or total price. Key matching is case-insensitive.
type Row interface {
	Get(key string) (val interface{}, ok bool)
}

// MapRow is a Row over a map with arbitrarily typed values, which is what the
// JSON-based sources produce.
type MapRow map[string]interface{}

// Get implements Row.
func (r MapRow) Get(key string) (interface{}, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// StringRow is a Row over a map of strings, which is what the delimited-file
// sources produce.
type StringRow map[string]string

// Get implements Row.
func (r StringRow) Get(key string) (interface{}, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// AsRow converts a record returned by a Source into a Row. Sources in this
// repository produce map[string]interface{} or map[string]string records;
// anything else is an error.
func AsRow(rec interface{}) (Row, error) {
	switch r := rec.(type) {
	case Row:
		return r, nil
	case map[string]interface{}:
		return MapRow(r), nil
	case map[string]string:
		return StringRow(r), nil
	}
	return nil, errors.Errorf("unsupported record type %T", rec)
}
