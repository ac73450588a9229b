package redk

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StringValue renders a loosely typed row value as a string. It handles the
// types the sources actually produce: strings, JSON numbers (float64), the
// integer types database drivers hand back, and booleans. The second return
// is false for nil and for unrenderable types.
func StringValue(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	case []byte:
		return string(s), true
	}
	return "", false
}

// FloatValue parses a loosely typed row value as a float64. Strings are
// parsed with strconv after trimming whitespace and any thousands commas the
// government CSV exports like to include. NaN and infinities are errors.
func FloatValue(v interface{}) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		var err error
		f, err = strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		if err != nil {
			return 0, errors.Wrap(err, "parsing float")
		}
	case []byte:
		return FloatValue(string(n))
	case nil:
		return 0, errors.New("nil value")
	default:
		return 0, errors.Errorf("unsupported numeric type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("value %v is not finite", f)
	}
	return f, nil
}
