package redk

import "github.com/pkg/errors"

// DerivePrice computes the canonical unit price for a row. It first tries the
// direct unit-price aliases; a value which parses to a finite, non-zero
// number wins. Failing that it derives totalPrice/area, but only when both
// parse and the area is strictly positive - a zero or missing area is a
// derivation failure, never a divide-by-zero. No unit conversion is
// performed; keeping price and area units consistent is the source's problem.
func DerivePrice(row Row, aliases AliasConfig) (float64, error) {
	if v, ok := Resolve(row, aliases[Price]); ok {
		if f, err := FloatValue(v); err == nil && f != 0 {
			return f, nil
		}
	}

	tv, ok := Resolve(row, aliases[TotalPrice])
	if !ok {
		return 0, errors.New("no unit price and no total price")
	}
	total, err := FloatValue(tv)
	if err != nil {
		return 0, errors.Wrap(err, "parsing total price")
	}
	av, ok := Resolve(row, aliases[Area])
	if !ok {
		return 0, errors.New("no unit price and no area")
	}
	area, err := FloatValue(av)
	if err != nil {
		return 0, errors.Wrap(err, "parsing area")
	}
	if area <= 0 {
		return 0, errors.Errorf("cannot derive unit price from area %v", area)
	}
	return total / area, nil
}
