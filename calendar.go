package redk

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// minguoOffset converts a Republic of China era year to a Gregorian year.
const minguoOffset = 1911

var (
	eraLongForm   = regexp.MustCompile(`^(\d{1,4})年(\d{1,2})月`)
	gregorianForm = regexp.MustCompile(`^\d{4}-\d{2}`)
	eraShortForm  = regexp.MustCompile(`^\d{5}$`)
)

// NormalizeYearMonth converts a raw transaction date into the canonical
// "YYYY-MM" form. Three shapes are recognized, tried in this order:
//
//	112年01月     minguo era year and month
//	2023-01-15    Gregorian, truncated to the first seven characters
//	11201         compact minguo form, three era digits then two month digits
//
// The shapes are mutually exclusive patterns with no cross-validation between
// them; a malformed five-digit value is read as the compact form even when
// that produces an implausible year. Anything else is an error.
func NormalizeYearMonth(raw string) (string, error) {
	if m := eraLongForm.FindStringSubmatch(raw); m != nil {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			return "", errors.Wrapf(err, "parsing era year in %q", raw)
		}
		month, err := strconv.Atoi(m[2])
		if err != nil {
			return "", errors.Wrapf(err, "parsing month in %q", raw)
		}
		return fmt.Sprintf("%d-%02d", year+minguoOffset, month), nil
	}
	if gregorianForm.MatchString(raw) {
		return raw[:7], nil
	}
	if eraShortForm.MatchString(raw) {
		year, err := strconv.Atoi(raw[:3])
		if err != nil {
			return "", errors.Wrapf(err, "parsing era year in %q", raw)
		}
		return fmt.Sprintf("%d-%s", year+minguoOffset, raw[3:]), nil
	}
	return "", errors.Errorf("unrecognized year-month %q", raw)
}
