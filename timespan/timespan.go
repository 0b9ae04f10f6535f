package timespan

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
)

// ErrParse indicates the date string does not match the given format.
var ErrParse = errors.New("timespan: timestamp does not match format")

// MaxEpoch is the upper bound returned when the format carries no
// temporal information at all.
const MaxEpoch = float64(math.MaxInt64)

// Token classes that pin down each level of precision, checked
// coarsest-first. A format lacking every token of a class cannot
// express that resolution, so the interval widens accordingly.
const (
	yearTokens   = "yYcxG"     // century, year, locale date, ISO year
	monthTokens  = "bBmjUWcxV" // month, day-of-year, week number
	dayTokens    = "aAwdjcxV"  // weekday, day-of-month
	hourTokens   = "HIcX"
	minuteTokens = "McX"
	secondTokens = "ScX"
	subsecTokens = "f"
)

// Disambiguate parses dateStr against a strptime-style format and
// returns the maximal (mint, maxt) interval, in epoch seconds, that
// the string could denote at the format's precision. The interval is
// closed: maxt is the final microsecond of the period.
//
// Returns ErrParse when dateStr does not match format.
func Disambiguate(dateStr, format string) (mint, maxt float64, err error) {
	lo, err := timefmt.Parse(dateStr, format)
	if err != nil {
		return 0, 0, fmt.Errorf("timespan: parse %q with format %q: %w", dateStr, format, ErrParse)
	}
	lo = lo.UTC()

	// Literal percent signs are not precision tokens.
	format = strings.ReplaceAll(format, "%%", "")

	var hi time.Time
	switch {
	case !hasToken(format, yearTokens):
		// No temporal info at all.
		return 0, MaxEpoch, nil
	case !hasToken(format, monthTokens):
		// Year resolution.
		hi = time.Date(lo.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	case !hasToken(format, dayTokens):
		// Month resolution.
		if lo.Month() == time.December {
			hi = time.Date(lo.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		} else {
			hi = time.Date(lo.Year(), lo.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		}
	case !hasToken(format, hourTokens):
		// Day resolution.
		hi = lo.Add(24 * time.Hour)
	case !hasToken(format, minuteTokens):
		hi = lo.Add(time.Hour)
	case !hasToken(format, secondTokens):
		hi = lo.Add(time.Minute)
	case !hasToken(format, subsecTokens):
		hi = lo.Add(time.Second)
	default:
		hi = lo.Add(time.Microsecond)
	}

	// Half-open period to closed interval.
	hi = hi.Add(-time.Microsecond)

	return epochSeconds(lo), epochSeconds(hi), nil
}

// hasToken reports whether format contains %c for any c in codes.
func hasToken(format, codes string) bool {
	for _, c := range codes {
		if strings.Contains(format, "%"+string(c)) {
			return true
		}
	}
	return false
}

// epochSeconds converts t to fractional epoch seconds with
// microsecond precision.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}
