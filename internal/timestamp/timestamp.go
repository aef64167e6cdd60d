package timestamp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02 15:04:05"

var (
	ErrInvalidTimestamp = errors.New("Invalid timestamp")
	ErrInvalidDate      = errors.New("Invalid date format (e.g., YYYY-MM-DD HH:mm:ss)")
)

var dateLayouts = []string{
	Layout,
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadLocation resolves a configured zone name; "" and "Local" mean the
// system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", name, err)
	}
	return loc, nil
}

// FromUnix parses seconds, or milliseconds when the input is exactly 13
// characters long. A leading sign counts toward the length.
func FromUnix(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	millis := len(raw) == 13

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if millis {
			return checkRange(time.UnixMilli(n))
		}
		if n > maxUnix || n < -maxUnix {
			return time.Time{}, ErrInvalidTimestamp
		}
		return time.Unix(n, 0), nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, ErrInvalidTimestamp
	}
	if millis {
		v /= 1000
	}
	if math.Abs(v) > maxUnix {
		return time.Time{}, ErrInvalidTimestamp
	}

	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))), nil
}

// Beyond year 9999 the layout stops making sense
const maxUnix = 253402300799

func checkRange(t time.Time) (time.Time, error) {
	if u := t.Unix(); u > maxUnix || u < -maxUnix {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t, nil
}

// ParseDate reads a date in loc unless the input names its own offset.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Relative describes t against now, like "3 hours ago" or "in 2 days".
func Relative(t, now time.Time) string {
	d := t.Sub(now)
	future := d > 0
	if d < 0 {
		d = -d
	}

	var amount string
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		amount = plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		amount = plural(int(d/time.Hour), "hour")
	case d < 365*24*time.Hour:
		amount = plural(int(d/(24*time.Hour)), "day")
	default:
		amount = plural(int(d/(365*24*time.Hour)), "year")
	}

	if future {
		return "in " + amount
	}
	return amount + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
