package timestamp

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const ZoneLayout = "2006-01-02 15:04:05 MST"

var ErrInvalidZone = errors.New("Invalid Timezone or Date")

// Zones are offered for cycling on the timezone page. Any IANA name can be
// typed instead.
var Zones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Sao_Paulo",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Moscow",
	"Africa/Johannesburg",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Asia/Seoul",
	"Australia/Sydney",
	"Pacific/Auckland",
}

// NextZone returns the entry after name in Zones, or the first one when name
// is not listed.
func NextZone(name string) string {
	for i, z := range Zones {
		if strings.EqualFold(z, name) {
			return Zones[(i+1)%len(Zones)]
		}
	}
	return Zones[0]
}

// ConvertZone reads raw as a wall clock time in the zone named from and
// returns the same instant in the zone named to.
func ConvertZone(raw, from, to string) (time.Time, error) {
	src, err := LoadLocation(from)
	if err != nil {
		return time.Time{}, ErrInvalidZone
	}
	dst, err := LoadLocation(to)
	if err != nil {
		return time.Time{}, ErrInvalidZone
	}
	t, err := ParseDate(raw, src)
	if err != nil {
		return time.Time{}, ErrInvalidZone
	}
	return t.In(dst), nil
}

// OffsetDiff describes how far b's wall clock runs ahead of a's at instant t,
// like "+5h" or "-3h30m".
func OffsetDiff(t time.Time, a, b *time.Location) string {
	_, oa := t.In(a).Zone()
	_, ob := t.In(b).Zone()
	d := time.Duration(ob-oa) * time.Second
	if d == 0 {
		return "same time"
	}
	sign := "+"
	if d < 0 {
		sign, d = "-", -d
	}
	s := fmt.Sprintf("%dh", int(d/time.Hour))
	if m := int((d % time.Hour) / time.Minute); m != 0 {
		s += fmt.Sprintf("%dm", m)
	}
	return sign + s
}
