package calendar

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/kalends-io/kalends/civil"
	"github.com/kalends-io/kalends/instant"
	"sigs.k8s.io/yaml"
)

// Sentinel tokens used by Format/ParseISO8601 for the three instant
// sentinels (spec.md §4.7). NONE and MIN share a bit pattern (spec.md
// §3), so Format always renders that value as NoneToken; MinToken
// exists only so ParseISO8601 can still accept it on the way in.
const (
	NoneToken = "NONE"
	MaxToken  = "+INFINITY"
	MinToken  = "-INFINITY"
)

var iso8601Re = regexp.MustCompile(
	`^(-?\d{1,4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(Z|[+-]\d{2}:\d{2})?$`)

// offsetSuffix renders off as "Z" (zero offset) or "±HH:MM".
func offsetSuffix(off instant.TimeSpan) string {
	if off == 0 {
		return "Z"
	}
	sign := "+"
	mag := int64(off)
	if mag < 0 {
		sign = "-"
		mag = -mag
	}
	hh := mag / int64(instant.Hour)
	mm := (mag % int64(instant.Hour)) / int64(instant.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, hh, mm)
}

// Format renders t as extended ISO-8601 with an offset suffix
// (spec.md §4.7): "YYYY-MM-DDThh:mm:ssZ" or "...±HH:MM". NONE renders
// as NoneToken; MAX renders as MaxToken.
func (cal Calendar) Format(t instant.Instant) string {
	if t == instant.None {
		return NoneToken
	}
	if t == instant.Max {
		return MaxToken
	}
	c := cal.CalendarUnits(t)
	off := cal.Zone.UTCOffset(t)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, offsetSuffix(off))
}

// FormatPeriod renders p using half-open interval notation, with each
// endpoint formatted against cal.
func (cal Calendar) FormatPeriod(p instant.Period) string {
	return fmt.Sprintf("[%s, %s>", cal.Format(p.Start), cal.Format(p.End))
}

// ParseISO8601 parses extended ISO-8601 with an optional offset
// (missing offset means UTC), or one of the three sentinel tokens,
// into a UTC instant (spec.md §4.7). It is zone-independent: an
// explicit offset in s is honored literally, it never consults a
// Calendar's DST table.
func ParseISO8601(s string) (instant.Instant, error) {
	switch s {
	case NoneToken:
		return instant.None, nil
	case MaxToken:
		return instant.Max, nil
	case MinToken:
		return instant.Min, nil
	}
	m := iso8601Re.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])

	c := civil.YMDhms{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var off instant.TimeSpan
	if field := m[7]; field != "" && field != "Z" {
		sign := instant.TimeSpan(1)
		if field[0] == '-' {
			sign = -1
		}
		hh, _ := strconv.Atoi(field[1:3])
		mm, _ := strconv.Atoi(field[4:6])
		off = sign * (instant.TimeSpan(hh)*instant.Hour + instant.TimeSpan(mm)*instant.Minute)
	}

	secs := (c.DayNumber()-civil.UnixDay)*86400 + c.SecondsOfDay()
	local := instant.Instant(secs * 1_000_000)
	return local - instant.Instant(off), nil
}

// yamlCalendar is the diagnostic shape MarshalYAML emits: enough to
// identify the zone a Calendar carries without exposing its full
// per-year DST table.
type yamlCalendar struct {
	Zone       string `json:"zone"`
	BaseOffset string `json:"base_offset"`
	HasDST     bool   `json:"has_dst"`
}

// MarshalYAML renders a diagnostic summary of cal's zone via
// sigs.k8s.io/yaml, the serialisation hook spec.md §9 asks for given a
// concrete wire format.
func (cal Calendar) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(yamlCalendar{
		Zone:       cal.Zone.Name(),
		BaseOffset: offsetSuffix(cal.Zone.BaseOffset),
		HasDST:     !cal.Zone.Table.IsDSTLess(),
	})
}
