// Package calendar implements the public civil ↔ instant conversion
// and calendar-aware arithmetic that the rest of kalends builds
// toward: Calendar.Time/CalendarUnits (spec.md §4.5), Trim/Add/
// DiffUnits (§4.6), and ISO-8601 formatting/parsing (§4.7).
package calendar

import (
	"github.com/kalends-io/kalends/civil"
	"github.com/kalends-io/kalends/instant"
	"github.com/kalends-io/kalends/tz"
)

// Calendar carries a shared, immutable TzInfo (spec.md §3). Calendar
// values are cheap to copy; nothing here mutates the underlying
// TzInfo, so a Calendar can be shared across goroutines freely.
type Calendar struct {
	Zone tz.TzInfo
}

// New returns a Calendar over the given zone.
func New(zone tz.TzInfo) Calendar {
	return Calendar{Zone: zone}
}

// localMicros computes t0, the "local serial microsecond count" for c
// treated as if it were itself a UTC instant (spec.md §4.5 step 3-4):
// local_seconds = (day_number(Y,M,D) - UnixDay)*86400 + h*3600+m*60+s.
func localMicros(c civil.YMDhms) instant.Instant {
	dn := civil.DayNumber(c.Year, c.Month, c.Day)
	secs := (dn-civil.UnixDay)*86400 + c.SecondsOfDay()
	return instant.Instant(secs * 1_000_000)
}

// resolve converts civil coordinates c to a UTC instant by consulting
// the zone's DST table at a near-candidate instant rather than
// iterating to a fixed point: approx is used only to pick which
// offset is in effect, and the final result always equals
// local - UTCOffset(candidate). This is spec.md §4.5 step 5's
// disambiguation policy, generalized so Time (approx = BaseOffset)
// and Add's DST correction (approx = offset at the pre-add instant)
// share one implementation.
//
// civil coordinates that fall in a skipped ("spring-forward") hour
// resolve to the same instant as the next valid wall-clock hour;
// coordinates in an ambiguous ("fall-back") hour resolve to the
// pre-transition instant. Both are deterministic, single-valued
// choices, not an error.
func (cal Calendar) resolve(c civil.YMDhms, approx instant.TimeSpan) instant.Instant {
	local := localMicros(c)
	candidate := local - instant.Instant(approx)
	o := cal.Zone.UTCOffset(candidate)
	return local - instant.Instant(o)
}

// Time converts civil coordinates to a UTC instant (spec.md §4.5).
// The null value maps to NONE; YMDhms::max()/min() map to their
// Instant counterparts without consulting the zone at all.
func (cal Calendar) Time(c civil.YMDhms) (instant.Instant, error) {
	if c.IsNull() {
		return instant.None, nil
	}
	if c == civil.Max() {
		return instant.Max, nil
	}
	if c == civil.Min() {
		return instant.Min, nil
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return cal.resolve(c, cal.Zone.BaseOffset), nil
}

// TimeFromWeek converts ISO week-date coordinates to a UTC instant by
// first converting to (Y,M,D), then proceeding exactly as Time does
// (spec.md §4.5).
func (cal Calendar) TimeFromWeek(w civil.YWdhms) (instant.Instant, error) {
	if w.IsNull() {
		return instant.None, nil
	}
	if w == civil.MaxWeek() {
		return instant.Max, nil
	}
	if w == civil.MinWeek() {
		return instant.Min, nil
	}
	if err := w.Validate(); err != nil {
		return 0, err
	}
	y, m, d := civil.FromISOWeek(w.IsoYear, w.IsoWeek, w.WeekDay)
	c := civil.YMDhms{Year: y, Month: m, Day: d, Hour: w.Hour, Minute: w.Minute, Second: w.Second}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return cal.resolve(c, cal.Zone.BaseOffset), nil
}

// CalendarUnits converts a UTC instant to civil coordinates (spec.md
// §4.5). Since NONE and MIN share a bit pattern, an invalid instant
// always decodes to the null YMDhms rather than YMDhms::min(); this
// matches Instant.IsValid's own inability to tell the two apart.
func (cal Calendar) CalendarUnits(t instant.Instant) civil.YMDhms {
	if !t.IsValid() {
		return civil.YMDhms{}
	}
	if t == instant.Max {
		return civil.Max()
	}
	offset := cal.Zone.UTCOffset(t)
	local := t + instant.Instant(offset)
	dn := floorDiv(int64(local), 86_400_000_000) + civil.UnixDay
	secOfDay := floorMod(int64(local), 86_400_000_000) / 1_000_000
	y, m, d := civil.FromDayNumber(dn)
	return civil.YMDhms{
		Year: y, Month: m, Day: d,
		Hour:   int(secOfDay / 3600),
		Minute: int((secOfDay % 3600) / 60),
		Second: int(secOfDay % 60),
	}
}

// CalendarWeekUnits converts a UTC instant to ISO week-date
// coordinates.
func (cal Calendar) CalendarWeekUnits(t instant.Instant) civil.YWdhms {
	c := cal.CalendarUnits(t)
	if c.IsNull() {
		return civil.YWdhms{}
	}
	if c == civil.Max() {
		return civil.MaxWeek()
	}
	isoYear, isoWeek, weekDay := civil.ToISOWeek(c.Year, c.Month, c.Day)
	return civil.YWdhms{
		IsoYear: isoYear, IsoWeek: isoWeek, WeekDay: weekDay,
		Hour: c.Hour, Minute: c.Minute, Second: c.Second,
	}
}

// Month returns t's civil month, or -1 for an invalid instant
// (spec.md §4.5).
func (cal Calendar) Month(t instant.Instant) int {
	if !t.IsValid() {
		return -1
	}
	return cal.CalendarUnits(t).Month
}

// Quarter returns t's civil quarter (1-4), or -1 for an invalid
// instant.
func (cal Calendar) Quarter(t instant.Instant) int {
	if !t.IsValid() {
		return -1
	}
	return cal.CalendarUnits(t).Quarter()
}

// DayOfYear returns t's 1-based ordinal day within its civil year, or
// -1 for an invalid instant.
func (cal Calendar) DayOfYear(t instant.Instant) int {
	if !t.IsValid() {
		return -1
	}
	return cal.CalendarUnits(t).DayOfYear()
}

// DayOfWeek returns t's day of week, 0=Sunday..6=Saturday (note this
// is the non-ISO convention; see CalendarWeekUnits for ISO weekdays),
// or -1 for an invalid instant.
func (cal Calendar) DayOfWeek(t instant.Instant) int {
	if !t.IsValid() {
		return -1
	}
	return cal.CalendarUnits(t).Weekday()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
