package tz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kalends-io/kalends/civil"
	"github.com/kalends-io/kalends/instant"
)

// ruleDayKind distinguishes the three POSIX day-of-transition forms.
type ruleDayKind byte

const (
	ruleJulianNoLeap ruleDayKind = 'J' // Jn: day n, Feb 29 never counted
	ruleJulianLeap   ruleDayKind = 'N' // n: day n (0-based), Feb 29 counted
	ruleMonthWeekDay ruleDayKind = 'M' // Mm.w.d
)

// transitionRule is one half (start or end) of a POSIX TZ rule: the
// civil date on which a transition occurs, and the local time of day
// it occurs at.
type transitionRule struct {
	kind                ruleDayKind
	julian              int // for ruleJulianNoLeap / ruleJulianLeap
	month, week, weekday int // for ruleMonthWeekDay; weekday 0=Sunday..6=Saturday
	secondsOfDay        int64
}

// dayNumber returns the serial day number of the transition in the
// given civil year.
func (r transitionRule) dayNumber(year int) int64 {
	switch r.kind {
	case ruleJulianNoLeap:
		dn := civil.DayNumber(year, 1, 1) + int64(r.julian-1)
		if isLeapYear(year) && r.julian >= 60 {
			dn++
		}
		return dn
	case ruleJulianLeap:
		return civil.DayNumber(year, 1, 1) + int64(r.julian)
	default: // ruleMonthWeekDay
		return monthWeekDayNumber(year, r.month, r.week, r.weekday)
	}
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// monthWeekDayNumber returns the serial day number of the w-th
// occurrence of weekday wd (0=Sunday..6=Saturday) in month m of year,
// where w==5 means "the last occurrence", per POSIX TZ's Mm.w.d form.
// Grounded on the lastWeekday/nextWeekday arithmetic shown in
// other_examples/go-tz-tz__datemath.go.
func monthWeekDayNumber(year, m, w, wd int) int64 {
	firstWeekday := (civil.YMDhms{Year: year, Month: m, Day: 1}).Weekday()
	if w == 5 {
		lastDay := civil.DaysInMonth(year, m)
		lastWeekday := (civil.YMDhms{Year: year, Month: m, Day: lastDay}).Weekday()
		back := (lastWeekday - wd + 7) % 7
		return civil.DayNumber(year, m, lastDay-back)
	}
	forward := (wd - firstWeekday + 7) % 7
	day := 1 + forward + (w-1)*7
	return civil.DayNumber(year, m, day)
}

// PosixRule is a DST rule provider derived from evaluating a POSIX
// 1003.1 TZ string against a civil year. It implements the
// rule-provider interface spec.md §4.3 requires for constructing a
// TzTable: DSTStart, DSTEnd, DSTOffset, Name.
type PosixRule struct {
	stdName string
	stdOff  instant.TimeSpan // UTC offset while standard time is in effect (added to UTC to get local)
	dstOff  instant.TimeSpan // UTC offset while DST is in effect

	start, end     transitionRule
	hasTransitions bool
}

var posixRe = regexp.MustCompile(
	`^(<[^>]+>|[A-Za-z]+)([+-]?\d{1,3}(?::\d{1,2}(?::\d{1,2})?)?)` +
		`(?:(<[^>]+>|[A-Za-z]+)([+-]?\d{1,3}(?::\d{1,2}(?::\d{1,2})?)?)?)?` +
		`(?:,([^,]+),([^,]+))?$`)

// ParsePosixRule parses a POSIX TZ string of the form
// "std offset dst [offset][,start[/time],end[/time]]" into a
// PosixRule.
func ParsePosixRule(s string) (PosixRule, error) {
	m := posixRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return PosixRule{}, fmt.Errorf("%w: malformed POSIX TZ string %q", ErrParse, s)
	}
	stdName := unquoteZoneName(m[1])
	stdField, err := parsePosixOffset(m[2])
	if err != nil {
		return PosixRule{}, fmt.Errorf("%w: std offset: %v", ErrParse, err)
	}
	r := PosixRule{
		stdName: stdName,
		stdOff:  -stdField,
	}
	dstName := m[3]
	if dstName == "" {
		// No DST portion: a plain fixed-offset zone.
		return r, nil
	}
	var dstField instant.TimeSpan
	if m[4] != "" {
		dstField, err = parsePosixOffset(m[4])
		if err != nil {
			return PosixRule{}, fmt.Errorf("%w: dst offset: %v", ErrParse, err)
		}
	} else {
		// Default DST offset (when omitted) is one hour less west
		// of UTC than standard time.
		dstField = stdField - instant.Hour
	}
	r.dstOff = -dstField

	if m[5] == "" || m[6] == "" {
		// Name present but no explicit transition dates: fall back
		// to treating it as a fixed DST-less offset, matching
		// spec.md §4.3's "from a fixed offset" constructor rather
		// than guessing at US-style default rules.
		return r, nil
	}
	start, err := parseTransitionSpec(m[5])
	if err != nil {
		return PosixRule{}, fmt.Errorf("%w: start rule: %v", ErrParse, err)
	}
	end, err := parseTransitionSpec(m[6])
	if err != nil {
		return PosixRule{}, fmt.Errorf("%w: end rule: %v", ErrParse, err)
	}
	r.start, r.end = start, end
	r.hasTransitions = true
	return r, nil
}

func unquoteZoneName(s string) string {
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1]
	}
	return s
}

func parsePosixOffset(s string) (instant.TimeSpan, error) {
	if s == "" {
		return 0, fmt.Errorf("empty offset")
	}
	sign := instant.TimeSpan(1)
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	total := int64(h) * 3600
	if len(parts) > 1 {
		mm, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, err
		}
		total += int64(mm) * 60
	}
	if len(parts) > 2 {
		ss, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, err
		}
		total += int64(ss)
	}
	return sign * instant.TimeSpan(total) * instant.Second, nil
}

func parseTransitionSpec(s string) (transitionRule, error) {
	datePart, timePart := s, ""
	if i := strings.IndexByte(s, '/'); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
	}
	secs := int64(7200) // POSIX default transition time is 02:00:00 local
	if timePart != "" {
		v, err := parsePosixOffset(timePart)
		if err != nil {
			return transitionRule{}, err
		}
		secs = int64(v) / 1_000_000
	}
	switch {
	case strings.HasPrefix(datePart, "J"):
		n, err := strconv.Atoi(datePart[1:])
		if err != nil {
			return transitionRule{}, fmt.Errorf("bad Jn rule %q: %v", datePart, err)
		}
		return transitionRule{kind: ruleJulianNoLeap, julian: n, secondsOfDay: secs}, nil
	case strings.HasPrefix(datePart, "M"):
		fields := strings.Split(datePart[1:], ".")
		if len(fields) != 3 {
			return transitionRule{}, fmt.Errorf("bad Mm.w.d rule %q", datePart)
		}
		month, err1 := strconv.Atoi(fields[0])
		week, err2 := strconv.Atoi(fields[1])
		weekday, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return transitionRule{}, fmt.Errorf("bad Mm.w.d rule %q", datePart)
		}
		return transitionRule{kind: ruleMonthWeekDay, month: month, week: week, weekday: weekday, secondsOfDay: secs}, nil
	default:
		n, err := strconv.Atoi(datePart)
		if err != nil {
			return transitionRule{}, fmt.Errorf("bad julian rule %q: %v", datePart, err)
		}
		return transitionRule{kind: ruleJulianLeap, julian: n, secondsOfDay: secs}, nil
	}
}

// Name implements the rule-provider interface.
func (r PosixRule) Name() string { return r.stdName }

// HasDST reports whether the rule describes any DST transitions at
// all (as opposed to a bare fixed-offset zone).
func (r PosixRule) HasDST() bool { return r.hasTransitions }

// BaseOffset returns the standard-time UTC offset.
func (r PosixRule) BaseOffset() instant.TimeSpan { return r.stdOff }

// DSTDelta returns the additional offset applied during DST, on top
// of BaseOffset.
func (r PosixRule) DSTDelta() instant.TimeSpan { return r.dstOff - r.stdOff }

// localInstant converts a transition rule's (day number, time of day)
// in year, interpreted under offset off, to a UTC instant.
func localInstant(dn int64, secondsOfDay int64, off instant.TimeSpan) instant.Instant {
	localMicros := (dn-civil.UnixDay)*86400_000_000 + secondsOfDay*1_000_000
	return instant.Instant(localMicros) - instant.Instant(off)
}

// DSTStart returns the UTC instant at which DST begins in year. The
// transition's local time of day is interpreted in standard time, the
// offset in effect immediately before the switch.
func (r PosixRule) DSTStart(year int) instant.Instant {
	if !r.hasTransitions {
		return instant.None
	}
	return localInstant(r.start.dayNumber(year), r.start.secondsOfDay, r.stdOff)
}

// DSTEnd returns the UTC instant at which DST ends in year. The
// transition's local time of day is interpreted in DST, the offset in
// effect immediately before the switch.
func (r PosixRule) DSTEnd(year int) instant.Instant {
	if !r.hasTransitions {
		return instant.None
	}
	return localInstant(r.end.dayNumber(year), r.end.secondsOfDay, r.dstOff)
}

// DSTOffset returns the additional UTC offset applied while DST is in
// effect in year. POSIX rules describe a single DST delta that
// applies uniformly across the years a rule covers.
func (r PosixRule) DSTOffset(year int) instant.TimeSpan {
	if !r.hasTransitions {
		return 0
	}
	return r.DSTDelta()
}
