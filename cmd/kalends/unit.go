package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kalends-io/kalends/calendar"
	"github.com/kalends-io/kalends/instant"
)

// parseUnit accepts one of the calendar unit names (YEAR, QUARTER,
// MONTH, WEEK, DAY, HOUR_3) or a plain duration suffixed with a unit
// (e.g. "90s", "2h", "500ms", "10us") for a raw TimeSpan.
func parseUnit(s string) (calendar.Unit, error) {
	switch strings.ToUpper(s) {
	case "YEAR":
		return calendar.Year, nil
	case "QUARTER":
		return calendar.Quarter, nil
	case "MONTH":
		return calendar.Month, nil
	case "WEEK":
		return calendar.Week, nil
	case "DAY":
		return calendar.Day, nil
	case "HOUR_3", "HOUR3":
		return calendar.Hour3, nil
	}
	d, err := parseRawDuration(s)
	if err != nil {
		return calendar.Unit{}, fmt.Errorf("unrecognized unit %q: %w", s, err)
	}
	return calendar.RawUnit(d), nil
}

func parseRawDuration(s string) (instant.TimeSpan, error) {
	for _, suffix := range []struct {
		tag string
		per instant.TimeSpan
	}{
		{"us", instant.Microsecond},
		{"ms", instant.Millisecond},
		{"s", instant.Second},
		{"m", instant.Minute},
		{"h", instant.Hour},
	} {
		if strings.HasSuffix(s, suffix.tag) {
			n, err := strconv.ParseInt(strings.TrimSuffix(s, suffix.tag), 10, 64)
			if err != nil {
				return 0, err
			}
			return instant.TimeSpan(n) * suffix.per, nil
		}
	}
	return 0, fmt.Errorf("no recognized duration suffix (us/ms/s/m/h)")
}
