package civil

import "testing"

func TestUnixDayNumber(t *testing.T) {
	if got := DayNumber(1970, 1, 1); got != UnixDay {
		t.Errorf("DayNumber(1970,1,1) = %d, want %d", got, UnixDay)
	}
}

func TestDayNumberRoundTrip(t *testing.T) {
	cases := []struct{ y, m, d int }{
		{1970, 1, 1},
		{2000, 2, 29},
		{1, 1, 1},
		{-1, 12, 31},
		{9999, 12, 31},
		{-9999, 1, 1},
		{2016, 3, 27},
		{2020, 1, 31},
	}
	for _, c := range cases {
		dn := DayNumber(c.y, c.m, c.d)
		y, m, d := FromDayNumber(dn)
		if y != c.y || m != c.m || d != c.d {
			t.Errorf("round trip (%d,%d,%d) -> %d -> (%d,%d,%d)", c.y, c.m, c.d, dn, y, m, d)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if DaysInMonth(2000, 2) != 29 {
		t.Error("2000 should be a leap year")
	}
	if DaysInMonth(1900, 2) != 28 {
		t.Error("1900 should not be a leap year")
	}
	if DaysInMonth(2021, 2) != 28 {
		t.Error("2021 should not be a leap year")
	}
	if DaysInMonth(2020, 2) != 29 {
		t.Error("2020 should be a leap year")
	}
}

func TestWeekday(t *testing.T) {
	// 1970-01-01 was a Thursday.
	if got := (YMDhms{Year: 1970, Month: 1, Day: 1}).Weekday(); got != 4 {
		t.Errorf("Weekday(1970-01-01) = %d, want 4 (Thursday)", got)
	}
	// 2020-01-01 was a Wednesday.
	if got := (YMDhms{Year: 2020, Month: 1, Day: 1}).Weekday(); got != 3 {
		t.Errorf("Weekday(2020-01-01) = %d, want 3 (Wednesday)", got)
	}
}

func TestValidateRejectsOutOfRangeDay(t *testing.T) {
	c := YMDhms{Year: 2021, Month: 2, Day: 29}
	if err := c.Validate(); err == nil {
		t.Error("expected validation error for Feb 29 in a non-leap year")
	}
}

func TestISOWeekScenarios(t *testing.T) {
	isoYear, week, wd := ToISOWeek(2020, 1, 1)
	if isoYear != 2020 || week != 1 || wd != 3 {
		t.Errorf("ToISOWeek(2020,1,1) = (%d,%d,%d), want (2020,1,3)", isoYear, week, wd)
	}
	isoYear, week, wd = ToISOWeek(2021, 1, 1)
	if isoYear != 2020 || week != 53 || wd != 5 {
		t.Errorf("ToISOWeek(2021,1,1) = (%d,%d,%d), want (2020,53,5)", isoYear, week, wd)
	}
}

func TestISOWeekRoundTrip(t *testing.T) {
	for dn := DayNumber(1900, 1, 1); dn < DayNumber(2100, 1, 1); dn += 97 {
		y, m, d := FromDayNumber(dn)
		isoYear, week, wd := ToISOWeek(y, m, d)
		y2, m2, d2 := FromISOWeek(isoYear, week, wd)
		if y2 != y || m2 != m || d2 != d {
			t.Fatalf("ISO round trip failed for %04d-%02d-%02d: got %04d-%02d-%02d via (%d,%d,%d)",
				y, m, d, y2, m2, d2, isoYear, week, wd)
		}
	}
}
