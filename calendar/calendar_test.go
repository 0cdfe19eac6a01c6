package calendar

import (
	"testing"

	"github.com/kalends-io/kalends/civil"
	"github.com/kalends-io/kalends/instant"
	"github.com/kalends-io/kalends/tz"
)

func utcCalendar() Calendar {
	return New(tz.TzInfo{BaseOffset: 0, Table: tz.NewDefaultTzTable()})
}

func osloCalendar(t *testing.T) Calendar {
	info, err := tz.NewTzInfoFromPosix("CET-1CEST,M3.5.0,M10.5.0/3", tz.DefaultStartYear, tz.DefaultYearCount)
	if err != nil {
		t.Fatal(err)
	}
	return New(info)
}

func TestS1EpochRoundTrip(t *testing.T) {
	cal := utcCalendar()
	got, err := cal.Time(civil.YMDhms{Year: 1970, Month: 1, Day: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("time(1970-01-01) = %v, want 0us", got)
	}
	c := cal.CalendarUnits(0)
	want := civil.YMDhms{Year: 1970, Month: 1, Day: 1}
	if c != want {
		t.Errorf("calendar_units(0) = %+v, want %+v", c, want)
	}
}

func TestS4OsloSkippedHour(t *testing.T) {
	cal := osloCalendar(t)
	skipped, err := cal.Time(civil.YMDhms{Year: 2016, Month: 3, Day: 27, Hour: 2, Minute: 30})
	if err != nil {
		t.Fatal(err)
	}
	want, err := cal.Time(civil.YMDhms{Year: 2016, Month: 3, Day: 27, Hour: 3, Minute: 0})
	if err != nil {
		t.Fatal(err)
	}
	if skipped != want {
		t.Errorf("time(02:30 in the skipped hour) = %v, want %v (= time(03:00))", skipped, want)
	}

	before := want - instant.Instant(2*instant.Hour)
	after := want
	if off := cal.Zone.UTCOffset(before); off != instant.Hour {
		t.Errorf("offset well before transition = %v, want +1h", off)
	}
	if off := cal.Zone.UTCOffset(after); off != 2*instant.Hour {
		t.Errorf("offset at/after transition = %v, want +2h", off)
	}
}

func TestS5OsloAddDayAcrossSpringForward(t *testing.T) {
	cal := osloCalendar(t)
	start, err := cal.Time(civil.YMDhms{Year: 2016, Month: 3, Day: 26, Hour: 12})
	if err != nil {
		t.Fatal(err)
	}
	result := cal.Add(start, Day, 1)
	c := cal.CalendarUnits(result)
	wantC := civil.YMDhms{Year: 2016, Month: 3, Day: 27, Hour: 12}
	if c != wantC {
		t.Errorf("calendar_units(add 1 day) = %+v, want %+v", c, wantC)
	}
	if delta := result.Sub(start); delta != 23*instant.Hour {
		t.Errorf("UTC delta across spring-forward = %v, want 23h", delta)
	}
}

func TestS6DiffUnitsMonth(t *testing.T) {
	cal := utcCalendar()
	t1, _ := cal.Time(civil.YMDhms{Year: 2020, Month: 1, Day: 31})
	t2, _ := cal.Time(civil.YMDhms{Year: 2020, Month: 3, Day: 31})
	whole, rem := cal.DiffUnits(t1, t2, Month)
	if whole != 2 || rem != 0 {
		t.Errorf("diff_units(2020-01-31, 2020-03-31, MONTH) = (%d, %v), want (2, 0)", whole, rem)
	}

	t3, _ := cal.Time(civil.YMDhms{Year: 2020, Month: 2, Day: 28})
	whole, rem = cal.DiffUnits(t1, t3, Month)
	if whole != 0 || rem != 28*instant.Day {
		t.Errorf("diff_units(2020-01-31, 2020-02-28, MONTH) = (%d, %v), want (0, 28d)", whole, rem)
	}
}

func TestS7ISOWeekViaCalendar(t *testing.T) {
	cal := utcCalendar()
	t1, _ := cal.Time(civil.YMDhms{Year: 2020, Month: 1, Day: 1})
	w := cal.CalendarWeekUnits(t1)
	if w.IsoYear != 2020 || w.IsoWeek != 1 || w.WeekDay != 3 {
		t.Errorf("CalendarWeekUnits(2020-01-01) = %+v, want (2020,1,3)", w)
	}

	t2, _ := cal.Time(civil.YMDhms{Year: 2021, Month: 1, Day: 1})
	w = cal.CalendarWeekUnits(t2)
	if w.IsoYear != 2020 || w.IsoWeek != 53 || w.WeekDay != 5 {
		t.Errorf("CalendarWeekUnits(2021-01-01) = %+v, want (2020,53,5)", w)
	}
}

func TestS8FixedOffsetCalendar(t *testing.T) {
	info := tz.TzInfo{BaseOffset: 5*instant.Hour + 30*instant.Minute, Table: tz.NewFixedTzTable(5*instant.Hour + 30*instant.Minute)}
	cal := New(info)
	if cal.Zone.Name() != "UTC+05" {
		t.Errorf("Name() = %q, want UTC+05", cal.Zone.Name())
	}
	if cal.Zone.IsDST(0) {
		t.Error("fixed-offset zone must never report DST")
	}
	t0, _ := cal.Time(civil.YMDhms{Year: 2020, Month: 6, Day: 1, Hour: 5, Minute: 30})
	if got := cal.Zone.UTCOffset(t0); got != 5*instant.Hour+30*instant.Minute {
		t.Errorf("UTCOffset = %v, want +5h30m", got)
	}
}

func TestRoundTripANonDST(t *testing.T) {
	cal := utcCalendar()
	cases := []civil.YMDhms{
		{Year: 1970, Month: 1, Day: 1},
		{Year: 2020, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 59},
		{Year: -44, Month: 3, Day: 15, Hour: 12},
		{Year: 9999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
	}
	for _, c := range cases {
		tm, err := cal.Time(c)
		if err != nil {
			t.Fatalf("time(%+v): %v", c, err)
		}
		got := cal.CalendarUnits(tm)
		if got != c {
			t.Errorf("round-trip A: time(%+v) -> calendar_units = %+v", c, got)
		}
	}
}

func TestRoundTripBUnambiguousInstants(t *testing.T) {
	cal := osloCalendar(t)
	for day := int64(-50); day <= 50; day++ {
		tm := instant.Instant(day * int64(instant.Day))
		c := cal.CalendarUnits(tm)
		back, err := cal.Time(c)
		if err != nil {
			t.Fatalf("time(%+v): %v", c, err)
		}
		if back != tm {
			t.Errorf("round-trip B at day %d: time(calendar_units(%v)) = %v, want %v", day, tm, back, tm)
		}
	}
}

func TestTrimIdempotence(t *testing.T) {
	cal := osloCalendar(t)
	units := []Unit{Year, Quarter, Month, Week, Day, Hour3, RawUnit(instant.Hour)}
	tm, _ := cal.Time(civil.YMDhms{Year: 2020, Month: 6, Day: 15, Hour: 13, Minute: 45, Second: 30})
	for _, u := range units {
		once := cal.Trim(tm, u)
		twice := cal.Trim(once, u)
		if once != twice {
			t.Errorf("trim not idempotent for %v: trim(t)=%v, trim(trim(t))=%v", u, once, twice)
		}
	}
}

func TestAddDiffDuality(t *testing.T) {
	cal := osloCalendar(t)
	t1, _ := cal.Time(civil.YMDhms{Year: 2019, Month: 11, Day: 3, Hour: 8})
	t2, _ := cal.Time(civil.YMDhms{Year: 2020, Month: 7, Day: 20, Hour: 17, Minute: 12})
	units := []Unit{Year, Quarter, Month, Week, Day, Hour3}
	for _, u := range units {
		whole, rem := cal.DiffUnits(t1, t2, u)
		got := cal.Add(t1, u, whole).Add(rem)
		if got != t2 {
			t.Errorf("add/diff duality failed for %v: add(whole)+rem = %v, want %v", u, got, t2)
		}
	}
}
