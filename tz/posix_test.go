package tz

import (
	"testing"

	"github.com/kalends-io/kalends/civil"
	"github.com/kalends-io/kalends/instant"
)

func TestParsePosixRuleFixedOffset(t *testing.T) {
	r, err := ParsePosixRule("JST-9")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "JST" {
		t.Errorf("Name() = %q, want JST", r.Name())
	}
	if r.BaseOffset() != 9*instant.Hour {
		t.Errorf("BaseOffset() = %v, want +9h", r.BaseOffset())
	}
	if r.HasDST() {
		t.Error("JST-9 should have no DST")
	}
}

func TestParsePosixRuleQuotedName(t *testing.T) {
	r, err := ParsePosixRule("<-03>3")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "-03" {
		t.Errorf("Name() = %q, want -03", r.Name())
	}
	if r.BaseOffset() != -3*instant.Hour {
		t.Errorf("BaseOffset() = %v, want -3h", r.BaseOffset())
	}
}

func TestParsePosixRuleDST(t *testing.T) {
	r, err := ParsePosixRule("EST5EDT,M3.2.0,M11.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if r.BaseOffset() != -5*instant.Hour {
		t.Errorf("BaseOffset() = %v, want -5h", r.BaseOffset())
	}
	if !r.HasDST() {
		t.Fatal("expected DST rule")
	}
	if r.DSTDelta() != instant.Hour {
		t.Errorf("DSTDelta() = %v, want +1h", r.DSTDelta())
	}
}

func TestMonthWeekDayNumber(t *testing.T) {
	// M3.2.0 in 2020: the 2nd Sunday of March 2020 is March 8.
	dn := monthWeekDayNumber(2020, 3, 2, 0)
	y, m, d := civil.FromDayNumber(dn)
	if y != 2020 || m != 3 || d != 8 {
		t.Errorf("M3.2.0 in 2020 = %04d-%02d-%02d, want 2020-03-08", y, m, d)
	}
	// M11.1.0 in 2020: the 1st Sunday of November 2020 is November 1.
	dn = monthWeekDayNumber(2020, 11, 1, 0)
	y, m, d = civil.FromDayNumber(dn)
	if y != 2020 || m != 11 || d != 1 {
		t.Errorf("M11.1.0 in 2020 = %04d-%02d-%02d, want 2020-11-01", y, m, d)
	}
	// M3.5.0 ("last Sunday of March") in 2016 is March 27.
	dn = monthWeekDayNumber(2016, 3, 5, 0)
	y, m, d = civil.FromDayNumber(dn)
	if y != 2016 || m != 3 || d != 27 {
		t.Errorf("M3.5.0 in 2016 = %04d-%02d-%02d, want 2016-03-27", y, m, d)
	}
}

func TestParsePosixRuleMalformed(t *testing.T) {
	if _, err := ParsePosixRule("!!not a tz string!!"); err == nil {
		t.Error("expected parse error")
	}
}
