package main

import (
	"flag"
	"fmt"

	"github.com/kalends-io/kalends/instant"
)

// runAdd adds n units of the given calendar/raw unit to an instant.
func runAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	zf := registerZoneFlags(fs)
	us := fs.Int64("instant", 0, "microseconds since epoch to add from")
	unitName := fs.String("unit", "DAY", "unit to add (YEAR/QUARTER/MONTH/WEEK/DAY/HOUR_3, or a raw duration like 90s)")
	n := fs.Int64("n", 1, "number of units to add")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	cal, err := zf.resolve()
	if err != nil {
		fatal(err)
	}
	u, err := parseUnit(*unitName)
	if err != nil {
		fatal(err)
	}

	result := cal.Add(instant.Instant(*us), u, *n)
	fmt.Println(cal.Format(result))
}

// runDiff reports the whole-unit count and remainder between two
// instants.
func runDiff(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	zf := registerZoneFlags(fs)
	t1 := fs.Int64("t1", 0, "first instant, microseconds since epoch")
	t2 := fs.Int64("t2", 0, "second instant, microseconds since epoch")
	unitName := fs.String("unit", "DAY", "unit to diff by")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	cal, err := zf.resolve()
	if err != nil {
		fatal(err)
	}
	u, err := parseUnit(*unitName)
	if err != nil {
		fatal(err)
	}

	whole, rem := cal.DiffUnits(instant.Instant(*t1), instant.Instant(*t2), u)
	fmt.Printf("whole:     %d\n", whole)
	fmt.Printf("remainder: %v\n", rem)
}

// runTrim floors an instant to the start of the given unit.
func runTrim(args []string) {
	fs := flag.NewFlagSet("trim", flag.ExitOnError)
	zf := registerZoneFlags(fs)
	us := fs.Int64("instant", 0, "microseconds since epoch to trim")
	unitName := fs.String("unit", "DAY", "unit to trim to")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	cal, err := zf.resolve()
	if err != nil {
		fatal(err)
	}
	u, err := parseUnit(*unitName)
	if err != nil {
		fatal(err)
	}

	result := cal.Trim(instant.Instant(*us), u)
	fmt.Println(cal.Format(result))
}
