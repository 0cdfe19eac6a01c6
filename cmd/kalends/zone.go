package main

import (
	"flag"
	"fmt"

	"github.com/kalends-io/kalends/calendar"
	"github.com/kalends-io/kalends/tz"
)

// zoneFlags registers the -region/-posix flags shared by every
// sub-command, mirroring the teacher's per-sub-command flag.FlagSet
// convention in cmd/snellerd's run_daemon.go/run_worker.go.
type zoneFlags struct {
	region *string
	posix  *string
}

func registerZoneFlags(fs *flag.FlagSet) *zoneFlags {
	return &zoneFlags{
		region: fs.String("region", "", "IANA region name to look up in the embedded snapshot (e.g. Europe/Oslo)"),
		posix:  fs.String("posix", "", "POSIX TZ string to build the zone from directly (overrides -region)"),
	}
}

// resolve builds a Calendar from whichever of -region/-posix was set,
// defaulting to UTC if neither was given.
func (zf *zoneFlags) resolve() (calendar.Calendar, error) {
	switch {
	case *zf.posix != "":
		info, err := tz.NewTzInfoFromPosix(*zf.posix, tz.DefaultStartYear, tz.DefaultYearCount)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("building zone from -posix: %w", err)
		}
		return calendar.New(info), nil
	case *zf.region != "":
		db := tz.NewTzDatabase()
		if err := db.LoadFromISODB(); err != nil {
			return calendar.Calendar{}, fmt.Errorf("loading embedded snapshot: %w", err)
		}
		info, err := db.Lookup(*zf.region)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("looking up -region: %w", err)
		}
		return calendar.New(*info), nil
	default:
		return calendar.New(tz.TzInfo{BaseOffset: 0, Table: tz.NewDefaultTzTable()}), nil
	}
}
