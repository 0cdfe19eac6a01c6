package main

import (
	"flag"
	"fmt"

	"github.com/kalends-io/kalends/instant"
)

// runZone reports the DST table name/offset/status for a zone at a
// given instant, exercising TzInfo.UTCOffset/IsDST end to end.
func runZone(args []string) {
	fs := flag.NewFlagSet("zone", flag.ExitOnError)
	zf := registerZoneFlags(fs)
	us := fs.Int64("instant", 0, "microseconds since epoch to inspect")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	cal, err := zf.resolve()
	if err != nil {
		fatal(err)
	}

	t := instant.Instant(*us)
	fmt.Printf("name:       %s\n", cal.Zone.Name())
	fmt.Printf("base:       %v\n", cal.Zone.BaseOffset)
	fmt.Printf("utc_offset: %v\n", cal.Zone.UTCOffset(t))
	fmt.Printf("is_dst:     %v\n", cal.Zone.IsDST(t))
	fmt.Printf("as_of:      %s\n", cal.Format(t))
}
