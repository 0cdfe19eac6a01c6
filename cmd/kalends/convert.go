package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/kalends-io/kalends/calendar"
	"github.com/kalends-io/kalends/instant"
)

// runConvert converts an ISO-8601 timestamp to its instant
// (microseconds since epoch), or an instant to civil coordinates
// rendered against the zone selected by -region/-posix. The -time
// string is parsed by calendar.ParseISO8601, which honors the string's
// own offset (UTC when absent) and does not use the selected zone.
func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	zf := registerZoneFlags(fs)
	iso := fs.String("time", "", "ISO-8601 civil timestamp to convert to an instant")
	us := fs.Int64("instant", 0, "microseconds since epoch to convert to civil coordinates (when -time is absent)")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	cal, err := zf.resolve()
	if err != nil {
		fatal(err)
	}

	if *iso != "" {
		tm, err := calendar.ParseISO8601(*iso)
		if err != nil {
			fatal(err)
		}
		fmt.Println(strconv.FormatInt(int64(tm), 10))
		return
	}
	fmt.Println(cal.Format(instant.Instant(*us)))
}
