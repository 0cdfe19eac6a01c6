package tz

import _ "embed"

//go:embed zdata.tz
var embeddedSnapshot string
