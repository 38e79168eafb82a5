package cli

import (
	"fmt"
	"io"
)

const usageText = `usage: thermoq [flags]

Builds an InfluxQL statement from the flags below and issues it as one
GET against the analytics server, printing the raw JSON response body
to stdout. Example: thermoq -r 5b -t 3 -q tWater,pressure

  -h          show this help and exit
  -V          print the version and exit
  -n          negate the next boolean flag
  -v, -nv     echo the assembled request to stderr before dispatch (default off)
  -D, -nD     debug tracing of the flag scan (default off)
  -p, -np     ask the server to pretty-print the response (default on)
  -d NAME     database name (default "thermosense")
  -s NAME     series (measurement) name (default "compost")
  -S FQDN     analytics server hostname (default "analytics.weradiate.com")
  -u USER     basic-auth user, password prompted at dispatch (default "ezra")
  -q SPEC     comma-separated select list; a bare column name expands to
              mean("name") as "name", anything else is passed through,
              e.g. 'mean("tWater")*9/5+32 as "tWater"' (default "tWater")
  -r ALIAS    probe alias, resolved per the table below (default 1a)
  -t DAYS     lookback window in days; rederives the where clause from
              the resolved probe (default 1)
  -w CLAUSE   explicit where clause override
  -g CLAUSE   GROUP BY clause, "-" omits it (default "time(1ms)")
  -f VALUE    fill policy, "-" omits it (default "none")
  -z CLAUSE   timezone clause (default "tz('America/New_York')")

probe aliases:
  1a  device-02-6a    1b  device-03-b2
  3a  device-02-6d    3b  device-02-6c
  5a  device-02-6e    5b  device-03-b3
`

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
