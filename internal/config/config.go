package config

import (
	"fmt"

	"WeRadiate.thermoq/internal/devices"
)

// Omit is the sentinel value that drops the group-by or fill clause
// from the assembled statement entirely.
const Omit = "-"

// Config holds the query configuration for one invocation. It is
// built from defaults, mutated in place during the flag scan, and
// read-only afterward.
type Config struct {
	Server   string // analytics server hostname
	Database string // db request parameter
	Series   string // measurement quoted into the from clause
	User     string // basic-auth login
	Vars     string // comma-separated select list; bare names expand to mean()
	Where    string // where clause
	GroupBy  string // group-by clause, Omit drops it
	Fill     string // fill policy, Omit drops it
	Timezone string // trailing timezone clause
	Probe    string // resolved device identifier, never the raw alias
	Days     int    // lookback window in days
	Pretty   bool   // ask the server to pretty-print the response
	Verbose  bool   // echo the assembled request before dispatch
	Debug    bool   // debug tracing of the flag scan
}

// Default returns the configuration with every built-in default
// applied, including the derived where clause.
func Default() Config {
	cfg := Config{
		Server:   "analytics.weradiate.com",
		Database: "thermosense",
		Series:   "compost",
		User:     "ezra",
		Vars:     "tWater",
		GroupBy:  "time(1ms)",
		Fill:     "none",
		Timezone: "tz('America/New_York')",
		Probe:    devices.DefaultID,
		Pretty:   true,
	}
	cfg.SetDays(1)
	return cfg
}

// SetDays stores the lookback window and recomputes the where clause
// from the currently resolved probe. This is the only derivation that
// overwrites an explicitly set where clause.
func (c *Config) SetDays(days int) {
	c.Days = days
	c.Where = fmt.Sprintf(`"deviceid" = '%s' AND time > now() - %dd`, c.Probe, days)
}

// ServerURL returns the base URL the 1.x query endpoint hangs off.
func (c *Config) ServerURL() string {
	return fmt.Sprintf("https://%s/influxdb:8086", c.Server)
}
