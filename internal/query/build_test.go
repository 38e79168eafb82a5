package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"WeRadiate.thermoq/internal/config"
)

func TestBuild_AllDefaults(t *testing.T) {
	got := Build(config.Default())

	assert.Equal(t,
		`SELECT mean("tWater") as "tWater" from "compost" where "deviceid" = 'device-02-6a' AND time > now() - 1d GROUP BY time(1ms) fill(none) tz('America/New_York')`,
		got)
}

func TestBuild_OmitsGroupBy(t *testing.T) {
	cfg := config.Default()
	cfg.GroupBy = config.Omit

	got := Build(cfg)

	assert.NotContains(t, got, "GROUP BY")
	assert.Equal(t,
		`SELECT mean("tWater") as "tWater" from "compost" where "deviceid" = 'device-02-6a' AND time > now() - 1d fill(none) tz('America/New_York')`,
		got)
}

func TestBuild_OmitsFill(t *testing.T) {
	cfg := config.Default()
	cfg.Fill = config.Omit

	got := Build(cfg)

	assert.NotContains(t, got, "fill(")
	assert.Equal(t,
		`SELECT mean("tWater") as "tWater" from "compost" where "deviceid" = 'device-02-6a' AND time > now() - 1d GROUP BY time(1ms) tz('America/New_York')`,
		got)
}

func TestBuild_OmitsBoth(t *testing.T) {
	cfg := config.Default()
	cfg.GroupBy = config.Omit
	cfg.Fill = config.Omit

	got := Build(cfg)

	assert.Equal(t,
		`SELECT mean("tWater") as "tWater" from "compost" where "deviceid" = 'device-02-6a' AND time > now() - 1d tz('America/New_York')`,
		got)
}

func TestBuild_ExplicitClauses(t *testing.T) {
	cfg := config.Default()
	cfg.Series = "greenhouse"
	cfg.Vars = "pressure"
	cfg.Where = `"deviceid" = 'device-03-b3' AND time > now() - 7d`
	cfg.GroupBy = "time(5m)"
	cfg.Fill = "previous"
	cfg.Timezone = "tz('UTC')"

	got := Build(cfg)

	assert.Equal(t,
		`SELECT mean("pressure") as "pressure" from "greenhouse" where "deviceid" = 'device-03-b3' AND time > now() - 7d GROUP BY time(5m) fill(previous) tz('UTC')`,
		got)
}
