package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "analytics.weradiate.com", cfg.Server)
	assert.Equal(t, "thermosense", cfg.Database)
	assert.Equal(t, "compost", cfg.Series)
	assert.Equal(t, "ezra", cfg.User)
	assert.Equal(t, "tWater", cfg.Vars)
	assert.Equal(t, "time(1ms)", cfg.GroupBy)
	assert.Equal(t, "none", cfg.Fill)
	assert.Equal(t, "tz('America/New_York')", cfg.Timezone)
	assert.Equal(t, "device-02-6a", cfg.Probe)
	assert.Equal(t, 1, cfg.Days)
	assert.True(t, cfg.Pretty)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Debug)
}

func TestDefault_DerivesWhereClause(t *testing.T) {
	cfg := Default()

	assert.Equal(t, `"deviceid" = 'device-02-6a' AND time > now() - 1d`, cfg.Where)
}

func TestSetDays_RecomputesWhereFromCurrentProbe(t *testing.T) {
	cfg := Default()
	cfg.Probe = "device-03-b3"

	cfg.SetDays(14)

	assert.Equal(t, 14, cfg.Days)
	assert.Equal(t, `"deviceid" = 'device-03-b3' AND time > now() - 14d`, cfg.Where)
}

func TestSetDays_OverwritesExplicitWhere(t *testing.T) {
	cfg := Default()
	cfg.Where = `"deviceid" = 'device-99-ff'`

	cfg.SetDays(0)

	assert.Equal(t, `"deviceid" = 'device-02-6a' AND time > now() - 0d`, cfg.Where)
}

func TestServerURL(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://analytics.weradiate.com/influxdb:8086", cfg.ServerURL())

	cfg.Server = "staging.weradiate.com"
	assert.Equal(t, "https://staging.weradiate.com/influxdb:8086", cfg.ServerURL())
}
