package query

import (
	"fmt"

	"WeRadiate.thermoq/internal/config"
)

// Build assembles the final InfluxQL statement from the frozen
// configuration. Clause fields are trusted verbatim; the only
// transformation applied is the select-list expansion.
func Build(cfg config.Config) string {
	groupClause := ""
	if cfg.GroupBy != config.Omit {
		groupClause = fmt.Sprintf(" GROUP BY %s", cfg.GroupBy)
	}

	fillClause := ""
	if cfg.Fill != config.Omit {
		fillClause = fmt.Sprintf(" fill(%s)", cfg.Fill)
	}

	return fmt.Sprintf(`SELECT %s from %q where %s%s%s %s`,
		Expand(cfg.Vars), cfg.Series, cfg.Where, groupClause, fillClause, cfg.Timezone)
}
