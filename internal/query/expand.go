package query

import (
	"fmt"
	"regexp"
	"strings"
)

// bareName matches a token that is only a column name, with no
// expression syntax around it.
var bareName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Expand rewrites each bare column name in the comma-separated select
// list to a mean() aggregate aliased to itself. Any token that already
// carries expression syntax (quotes, spaces, operators, an explicit
// alias) passes through unchanged, bytes included.
func Expand(vars string) string {
	tokens := strings.Split(vars, ",")
	for i, tok := range tokens {
		if bareName.MatchString(tok) {
			tokens[i] = fmt.Sprintf(`mean(%q) as %q`, tok, tok)
		}
	}
	return strings.Join(tokens, ",")
}
