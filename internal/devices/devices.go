package devices

import (
	"fmt"

	"WeRadiate.thermoq/internal/models"
)

// DefaultID is the identifier queries filter on when no alias is given.
const DefaultID = "device-02-6a"

// registry maps the short probe aliases operators use to the device
// identifiers stored in the deviceid tag. Matching is case-sensitive.
var registry = map[string]string{
	"1a": "device-02-6a",
	"3a": "device-02-6d",
	"5a": "device-02-6e",
	"1b": "device-03-b2",
	"3b": "device-02-6c",
	"5b": "device-03-b3",
}

// Resolve translates a probe alias to its device identifier.
func Resolve(alias string) (string, error) {
	id, ok := registry[alias]
	if !ok {
		return "", models.NewCLIError(models.ErrorCodeInvalidProbe,
			fmt.Sprintf("unrecognized probe alias %q", alias), nil, 1)
	}
	return id, nil
}
