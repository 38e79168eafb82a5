package devices

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeRadiate.thermoq/internal/models"
)

func TestResolve_KnownAliases(t *testing.T) {
	aliases := map[string]string{
		"1a": "device-02-6a",
		"3a": "device-02-6d",
		"5a": "device-02-6e",
		"1b": "device-03-b2",
		"3b": "device-02-6c",
		"5b": "device-03-b3",
	}

	for alias, want := range aliases {
		t.Run(alias, func(t *testing.T) {
			id, err := Resolve(alias)
			require.NoError(t, err)
			assert.Equal(t, want, id)
		})
	}
}

func TestResolve_UnknownAlias(t *testing.T) {
	_, err := Resolve("9z")
	require.Error(t, err)

	var cliErr models.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, models.ErrorCodeInvalidProbe, cliErr.Code)
	assert.Equal(t, 1, cliErr.ExitCode)
	assert.Contains(t, cliErr.Message, "9z")
}

func TestResolve_CaseSensitive(t *testing.T) {
	// Aliases match exactly; "1A" is not "1a".
	_, err := Resolve("1A")
	assert.Error(t, err)
}

func TestDefaultID_MatchesAlias1a(t *testing.T) {
	id, err := Resolve("1a")
	require.NoError(t, err)
	assert.Equal(t, DefaultID, id)
}
