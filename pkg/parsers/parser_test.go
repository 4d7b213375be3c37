package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blitzscan/pkg/errors"
	"blitzscan/pkg/tools"
)

func TestParseDispatchCoversAllKinds(t *testing.T) {
	for _, kind := range tools.Kinds() {
		detail, err := Parse(kind, "example.com", "")
		require.NoError(t, err, "kind %s", kind)
		require.NotNil(t, detail, "kind %s", kind)
		assert.Equal(t, kind, detail.ToolKind())
	}
}

func TestParseUnknownKind(t *testing.T) {
	_, err := Parse(tools.Kind("masscan"), "example.com", "")
	assert.ErrorIs(t, err, errors.ErrUnknownTool)
}

func TestParseWhoisDispatchCarriesTarget(t *testing.T) {
	detail, err := Parse(tools.KindWhois, "example.com", "Registrar: R\n")
	require.NoError(t, err)

	whois, ok := detail.(*WhoisDetail)
	require.True(t, ok)
	assert.Equal(t, "example.com", whois.DomainName)
	assert.Equal(t, "R", whois.Registrar)
}
