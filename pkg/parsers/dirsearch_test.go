package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirsearchSingleHit(t *testing.T) {
	detail := ParseDirsearch("[14:02:01] 200 -  1234B  https://example.com/admin\n")

	require.Len(t, detail.Findings, 1)
	f := detail.Findings[0]
	assert.Equal(t, 200, f.Status)
	assert.Equal(t, "/admin", f.Path)
	assert.Equal(t, FuzzingOK, f.Category)
}

func TestParseDirsearchCategories(t *testing.T) {
	raw := `[14:02:01] 200 2KB 1234  https://example.com/admin
[14:02:02] 301 1KB 120  https://example.com/old  ->  https://example.com/new
[14:02:03] 500 1KB 512  https://example.com/broken
`
	detail := ParseDirsearch(raw)
	require.Len(t, detail.Findings, 3)

	assert.Equal(t, FuzzingOK, detail.Findings[0].Category)
	assert.Equal(t, "1234", detail.Findings[0].Size)

	assert.Equal(t, FuzzingRedirect, detail.Findings[1].Category)
	assert.Equal(t, "/new", detail.Findings[1].Path)
	assert.Equal(t, "https://example.com/old", detail.Findings[1].Redirect)

	assert.Equal(t, FuzzingWarn, detail.Findings[2].Category)
}

func TestParseDirsearchSkipsNoise(t *testing.T) {
	raw := `Extensions: php, html, txt | HTTP method: GET | Threads: 20
Target: https://example.com/

not a result line
[14:02:01] 200 -  512B  https://example.com/login
`
	detail := ParseDirsearch(raw)
	require.Len(t, detail.Findings, 1)
	assert.Equal(t, "/login", detail.Findings[0].Path)
}

func TestParseDirsearchSizeDashMeansEmpty(t *testing.T) {
	detail := ParseDirsearch("[14:02:01] 200 -  1234B  https://example.com/admin\n")
	require.Len(t, detail.Findings, 1)
	assert.Empty(t, detail.Findings[0].Size)
}

func TestParseDirsearchEmptyInput(t *testing.T) {
	detail := ParseDirsearch("")
	assert.Empty(t, detail.Findings)
	assert.Equal(t, NoPathsMessage, detail.Message)
}

func TestParseDirsearchMalformedLinesSkipped(t *testing.T) {
	raw := "[14:02:01] 200\n[14:02:02] abc def ghi url\n"
	detail := ParseDirsearch(raw)
	assert.Empty(t, detail.Findings)
	assert.Equal(t, NoPathsMessage, detail.Message)
}
