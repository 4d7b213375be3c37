package parsers

import (
	"strconv"
	"strings"
)

// NoPathsMessage is returned verbatim when dirsearch reports nothing.
const NoPathsMessage = "No se encontraron rutas visibles."

// ParseDirsearch reads the quiet, colorless dirsearch table. Result lines
// start with a bracketed timestamp; everything else is progress noise.
// Token layout per line: [time] status - size url, with an optional
// "-> location" pair before the URL on redirects.
func ParseDirsearch(raw string) *FuzzingDetail {
	var findings []FuzzingFinding

	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "[") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}

		status, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		size := ""
		if fields[2] != "-" {
			size = fields[3]
		}

		redirect := ""
		if strings.Contains(line, "->") {
			redirect = fields[len(fields)-3]
		}

		findings = append(findings, FuzzingFinding{
			Status:   status,
			Path:     pathOnly(fields[len(fields)-1]),
			Size:     size,
			Redirect: redirect,
			Category: categorize(status),
		})
	}

	if len(findings) == 0 {
		return &FuzzingDetail{Findings: []FuzzingFinding{}, Message: NoPathsMessage}
	}
	return &FuzzingDetail{Findings: findings}
}

// pathOnly strips the scheme and host from a discovered URL, leaving the
// rooted path ("https://example.com/admin" -> "/admin").
func pathOnly(url string) string {
	s := strings.TrimPrefix(url, "https://")
	s = strings.TrimPrefix(s, "http://")

	parts := strings.Split(s, "/")
	return "/" + strings.Join(parts[1:], "/")
}

func categorize(status int) FuzzingCategory {
	switch {
	case status >= 200 && status < 300:
		return FuzzingOK
	case status >= 300 && status < 400:
		return FuzzingRedirect
	default:
		return FuzzingWarn
	}
}
