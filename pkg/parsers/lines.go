package parsers

import "strings"

const (
	NoSubdomainsMessage = "No se encontraron subdominios."
	NoLiveHostsMessage  = "No se encontraron hosts activos."
	NoParametersMessage = "No se encontraron parámetros."
)

// ParseSubfinder treats each non-empty output line as one subdomain.
// Bracketed lines are the tool's own banner and progress chatter.
func ParseSubfinder(raw string) *SubfinderDetail {
	entries := scanLines(raw, true)
	if len(entries) == 0 {
		return &SubfinderDetail{Subdomains: []string{}, Message: NoSubdomainsMessage}
	}
	return &SubfinderDetail{Subdomains: entries}
}

// ParseHTTPX treats each non-empty output line as one live host URL.
func ParseHTTPX(raw string) *HTTPXDetail {
	entries := scanLines(raw, true)
	if len(entries) == 0 {
		return &HTTPXDetail{Hosts: []string{}, Message: NoLiveHostsMessage}
	}
	return &HTTPXDetail{Hosts: entries}
}

// ParseParamspider reads the results file paramspider writes: one URL with
// discovered parameters per line, no banner to filter.
func ParseParamspider(raw string) *ParamspiderDetail {
	entries := scanLines(raw, false)
	if len(entries) == 0 {
		return &ParamspiderDetail{URLs: []string{}, Message: NoParametersMessage}
	}
	return &ParamspiderDetail{URLs: entries}
}

func scanLines(raw string, skipBracketed bool) []string {
	var entries []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if skipBracketed && strings.HasPrefix(line, "[") {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
