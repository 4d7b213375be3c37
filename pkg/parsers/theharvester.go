package parsers

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	ipv4Regex  = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
)

// ParseTheHarvester reads theHarvester's block-structured report. A header
// line such as "[*] Emails found:" starts a block; subsequent non-empty
// lines belong to it until a blank or bracketed line ends it. Separator
// rules (runs of dashes) are skipped. If no block header appears anywhere,
// the whole text is swept with email and IPv4 regexes instead.
func ParseTheHarvester(raw string) *TheHarvesterDetail {
	detail := &TheHarvesterDetail{
		Emails:          []string{},
		Hosts:           []string{},
		ASNs:            []string{},
		InterestingURLs: []string{},
	}

	var current *[]string
	sawHeader := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if target := detail.blockFor(line); target != nil {
			current = target
			sawHeader = true
			continue
		}

		if line == "" || strings.HasPrefix(line, "[") {
			current = nil
			continue
		}
		if current == nil || isSeparator(line) {
			continue
		}
		*current = append(*current, line)
	}

	if !sawHeader {
		detail.Emails = dedupe(emailRegex.FindAllString(raw, -1))
		detail.Hosts = dedupe(ipv4Regex.FindAllString(raw, -1))
	}

	return detail
}

func (d *TheHarvesterDetail) blockFor(line string) *[]string {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "emails found:"):
		return &d.Emails
	case strings.Contains(lower, "hosts found:"):
		return &d.Hosts
	case strings.Contains(lower, "asns found:"):
		return &d.ASNs
	case strings.Contains(lower, "interesting urls found:"):
		return &d.InterestingURLs
	}
	return nil
}

func isSeparator(line string) bool {
	return strings.Trim(line, "-*") == ""
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := []string{}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
