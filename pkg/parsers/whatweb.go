package parsers

import (
	"regexp"
	"strings"
)

const NoTechMessage = "No se obtuvo información de WhatWeb."

// categoryOrder fixes both the matching priority and the display order.
// Priority matters: "Google Analytics" must land in Analytics before the
// "google" CDN keyword can claim it.
var categoryOrder = []string{
	"CMS",
	"Web Server",
	"Programming Language",
	"JS Framework",
	"CSS Framework",
	"Analytics",
	"CDN",
}

var categoryKeywords = map[string][]string{
	"CMS": {
		"wordpress", "drupal", "joomla", "magento", "shopify",
		"woocommerce", "squarespace", "wix", "webflow", "prestashop",
	},
	"Web Server": {"apache", "nginx", "iis", "litespeed", "httpserver"},
	"Programming Language": {
		"php", "python", "node", "ruby", "java", "asp",
	},
	"JS Framework": {
		"react", "vue", "angular", "jquery", "next", "nuxt", "svelte", "gatsby",
	},
	"CSS Framework": {"bootstrap", "tailwind", "sass", "less"},
	"Analytics":     {"analytics", "tag manager", "gtm", "facebook"},
	"CDN": {
		"cloudflare", "aws", "google", "azure", "firebase", "vercel", "netlify",
	},
}

var whatwebLineRegex = regexp.MustCompile(`\[(\d{3})[^\]]*\]\s*(.+)`)

// ParseWhatweb reads whatweb CLI output: one line per probed URL of the
// form "url [status text] TechA[ver], TechB, ...". Detected technologies
// are bucketed into fixed categories by keyword.
func ParseWhatweb(raw string) *WhatwebDetail {
	var techs []Technology

	for _, line := range strings.Split(raw, "\n") {
		m := whatwebLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, token := range strings.Split(m[2], ",") {
			if tech, ok := parseTechToken(token); ok {
				techs = append(techs, tech)
			}
		}
	}

	return bucketTechnologies(techs)
}

// htmlSignature matches fetched page content against a literal marker,
// optionally extracting a version with a regex.
type htmlSignature struct {
	marker  string
	name    string
	version *regexp.Regexp
}

var htmlSignatures = []htmlSignature{
	{marker: "wp-content", name: "WordPress"},
	{marker: "drupal", name: "Drupal"},
	{marker: "joomla", name: "Joomla"},
	{marker: "shopify", name: "Shopify"},
	{marker: "jquery", name: "jQuery", version: regexp.MustCompile(`jquery[/\-.]?(\d+\.\d+(?:\.\d+)?)`)},
	{marker: "bootstrap", name: "Bootstrap", version: regexp.MustCompile(`bootstrap[/@\-.]?(\d+\.\d+(?:\.\d+)?)`)},
	{marker: "react", name: "React"},
	{marker: "vue", name: "Vue.js"},
	{marker: "angular", name: "Angular"},
	{marker: "tailwind", name: "Tailwind CSS"},
	{marker: "google-analytics", name: "Google Analytics"},
	{marker: "gtag", name: "Google Analytics"},
	{marker: "cloudflare", name: "Cloudflare"},
	{marker: "nginx", name: "Nginx"},
	{marker: "apache", name: "Apache"},
	{marker: "php", name: "PHP"},
}

// ParseHTMLSignatures is the fallback fingerprinting strategy for when the
// whatweb binary is unavailable: literal substring matching over fetched
// HTML and response headers.
func ParseHTMLSignatures(body string) *WhatwebDetail {
	lower := strings.ToLower(body)
	var techs []Technology
	seen := make(map[string]struct{})

	for _, sig := range htmlSignatures {
		if !strings.Contains(lower, sig.marker) {
			continue
		}
		if _, ok := seen[sig.name]; ok {
			continue
		}
		seen[sig.name] = struct{}{}

		version := ""
		if sig.version != nil {
			if m := sig.version.FindStringSubmatch(lower); m != nil {
				version = m[1]
			}
		}
		techs = append(techs, Technology{Name: sig.name, Version: version})
	}

	return bucketTechnologies(techs)
}

func parseTechToken(token string) (Technology, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Technology{}, false
	}

	name := token
	version := ""
	if idx := strings.Index(token, "["); idx >= 0 {
		name = strings.TrimSpace(token[:idx])
		rest := token[idx+1:]
		if end := strings.Index(rest, "]"); end >= 0 {
			version = strings.TrimSpace(rest[:end])
		}
	}
	if name == "" {
		return Technology{}, false
	}
	return Technology{Name: name, Version: version}, true
}

func bucketTechnologies(techs []Technology) *WhatwebDetail {
	if len(techs) == 0 {
		return &WhatwebDetail{Categories: map[string][]Technology{}, Message: NoTechMessage}
	}

	categories := make(map[string][]Technology)
	for _, tech := range techs {
		categories[categoryFor(tech.Name)] = append(categories[categoryFor(tech.Name)], tech)
	}
	return &WhatwebDetail{Categories: categories}
}

func categoryFor(name string) string {
	lower := strings.ToLower(name)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return "Other"
}
