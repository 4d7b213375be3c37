// Package parsers converts the raw text output of each reconnaissance tool
// into a structured per-tool record. Parsers are stateless and total:
// malformed or empty input degrades to a "no results" record, never an error.
package parsers

import "blitzscan/pkg/tools"

// NotAvailable is the placeholder for any WHOIS field that could not be
// resolved. Clients match on the literal string, so it must not change.
const NotAvailable = "No disponible"

// Detail is the tool-specific structured result attached to a scan.
type Detail interface {
	ToolKind() tools.Kind
}

type Contact struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type WhoisDetail struct {
	DomainName     string   `json:"domain_name"`
	Registrar      string   `json:"registrar"`
	CreationDate   string   `json:"creation_date"`
	ExpirationDate string   `json:"expiration_date"`
	UpdatedDate    string   `json:"updated_date"`
	Registrant     Contact  `json:"registrant"`
	AdminContact   Contact  `json:"admin_contact"`
	TechContact    Contact  `json:"tech_contact"`
	BillingContact Contact  `json:"billing_contact"`
	NameServers    []string `json:"name_servers"`
}

func (d *WhoisDetail) ToolKind() tools.Kind { return tools.KindWhois }

type NmapDetail struct {
	OpenPorts []string `json:"open_ports"`
	Message   string   `json:"message,omitempty"`
}

func (d *NmapDetail) ToolKind() tools.Kind { return tools.KindNmap }

// FuzzingCategory classifies a discovered path by its HTTP status class.
type FuzzingCategory string

const (
	FuzzingOK       FuzzingCategory = "ok"
	FuzzingRedirect FuzzingCategory = "redirect"
	FuzzingWarn     FuzzingCategory = "warn"
)

type FuzzingFinding struct {
	Status   int             `json:"http_status"`
	Path     string          `json:"path_found"`
	Size     string          `json:"response_size"`
	Redirect string          `json:"redirect_to,omitempty"`
	Category FuzzingCategory `json:"category"`
}

type FuzzingDetail struct {
	Findings []FuzzingFinding `json:"findings"`
	Message  string           `json:"message,omitempty"`
}

func (d *FuzzingDetail) ToolKind() tools.Kind { return tools.KindFuzzing }

type SubfinderDetail struct {
	Subdomains []string `json:"subdomains"`
	Message    string   `json:"message,omitempty"`
}

func (d *SubfinderDetail) ToolKind() tools.Kind { return tools.KindSubfinder }

type HTTPXDetail struct {
	Hosts   []string `json:"hosts"`
	Message string   `json:"message,omitempty"`
}

func (d *HTTPXDetail) ToolKind() tools.Kind { return tools.KindHTTPX }

type ParamspiderDetail struct {
	URLs    []string `json:"urls"`
	Message string   `json:"message,omitempty"`
}

func (d *ParamspiderDetail) ToolKind() tools.Kind { return tools.KindParamspider }

type TheHarvesterDetail struct {
	Emails          []string `json:"emails"`
	Hosts           []string `json:"hosts"`
	ASNs            []string `json:"asns"`
	InterestingURLs []string `json:"interesting_urls"`
}

func (d *TheHarvesterDetail) ToolKind() tools.Kind { return tools.KindTheHarvester }

type Technology struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// WhatwebDetail groups detected technologies by category (CMS, Web Server,
// Programming Language, JS Framework, CSS Framework, Analytics, CDN, Other).
type WhatwebDetail struct {
	Categories map[string][]Technology `json:"categories"`
	Message    string                  `json:"message,omitempty"`
}

func (d *WhatwebDetail) ToolKind() tools.Kind { return tools.KindWhatweb }
