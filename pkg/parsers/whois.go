package parsers

import "strings"

// Section headers toggle which contact block subsequent key/value lines
// land in. Matching is case-insensitive substring, so registry variations
// like "Registrant:" and "   registrant:" both count.
const (
	sectionRegistrant  = "registrant"
	sectionAdmin       = "admin_contact"
	sectionTech        = "tech_contact"
	sectionBilling     = "billing_contact"
	sectionNameServers = "name_servers"
)

// ParseWhois extracts registrar, lifecycle dates, contact blocks and name
// servers from raw whois output. Registries disagree wildly on format, so a
// first pass follows the sectioned key/value layout and a second, looser
// pass over key substrings runs only when the first found no registrar.
// Every field that stays unresolved is the literal NotAvailable sentinel.
func ParseWhois(raw, domain string) *WhoisDetail {
	detail := &WhoisDetail{
		DomainName:     domain,
		Registrar:      NotAvailable,
		CreationDate:   NotAvailable,
		ExpirationDate: NotAvailable,
		UpdatedDate:    NotAvailable,
		Registrant:     emptyContact(),
		AdminContact:   emptyContact(),
		TechContact:    emptyContact(),
		BillingContact: emptyContact(),
		NameServers:    []string{},
	}

	lines := strings.Split(raw, "\n")
	currentSection := ""

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "registrant:"):
			currentSection = sectionRegistrant
			continue
		case strings.Contains(lower, "administrative contact:"):
			currentSection = sectionAdmin
			continue
		case strings.Contains(lower, "technical contact:"):
			currentSection = sectionTech
			continue
		case strings.Contains(lower, "billing contact:"):
			currentSection = sectionBilling
			continue
		case strings.Contains(lower, "name servers:"):
			currentSection = sectionNameServers
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		switch key {
		case "registrar":
			detail.Registrar = value
		case "created on", "creation date":
			detail.CreationDate = value
		case "expiration date":
			detail.ExpirationDate = value
		case "last updated on", "updated date":
			detail.UpdatedDate = value
		case "name", "city", "state", "country":
			if contact := detail.contact(currentSection); contact != nil {
				contact.set(key, value)
			}
		case "dns", "name server":
			if currentSection == sectionNameServers {
				detail.appendNameServer(value)
			}
		}
	}

	if detail.Registrar == NotAvailable {
		detail.looseScan(lines)
	}

	return detail
}

// looseScan is the fallback for registries that do not use the sectioned
// layout: any key containing the field name counts, later lines overwrite
// earlier ones.
func (d *WhoisDetail) looseScan(lines []string) {
	for _, line := range lines {
		key, value, ok := splitKeyValue(strings.TrimSpace(line))
		if !ok {
			continue
		}

		switch {
		case strings.Contains(key, "registrar") && value != "":
			d.Registrar = value
		case strings.Contains(key, "created") && value != "":
			d.CreationDate = value
		case strings.Contains(key, "expiration") && value != "":
			d.ExpirationDate = value
		case strings.Contains(key, "updated") && value != "":
			d.UpdatedDate = value
		case strings.Contains(key, "name server") || strings.Contains(key, "dns"):
			if value != "" {
				d.appendNameServer(value)
			}
		}
	}
}

func (d *WhoisDetail) contact(section string) *Contact {
	switch section {
	case sectionRegistrant:
		return &d.Registrant
	case sectionAdmin:
		return &d.AdminContact
	case sectionTech:
		return &d.TechContact
	case sectionBilling:
		return &d.BillingContact
	}
	return nil
}

func (d *WhoisDetail) appendNameServer(value string) {
	for _, existing := range d.NameServers {
		if existing == value {
			return
		}
	}
	d.NameServers = append(d.NameServers, value)
}

func (c *Contact) set(key, value string) {
	switch key {
	case "name":
		c.Name = value
	case "city":
		c.City = value
	case "state":
		c.State = value
	case "country":
		c.Country = value
	}
}

func emptyContact() Contact {
	return Contact{
		Name:    NotAvailable,
		City:    NotAvailable,
		State:   NotAvailable,
		Country: NotAvailable,
	}
}

func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	value = strings.TrimSpace(line[idx+1:])
	return key, value, true
}
