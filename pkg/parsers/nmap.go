package parsers

import "strings"

// NoOpenPortsMessage is returned verbatim when a scan finds nothing open.
const NoOpenPortsMessage = "No se encontraron puertos abiertos."

// ParseNmap keeps the port lines of an nmap run, which are the lines
// mentioning an open state, and discards the banner and timing noise.
func ParseNmap(raw string) *NmapDetail {
	var open []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, "open") {
			open = append(open, strings.TrimSpace(line))
		}
	}

	if len(open) == 0 {
		return &NmapDetail{OpenPorts: []string{}, Message: NoOpenPortsMessage}
	}
	return &NmapDetail{OpenPorts: open}
}
