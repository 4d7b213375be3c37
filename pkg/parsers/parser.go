package parsers

import (
	"fmt"

	"blitzscan/pkg/errors"
	"blitzscan/pkg/tools"
)

// Parse dispatches raw tool output to the parser for kind. The normalized
// target is needed by parsers that echo it back into the record (WHOIS).
// The only error is an unknown kind; parsing itself never fails.
func Parse(kind tools.Kind, target, raw string) (Detail, error) {
	switch kind {
	case tools.KindWhois:
		return ParseWhois(raw, target), nil
	case tools.KindNmap:
		return ParseNmap(raw), nil
	case tools.KindFuzzing:
		return ParseDirsearch(raw), nil
	case tools.KindSubfinder:
		return ParseSubfinder(raw), nil
	case tools.KindHTTPX:
		return ParseHTTPX(raw), nil
	case tools.KindParamspider:
		return ParseParamspider(raw), nil
	case tools.KindWhatweb:
		return ParseWhatweb(raw), nil
	case tools.KindTheHarvester:
		return ParseTheHarvester(raw), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTool, kind)
	}
}
