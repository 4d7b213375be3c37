// Package target normalizes user-supplied URLs, domains and IPs into the bare
// hostname form that the external scanning tools expect.
package target

import (
	"net/url"
	"strings"

	"blitzscan/pkg/errors"
)

// Normalize turns an arbitrary user-supplied string into a bare hostname or
// IP: no scheme, no path, no surrounding whitespace. The common "htttps://"
// typo is corrected before parsing. Case is preserved.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errors.ErrEmptyTarget
	}

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "htttps://") {
		if strings.HasPrefix(s, "htttps://") {
			s = "https://" + strings.TrimPrefix(s, "htttps://")
		}
		if u, err := url.Parse(s); err == nil && u.Hostname() != "" {
			return u.Hostname(), nil
		}
		// Unparseable URL: fall through and treat it as a plain host string
		s = strings.TrimPrefix(s, "http://")
		s = strings.TrimPrefix(s, "https://")
	}

	s = strings.Trim(s, "/")
	if s == "" {
		return "", errors.ErrEmptyTarget
	}
	return s, nil
}
