// Package tools defines the catalog of external reconnaissance tools the
// scanner knows how to invoke: which binary, which arguments, and how long
// each run is allowed to take.
package tools

import (
	"fmt"
	"strings"

	"blitzscan/pkg/errors"
)

// Kind identifies one of the supported reconnaissance tools.
type Kind string

const (
	KindNmap         Kind = "nmap"
	KindWhois        Kind = "whois"
	KindFuzzing      Kind = "fuzzing"
	KindSubfinder    Kind = "subfinder"
	KindHTTPX        Kind = "httpx"
	KindWhatweb      Kind = "whatweb"
	KindParamspider  Kind = "paramspider"
	KindTheHarvester Kind = "theharvester"
)

// Kinds returns every supported tool kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindNmap,
		KindWhois,
		KindFuzzing,
		KindSubfinder,
		KindHTTPX,
		KindWhatweb,
		KindParamspider,
		KindTheHarvester,
	}
}

// ParseKind normalizes a user-supplied tool name into a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownTool, name)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	switch k {
	case KindNmap, KindWhois, KindFuzzing, KindSubfinder,
		KindHTTPX, KindWhatweb, KindParamspider, KindTheHarvester:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
