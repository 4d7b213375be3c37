package tools

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"blitzscan/pkg/errors"
)

// TargetToken is replaced with the normalized target when building arguments.
const TargetToken = "{{TARGET}}"

// Spec describes how to run one tool: the binary, its argument template,
// the run timeout and, for tools that write to disk instead of stdout,
// the file the results land in.
type Spec struct {
	Name       string
	Command    string
	Args       []string
	Timeout    time.Duration
	OutputFile string
}

// BuildArgs substitutes the target into the argument template. Tokens may
// appear embedded in an argument ("https://{{TARGET}}"), not only alone.
func (s Spec) BuildArgs(target string) []string {
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = strings.ReplaceAll(a, TargetToken, target)
	}
	return args
}

// BuildOutputFile substitutes the target into the output file template.
// It returns "" for tools that report on stdout.
func (s Spec) BuildOutputFile(target string) string {
	return strings.ReplaceAll(s.OutputFile, TargetToken, target)
}

// Catalog maps each tool kind to its run specification.
type Catalog map[Kind]Spec

// Get returns the spec for kind or errors.ErrUnknownTool.
func (c Catalog) Get(kind Kind) (Spec, error) {
	spec, ok := c[kind]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", errors.ErrUnknownTool, kind)
	}
	return spec, nil
}

// DefaultCatalog returns the built-in tool specifications. Commands are bare
// binary names resolved through PATH; deployments override them per-tool via
// a catalog file or configuration.
func DefaultCatalog() Catalog {
	return Catalog{
		KindNmap: {
			Name:    "nmap",
			Command: "nmap",
			Args:    []string{"-F", TargetToken},
			Timeout: 5 * time.Minute,
		},
		KindWhois: {
			Name:    "whois",
			Command: "whois",
			Args:    []string{TargetToken},
			Timeout: 30 * time.Second,
		},
		KindFuzzing: {
			Name:    "dirsearch",
			Command: "dirsearch",
			Args: []string{
				"-u", "https://" + TargetToken,
				"-e", "php,html,txt",
				"-x", "403,404,520",
				"--quiet", "--no-color",
				"--threads", "20",
			},
			Timeout: 10 * time.Minute,
		},
		KindSubfinder: {
			Name:    "subfinder",
			Command: "subfinder",
			Args:    []string{"-d", TargetToken, "-silent"},
			Timeout: 5 * time.Minute,
		},
		KindHTTPX: {
			Name:    "httpx",
			Command: "httpx",
			Args:    []string{"-u", TargetToken, "-silent"},
			Timeout: 2 * time.Minute,
		},
		KindWhatweb: {
			Name:    "whatweb",
			Command: "whatweb",
			Args:    []string{"--color=never", "-a", "1", TargetToken},
			Timeout: 2 * time.Minute,
		},
		KindParamspider: {
			Name:       "paramspider",
			Command:    "paramspider",
			Args:       []string{"-d", TargetToken},
			Timeout:    10 * time.Minute,
			OutputFile: "results/" + TargetToken + ".txt",
		},
		KindTheHarvester: {
			Name:    "theHarvester",
			Command: "theHarvester",
			Args:    []string{"-d", TargetToken, "-b", "all"},
			Timeout: 10 * time.Minute,
		},
	}
}

type specYAML struct {
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args"`
	Timeout    string   `yaml:"timeout"`
	OutputFile string   `yaml:"output_file"`
}

type catalogYAML struct {
	Tools map[string]specYAML `yaml:"tools"`
}

// LoadCatalog reads a YAML catalog file and merges it over the defaults.
// Only the fields present in the file override the built-in spec, so a
// deployment can adjust a single timeout or binary path without restating
// the whole argument list.
func LoadCatalog(path string) (Catalog, error) {
	catalog := DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool catalog %s: %w", path, err)
	}

	var file catalogYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tool catalog %s: %w", path, err)
	}

	for name, override := range file.Tools {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("tool catalog %s: %w", path, err)
		}

		spec := catalog[kind]
		if override.Command != "" {
			spec.Command = override.Command
		}
		if len(override.Args) > 0 {
			spec.Args = override.Args
		}
		if override.Timeout != "" {
			d, err := time.ParseDuration(override.Timeout)
			if err != nil {
				return nil, fmt.Errorf("tool catalog %s: invalid timeout for %s: %w", path, name, err)
			}
			spec.Timeout = d
		}
		if override.OutputFile != "" {
			spec.OutputFile = override.OutputFile
		}
		catalog[kind] = spec
	}

	return catalog, nil
}
