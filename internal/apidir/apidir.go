// Package apidir is a small searchable directory of public web APIs.
package apidir

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v2"
)

type API struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Auth        string `yaml:"auth"`
	Link        string `yaml:"link"`
}

//go:embed apis.yaml
var apisYAML []byte

// Load decodes the bundled directory.
func Load() ([]API, error) {
	var apis []API
	if err := yaml.UnmarshalStrict(apisYAML, &apis); err != nil {
		return nil, err
	}
	return apis, nil
}

// Filter keeps the entries whose name or description contains term, ignoring
// case. An empty term keeps everything.
func Filter(apis []API, term string) []API {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return apis
	}
	var out []API
	for _, a := range apis {
		if strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.Description), term) {
			out = append(out, a)
		}
	}
	return out
}
