package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Endpoint is one route entry. Public routes skip authentication; an empty Roles list
// admits any authenticated caller.
type Endpoint struct {
	Method string   `json:"method"`
	Path   string   `json:"path"`
	Public bool     `json:"public"`
	Roles  []string `json:"roles"`
}

func (e Endpoint) Allows(role string) bool {
	return len(e.Roles) == 0 || slices.Contains(e.Roles, role)
}

// Table is the access table keyed by chi route pattern. A public table opens every route.
// Patterns match with or without a trailing slash, so "/v1/rules" and "/v1/rules/"
// share one entry.
type Table struct {
	Public    bool       `json:"public"`
	Endpoints []Endpoint `json:"endpoints"`

	index map[string]Endpoint
}

func (t *Table) Lookup(method, pattern string) Endpoint {
	if t.Public {
		return Endpoint{Method: method, Path: pattern, Public: true}
	}

	endpoint, ok := t.index[key(method, pattern)]
	if !ok {
		return Endpoint{Method: method, Path: pattern}
	}

	return endpoint
}

func Parse(data []byte) (*Table, error) {
	var table Table

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err //nolint:wrapcheck
	}

	table.index = make(map[string]Endpoint, len(table.Endpoints))
	for _, endpoint := range table.Endpoints {
		table.index[key(endpoint.Method, endpoint.Path)] = endpoint
	}

	return &table, nil
}

func key(method, pattern string) string {
	return strings.ToUpper(method) + " " + Normalize(pattern)
}

// Normalize collapses repeated slashes and drops a trailing one. The root stays "/".
func Normalize(pattern string) string {
	for strings.Contains(pattern, "//") {
		pattern = strings.ReplaceAll(pattern, "//", "/")
	}

	if trimmed := strings.TrimRight(pattern, "/"); trimmed != "" {
		return trimmed
	}

	return "/"
}

// Get loads the embedded table. It returns nil when the table cannot be decoded,
// which makes RBAC deny every protected route.
func Get() *Table {
	table, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(table.Endpoints)).Msg("Loaded embedded permissions")

	return table
}
