// Package staticcatalog loads content tables from a data directory. Each
// table lives in its own file (events, missions, roles, levels) as either
// JSON or YAML; missing files fall back to the built-in defaults so a data
// dir can override just one table.
package staticcatalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"megbase/internal/domain/catalog"
)

type Loader struct {
	Root string
}

func (l Loader) Load() (*catalog.Set, error) {
	defaults := catalog.Default()

	events := defaults.Events()
	if err := l.readTable("events", &events); err != nil {
		return nil, err
	}
	missions := defaults.Missions()
	if err := l.readTable("missions", &missions); err != nil {
		return nil, err
	}
	locations := defaults.Locations()
	if err := l.readTable("levels", &locations); err != nil {
		return nil, err
	}
	roles := defaultRoles(defaults)
	if err := l.readTable("roles", &roles); err != nil {
		return nil, err
	}

	set, err := catalog.NewSet(events, missions, roles, locations)
	if err != nil {
		return nil, fmt.Errorf("catalog in %s: %w", l.Root, err)
	}
	return set, nil
}

// readTable decodes <root>/<name>.json or <root>/<name>.yaml into out. Both
// present is an error; neither present leaves out untouched.
func (l Loader) readTable(name string, out any) error {
	jsonPath := filepath.Join(l.Root, name+".json")
	yamlPath := filepath.Join(l.Root, name+".yaml")

	jsonData, jsonErr := os.ReadFile(jsonPath)
	yamlData, yamlErr := os.ReadFile(yamlPath)

	switch {
	case jsonErr == nil && yamlErr == nil:
		return fmt.Errorf("table %q present as both json and yaml", name)
	case jsonErr == nil:
		if err := json.Unmarshal(jsonData, out); err != nil {
			return fmt.Errorf("decode %s: %w", jsonPath, err)
		}
		return nil
	case yamlErr == nil:
		if err := yaml.Unmarshal(yamlData, out); err != nil {
			return fmt.Errorf("decode %s: %w", yamlPath, err)
		}
		return nil
	}
	if !errors.Is(jsonErr, fs.ErrNotExist) {
		return jsonErr
	}
	if !errors.Is(yamlErr, fs.ErrNotExist) {
		return yamlErr
	}
	return nil
}

func defaultRoles(s *catalog.Set) []catalog.Role {
	ids := s.RoleIDs()
	roles := make([]catalog.Role, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.Role(id); ok {
			roles = append(roles, r)
		}
	}
	return roles
}
