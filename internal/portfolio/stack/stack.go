// Package stack serves the fixed technology catalogue shown on the home page.
package stack

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed stack.yaml
var defaultCatalogue []byte

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Item struct {
	ID    int    `yaml:"-" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Icon  string `yaml:"icon" json:"icon"`
	Color string `yaml:"color" json:"color"`
}

type catalogue struct {
	Items []Item `yaml:"items"`
}

// Parse decodes a catalogue document. IDs are assigned from position,
// starting at 1.
func Parse(data []byte) ([]Item, error) {
	var c catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse stack catalogue: %w", err)
	}

	seen := make(map[string]bool, len(c.Items))
	for i := range c.Items {
		item := &c.Items[i]
		item.ID = i + 1
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, fmt.Errorf("stack item %d: name is required", item.ID)
		}
		if seen[strings.ToLower(item.Name)] {
			return nil, fmt.Errorf("stack item %d: duplicate name %q", item.ID, item.Name)
		}
		seen[strings.ToLower(item.Name)] = true
		if !hexColor.MatchString(item.Color) {
			return nil, fmt.Errorf("stack item %q: invalid color %q", item.Name, item.Color)
		}
	}
	return c.Items, nil
}

// Default returns the embedded catalogue.
func Default() ([]Item, error) {
	return Parse(defaultCatalogue)
}
