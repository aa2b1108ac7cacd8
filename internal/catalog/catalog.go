// Package catalog holds the option lists the wizard offers: built-in
// checkbox catalogs, role and timeline choices, the dependency table and the
// externally maintained category, deployment-strategy and stakeholder lists.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	CategoriesFile   = "use_case_categories.yml"
	DeploymentFile   = "deployment_strategies.yml"
	StakeholdersFile = "stakeholders.json"
)

//go:embed data/*
var builtin embed.FS

// Entry is one named catalog value with its help text.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// OrderedEntries decodes a YAML mapping of name to description while
// keeping document order. The value may be a bare string or a mapping with
// a description key.
type OrderedEntries []Entry

// UnmarshalYAML implements yaml.Unmarshaler.
func (oe *OrderedEntries) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*oe = OrderedEntries{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("catalog must be a YAML mapping, got %v", value.Kind)
	}
	entries := make(OrderedEntries, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		e := Entry{Name: strings.TrimSpace(keyNode.Value)}
		switch valNode.Kind {
		case yaml.ScalarNode:
			if valNode.Tag != "!!null" {
				e.Description = valNode.Value
			}
		case yaml.MappingNode:
			var detail struct {
				Description string `yaml:"description"`
			}
			if err := valNode.Decode(&detail); err != nil {
				return fmt.Errorf("entry %q: %w", e.Name, err)
			}
			e.Description = detail.Description
		}
		if e.Name != "" {
			entries = append(entries, e)
		}
	}
	*oe = entries
	return nil
}

// Names returns entry names in order, leaving out the Other marker, which
// the UI appends on its own.
func (oe OrderedEntries) Names() []string {
	out := make([]string, 0, len(oe))
	for _, e := range oe {
		if e.Name == domain.OtherMarker {
			continue
		}
		out = append(out, e.Name)
	}
	return out
}

// Description returns the help text for name, or "".
func (oe OrderedEntries) Description(name string) string {
	for _, e := range oe {
		if e.Name == name {
			return e.Description
		}
	}
	return ""
}

// StakeholderCategory is one stakeholder dropdown.
type StakeholderCategory struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Catalog bundles the external lists consulted by build and restore.
type Catalog struct {
	Categories           OrderedEntries
	DeploymentStrategies OrderedEntries
	Stakeholders         []StakeholderCategory
}

// CategoryNames is the known set for the initiative category choice.
func (c *Catalog) CategoryNames() []string {
	if c == nil {
		return nil
	}
	return c.Categories.Names()
}

// DeploymentNames is the known set for the deployment strategy choice.
func (c *Catalog) DeploymentNames() []string {
	if c == nil {
		return nil
	}
	return c.DeploymentStrategies.Names()
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Load("")
	if err != nil {
		// The embedded files are part of the build; failing here is a bug.
		panic(err)
	}
	return c
}

// Load reads catalog files from dir, falling back to the built-in copy for
// any file dir does not contain. An empty dir means built-in only.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{}

	raw, err := readCatalogFile(dir, CategoriesFile)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &c.Categories); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRead, CategoriesFile, err)
	}

	raw, err = readCatalogFile(dir, DeploymentFile)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &c.DeploymentStrategies); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRead, DeploymentFile, err)
	}

	raw, err = readCatalogFile(dir, StakeholdersFile)
	if err != nil {
		return nil, err
	}
	c.Stakeholders, err = ParseStakeholders(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRead, StakeholdersFile, err)
	}
	return c, nil
}

func readCatalogFile(dir, name string) ([]byte, error) {
	if dir != "" {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRead, name, err)
		}
	}
	raw, err := builtin.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: built-in %s: %v", ErrCatalogRead, name, err)
	}
	return raw, nil
}

// ParseStakeholders decodes the stakeholder catalog, a JSON object of
// category to option list. Category order follows the file. A single
// trailing period after the object is tolerated since hand-edited copies
// of the file commonly carry one.
func ParseStakeholders(raw []byte) ([]StakeholderCategory, error) {
	text := strings.TrimSpace(string(raw))
	text = strings.TrimSuffix(text, ".")

	dec := json.NewDecoder(strings.NewReader(text))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("stakeholders catalog must be a JSON object")
	}

	var out []StakeholderCategory
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		var opts []string
		if err := dec.Decode(&opts); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		out = append(out, StakeholderCategory{Name: name, Options: opts})
	}
	return out, nil
}
