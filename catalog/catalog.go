// Package catalog holds the static registry of warehouse tables the gate is
// allowed to expose. The registry is embedded at build time, parsed once at
// startup and never mutated afterwards, so it is safe for any number of
// concurrent readers.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/types"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrNoMatchingTables is returned by Schemas when none of the requested
// names exist in the catalog.
var ErrNoMatchingTables = errors.New("No matching tables found")

// ColumnSpec describes one column of a reporting table.
type ColumnSpec struct {
	Name        string   `yaml:"name" json:"name"`
	Type        string   `yaml:"type" json:"type"`
	Description string   `yaml:"description" json:"description"`
	Tests       []string `yaml:"tests,omitempty" json:"tests,omitempty"`
}

// TableSchema describes one reporting table: its documentation, opaque
// source-system metadata and the ordered column list. Config and Tests are
// passthrough, the core never interprets them.
type TableSchema struct {
	Name        string         `yaml:"-" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Config      map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
	Tests       []any          `yaml:"tests,omitempty" json:"tests,omitempty"`
	Columns     []ColumnSpec   `yaml:"columns" json:"columns"`
}

// Catalog is the ordered, immutable table registry. Declaration order is
// observable: the permitted-tables listing and the intent resolver's
// first-match rule both follow it.
type Catalog struct {
	tables []TableSchema
	index  map[string]int
}

// Load parses the embedded registry. Call once at startup and pass the
// result to every component that needs it.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// New builds a catalog from an explicit table list. Intended for tests that
// need a reduced registry.
func New(tables []TableSchema) *Catalog {
	c := &Catalog{tables: tables, index: make(map[string]int, len(tables))}
	for i, t := range tables {
		c.index[t.Name] = i
	}
	return c
}

// UnmarshalYAML decodes the registry from its on-disk form, an ordered
// mapping of table name to schema. A plain map would lose declaration order.
func (c *Catalog) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("catalog root must be a mapping, got %v", node.Kind)
	}
	c.tables = make([]TableSchema, 0, len(node.Content)/2)
	c.index = make(map[string]int, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("invalid table name at line %d: %w", node.Content[i].Line, err)
		}
		var table TableSchema
		if err := node.Content[i+1].Decode(&table); err != nil {
			return fmt.Errorf("invalid schema for table %s: %w", name, err)
		}
		table.Name = name
		c.index[name] = len(c.tables)
		c.tables = append(c.tables, table)
	}
	return nil
}

// Tables returns the table names in declaration order. The slice is a copy.
func (c *Catalog) Tables() []string {
	names := make([]string, len(c.tables))
	for i, t := range c.tables {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the schema for a table name. Any schema-qualification
// prefix is stripped first, so "platinum.orders" and "orders" resolve to the
// same entry.
func (c *Catalog) Lookup(name string) (TableSchema, bool) {
	i, ok := c.index[stripQualifier(name)]
	if !ok {
		return TableSchema{}, false
	}
	return c.tables[i], true
}

// Schemas returns the catalog entries for the requested names, keyed by bare
// table name. Names absent from the catalog are skipped; if nothing matches
// it returns ErrNoMatchingTables so callers can tell "unknown table" apart
// from "empty table".
func (c *Catalog) Schemas(names []string) (map[string]TableSchema, error) {
	result := make(map[string]TableSchema)
	for _, n := range names {
		if t, ok := c.Lookup(n); ok {
			result[t.Name] = t
		}
	}
	if len(result) == 0 {
		return nil, ErrNoMatchingTables
	}
	return result, nil
}

// Permitted derives the allow-list of queryable tables. It is computed fresh
// from the registry on every call, never cached.
func (c *Catalog) Permitted(database, schema string) types.PermittedSet {
	return types.PermittedSet{
		Database: database,
		Schema:   schema,
		Tables:   c.Tables(),
	}
}

func stripQualifier(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
