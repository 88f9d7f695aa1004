// Package catalog holds the in-memory instance-type catalog built during a
// run and assembles it into the persisted catalog document.
package catalog

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// IdentifierField is the record field holding the instance-type identifier.
const IdentifierField = "InstanceType"

// Catalog maps instance-type identifiers to their normalized records. It is
// built incrementally while fetching and frozen into a Document at assembly
// time.
type Catalog map[string]map[string]any

// Insert adds a normalized record under its own identifier field. Records
// with a missing, non-string, or empty identifier are rejected and the
// catalog is left unchanged. A repeated identifier overwrites the earlier
// entry.
func (c Catalog) Insert(rec map[string]any) bool {
	id, ok := rec[IdentifierField].(string)
	if !ok || id == "" {
		return false
	}
	c[id] = rec
	return true
}

// Keys returns the instance-type identifiers in lexicographic order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MarshalYAML emits the catalog as a mapping with identifier keys in
// bytewise lexicographic order, matching the JSON encoding. The YAML
// encoder's own map ordering treats digit runs numerically and would put
// c5.2xlarge before c5.12xlarge.
func (c Catalog) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range c.Keys() {
		var value yaml.Node
		if err := value.Encode(c[key]); err != nil {
			return nil, fmt.Errorf("failed to encode record %q: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&value)
	}
	return node, nil
}
