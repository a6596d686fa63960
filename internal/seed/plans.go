// Package seed loads the plan catalog that is provisioned at startup.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"hireboard/internal/common"
	"hireboard/internal/domain/plan"
)

type catalogFile struct {
	Plans []yaml.Node `yaml:"plans"`
}

type EntryError struct {
	Index  int
	Fields map[string]string
}

// CatalogError collects the violations of every invalid entry.
type CatalogError struct {
	Entries []EntryError
}

func (e *CatalogError) Error() string {
	var lines []string
	for _, entry := range e.Entries {
		keys := make([]string, 0, len(entry.Fields))
		for key := range entry.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("plans[%d].%s: %s", entry.Index, key, entry.Fields[key]))
		}
	}
	return "invalid plan catalog: " + strings.Join(lines, "; ")
}

func LoadPlans(path string) ([]plan.Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan catalog %s: %w", path, err)
	}
	return ParsePlans(raw)
}

func ParsePlans(raw []byte) ([]plan.Input, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode plan catalog: %w", err)
	}

	inputs := make([]plan.Input, 0, len(file.Plans))
	seen := make(map[string]int, len(file.Plans))
	catalogErr := &CatalogError{}
	for i := range file.Plans {
		encoded, err := entryJSON(&file.Plans[i])
		if err != nil {
			catalogErr.Entries = append(catalogErr.Entries, EntryError{Index: i, Fields: map[string]string{"body": err.Error()}})
			continue
		}
		input, err := plan.ParseCreate(encoded)
		if err != nil {
			catalogErr.Entries = append(catalogErr.Entries, EntryError{Index: i, Fields: fieldsOf(err)})
			continue
		}
		if first, ok := seen[input.Name]; ok {
			catalogErr.Entries = append(catalogErr.Entries, EntryError{Index: i, Fields: map[string]string{"name": fmt.Sprintf("duplicates plans[%d]", first)}})
			continue
		}
		seen[input.Name] = i
		inputs = append(inputs, input)
	}
	if len(catalogErr.Entries) > 0 {
		return nil, catalogErr
	}
	return inputs, nil
}

func entryJSON(node *yaml.Node) ([]byte, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("entry must be a mapping")
	}
	value, err := nodeValue(node)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// nodeValue converts a YAML node into JSON-compatible values. Scalars that
// YAML would reinterpret, such as timestamps, keep their literal text so the
// plan schema sees what the catalog author wrote.
func nodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return nodeValue(node.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			value, err := nodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key.Value] = value
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int", "!!float", "!!bool", "!!null":
			var value any
			if err := node.Decode(&value); err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}
			return value, nil
		default:
			return node.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}

func fieldsOf(err error) map[string]string {
	var appErr *common.Error
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		return appErr.Fields
	}
	return map[string]string{"body": err.Error()}
}
