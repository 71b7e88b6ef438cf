package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"perft-bench/internal/common"
	"perft-bench/internal/diagnostic"
)

// LoadPositions loads and validates the position table at path.
func LoadPositions(path string) ([]PositionCase, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return ParsePositions(data, path)
}

// LoadBackends loads and validates the backend table at path.
func LoadBackends(path string) ([]BackendDescriptor, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return ParseBackends(data, path)
}

// ParsePositions parses a position table. name identifies the source in errors.
func ParsePositions(data []byte, name string) ([]PositionCase, error) {
	records, lines, err := parseSequence[PositionCase](data, name, positionFields)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Line = lines[i]
		if err := validatePosition(&records[i]); err != nil {
			return nil, malformed(name, recordLabel(i, lines[i]), err)
		}
	}

	return records, nil
}

// ParseBackends parses a backend table. name identifies the source in errors.
func ParseBackends(data []byte, name string) ([]BackendDescriptor, error) {
	records, lines, err := parseSequence[BackendDescriptor](data, name, backendFields)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Line = lines[i]
		if err := validateBackend(&records[i]); err != nil {
			return nil, malformed(name, recordLabel(i, lines[i]), err)
		}
	}

	return records, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, malformed(path, "", fmt.Errorf("failed to read data file: %w", err))
	}

	return data, nil
}

// parseSequence decodes a YAML sequence of mappings into records of type T,
// rejecting fields outside fields.allowed and records missing one of
// fields.required. It returns the source line of each record.
func parseSequence[T any](data []byte, name string, fields recordFields) ([]T, []int, error) {
	doc, err := decodeSingleDocument(data)
	if err != nil {
		return nil, nil, malformed(name, "", err)
	}

	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil, nil
		}

		root = root.Content[0]
	}

	// Empty input decodes to a zero node.
	if root.Kind == 0 {
		return nil, nil, nil
	}

	if root.Kind != yaml.SequenceNode {
		return nil, nil, malformed(name, "", fmt.Errorf("expected a sequence of records, got %s", nodeKindName(root.Kind)))
	}

	records := make([]T, 0, len(root.Content))
	lines := make([]int, 0, len(root.Content))

	for i, item := range root.Content {
		if item.Kind == yaml.AliasNode && item.Alias != nil {
			item = item.Alias
		}

		label := recordLabel(i, item.Line)

		if item.Kind != yaml.MappingNode {
			return nil, nil, malformed(name, label, fmt.Errorf("expected a mapping, got %s", nodeKindName(item.Kind)))
		}

		present := make([]string, 0, len(item.Content)/2)

		for j := 0; j+1 < len(item.Content); j += 2 {
			key := item.Content[j].Value
			if !slices.Contains(fields.allowed, key) {
				return nil, nil, malformed(name, label, fmt.Errorf("unknown field %q%s", key, common.Hint(key, fields.allowed)))
			}

			present = append(present, key)
		}

		for _, key := range fields.required {
			if !slices.Contains(present, key) {
				return nil, nil, malformed(name, label, fmt.Errorf("field %q is required", key))
			}
		}

		var rec T
		if err := item.Decode(&rec); err != nil {
			return nil, nil, malformed(name, label, err)
		}

		records = append(records, rec)
		lines = append(lines, item.Line)
	}

	return records, lines, nil
}

// decodeSingleDocument decodes data as one YAML document. A table split over
// several documents would silently lose every record past the first, so any
// further non-empty document is an error.
func decodeSingleDocument(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for {
		var extra yaml.Node

		err := dec.Decode(&extra)
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}

		if !isEmptyDocument(&extra) {
			line := extra.Line
			if len(extra.Content) > 0 {
				line = extra.Content[0].Line
			}

			return nil, fmt.Errorf("unexpected second YAML document at line %d: a table must be a single document", line)
		}
	}
}

func isEmptyDocument(n *yaml.Node) bool {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return true
		}

		n = n.Content[0]
	}

	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func malformed(file, record string, err error) error {
	return diagnostic.New(diagnostic.MalformedInput, diagnostic.StageLoad, file, record, err)
}

func recordLabel(index, line int) string {
	if line > 0 {
		return fmt.Sprintf("record %d (line %d)", index+1, line)
	}

	return fmt.Sprintf("record %d", index+1)
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
