package decl

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	nullTag = "!!null"
	strTag  = "!!str"
)

// --- FieldList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for FieldList.
// The mapping order of the document is the field order. Accepts per field:
//   - null: "Name:" or "Name: ~"
//   - a sequence of values: "Status: [Succeeded, Failed]"
//   - a mapping: "Status: {values: [Succeeded, Failed], doc: ...}"
func (l *FieldList) UnmarshalYAML(node *yaml.Node) error {
	if isNull(node) {
		*l = FieldList{}
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping of name to values, got %s", node.Line, kindName(node))
	}

	out := make(FieldList, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name, err := decodeKey(node.Content[i])
		if err != nil {
			return err
		}

		fd, err := parseFieldDecl(name, node.Content[i+1])
		if err != nil {
			return err
		}

		out = append(out, fd)
	}

	*l = out

	return nil
}

// parseFieldDecl parses the value node of a single field.
func parseFieldDecl(name string, node *yaml.Node) (FieldDecl, error) {
	fd := FieldDecl{Name: name}

	switch {
	case isNull(node):
		return fd, nil

	case node.Kind == yaml.SequenceNode:
		values, err := decodeValues(name, node)
		if err != nil {
			return FieldDecl{}, err
		}

		fd.Values = values
		fd.HasValueList = true

		return fd, nil

	case node.Kind == yaml.MappingNode:
		return parseLongFieldDecl(fd, node)

	default:
		return FieldDecl{}, fmt.Errorf("line %d: field %q: expected null, a list of values or a mapping, got %s",
			node.Line, name, kindName(node))
	}
}

// parseLongFieldDecl parses the {values: [...], doc: ...} form.
func parseLongFieldDecl(fd FieldDecl, node *yaml.Node) (FieldDecl, error) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, err := decodeKey(node.Content[i])
		if err != nil {
			return FieldDecl{}, err
		}

		val := node.Content[i+1]

		switch key {
		case "values":
			if isNull(val) {
				continue
			}

			if val.Kind != yaml.SequenceNode {
				return FieldDecl{}, fmt.Errorf("line %d: field %q: values must be a list, got %s",
					val.Line, fd.Name, kindName(val))
			}

			values, err := decodeValues(fd.Name, val)
			if err != nil {
				return FieldDecl{}, err
			}

			fd.Values = values
			fd.HasValueList = true

		case "doc":
			if err := val.Decode(&fd.Doc); err != nil {
				return FieldDecl{}, fmt.Errorf("line %d: field %q: invalid doc: %w", val.Line, fd.Name, err)
			}

		default:
			return FieldDecl{}, fmt.Errorf("line %d: field %q: unknown key %q (expected 'values' or 'doc')",
				node.Content[i].Line, fd.Name, key)
		}
	}

	return fd, nil
}

// decodeValues decodes a sequence of scalar value labels.
func decodeValues(field string, node *yaml.Node) ([]string, error) {
	values := make([]string, 0, len(node.Content))

	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode || isNull(item) {
			return nil, fmt.Errorf("line %d: field %q: values must be strings, got %s", item.Line, field, kindName(item))
		}

		values = append(values, item.Value)
	}

	return values, nil
}

// MarshalYAML implements custom YAML marshaling for FieldList.
// Fields without values and doc are written as null, fields with only
// values as a flow sequence, everything else in the long form.
func (l FieldList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, f := range l {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}

		var val *yaml.Node

		switch {
		case f.Doc == "" && !f.HasValueList:
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: ""}
		case f.Doc == "":
			val = valuesNode(f.Values)
		default:
			val = &yaml.Node{Kind: yaml.MappingNode}
			if f.HasValueList {
				val.Content = append(val.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "values"}, valuesNode(f.Values))
			}

			val.Content = append(val.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "doc"},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: f.Doc})
		}

		node.Content = append(node.Content, key, val)
	}

	return node, nil
}

func valuesNode(values []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range values {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: v})
	}

	return n
}

// --- ConstList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for ConstList.
// Accepts a mapping of name to scalar value; order is preserved.
func (l *ConstList) UnmarshalYAML(node *yaml.Node) error {
	if isNull(node) {
		*l = ConstList{}
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: consts must be a mapping of name to value, got %s", node.Line, kindName(node))
	}

	out := make(ConstList, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name, err := decodeKey(node.Content[i])
		if err != nil {
			return err
		}

		val := node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: const %q: expected a scalar value, got %s", val.Line, name, kindName(val))
		}

		c := Const{Name: name}
		if !isNull(val) {
			c.Value = val.Value
		}

		out = append(out, c)
	}

	*l = out

	return nil
}

// MarshalYAML implements custom YAML marshaling for ConstList.
func (l ConstList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: c.Value})
	}

	return node, nil
}

// --- helpers ---

func decodeKey(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected a name, got %s", node.Line, kindName(node))
	}

	return node.Value, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == nullTag
}

var nodeKindNames = map[yaml.Kind]string{
	yaml.DocumentNode: "document",
	yaml.SequenceNode: "list",
	yaml.MappingNode:  "mapping",
	yaml.ScalarNode:   "scalar",
	yaml.AliasNode:    "alias",
}

func kindName(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		if isNull(node) {
			return "null"
		}

		return fmt.Sprintf("scalar %q", node.Value)
	}

	if name, ok := nodeKindNames[node.Kind]; ok {
		return name
	}

	return fmt.Sprintf("node kind %d", node.Kind)
}
