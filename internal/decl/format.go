package decl

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrCommentsDropped is returned by Format when a comment of the input
// has no node to attach to in the canonical form.
var ErrCommentsDropped = errors.New("comments cannot be kept in canonical form")

// Format returns the canonical form of a YAML declaration file, as
// Marshal writes it, with the comments of data carried over. Comments
// follow the node they are attached to: mapping entries are matched by
// key and sequence items by position.
//
// Format fails with ErrCommentsDropped when a commented node changes
// shape, e.g. a commented long form field that collapses to the short
// form, or a comment inside a list that is written in flow style.
func Format(data []byte) ([]byte, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	var src yaml.Node
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	if countComments(&src) == 0 {
		return Marshal(f)
	}

	var root yaml.Node
	if err := root.Encode(f); err != nil {
		return nil, err
	}

	dst := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{&root}}

	if dropped := copyComments(dst, &src); dropped > 0 {
		return nil, fmt.Errorf("%w: %d comment(s) would be lost", ErrCommentsDropped, dropped)
	}

	return encodeNode(dst)
}

func encodeNode(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(n); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// copyComments copies the comments of src and its descendants onto the
// matching nodes of dst and returns how many comments found no match.
func copyComments(dst, src *yaml.Node) int {
	if dst == nil {
		return countComments(src)
	}

	dst.HeadComment = src.HeadComment
	dst.LineComment = src.LineComment
	dst.FootComment = src.FootComment

	if dst.Kind != src.Kind || (dst.Style&yaml.FlowStyle != 0 && src.Style&yaml.FlowStyle == 0) {
		return countChildComments(src)
	}

	dropped := 0

	switch src.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for i, child := range src.Content {
			var match *yaml.Node
			if i < len(dst.Content) {
				match = dst.Content[i]
			}

			dropped += copyComments(match, child)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(src.Content); i += 2 {
			key, value := src.Content[i], src.Content[i+1]

			dstKey, dstValue := lookupEntry(dst, key.Value)
			dropped += copyComments(dstKey, key)
			dropped += copyComments(dstValue, value)
		}
	}

	return dropped
}

// lookupEntry returns the key and value nodes of a mapping entry.
func lookupEntry(m *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i], m.Content[i+1]
		}
	}

	return nil, nil
}

func countComments(n *yaml.Node) int {
	count := 0

	for _, c := range []string{n.HeadComment, n.LineComment, n.FootComment} {
		if c != "" {
			count++
		}
	}

	return count + countChildComments(n)
}

func countChildComments(n *yaml.Node) int {
	count := 0
	for _, child := range n.Content {
		count += countComments(child)
	}

	return count
}
