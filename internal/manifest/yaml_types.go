package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Literal YAML methods ---

// UnmarshalYAML accepts integer and string scalars.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected integer value, got %s", node.Line, kindName(node.Kind))
	}

	switch node.ShortTag() {
	case "!!int", "!!str":
	default:
		return fmt.Errorf("line %d: expected integer value, got %q", node.Line, node.Value)
	}

	*l = Literal{Text: node.Value, Line: node.Line}

	return nil
}

// MarshalYAML writes decimal literals as numbers and everything else as strings.
func (l Literal) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: l.Text, Tag: "!!str"}

	var probe int64
	if yaml.Unmarshal([]byte(l.Text), &probe) == nil {
		n.Tag = "!!int"
	}

	return n, nil
}

func kindName(k yaml.Kind) string {
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
		return "unknown"
	}
}
