package condition

import "encoding/json"

// Condition is either a single condition node or an ordered list of nodes.
// Nodes are decoded JSON values; only objects (map[string]any) carry
// anything the walker cares about.
type Condition struct {
	nodes []any
	many  bool
}

// Single wraps one node.
func Single(node any) Condition {
	return Condition{nodes: []any{node}}
}

// Many wraps an ordered list of nodes.
func Many(nodes ...any) Condition {
	return Condition{nodes: nodes, many: true}
}

// FromValue normalizes a decoded JSON value: arrays become a list of nodes,
// everything else is treated as a single node.
func FromValue(v any) Condition {
	if list, ok := v.([]any); ok {
		return Many(list...)
	}
	return Single(v)
}

// IsList reports whether the condition was given as a list.
func (c Condition) IsList() bool {
	return c.many
}

// Nodes returns the normalized node sequence.
func (c Condition) Nodes() []any {
	return c.nodes
}

// UnmarshalJSON accepts either a JSON array of conditions or a single value
func (c *Condition) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = FromValue(v)
	return nil
}
