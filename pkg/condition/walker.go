package condition

// QueryComment is attached to every query string handed to a Sink.
const QueryComment = "Query message shown in a popup"

// Origin identifies where a condition came from. The walker never inspects it.
type Origin string

// Sink receives localizable strings found while walking.
// The text is the raw decoded JSON value under the key.
type Sink interface {
	Emit(text any, origin Origin, comment string) error
}

// SinkFunc adapts a plain function to the Sink interface
type SinkFunc func(text any, origin Origin, comment string) error

func (f SinkFunc) Emit(text any, origin Origin, comment string) error {
	return f(text, origin, comment)
}

// keys are checked in this order on every node. Each one is handled only if
// present, independently of the others. Query keys are emitted, the logical
// combinators hold nested conditions.
var keys = []struct {
	name   string
	nested bool
}{
	{"u_query", false},
	{"npc_query", false},
	{"and", true},
	{"or", true},
	{"not", true},
}

// Walk visits every node of cond depth-first and emits the query strings it
// finds. Non-object nodes are skipped. An error from the sink stops the walk
// and is returned as is.
func Walk(cond Condition, origin Origin, sink Sink) error {
	for _, n := range cond.Nodes() {
		node, ok := n.(map[string]any)
		if !ok {
			continue
		}
		for _, k := range keys {
			value, exists := node[k.name]
			if !exists {
				continue
			}
			var err error
			if k.nested {
				err = WalkValue(value, origin, sink)
			} else {
				err = sink.Emit(value, origin, QueryComment)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkValue normalizes a decoded JSON value with FromValue and walks it.
func WalkValue(v any, origin Origin, sink Sink) error {
	return Walk(FromValue(v), origin, sink)
}
