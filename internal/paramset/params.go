package paramset

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Param is one hyperparameter assignment written as a `key value` line.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of hyperparameter assignments. Order is the
// definition order and is preserved on render.
type Params []Param

func P(key string, value any) Param {
	return Param{Key: key, Value: value}
}

func (p Param) String() string {
	return p.Key + " " + FormatValue(p.Value)
}

func (ps Params) Keys() []string {
	keys := make([]string, 0, len(ps))
	for _, p := range ps {
		keys = append(keys, p.Key)
	}
	return keys
}

// Get returns the value of the last assignment of key.
func (ps Params) Get(key string) (any, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}
	return nil, false
}

func (ps Params) Validate() error {
	for i, p := range ps {
		if strings.TrimSpace(p.Key) == "" {
			return fmt.Errorf("param %d: key is required", i)
		}
		if strings.ContainsAny(p.Key, " \t\r\n:=") {
			return fmt.Errorf("param %q: key must not contain whitespace, ':' or '='", p.Key)
		}
		if p.Value == nil {
			return fmt.Errorf("param %q: value is required", p.Key)
		}
	}
	return nil
}

// Merge combines layers into one ordered list. A key keeps the position of its
// first assignment and the value of its last one.
func Merge(layers ...Params) Params {
	size := 0
	for _, layer := range layers {
		size += len(layer)
	}
	out := make(Params, 0, size)
	index := make(map[string]int, size)
	for _, layer := range layers {
		for _, p := range layer {
			if i, ok := index[p.Key]; ok {
				out[i].Value = p.Value
				continue
			}
			index[p.Key] = len(out)
			out = append(out, p)
		}
	}
	return out
}

// Shadowed lists the keys of overrides that replace a key already present in base.
func Shadowed(base, overrides Params) []string {
	seen := make(map[string]struct{}, len(base))
	for _, p := range base {
		seen[p.Key] = struct{}{}
	}
	var out []string
	for _, p := range overrides {
		if _, ok := seen[p.Key]; ok {
			out = append(out, p.Key)
		}
	}
	return out
}

// FormatValue renders a value the way parameter files expect it: integers in
// decimal, floats in shortest form with at least one fractional digit.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// UnmarshalYAML reads a mapping node while keeping its key order.
func (ps *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: params must be a mapping", node.Line)
	}
	out := make(Params, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		value, err := scalarValue(valueNode)
		if err != nil {
			return fmt.Errorf("param %q: %w", keyNode.Value, err)
		}
		out = append(out, Param{Key: keyNode.Value, Value: value})
	}
	*ps = out
	return nil
}

func (ps Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range ps {
		var value yaml.Node
		if err := value.Encode(p.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Key},
			&value,
		)
	}
	return node, nil
}

func scalarValue(node *yaml.Node) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: value must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!int":
		var v int
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case "!!bool":
		var v bool
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case "!!null":
		return nil, fmt.Errorf("line %d: value is required", node.Line)
	default:
		return node.Value, nil
	}
}
