package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidTree is returned when a JSON body tree cannot be parsed.
var ErrInvalidTree = errors.New("invalid content tree")

// Node kinds used by the JSON tree format.
const (
	KindText   = "text"
	KindBreak  = "break"
	KindIndent = "indent"
	KindList   = "list"
	KindItem   = "item"
	KindRoot   = "root"
)

// kindAliases maps HTML-ish tag names onto node kinds so that trees written
// by hand can use the familiar names.
var kindAliases = map[string]string{
	"br": KindBreak,
	"ul": KindList,
	"ol": KindList,
	"li": KindItem,
}

type wireNode struct {
	Kind     string     `json:"kind"`
	Value    string     `json:"value,omitempty"`
	Spacing  *int       `json:"spacing,omitempty"`
	Ordered  bool       `json:"ordered,omitempty"`
	Children []wireNode `json:"children,omitempty"`
}

// UnmarshalJSON accepts either a node object or a bare string, which is
// shorthand for a text node.
func (w *wireNode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*w = wireNode{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = wireNode{Kind: KindText, Value: s}
		return nil
	}

	type plain wireNode
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*w = wireNode(p)
	if alias, ok := kindAliases[w.Kind]; ok {
		if w.Kind == "ol" {
			w.Ordered = true
		}
		w.Kind = alias
	}
	return nil
}

// Decode parses a JSON body tree. The document may be a node object, a bare
// string, or an array, which is read as the children of a Root. Nodes of an
// unknown kind are dropped.
func Decode(data []byte) (Node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var children []wireNode
		if err := json.Unmarshal(trimmed, &children); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTree, err)
		}
		return Root{Children: toNodes(children)}, nil
	}

	var w wireNode
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}
	n := toNode(w)
	if n == nil {
		return Root{}, nil
	}
	return n, nil
}

// Encode renders a body tree in the JSON tree format accepted by Decode.
func Encode(n Node) ([]byte, error) {
	w, ok := fromNode(n)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported node %T", ErrInvalidTree, n)
	}
	return json.Marshal(w)
}

func toNodes(ws []wireNode) []Node {
	nodes := make([]Node, 0, len(ws))
	for _, w := range ws {
		if n := toNode(w); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func toNode(w wireNode) Node {
	switch w.Kind {
	case KindText:
		return Text{Value: w.Value}
	case KindBreak:
		if w.Spacing == nil {
			return Break()
		}
		return Breaks(*w.Spacing)
	case KindIndent:
		spacing := DefaultIndentSpacing
		if w.Spacing != nil {
			spacing = *w.Spacing
		}
		return IndentBlock{Spacing: spacing, Children: toNodes(w.Children)}
	case KindList:
		return ListBlock{Ordered: w.Ordered, Items: toNodes(w.Children)}
	case KindItem:
		return ListItem{Children: toNodes(w.Children)}
	case KindRoot:
		return Root{Children: toNodes(w.Children)}
	default:
		return nil
	}
}

func fromNodes(ns []Node) []wireNode {
	ws := make([]wireNode, 0, len(ns))
	for _, n := range ns {
		if w, ok := fromNode(n); ok {
			ws = append(ws, w)
		}
	}
	return ws
}

func fromNode(n Node) (wireNode, bool) {
	switch n := n.(type) {
	case Text:
		return wireNode{Kind: KindText, Value: n.Value}, true
	case LineBreak:
		spacing := n.spacing()
		return wireNode{Kind: KindBreak, Spacing: &spacing}, true
	case IndentBlock:
		spacing := n.spacing()
		return wireNode{Kind: KindIndent, Spacing: &spacing, Children: fromNodes(n.Children)}, true
	case ListBlock:
		return wireNode{Kind: KindList, Ordered: n.Ordered, Children: fromNodes(n.Items)}, true
	case ListItem:
		return wireNode{Kind: KindItem, Children: fromNodes(n.Children)}, true
	case Root:
		return wireNode{Kind: KindRoot, Children: fromNodes(n.Children)}, true
	case *Text:
		return derefNode(n)
	case *LineBreak:
		return derefNode(n)
	case *IndentBlock:
		return derefNode(n)
	case *ListBlock:
		return derefNode(n)
	case *ListItem:
		return derefNode(n)
	case *Root:
		return derefNode(n)
	default:
		return wireNode{}, false
	}
}

func derefNode[T Text | LineBreak | IndentBlock | ListBlock | ListItem | Root](p *T) (wireNode, bool) {
	if p == nil {
		return wireNode{}, false
	}
	return fromNode(any(*p).(Node))
}
