// Package xmlcodec maps entities to namespace-qualified XML node trees and
// back.
package xmlcodec

import "strings"

// ArraysNamespace is the namespace of scalar array items.
const ArraysNamespace = "http://schemas.microsoft.com/2003/10/Serialization/Arrays"

// ArrayItem is the qualified name wrapping every item of a scalar array.
var ArrayItem = Qualify(ArraysNamespace, "string")

// Node is one XML element. Name uses Clark notation: "{uri}local", or just
// "local" when the element has no namespace. A node carries either Text or
// Children.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Qualify builds a Clark-notation name.
func Qualify(namespace, local string) string {
	if namespace == "" {
		return local
	}
	return "{" + namespace + "}" + local
}

// SplitName splits a Clark-notation name into namespace and local name.
func SplitName(name string) (namespace, local string) {
	if !strings.HasPrefix(name, "{") {
		return "", name
	}
	end := strings.IndexByte(name, '}')
	if end < 0 {
		return "", name
	}
	return name[1:end], name[end+1:]
}

// LocalName returns the name without its namespace.
func (n *Node) LocalName() string {
	_, local := SplitName(n.Name)
	return local
}

// Namespace returns the namespace URI of the node.
func (n *Node) Namespace() string {
	ns, _ := SplitName(n.Name)
	return ns
}

// IsNested reports whether the node has child elements.
func (n *Node) IsNested() bool {
	return len(n.Children) > 0
}

// IsEmpty reports whether the node has neither text nor children.
func (n *Node) IsEmpty() bool {
	return len(n.Children) == 0 && n.Text == ""
}

// Child returns the first child with the given local name.
func (n *Node) Child(local string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.LocalName() == local {
			return c
		}
	}
	return nil
}

// Find follows a path of local names from n.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, local := range path {
		cur = cur.Child(local)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Strings returns the texts of terminal children, or false when any child
// is nested.
func (n *Node) Strings() ([]string, bool) {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsNested() {
			return nil, false
		}
		out = append(out, c.Text)
	}
	return out, true
}
