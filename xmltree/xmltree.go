package xmltree

import (
	"encoding/xml"
	"errors"
	"golang.org/x/net/html/charset"
	"io"
	"strings"
)

var ErrNoRoot = errors.New("no root element")

// LocalName strips the leading {namespace-uri} qualifier from a tag,
// so matching against semantic names works no matter which namespace
// a producing tool used. Unqualified tags pass through unchanged.
func LocalName(tag string) string {
	if i := strings.Index(tag, "}"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// Node is one element of a parsed document tree.
type Node struct {
	Parent   *Node
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Content  string
}

// Tag renders the element name as {namespace-uri}localName, or just
// the local name when the element has no namespace.
func (n *Node) Tag() string {
	if n.Name.Space == "" {
		return n.Name.Local
	}
	return "{" + n.Name.Space + "}" + n.Name.Local
}

// Attr returns the value of the attribute with the given local name.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the trimmed text content of the element.
func (n *Node) Text() string {
	return strings.TrimSpace(n.Content)
}

// Iter walks the subtree in document order, n itself first, calling
// fn for every node until fn returns false. It reports whether the
// walk ran to completion.
func (n *Node) Iter(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Iter(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in the subtree, n itself included, for
// which pred returns true.
func (n *Node) Find(pred func(*Node) bool) (*Node, bool) {
	var found *Node
	n.Iter(func(c *Node) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// FindTag returns the first node in the subtree whose resolved local
// name equals name.
func (n *Node) FindTag(name string) (*Node, bool) {
	return n.Find(func(c *Node) bool {
		return LocalName(c.Tag()) == name
	})
}

// Parse reads an XML document and builds its element tree. The
// decoder resolves namespaces, so Node.Name.Space carries the
// namespace URI of each element, and converts legacy charsets such as
// ISO-8859-1 to UTF-8.
func Parse(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	var root, current *Node
	for {
		token, err := d.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{
				Parent: current,
				Name:   t.Name,
				Attrs:  make([]xml.Attr, len(t.Attr)),
			}
			copy(node.Attrs, t.Attr)
			if root == nil {
				root = node
			}
			if current != nil {
				current.Children = append(current.Children, node)
			}
			current = node
		case xml.CharData:
			if current != nil {
				current.Content += string(t)
			}
		case xml.EndElement:
			if current != nil {
				current = current.Parent
			}
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
