// Package xmltree reads an XML document into a small element tree with
// path lookups, which is all the score parser needs from a document.
package xmltree

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Node is an element. Text holds the trimmed character data directly inside
// the element.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Parse reads the whole document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	dec.Entity = xml.HTMLEntity

	var root *Node
	var stack []*Node
	var text []*strings.Builder
	for {
		token, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not decode xml")
		}
		switch t := token.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			for _, attr := range t.Attr {
				if n.Attrs == nil {
					n.Attrs = make(map[string]string)
				}
				n.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = strings.TrimSpace(text[len(text)-1].String())
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Has reports whether a direct child with the given tag exists.
func (n *Node) Has(tag string) bool {
	return n.Child(tag) != nil
}

// Find returns the first element matching a slash separated path of child
// tags, e.g. "attributes/divisions", or nil.
func (n *Node) Find(path string) *Node {
	all := n.FindAll(path)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAll returns every element matching a slash separated path of child
// tags, in document order.
func (n *Node) FindAll(path string) []*Node {
	current := []*Node{n}
	for _, tag := range strings.Split(path, "/") {
		var next []*Node
		for _, c := range current {
			for _, child := range c.Children {
				if child.Tag == tag {
					next = append(next, child)
				}
			}
		}
		current = next
	}
	return current
}
