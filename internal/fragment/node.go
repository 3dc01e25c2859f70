// Package fragment defines the format-agnostic tree carried from a
// config-file declaration to a merge engine.
package fragment

import (
	"strings"

	"github.com/beevik/etree"
)

// Attr is a single attribute. Key keeps its namespace prefix ("android:name").
type Attr struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Node is an element with ordered attributes, optional text and ordered children.
type Node struct {
	Tag      string  `yaml:"tag"`
	Attrs    []Attr  `yaml:"attrs,omitempty"`
	Text     string  `yaml:"text,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// FromElement converts an etree element and its descendants into a Node.
// The element is not modified.
func FromElement(e *etree.Element) *Node {
	n := &Node{
		Tag:  e.FullTag(),
		Text: e.Text(),
	}

	for _, a := range e.Attr {
		n.Attrs = append(n.Attrs, Attr{Key: a.FullKey(), Value: a.Value})
	}

	for _, child := range e.ChildElements() {
		n.Children = append(n.Children, FromElement(child))
	}

	return n
}

// Attr returns the value of the attribute with the given key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return "", false
}

// TrimmedText returns the node text without surrounding whitespace.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}

// Element builds a new etree element from the node.
// Whitespace-only text is dropped; indentation is the serializer's job.
func (n *Node) Element() *etree.Element {
	e := etree.NewElement(n.Tag)
	n.CopyInto(e)

	return e
}

// CopyInto overwrites the attributes, text and children of e with the node's.
// The tag of e is left untouched.
func (n *Node) CopyInto(e *etree.Element) {
	e.Attr = nil
	e.Child = nil

	for _, a := range n.Attrs {
		e.CreateAttr(a.Key, a.Value)
	}

	if n.TrimmedText() != "" {
		e.SetText(n.Text)
	}

	for _, child := range n.Children {
		e.AddChild(child.Element())
	}
}
