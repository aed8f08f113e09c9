// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// node is a minimal XML element tree. efetch documents are matched by
// descendant tag lookups, which a fixed struct mapping cannot express for
// both the full PubMed layout and trimmed documents.
type node struct {
	name     string
	children []*node
	// segments holds the character data of this element, interleaved with
	// children in document order: segments[i] precedes children[i].
	segments []string
}

// parseTree decodes data into an element tree rooted at the document element.
func parseTree(data []byte) (*node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	// The PubMed DTD declares entities beyond the XML builtins.
	dec.Entity = xml.HTMLEntity

	var root *node
	var stack []*node
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.ensureSegment()
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			cur.ensureSegment()
			cur.segments[len(cur.children)] += string(t)
		}
	}

	if root == nil {
		return nil, errors.New("empty document")
	}
	return root, nil
}

// ensureSegment keeps len(segments) == len(children)+1.
func (n *node) ensureSegment() {
	for len(n.segments) <= len(n.children) {
		n.segments = append(n.segments, "")
	}
}

// find returns the first descendant named name in document order.
func (n *node) find(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if d := c.find(name); d != nil {
			return d
		}
	}
	return nil
}

// findAll returns every descendant named name in document order. Matches
// nested inside a match are included.
func (n *node) findAll(name string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
		out = append(out, c.findAll(name)...)
	}
	return out
}

// child returns the first direct child named name.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// ownText returns the element's character data outside child elements.
func (n *node) ownText() string {
	return strings.Join(n.segments, "")
}

// innerText returns all character data under the element, children included.
func (n *node) innerText() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *node) writeText(b *strings.Builder) {
	for i, c := range n.children {
		if i < len(n.segments) {
			b.WriteString(n.segments[i])
		}
		c.writeText(b)
	}
	if len(n.segments) > len(n.children) {
		b.WriteString(n.segments[len(n.children)])
	}
}
