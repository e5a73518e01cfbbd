// Package nethtml implements host.Document on top of golang.org/x/net/html
// node trees.
//
// It follows the browser's HTML document semantics closely enough for
// builders to behave the same on both: tag and attribute names are
// lowercased, invalid names panic with an InvalidCharacterError, and
// appending a node that already has a parent moves it.
package nethtml

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/shurcooL/domg/host"
	"github.com/shurcooL/htmlg"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Error is a host failure, named after the DOMException it corresponds to.
type Error struct {
	Name    string // E.g., "InvalidCharacterError".
	Message string
}

func (e *Error) Error() string { return e.Name + ": " + e.Message }

// Document is an HTML document whose nodes are *html.Node values.
// The zero value is ready to use.
type Document struct{}

// NewDocument returns a new document.
func NewDocument() *Document { return &Document{} }

// CreateElement creates an element named tagName.
// It panics with an *Error if tagName is not a valid name.
func (*Document) CreateElement(tagName string) host.Element {
	if !validName(tagName) {
		panic(&Error{Name: "InvalidCharacterError", Message: fmt.Sprintf("%q is not a valid tag name", tagName)})
	}
	name := asciiLower(tagName)
	return &Element{node: &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(name)),
		Data:     name,
	}}
}

// CreateTextNode creates a text node containing data.
func (*Document) CreateTextNode(data string) host.Node {
	return &Text{node: &html.Node{Type: html.TextNode, Data: data}}
}

// Text is a text node.
type Text struct {
	node *html.Node
}

func (*Text) NodeName() string { return "#text" }

// Node returns the underlying node.
func (t *Text) Node() *html.Node { return t.node }

// Element is an element node.
type Element struct {
	node    *html.Node
	onclick host.Listener
	props   map[string]interface{}
}

func (e *Element) NodeName() string { return strings.ToUpper(e.node.Data) }

// Node returns the underlying node.
func (e *Element) Node() *html.Node { return e.node }

// AppendChild appends child, which must have been created by a Document
// from this package. A child that already has a parent is moved.
func (e *Element) AppendChild(child host.Node) {
	c := NodeOf(child)
	if c == nil {
		panic(&Error{Name: "HierarchyRequestError", Message: fmt.Sprintf("cannot append %T", child)})
	}
	for p := e.node; p != nil; p = p.Parent {
		if p == c {
			panic(&Error{Name: "HierarchyRequestError", Message: "the new child is an ancestor of the parent"})
		}
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	e.node.AppendChild(c)
}

// SetAttribute sets the attribute name to value, replacing an existing
// value in place. It panics with an *Error if name is not a valid name.
func (e *Element) SetAttribute(name, value string) {
	if !validName(name) {
		panic(&Error{Name: "InvalidCharacterError", Message: fmt.Sprintf("%q is not a valid attribute name", name)})
	}
	name = asciiLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// GetAttribute returns the value of the attribute name, if present.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = asciiLower(name)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// reflected maps properties to the content attributes they reflect.
var reflected = map[string]string{
	"id":        "id",
	"className": "class",
	"title":     "title",
	"type":      "type",
	"name":      "name",
	"value":     "value",
	"href":      "href",
	"src":       "src",
}

func (e *Element) Get(property string) interface{} {
	switch property {
	case "onclick":
		if e.onclick == nil {
			return nil
		}
		return e.onclick
	case "tagName":
		return e.NodeName()
	}
	if attr, ok := reflected[property]; ok {
		v, ok := e.GetAttribute(attr)
		if !ok && property == "type" && e.node.DataAtom == atom.Button {
			// Missing value default of the button type attribute.
			return "submit"
		}
		return v
	}
	return e.props[property]
}

// Set sets property to value. Reflected properties write the matching
// attribute. Setting "onclick" to anything but a listener clears it.
func (e *Element) Set(property string, value interface{}) {
	if property == "onclick" {
		switch v := value.(type) {
		case host.Listener:
			e.onclick = v
		case func(host.Event):
			e.onclick = v
		default:
			e.onclick = nil
		}
		return
	}
	if attr, ok := reflected[property]; ok {
		e.SetAttribute(attr, fmt.Sprint(value))
		return
	}
	if e.props == nil {
		e.props = make(map[string]interface{})
	}
	e.props[property] = value
}

// Click dispatches a click event to the onclick listener, if one is set.
func (e *Element) Click() {
	if e.onclick == nil {
		return
	}
	e.onclick(&Event{typ: "click", target: e})
}

// String returns the HTML serialization of the element and its children.
func (e *Element) String() string {
	return string(htmlg.Render(e.node))
}

// Event is an event dispatched by Click.
type Event struct {
	typ    string
	target *Element
}

func (ev *Event) Type() string { return ev.typ }

// Target returns the element the event was dispatched to.
func (ev *Event) Target() *Element { return ev.target }

// NodeOf returns the *html.Node behind n,
// or nil if n was not created by this package.
func NodeOf(n host.Node) *html.Node {
	switch n := n.(type) {
	case *Element:
		if n != nil {
			return n.node
		}
	case *Text:
		if n != nil {
			return n.node
		}
	}
	return nil
}

// Render writes the HTML serialization of n to w.
func Render(w io.Writer, n host.Node) error {
	hn := NodeOf(n)
	if hn == nil {
		return fmt.Errorf("nethtml: cannot render %T", n)
	}
	return html.Render(w, hn)
}

// validName reports whether name is usable as a tag or attribute name.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == ':' || r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
