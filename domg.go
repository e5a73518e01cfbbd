// Package domg provides functions that build HTML elements in a host document.
//
// Every builder creates a fresh element, appends its content in order,
// and returns it without attaching it anywhere:
//
//	list := domg.UL(
//		domg.LI("first"),
//		domg.LI(domg.A("https://example.com", "second")),
//	).Set(domg.Class("links", "compact"))
//
// Content arguments are handled in one of three ways. An *Element is
// appended as a child element, nil is skipped, and any other value is
// formatted with fmt.Sprint and appended as a text node.
//
// Builders create elements in DefaultDocument, which is the browser
// document under GOOS=js and an in-memory golang.org/x/net/html document
// everywhere else. Failures reported by the host (such as an invalid tag
// name) are not recovered.
package domg

//go:generate go run gen.go

import (
	"fmt"
	"strings"

	"github.com/shurcooL/domg/host"
)

// DefaultDocument is the document that builders create elements in.
var DefaultDocument host.Document = defaultDocument()

// Element is an element node built by this package.
type Element struct {
	host host.Element
}

// Wrap returns an Element for an existing host element,
// so it can be passed as content or have attributes set.
func Wrap(h host.Element) *Element {
	return &Element{host: h}
}

// Host returns the underlying host element.
func (e *Element) Host() host.Element { return e.host }

// Builder builds an element from a list of content arguments.
type Builder func(content ...interface{}) *Element

// NewBuilder returns a Builder for elements named tagName.
// The tag name is passed to the host unvalidated.
func NewBuilder(tagName string) Builder {
	return func(content ...interface{}) *Element {
		return build(DefaultDocument, tagName, content)
	}
}

// NewBuilderIn is like NewBuilder, but elements are created in doc.
// AnchorIn and NewButtonBuilderIn do the same for anchors and buttons.
func NewBuilderIn(doc host.Document, tagName string) Builder {
	return func(content ...interface{}) *Element {
		return build(doc, tagName, content)
	}
}

func build(doc host.Document, tagName string, content []interface{}) *Element {
	e := doc.CreateElement(tagName)
	appendContent(doc, e, content)
	return &Element{host: e}
}

func buildVoid(doc host.Document, tagName string) *Element {
	return &Element{host: doc.CreateElement(tagName)}
}

func appendContent(doc host.Document, parent host.Element, content []interface{}) {
	for _, c := range content {
		switch c := c.(type) {
		case nil:
			// Skip.
		case *Element:
			if c == nil {
				continue
			}
			parent.AppendChild(c.host)
		default:
			parent.AppendChild(doc.CreateTextNode(fmt.Sprint(c)))
		}
	}
}

// Attr is an attribute for Element.Set.
//
// Value is usually a string. A []string value is joined with single
// spaces for the "class" key, and with commas for any other key.
// A nil value is set as "null", as the browser does.
// Other values are formatted with fmt.Sprint.
type Attr struct {
	Key   string
	Value interface{}
}

// Class returns a "class" attribute listing names.
func Class(names ...string) Attr {
	return Attr{Key: "class", Value: names}
}

// Set sets attrs on e in order, and returns e.
func (e *Element) Set(attrs ...Attr) *Element {
	for _, a := range attrs {
		e.host.SetAttribute(a.Key, a.value())
	}
	return e
}

func (a Attr) value() string {
	switch v := a.Value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case []string:
		if a.Key == "class" {
			return strings.Join(v, " ")
		}
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}

// IsVoid reports whether tagName names a void element,
// an element that cannot have content.
func IsVoid(tagName string) bool {
	return voidElements[strings.ToLower(tagName)]
}
