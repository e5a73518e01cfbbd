// Package host defines the document primitives that domg builds on.
//
// A host is whatever owns the element tree: the browser DOM under
// GOOS=js, or an in-memory golang.org/x/net/html tree elsewhere.
// Implementations report failures the way the browser does, by panicking
// with the host's own error value.
package host

// Node is a node in a host document tree.
type Node interface {
	// NodeName is "#text" for text nodes and the uppercase tag name
	// for HTML elements.
	NodeName() string
}

// Element is an element node.
type Element interface {
	Node

	// AppendChild appends child as the last child of the element.
	// A child that already has a parent is moved.
	AppendChild(child Node)

	// SetAttribute sets the attribute name to value.
	SetAttribute(name, value string)

	// Get returns the value of the element property.
	Get(property string) interface{}

	// Set sets the element property to value.
	// The "onclick" property is set with a Listener.
	Set(property string, value interface{})
}

// Document creates nodes.
type Document interface {
	CreateElement(tagName string) Element
	CreateTextNode(data string) Node
}

// Event is an event dispatched to a Listener.
type Event interface {
	Type() string
}

// Listener is an event handler.
type Listener func(Event)
