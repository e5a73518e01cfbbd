//go:build js && wasm

// Package jsdom implements host.Document on top of the browser DOM.
//
// Failures are JavaScript exceptions thrown by the browser. They surface
// as panics with a js.Error value and are not translated.
package jsdom

import (
	"syscall/js"

	"github.com/shurcooL/domg/host"
	"honnef.co/go/js/dom/v2"
)

// Document wraps a browser document.
type Document struct {
	doc dom.Document
}

// NewDocument returns the document of the current window.
func NewDocument() *Document {
	return &Document{doc: dom.GetWindow().Document()}
}

// Wrap returns a Document for doc.
func Wrap(doc dom.Document) *Document {
	return &Document{doc: doc}
}

func (d *Document) CreateElement(tagName string) host.Element {
	return &Element{el: d.doc.CreateElement(tagName)}
}

func (d *Document) CreateTextNode(data string) host.Node {
	return &Text{node: dom.WrapNode(d.doc.Underlying().Call("createTextNode", data))}
}

// Text is a text node.
type Text struct {
	node dom.Node
}

func (t *Text) NodeName() string { return t.node.NodeName() }

// Node returns the underlying DOM node.
func (t *Text) Node() dom.Node { return t.node }

// Element is an element node.
type Element struct {
	el dom.Element

	onclick js.Func // Released when replaced.
}

func (e *Element) NodeName() string { return e.el.NodeName() }

// Element returns the underlying DOM element.
func (e *Element) Element() dom.Element { return e.el }

func (e *Element) AppendChild(child host.Node) {
	switch c := child.(type) {
	case *Element:
		e.el.AppendChild(c.el)
	case *Text:
		e.el.AppendChild(c.node)
	default:
		// Let the browser throw its HierarchyRequestError.
		e.el.Underlying().Call("appendChild", js.Null())
	}
}

func (e *Element) SetAttribute(name, value string) {
	e.el.SetAttribute(name, value)
}

func (e *Element) Get(property string) interface{} {
	return e.el.Underlying().Get(property)
}

func (e *Element) Set(property string, value interface{}) {
	if property != "onclick" {
		e.el.Underlying().Set(property, value)
		return
	}
	var l host.Listener
	switch v := value.(type) {
	case host.Listener:
		l = v
	case func(host.Event):
		l = v
	}
	old := e.onclick
	if l == nil {
		e.el.Underlying().Set("onclick", js.Null())
		e.onclick = js.Func{}
	} else {
		e.onclick = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			l(dom.WrapEvent(args[0]))
			return nil
		})
		e.el.Underlying().Set("onclick", e.onclick)
	}
	if old.Truthy() {
		old.Release()
	}
}

// WrapElement returns an Element for an existing DOM element,
// such as the document body.
func WrapElement(el dom.Element) *Element {
	return &Element{el: el}
}
