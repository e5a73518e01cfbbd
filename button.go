package domg

import "github.com/shurcooL/domg/host"

// Event is an event passed to an Action.
type Event = host.Event

// Action handles a click on a button.
type Action func(Event)

// ButtonBuilder builds a button element with a single text child.
// A nil action leaves the button without a click handler.
type ButtonBuilder func(text string, action Action) *Element

// NewButtonBuilder returns a ButtonBuilder for buttons whose type
// is buttonType ("button", "submit" or "reset").
func NewButtonBuilder(buttonType string) ButtonBuilder {
	return func(text string, action Action) *Element {
		return button(DefaultDocument, buttonType, text, action)
	}
}

// NewButtonBuilderIn is like NewButtonBuilder, but buttons are created in doc.
func NewButtonBuilderIn(doc host.Document, buttonType string) ButtonBuilder {
	return func(text string, action Action) *Element {
		return button(doc, buttonType, text, action)
	}
}

func button(doc host.Document, buttonType, text string, action Action) *Element {
	b := doc.CreateElement("button")
	b.AppendChild(doc.CreateTextNode(text))
	if action != nil {
		b.Set("onclick", host.Listener(action))
	}
	b.Set("type", buttonType)
	return &Element{host: b}
}

// Button builds a button of type "button".
// Button.Submit and Button.Reset build the other two types.
var Button = NewButtonBuilder("button")

var (
	submitButton = NewButtonBuilder("submit")
	resetButton  = NewButtonBuilder("reset")
)

// Submit builds a button of type "submit" in DefaultDocument,
// whichever document the receiver builds in.
func (ButtonBuilder) Submit(text string, action Action) *Element {
	return submitButton(text, action)
}

// Reset builds a button of type "reset" in DefaultDocument.
func (ButtonBuilder) Reset(text string, action Action) *Element {
	return resetButton(text, action)
}
