package component

import "github.com/shurcooL/domg"

// PostButton is a button that performs a POST action.
type PostButton struct {
	Action    string
	Text      string
	ReturnURL string
}

func (b PostButton) Render() *domg.Element {
	// <form method="post" action="{{.Action}}" class="post-button">
	// 	<button type="submit">{{.Text}}</button>
	// 	<input type="hidden" name="return" value="{{.ReturnURL}}">
	// </form>
	return domg.Form(
		domg.Button.Submit(b.Text, nil),
		domg.Input().Set(
			domg.Attr{Key: "type", Value: "hidden"},
			domg.Attr{Key: "name", Value: "return"},
			domg.Attr{Key: "value", Value: b.ReturnURL},
		),
	).Set(
		domg.Attr{Key: "method", Value: "post"},
		domg.Attr{Key: "action", Value: b.Action},
		domg.Class("post-button"),
	)
}

// EllipsisButton is a button with a horizontal ellipsis.
// It can be used to expand/collapse additional details.
type EllipsisButton struct {
	// OnClick is called when the button is clicked. It may be nil.
	OnClick domg.Action
}

func (b EllipsisButton) Render() *domg.Element {
	return domg.Button("…", b.OnClick).Set(
		domg.Class("ellipsis-button"),
		domg.Attr{Key: "aria-label", Value: "Toggle details"},
	)
}
