// Package demo builds the page shown by the domgdemo programs.
// The same code runs on the server and in the browser.
package demo

import (
	"github.com/shurcooL/domg"
	"github.com/shurcooL/domg/component"
)

// tags are listed in the tag table.
var tags = []string{"div", "a", "button", "br", "img", "input", "var"}

// Page returns the demo page content. where describes the host that
// built it. onSave is the click action of the save button, it may be nil.
func Page(where string, onSave domg.Action) *domg.Element {
	return domg.Main(
		domg.H1("domg"),
		domg.P("This page was built in the ", domg.Strong(where), "."),
		component.TabNav{Tabs: []component.Tab{
			{Content: "Overview", URL: "#overview", Selected: true},
			{Content: component.Counter{Content: "Tags", Count: len(tags)}.Render(), URL: "#tags"},
		}}.Render(),
		domg.Section(
			domg.H2("Links"),
			domg.UL(
				domg.LI(domg.A("https://pkg.go.dev/golang.org/x/net/html", "x/net/html")),
				// A second argument that is not a string leaves the URL as content,
				// so the href is set explicitly.
				domg.LI(domg.A(domg.Code("js/dom")).Set(domg.Attr{Key: "href", Value: "https://pkg.go.dev/honnef.co/go/js/dom/v2"})),
				domg.LI(domg.A("An anchor without an href")),
			),
		).Set(domg.Attr{Key: "id", Value: "overview"}),
		domg.Section(
			domg.H2("Tags"),
			tagTable(),
		).Set(domg.Attr{Key: "id", Value: "tags"}),
		domg.Form(
			domg.Label("Name ", domg.Input().Set(
				domg.Attr{Key: "name", Value: "name"},
				domg.Attr{Key: "placeholder", Value: "Gopher"},
			)),
			domg.BR(),
			domg.Button("Save", onSave),
			domg.Button.Submit("Send", nil),
			domg.Button.Reset("Clear", nil),
		).Set(domg.Attr{Key: "action", Value: "#"}),
		component.BlankSlate{Content: domg.Em("Nothing else to see here.")}.Render(),
		domg.HR(),
		domg.Footer(domg.Small("Built with ", domg.Var("domg"), ".")),
	).Set(domg.Attr{Key: "id", Value: "demo"})
}

func tagTable() *domg.Element {
	body := domg.TBody()
	for _, tag := range tags {
		body.Host().AppendChild(domg.TR(
			domg.TD(domg.Code(tag)),
			domg.TD(domg.IsVoid(tag)),
		).Host())
	}
	return domg.Table(
		domg.THead(domg.TR(domg.TH("Tag"), domg.TH("Void"))),
		body,
	).Set(domg.Class("tags"))
}
