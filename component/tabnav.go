package component

import "github.com/shurcooL/domg"

// TabNav is a left-aligned horizontal row of tabs Primer CSS component.
//
// http://primercss.io/nav/#tabnav
type TabNav struct {
	Tabs []Tab
}

func (t TabNav) Render() *domg.Element {
	nav := domg.Nav().Set(domg.Class("tabnav-tabs"))
	for _, tab := range t.Tabs {
		nav.Host().AppendChild(tab.Render().Host())
	}
	return domg.Div(nav).Set(domg.Class("tabnav"))
}

// Tab is a single tab entry within a TabNav.
type Tab struct {
	Content  interface{} // Any domg content argument.
	URL      string
	Selected bool
}

func (t Tab) Render() *domg.Element {
	class := []string{"tabnav-tab"}
	if t.Selected {
		class = append(class, "selected")
	}
	// The href is set explicitly, since Content may be a plain string.
	return domg.A(t.Content).Set(
		domg.Attr{Key: "href", Value: t.URL},
		domg.Class(class...),
	)
}

// Counter is content followed by a count.
type Counter struct {
	Content interface{} // Any domg content argument.
	Count   int
}

func (cc Counter) Render() *domg.Element {
	return domg.Span(
		cc.Content,
		domg.Span(cc.Count).Set(domg.Class("counter")),
	)
}
