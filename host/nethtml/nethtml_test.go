package nethtml_test

import (
	"bytes"
	"testing"

	"github.com/shurcooL/domg/host"
	"github.com/shurcooL/domg/host/nethtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ host.Document = nethtml.NewDocument()

func TestCreateElement(t *testing.T) {
	doc := nethtml.NewDocument()
	tests := []struct {
		in       string
		wantData string
		wantAtom atom.Atom
		wantName string
	}{
		{"div", "div", atom.Div, "DIV"},
		{"DIV", "div", atom.Div, "DIV"},
		{"Svg", "svg", atom.Svg, "SVG"},
		{"my-widget", "my-widget", 0, "MY-WIDGET"},
	}
	for _, tc := range tests {
		el := doc.CreateElement(tc.in).(*nethtml.Element)
		n := el.Node()
		if n.Type != html.ElementNode || n.Data != tc.wantData || n.DataAtom != tc.wantAtom {
			t.Errorf("CreateElement(%q): got %v %q %v, want element %q %v", tc.in, n.Type, n.Data, n.DataAtom, tc.wantData, tc.wantAtom)
		}
		if got := el.NodeName(); got != tc.wantName {
			t.Errorf("CreateElement(%q).NodeName() = %q, want %q", tc.in, got, tc.wantName)
		}
	}
}

func TestInvalidNames(t *testing.T) {
	doc := nethtml.NewDocument()
	tests := []struct {
		name string
		f    func()
	}{
		{"empty tag", func() { doc.CreateElement("") }},
		{"tag with space", func() { doc.CreateElement("a b") }},
		{"tag with leading digit", func() { doc.CreateElement("1div") }},
		{"attribute with equals", func() { doc.CreateElement("div").SetAttribute("a=b", "c") }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(*nethtml.Error)
				if !ok {
					t.Fatalf("got panic value %v, want *nethtml.Error", r)
				}
				if err.Name != "InvalidCharacterError" {
					t.Errorf("got error name %q, want InvalidCharacterError", err.Name)
				}
			}()
			tc.f()
		})
	}
}

func TestAppendChildMoves(t *testing.T) {
	doc := nethtml.NewDocument()
	first := doc.CreateElement("div").(*nethtml.Element)
	second := doc.CreateElement("div").(*nethtml.Element)
	child := doc.CreateElement("span")

	first.AppendChild(child)
	second.AppendChild(child)

	if first.Node().FirstChild != nil {
		t.Error("child was not removed from its previous parent")
	}
	if got := second.Node().FirstChild; got != nethtml.NodeOf(child) {
		t.Errorf("got first child %v, want the moved span", got)
	}
}

func TestAppendChildHierarchy(t *testing.T) {
	doc := nethtml.NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("div")
	outer.AppendChild(inner)

	defer func() {
		err, ok := recover().(*nethtml.Error)
		if !ok || err.Name != "HierarchyRequestError" {
			t.Errorf("got %v, want HierarchyRequestError", err)
		}
	}()
	inner.AppendChild(outer)
}

func TestSetAttribute(t *testing.T) {
	el := nethtml.NewDocument().CreateElement("div").(*nethtml.Element)
	el.SetAttribute("ID", "a")
	el.SetAttribute("title", "t")
	el.SetAttribute("id", "b")

	want := []html.Attribute{{Key: "id", Val: "b"}, {Key: "title", Val: "t"}}
	got := el.Node().Attr
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("attribute %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if v, ok := el.GetAttribute("Title"); !ok || v != "t" {
		t.Errorf(`GetAttribute("Title") = %q, %v; want "t", true`, v, ok)
	}
	if _, ok := el.GetAttribute("missing"); ok {
		t.Error(`GetAttribute("missing") reported present`)
	}
}

func TestProperties(t *testing.T) {
	doc := nethtml.NewDocument()
	button := doc.CreateElement("button").(*nethtml.Element)

	if got := button.Get("type"); got != "submit" {
		t.Errorf("default button type = %v, want submit", got)
	}
	button.Set("type", "reset")
	if v, _ := button.GetAttribute("type"); v != "reset" {
		t.Errorf("type attribute = %q, want reset", v)
	}
	button.Set("className", "primary")
	if v, _ := button.GetAttribute("class"); v != "primary" {
		t.Errorf("class attribute = %q, want primary", v)
	}
	button.Set("disabled", true)
	if got := button.Get("disabled"); got != true {
		t.Errorf("disabled = %v, want true", got)
	}
	if got := button.Get("tagName"); got != "BUTTON" {
		t.Errorf("tagName = %v, want BUTTON", got)
	}
	if len(button.Node().Attr) != 2 {
		t.Errorf("got attributes %v, want type and class only", button.Node().Attr)
	}

	div := doc.CreateElement("div")
	if got := div.Get("type"); got != "" {
		t.Errorf("div type = %v, want empty", got)
	}
}

func TestClick(t *testing.T) {
	el := nethtml.NewDocument().CreateElement("button").(*nethtml.Element)
	el.Click() // No listener; must not panic.

	var target *nethtml.Element
	var typ string
	el.Set("onclick", host.Listener(func(e host.Event) {
		typ = e.Type()
		target = e.(*nethtml.Event).Target()
	}))
	el.Click()
	if typ != "click" || target != el {
		t.Errorf("got event %q on %p, want click on %p", typ, target, el)
	}

	el.Set("onclick", "alert(1)")
	if el.Get("onclick") != nil {
		t.Error("non-listener onclick was not cleared")
	}
}

func TestRender(t *testing.T) {
	doc := nethtml.NewDocument()
	p := doc.CreateElement("p")
	p.SetAttribute("class", "note")
	p.AppendChild(doc.CreateTextNode("1 < 2"))
	p.AppendChild(doc.CreateElement("br"))

	var buf bytes.Buffer
	if err := nethtml.Render(&buf, p); err != nil {
		t.Fatal(err)
	}
	want := `<p class="note">1 &lt; 2<br/></p>`
	if got := buf.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got := p.(*nethtml.Element).String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestRenderForeignNode(t *testing.T) {
	var buf bytes.Buffer
	if err := nethtml.Render(&buf, nil); err == nil {
		t.Error("got nil error for a nil node")
	}
}
