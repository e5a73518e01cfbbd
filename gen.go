//go:build ignore

// gen generates elements.go, with one builder per standard HTML tag.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"text/template"
)

type tag struct {
	Name string // Go identifier.
	Tag  string // HTML tag name.
}

// normal lists non-void elements, other than a and button.
var normal = []tag{
	{"Abbr", "abbr"},
	{"Address", "address"},
	{"Article", "article"},
	{"Aside", "aside"},
	{"Audio", "audio"},
	{"B", "b"},
	{"Bdi", "bdi"},
	{"Bdo", "bdo"},
	{"BlockQuote", "blockquote"},
	{"Body", "body"},
	{"Canvas", "canvas"},
	{"Caption", "caption"},
	{"Cite", "cite"},
	{"Code", "code"},
	{"ColGroup", "colgroup"},
	{"Data", "data"},
	{"DataList", "datalist"},
	{"DD", "dd"},
	{"Del", "del"},
	{"Details", "details"},
	{"Dfn", "dfn"},
	{"Dialog", "dialog"},
	{"Div", "div"},
	{"DL", "dl"},
	{"DT", "dt"},
	{"Em", "em"},
	{"FieldSet", "fieldset"},
	{"FigCaption", "figcaption"},
	{"Figure", "figure"},
	{"Footer", "footer"},
	{"Form", "form"},
	{"H1", "h1"},
	{"H2", "h2"},
	{"H3", "h3"},
	{"H4", "h4"},
	{"H5", "h5"},
	{"H6", "h6"},
	{"Head", "head"},
	{"Header", "header"},
	{"HGroup", "hgroup"},
	{"HTML", "html"},
	{"I", "i"},
	{"IFrame", "iframe"},
	{"Ins", "ins"},
	{"Kbd", "kbd"},
	{"Label", "label"},
	{"Legend", "legend"},
	{"LI", "li"},
	{"Main", "main"},
	{"Map", "map"},
	{"Mark", "mark"},
	{"Menu", "menu"},
	{"MenuItem", "menuitem"},
	{"Meter", "meter"},
	{"Nav", "nav"},
	{"NoScript", "noscript"},
	{"Object", "object"},
	{"OL", "ol"},
	{"OptGroup", "optgroup"},
	{"Option", "option"},
	{"Output", "output"},
	{"P", "p"},
	{"Param", "param"},
	{"Picture", "picture"},
	{"Pre", "pre"},
	{"Progress", "progress"},
	{"Q", "q"},
	{"RP", "rp"},
	{"RT", "rt"},
	{"Ruby", "ruby"},
	{"S", "s"},
	{"Samp", "samp"},
	{"Script", "script"},
	{"Search", "search"},
	{"Section", "section"},
	{"Select", "select"},
	{"Slot", "slot"},
	{"Small", "small"},
	{"Span", "span"},
	{"Strong", "strong"},
	{"Style", "style"},
	{"Sub", "sub"},
	{"Summary", "summary"},
	{"Sup", "sup"},
	{"Table", "table"},
	{"TBody", "tbody"},
	{"TD", "td"},
	{"Template", "template"},
	{"TextArea", "textarea"},
	{"TFoot", "tfoot"},
	{"TH", "th"},
	{"THead", "thead"},
	{"Time", "time"},
	{"Title", "title"},
	{"TR", "tr"},
	{"U", "u"},
	{"UL", "ul"},
	{"Var", "var"},
	{"Video", "video"},
}

var void = []tag{
	{"Area", "area"},
	{"Base", "base"},
	{"BR", "br"},
	{"Col", "col"},
	{"Embed", "embed"},
	{"HR", "hr"},
	{"Img", "img"},
	{"Input", "input"},
	{"Link", "link"},
	{"Meta", "meta"},
	{"Source", "source"},
	{"Track", "track"},
	{"WBR", "wbr"},
}

func main() {
	var buf bytes.Buffer
	err := generated.Execute(&buf, struct{ Normal, Void []tag }{normal, void})
	if err != nil {
		log.Fatalln(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalln("format.Source:", err)
	}
	err = os.WriteFile("elements.go", src, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}

var generated = template.Must(template.New("").Parse(`// Code generated by gen.go; DO NOT EDIT.

package domg

// Builders for normal elements.
{{range .Normal}}
// {{.Name}} builds a <{{.Tag}}> element.
func {{.Name}}(content ...interface{}) *Element {
	return build(DefaultDocument, "{{.Tag}}", content)
}
{{end}}
// Builders for void elements. Void elements have no content.
{{range .Void}}
// {{.Name}} builds a <{{.Tag}}> element.
func {{.Name}}() *Element {
	return buildVoid(DefaultDocument, "{{.Tag}}")
}
{{end}}
// voidElements is the set of void element tag names.
var voidElements = map[string]bool{
{{- range .Void}}
	"{{.Tag}}": true,
{{- end}}
}
`))
