//go:build js && wasm

// frontend builds the domgdemo page in the browser.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o assets/frontend.wasm ./cmd/domgdemo/frontend
package main

import (
	"log"

	"github.com/shurcooL/domg"
	"github.com/shurcooL/domg/host/jsdom"
	"github.com/shurcooL/domg/internal/demo"
	"honnef.co/go/js/dom/v2"
)

func main() {
	document := dom.GetWindow().Document().(dom.HTMLDocument)
	body := domg.Wrap(jsdom.WrapElement(document.Body()))

	saves := 0
	page := demo.Page("browser", func(e domg.Event) {
		saves++
		log.Printf("%s on save button (%d so far).\n", e.Type(), saves)
	})
	body.Host().AppendChild(page.Host())

	// Keep the program alive so click actions keep working.
	select {}
}
