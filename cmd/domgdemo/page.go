package main

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/shurcooL/domg"
	"github.com/shurcooL/domg/host/nethtml"
	"github.com/shurcooL/domg/httputil"
	"github.com/shurcooL/domg/internal/demo"
	"github.com/shurcooL/httpgzip"
)

type server struct {
	assets bool // Whether the wasm frontend is served under /assets/.
}

// ServePage serves the server-rendered demo page.
func (s *server) ServePage(w http.ResponseWriter, req *http.Request) error {
	if err := httputil.AllowMethods(req, http.MethodGet, http.MethodHead); err != nil {
		return err
	}
	var buf bytes.Buffer
	err := s.renderPage(&buf)
	if err != nil {
		return err
	}
	metrics.IncRendersTotal()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	httpgzip.ServeContent(w, req, "", time.Time{}, bytes.NewReader(buf.Bytes()))
	return nil
}

func (s *server) renderPage(w io.Writer) error {
	head := domg.Head(
		domg.Meta().Set(domg.Attr{Key: "charset", Value: "utf-8"}),
		domg.Title("domg demo"),
		domg.Style(style),
	)
	body := domg.Body(demo.Page("server", nil))
	if s.assets {
		body.Host().AppendChild(domg.Script().Set(domg.Attr{Key: "src", Value: "/assets/wasm_exec.js"}).Host())
		body.Host().AppendChild(domg.Script(loader).Host())
	}
	_, err := io.WriteString(w, "<!DOCTYPE html>\n")
	if err != nil {
		return err
	}
	return nethtml.Render(w, domg.HTML(head, body).Set(domg.Attr{Key: "lang", Value: "en"}).Host())
}

const style = `body { font-family: sans-serif; margin: 2em; }
.tabnav-tab.selected { font-weight: bold; }
.counter { margin-left: 4px; color: #666; }
.blank-slate { border: 1px solid #ddd; border-radius: 4px; padding: 40px 0; text-align: center; }`

// loader replaces the server-rendered page with the one built by the frontend.
const loader = `const go = new Go();
WebAssembly.instantiateStreaming(fetch("/assets/frontend.wasm"), go.importObject).then((result) => {
	document.getElementById("demo").remove();
	go.run(result.instance);
});`
