package demo_test

import (
	"strings"
	"testing"

	"github.com/shurcooL/domg/host/nethtml"
	"github.com/shurcooL/domg/internal/demo"
)

func TestPage(t *testing.T) {
	got := demo.Page("test", nil).Host().(*nethtml.Element).String()

	for _, want := range []string{
		`<main id="demo">`,
		`<strong>test</strong>`,
		`<a href="https://pkg.go.dev/golang.org/x/net/html">x/net/html</a>`,
		`<a href="https://pkg.go.dev/honnef.co/go/js/dom/v2"><code>js/dom</code></a>`,
		`<a>An anchor without an href</a>`,
		`<tr><td><code>br</code></td><td>true</td></tr>`,
		`<tr><td><code>var</code></td><td>false</td></tr>`,
		`<button type="button">Save</button>`,
		`<button type="submit">Send</button>`,
		`<button type="reset">Clear</button>`,
		`<hr/>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page does not contain %s", want)
		}
	}
}

func TestPageLinksHaveHref(t *testing.T) {
	got := demo.Page("test", nil).Host().(*nethtml.Element).String()
	if strings.Contains(got, "<a>https://") {
		t.Errorf("page contains a URL rendered as anchor text:\n%s", got)
	}
}
