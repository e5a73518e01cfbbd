package component_test

import (
	"fmt"
	"testing"

	"github.com/shurcooL/domg"
	"github.com/shurcooL/domg/component"
	"github.com/shurcooL/domg/host/nethtml"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   component.Component
		want string
	}{
		{
			name: "PostButton",
			in:   component.PostButton{Action: "/login", Text: "Sign in", ReturnURL: "/issues"},
			want: `<form method="post" action="/login" class="post-button"><button type="submit">Sign in</button><input type="hidden" name="return" value="/issues"/></form>`,
		},
		{
			name: "EllipsisButton",
			in:   component.EllipsisButton{},
			want: `<button type="button" class="ellipsis-button" aria-label="Toggle details">…</button>`,
		},
		{
			name: "BlankSlate",
			in:   component.BlankSlate{Content: "Nothing here."},
			want: `<div class="blank-slate">Nothing here.</div>`,
		},
		{
			name: "BlankSlate without content",
			in:   component.BlankSlate{},
			want: `<div class="blank-slate"></div>`,
		},
		{
			name: "TabNav",
			in: component.TabNav{Tabs: []component.Tab{
				{Content: "Packages", URL: "/packages", Selected: true},
				{Content: component.Counter{Content: "Issues", Count: 3}.Render(), URL: "/issues"},
			}},
			want: `<div class="tabnav"><nav class="tabnav-tabs">` +
				`<a href="/packages" class="tabnav-tab selected">Packages</a>` +
				`<a href="/issues" class="tabnav-tab"><span>Issues<span class="counter">3</span></span></a>` +
				`</nav></div>`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fmt.Sprint(tc.in.Render().Host())
			if got != tc.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestEllipsisButtonClick(t *testing.T) {
	clicked := 0
	b := component.EllipsisButton{OnClick: func(domg.Event) { clicked++ }}.Render()
	b.Host().(*nethtml.Element).Click()
	if clicked != 1 {
		t.Errorf("got %d clicks, want 1", clicked)
	}
}
