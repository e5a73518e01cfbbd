package component

import "github.com/shurcooL/domg"

// BlankSlate is a blank slate.
type BlankSlate struct {
	Content interface{} // Any domg content argument.
}

func (bs BlankSlate) Render() *domg.Element {
	return domg.Div(bs.Content).Set(domg.Class("blank-slate"))
}
