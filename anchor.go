package domg

import "github.com/shurcooL/domg/host"

// A builds an anchor element.
//
// If the first two content arguments are both strings, the first one is
// used as the href attribute and the rest as content. A single string is
// always content:
//
//	domg.A("https://example.com", "Example") // <a href="https://example.com">Example</a>
//	domg.A("Example")                        // <a>Example</a>
func A(content ...interface{}) *Element {
	return anchor(DefaultDocument, content)
}

// AnchorIn returns an anchor builder like A that creates elements in doc.
func AnchorIn(doc host.Document) Builder {
	return func(content ...interface{}) *Element {
		return anchor(doc, content)
	}
}

func anchor(doc host.Document, content []interface{}) *Element {
	a := doc.CreateElement("a")
	if len(content) >= 2 {
		href, ok := content[0].(string)
		if _, ok2 := content[1].(string); ok && ok2 {
			a.SetAttribute("href", href)
			content = content[1:]
		}
	}
	appendContent(doc, a, content)
	return &Element{host: a}
}
