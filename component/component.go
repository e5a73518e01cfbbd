// Package component contains individual components built with domg.
package component

import "github.com/shurcooL/domg"

// Component is anything that can render itself as an element.
type Component interface {
	Render() *domg.Element
}
