//go:build js && wasm

package domg

import (
	"github.com/shurcooL/domg/host"
	"github.com/shurcooL/domg/host/jsdom"
)

func defaultDocument() host.Document { return jsdom.NewDocument() }
