//go:build !(js && wasm)

package domg

import (
	"github.com/shurcooL/domg/host"
	"github.com/shurcooL/domg/host/nethtml"
)

func defaultDocument() host.Document { return nethtml.NewDocument() }
