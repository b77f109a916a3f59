package shiftcat

import (
	"fmt"
	"io"
	"sort"
)

// Dump writes a human-readable rendering of v's tree shape and dict's
// bindings to out: one section per concern, each line self-describing
// rather than requiring the reader to cross-reference addresses.
func Dump(out io.Writer, v Value, dict *Dictionary) {
	fmt.Fprintf(out, "# Dump\n")
	fmt.Fprintf(out, "  residual: %v\n", String(v))

	names := dict.Names()
	sort.Strings(names)
	fmt.Fprintf(out, "  dict: %v entries\n", len(names))
	for _, name := range names {
		body, _ := dict.Lookup(name)
		fmt.Fprintf(out, "    %v = %v\n", name, String(body))
	}

	fmt.Fprintf(out, "  shape:\n")
	dumpTree(out, "    ", v)
}

// dumpTree recursively renders v's shape, one Value per line indented by
// depth, so nested Quotes and Catenates are visible without counting
// brackets.
func dumpTree(out io.Writer, indent string, v Value) {
	switch v.Kind() {
	case KindCatenate:
		children, _ := v.Children()
		fmt.Fprintf(out, "%vcatenate (%d)\n", indent, len(children))
		for _, c := range children {
			dumpTree(out, indent+"  ", c)
		}
	case KindQuote:
		fmt.Fprintf(out, "%vquote\n", indent)
		body, _ := v.Body()
		dumpTree(out, indent+"  ", body)
	default:
		fmt.Fprintf(out, "%v%v: %v\n", indent, v.Kind(), String(v))
	}
}
