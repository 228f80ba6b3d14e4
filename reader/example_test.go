package reader_test

import (
	"fmt"

	"github.com/assemblr/solc/reader"
)

// Shows the dotted-getter rewrite: a.b expands into a List invoking
// "get" with the frozen token b.
func ExampleParse_dottedGetter() {
	top, err := reader.Parse([]byte("a.b"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d top-level value(s)\n", top.Len())
	// Output:
	// 1 top-level value(s)
}
