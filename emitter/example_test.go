package emitter_test

import (
	"fmt"

	"github.com/assemblr/solc/emitter"
	"github.com/assemblr/solc/reader"
)

// Shows the full reader+emitter pipeline on a small program, printing the
// resulting SOLBIN blob's magic header and terminator.
func ExampleEmit() {
	top, err := reader.Parse([]byte(`42 "hi" true`))
	if err != nil {
		panic(err)
	}
	out, err := emitter.Emit(top)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s ... %02x\n", out[:6], out[len(out)-1])
	// Output:
	// SOLBIN ... 00
}
