package emitter

import "fmt"

// UnsupportedValueError is returned when the tree contains a value.Value
// implementation the emitter has no tag for (spec §4.4.6,
// UnsupportedValue). Every value.Value variant in the value package is
// handled; this only fires if that sum type is extended without a
// matching emitter case.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("emitter: unsupported value type %T", e.Value)
}
