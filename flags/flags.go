// Package flags provides bitwise helpers for flag-style enumerated
// types. Declare the enum on any unsigned integer type and combine
// values with the helpers below; the package keeps no state.
package flags

// Bits constrains the unsigned integer types usable as flag sets.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// None returns the empty flag set.
func None[T Bits]() T {
	return 0
}

// Has reports whether every bit of flag is set in v. Has(v, None) is
// true for any v.
func Has[T Bits](v, flag T) bool {
	return v&flag == flag
}

// HasAll reports whether every bit of flags is set in v.
func HasAll[T Bits](v, flags T) bool {
	return v&flags == flags
}

// HasAny reports whether at least one bit of flags is set in v.
func HasAny[T Bits](v, flags T) bool {
	return v&flags != 0
}

// With returns v with every bit of flags set.
func With[T Bits](v, flags T) T {
	return v | flags
}

// Without returns v with every bit of flags cleared.
func Without[T Bits](v, flags T) T {
	return v &^ flags
}

// Toggle returns v with every bit of flags inverted.
func Toggle[T Bits](v, flags T) T {
	return v ^ flags
}
