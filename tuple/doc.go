// Package tuple provides a collection of generic struct types
// that hold a specific number of values.
//
// The type TN holds N values in fields named A0 to A(N-1).
// T0 holds no values at all: it is what a function
// with no arguments takes when it has been loosened.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents,
// and the loosen command for generating such single-argument
// functions at build time.
package tuple

//go:generate go run generate.go

// MaxArity holds the number of values held by the largest
// tuple type in this package.
const MaxArity = 9
