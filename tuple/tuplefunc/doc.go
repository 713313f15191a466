// Package tuplefunc converts between functions that take several
// arguments and functions that take a single tuple argument.
// This lets a function of any arity be passed to generic code
// that only knows how to call functions of one argument.
//
// The function names have the form
//
//	Name_N_M
//
// where N is the number of arguments and M the number of non-error
// results. The following families are provided for N from 0 to MaxArgs:
//
//	ToA_N_0    func(A0, ..., AN-1) to func(tuple.TN[A0, ..., AN-1])
//	ToA_N_1    func(A0, ..., AN-1) R0 to func(tuple.TN[A0, ..., AN-1]) R0
//	ToAE_N_1   func(A0, ..., AN-1) (R0, error) to func(tuple.TN[A0, ..., AN-1]) (R0, error)
//	FromA_N_0  the inverse of ToA_N_0
//	FromA_N_1  the inverse of ToA_N_1
//
// For example, ToAE_2_1 converts strconv.ParseInt's two leading
// arguments into a pair:
//
//	parse := tuplefunc.ToAE_2_1(func(s string, base int) (int64, error) {
//		return strconv.ParseInt(s, base, 64)
//	})
//	n, err := parse(tuple.MkT2("ff", 16))
//
// The loosen command generates the same kind of conversion as a
// named wrapper function next to the original.
package tuplefunc

//go:generate go run generate.go

// MaxArgs holds the largest number of arguments handled
// by the conversion functions in this package.
const MaxArgs = 6
