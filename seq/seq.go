// Package seq provides sequence operations that work well
// with loosened functions, which take all their arguments
// as a single tuple.
//
// For example, given a function
//
//	func Distance(p, q Point) float64
//
// and its loosened variant Distance_loose, the distances
// between corresponding points in two sequences are:
//
//	seq.Map(seq.Zip(ps, qs), Distance_loose)
package seq

import (
	"iter"

	"github.com/rogpeppe/loosen/tuple"
)

// Map returns a sequence holding f applied to each
// element of it.
func Map[T, U any](it iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range it {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// Zip returns a sequence holding pairs of corresponding elements
// from it0 and it1. It ends when either sequence ends.
func Zip[A0, A1 any](it0 iter.Seq[A0], it1 iter.Seq[A1]) iter.Seq[tuple.T2[A0, A1]] {
	return func(yield func(tuple.T2[A0, A1]) bool) {
		next0, stop0 := iter.Pull(it0)
		defer stop0()
		next1, stop1 := iter.Pull(it1)
		defer stop1()
		for {
			x0, ok := next0()
			if !ok {
				return
			}
			x1, ok := next1()
			if !ok {
				return
			}
			if !yield(tuple.MkT2(x0, x1)) {
				return
			}
		}
	}
}

// Zip3 is like Zip but for three sequences.
func Zip3[A0, A1, A2 any](it0 iter.Seq[A0], it1 iter.Seq[A1], it2 iter.Seq[A2]) iter.Seq[tuple.T3[A0, A1, A2]] {
	return func(yield func(tuple.T3[A0, A1, A2]) bool) {
		next0, stop0 := iter.Pull(it0)
		defer stop0()
		next1, stop1 := iter.Pull(it1)
		defer stop1()
		next2, stop2 := iter.Pull(it2)
		defer stop2()
		for {
			x0, ok := next0()
			if !ok {
				return
			}
			x1, ok := next1()
			if !ok {
				return
			}
			x2, ok := next2()
			if !ok {
				return
			}
			if !yield(tuple.MkT3(x0, x1, x2)) {
				return
			}
		}
	}
}

// Pairs returns a sequence holding the key-value pairs
// of it as tuples.
func Pairs[K, V any](it iter.Seq2[K, V]) iter.Seq[tuple.T2[K, V]] {
	return func(yield func(tuple.T2[K, V]) bool) {
		for k, v := range it {
			if !yield(tuple.MkT2(k, v)) {
				return
			}
		}
	}
}
