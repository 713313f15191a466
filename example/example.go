// Package example holds some functions marked for loosening.
// Their loosened variants are in example_loose.go, generated by
// running go generate.
package example

//go:generate go run github.com/rogpeppe/loosen/cmd/loosen

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"sync/atomic"
)

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Distance returns the distance between p and q.
//
//loosen:loose
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

//loosen:loose
func join(a string, b int) string {
	return a + strconv.Itoa(b)
}

// Record writes a name=value line to w.
//
//loosen:loose
func Record(w io.Writer, name string, value int) {
	fmt.Fprintf(w, "%s=%d\n", name, value)
}

// Format returns the values pointed to by a and b
// separated by a space.
//
//loosen:loose
func Format[X, Y any](a *X, b *Y) string {
	return fmt.Sprint(*a, " ", *b)
}

var ticks atomic.Int64

// Tick returns the number of times it has been called.
//
//loosen:loose
func Tick() int64 {
	return ticks.Add(1)
}
