//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxArgs = 6

type params struct {
	N int
}

func (p params) List(format string) string {
	items := make([]string, p.N)
	for i := range items {
		items[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(items, ", ")
}

// Tuple returns the tuple type holding the arguments.
func (p params) Tuple() string {
	if p.N == 0 {
		return "tuple.T0"
	}
	return fmt.Sprintf("tuple.T%d[%s]", p.N, p.List("A%d"))
}

// Mk returns an expression making a tuple from the arguments.
func (p params) Mk() string {
	if p.N == 0 {
		return "tuple.T0{}"
	}
	return fmt.Sprintf("tuple.MkT%d(%s)", p.N, p.List("a%d"))
}

// TypeParams returns the type parameter list, including any extra
// parameters.
func (p params) TypeParams(extra ...string) string {
	var ps []string
	if p.N > 0 {
		ps = append(ps, p.List("A%d"))
	}
	ps = append(ps, extra...)
	if len(ps) == 0 {
		return ""
	}
	return "[" + strings.Join(ps, ", ") + " any]"
}

var tmpl = template.Must(template.New("").Parse(`
// ToA_{{.N}}_0 converts a function with {{.N}} arguments and no results
// to a function taking a single tuple argument.
func ToA_{{.N}}_0{{.TypeParams}}(f func({{.List "A%d"}})) func({{.Tuple}}) {
	return func(t {{.Tuple}}) {
		f({{.List "t.A%d"}})
	}
}

// ToA_{{.N}}_1 converts a function with {{.N}} arguments and one result
// to a function taking a single tuple argument.
func ToA_{{.N}}_1{{.TypeParams "R0"}}(f func({{.List "A%d"}}) R0) func({{.Tuple}}) R0 {
	return func(t {{.Tuple}}) R0 {
		return f({{.List "t.A%d"}})
	}
}

// ToAE_{{.N}}_1 converts a function with {{.N}} arguments, one result and an error
// to a function taking a single tuple argument.
func ToAE_{{.N}}_1{{.TypeParams "R0"}}(f func({{.List "A%d"}}) (R0, error)) func({{.Tuple}}) (R0, error) {
	return func(t {{.Tuple}}) (R0, error) {
		return f({{.List "t.A%d"}})
	}
}

// FromA_{{.N}}_0 is the inverse of ToA_{{.N}}_0.
func FromA_{{.N}}_0{{.TypeParams}}(f func({{.Tuple}})) func({{.List "A%d"}}) {
	return func({{.List "a%[1]d A%[1]d"}}) {
		f({{.Mk}})
	}
}

// FromA_{{.N}}_1 is the inverse of ToA_{{.N}}_1.
func FromA_{{.N}}_1{{.TypeParams "R0"}}(f func({{.Tuple}}) R0) func({{.List "A%d"}}) R0 {
	return func({{.List "a%[1]d A%[1]d"}}) R0 {
		return f({{.Mk}})
	}
}
`))

func main() {
	var buf bytes.Buffer
	buf.WriteString(`// Code generated by generate.go. DO NOT EDIT.

package tuplefunc

import "github.com/rogpeppe/loosen/tuple"
`)
	for n := 0; n <= maxArgs; n++ {
		if err := tmpl.Execute(&buf, params{N: n}); err != nil {
			log.Fatal(err)
		}
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("tuplefunc_gen.go", data, 0o666); err != nil {
		log.Fatal(err)
	}
}
