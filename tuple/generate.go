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

const maxArity = 9

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"list": list,
}).Parse(`
{{define "tuple"}}
// T{{.N}} is a tuple of size {{.N}}.
type T{{.N}}[{{list .N "A%d"}} any] struct {
{{- range .Indexes}}
	A{{.}} A{{.}}
{{- end}}
}

// MkT{{.N}} returns a T{{.N}} holding the given values.
func MkT{{.N}}[{{list .N "A%d"}} any]({{list .N "a%[1]d A%[1]d"}}) T{{.N}}[{{list .N "A%d"}}] {
	return T{{.N}}[{{list .N "A%d"}}]{ {{- list .N "a%d" -}} }
}

// T returns the values held in t.
func (t T{{.N}}[{{list .N "A%d"}}]) T() ({{list .N "A%d"}}) {
	return {{list .N "t.A%d"}}
}
{{end}}
`))

func main() {
	var buf bytes.Buffer
	buf.WriteString(`// Code generated by generate.go. DO NOT EDIT.

package tuple

// T0 is the empty tuple.
type T0 struct{}

// MkT0 returns a T0.
func MkT0() T0 {
	return T0{}
}

// T returns no values; it exists for symmetry with the other tuple types.
func (t T0) T() {}
`)
	for n := 1; n <= maxArity; n++ {
		indexes := make([]int, n)
		for i := range indexes {
			indexes[i] = i
		}
		err := tmpl.ExecuteTemplate(&buf, "tuple", struct {
			N       int
			Indexes []int
		}{n, indexes})
		if err != nil {
			log.Fatal(err)
		}
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("tuple_gen.go", data, 0o666); err != nil {
		log.Fatal(err)
	}
}

// list returns a comma-separated list of n items, each
// formatted with format and its index.
func list(n int, format string) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(items, ", ")
}
