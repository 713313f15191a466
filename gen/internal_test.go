package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

var assumedNameTests = []struct {
	path string
	want string
}{
	{"github.com/rogpeppe/loosen/tuple", "tuple"},
	{"gopkg.in/yaml.v3", "yaml"},
	{"example.com/go-tuples/v2", "tuples"},
	{"example.com/tuple-lib", "tuple"},
	{"v2", "v2"},
	{"fmt", "fmt"},
}

func TestAssumedName(t *testing.T) {
	for _, test := range assumedNameTests {
		qt.Check(t, qt.Equals(assumedName(test.path), test.want), qt.Commentf("path %q", test.path))
	}
}

func TestApplyEdits(t *testing.T) {
	src := []byte("0123456789")
	got := applyEdits(src, []edit{
		{start: 8, end: 9, text: []byte("x")},
		{start: 2, end: 2, text: []byte("ab")},
		{start: 4, end: 6},
	})
	qt.Check(t, qt.Equals(string(got), "01ab2367x9"))
}

func TestSiblingPath(t *testing.T) {
	qt.Check(t, qt.Equals(siblingPath("x.go"), "x_loose.go"))
	qt.Check(t, qt.Equals(siblingPath(filepath.Join("a", "b", "x_test.go")), filepath.Join("a", "b", "x_loose_test.go")))
}

func TestBuildConstraints(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "x.go", `// Copyright notice.

//go:build linux && !cgo

// Package p does things.
package p

//go:build ignored
`, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.DeepEquals(buildConstraints(f), []string{"//go:build linux && !cgo"}))
}

func TestTupleQualifier(t *testing.T) {
	tests := []struct {
		testName string
		src      string
		names    map[string]bool
		want     tupleQual
	}{{
		testName: "Default",
		src:      "package p\n",
		want:     tupleQual{qual: "tuple", add: true},
	}, {
		testName: "ImportNameTaken",
		src:      "package p\n\nimport tuple \"example.com/other\"\n",
		want:     tupleQual{qual: "loosetuple", add: true, importName: "loosetuple"},
	}, {
		testName: "FallbackTaken",
		src:      "package p\n\nvar tuple, loosetuple int\n",
		want:     tupleQual{qual: "loosetuple2", add: true, importName: "loosetuple2"},
	}, {
		testName: "DotImport",
		src:      "package p\n\nimport . \"github.com/rogpeppe/loosen/tuple\"\n",
		want:     tupleQual{qual: "."},
	}, {
		testName: "BlankImport",
		src:      "package p\n\nimport _ \"github.com/rogpeppe/loosen/tuple\"\n",
		want:     tupleQual{qual: "tuple", add: true},
	}, {
		testName: "DeclaredInOtherFile",
		src:      "package p\n",
		names:    map[string]bool{"tuple": true},
		want:     tupleQual{qual: "loosetuple", add: true, importName: "loosetuple"},
	}, {
		testName: "TypeParamHidesName",
		src:      "package p\n\nfunc Id[tuple any](a tuple) tuple { return a }\n",
		want:     tupleQual{qual: "loosetuple", add: true, importName: "loosetuple"},
	}, {
		testName: "TypeParamHidesImport",
		src:      "package p\n\nimport \"github.com/rogpeppe/loosen/tuple\"\n\nvar _ tuple.T0\n\nfunc Id[tuple any](a tuple) tuple { return a }\n",
		want:     tupleQual{qual: "loosetuple", add: true, importName: "loosetuple"},
	}}
	cfg := &Config{}
	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			f, err := parser.ParseFile(token.NewFileSet(), "x.go", test.src, 0)
			qt.Assert(t, qt.IsNil(err))
			var decls []*ast.FuncDecl
			for _, d := range f.Decls {
				if decl, ok := d.(*ast.FuncDecl); ok {
					decls = append(decls, decl)
				}
			}
			got := cfg.tupleQualifier(&Input{File: f, Names: test.names}, decls)
			got.spec = nil
			qt.Check(t, qt.Equals(got, test.want))
		})
	}
}
