package gen_test

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rogpeppe/go-internal/txtar"

	"github.com/rogpeppe/loosen"
	"github.com/rogpeppe/loosen/gen"
)

// TestGenerate runs the archives in testdata. The comment of each
// archive can hold lines that configure the generator:
//
//	inplace
//	funcs name...
//	tuple path
//
// Files named want/name hold the expected content of name after
// generation, a file named error holds a regular expression matching
// the expected error, and a file named gone lists files that must
// not exist afterwards.
func TestGenerate(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Not(qt.HasLen(files, 0)))
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			qt.Assert(t, qt.IsNil(err))
			cfg := archiveConfig(ar.Comment)

			dir := t.TempDir()
			t.Chdir(dir)
			want := make(map[string]string)
			var (
				wantErr string
				gone    []string
			)
			for _, f := range ar.Files {
				switch {
				case f.Name == "error":
					wantErr = strings.TrimSpace(string(f.Data))
				case f.Name == "gone":
					gone = strings.Fields(string(f.Data))
				case strings.HasPrefix(f.Name, "want/"):
					want[strings.TrimPrefix(f.Name, "want/")] = string(f.Data)
				default:
					err := os.WriteFile(f.Name, f.Data, 0o666)
					qt.Assert(t, qt.IsNil(err))
				}
			}
			ctx := context.Background()
			outputs, err := cfg.Paths(ctx, goFiles(t)...)
			if wantErr != "" {
				qt.Assert(t, qt.ErrorMatches(err, wantErr))
				checkGone(t, gone)
				return
			}
			qt.Assert(t, qt.IsNil(err))
			err = cfg.Write(outputs)
			qt.Assert(t, qt.IsNil(err))
			for name, data := range want {
				got, err := os.ReadFile(name)
				qt.Assert(t, qt.IsNil(err))
				qt.Check(t, qt.Equals(string(got), data), qt.Commentf("file %s", name))
			}
			checkGone(t, gone)

			// Generating again must not change anything.
			outputs, err = cfg.Paths(ctx, goFiles(t)...)
			qt.Assert(t, qt.IsNil(err))
			for _, out := range outputs {
				if out.Content == nil {
					continue
				}
				got, err := os.ReadFile(out.Path)
				qt.Assert(t, qt.IsNil(err))
				qt.Check(t, qt.Equals(string(out.Content), string(got)), qt.Commentf("regenerated %s", out.Path))
			}
		})
	}
}

func archiveConfig(comment []byte) *gen.Config {
	cfg := &gen.Config{}
	for _, line := range strings.Split(string(comment), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "inplace":
			cfg.InPlace = true
		case "funcs":
			cfg.Funcs = fields[1:]
		case "tuple":
			cfg.TuplePath = fields[1]
		}
	}
	return cfg
}

func goFiles(t *testing.T) []string {
	files, err := filepath.Glob("*.go")
	qt.Assert(t, qt.IsNil(err))
	return files
}

func checkGone(t *testing.T, files []string) {
	for _, name := range files {
		_, err := os.Stat(name)
		qt.Check(t, qt.ErrorIs(err, fs.ErrNotExist), qt.Commentf("file %s", name))
	}
}

func TestFileErrorsAreLoosenErrors(t *testing.T) {
	in := parseInput(t, "x.go", `package p

//loosen:loose
func F(int) {}
`)
	_, err := (&gen.Config{}).File(in)
	var lerr *loosen.Error
	qt.Assert(t, qt.ErrorAs(err, &lerr))
	qt.Check(t, qt.Equals(lerr.Kind, loosen.KindUnnamed))
	qt.Check(t, qt.ErrorIs(err, loosen.ErrUnsupportedParam))
}

func TestInPlaceAddsImport(t *testing.T) {
	in := parseInput(t, "x.go", `package p

//loosen:loose
func F(a, b string) string {
	return a + b
}
`)
	out, err := (&gen.Config{InPlace: true}).File(in)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(out.Path, "x.go"))
	qt.Check(t, qt.DeepEquals(out.Funcs, []string{"F"}))

	f, err := parser.ParseFile(token.NewFileSet(), "x.go", out.Content, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(f.Imports, 1))
	qt.Check(t, qt.Equals(f.Imports[0].Path.Value, strconv.Quote(gen.DefaultTuplePath)))
	qt.Check(t, qt.StringContains(string(out.Content), "func F_loose(args tuple.T2[string, string]) string {"))
}

func TestInPlaceRemovesUnusedImport(t *testing.T) {
	in := parseInput(t, "x.go", `package p

import "example.com/tup"

func F(a int) {}

// F_loose is like F but takes its arguments as a single tuple.
//
//loosen:generated
func F_loose(args tup.T1[int]) {
	F(args.A0)
}
`)
	out, err := (&gen.Config{
		InPlace:   true,
		TuplePath: "example.com/tup",
	}).File(in)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(string(out.Content), `package p

func F(a int) {}
`))
}

func TestSiblingNothingSelected(t *testing.T) {
	in := parseInput(t, "dir/x_test.go", `package p

func F(a int) {}
`)
	out, err := (&gen.Config{}).File(in)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(out.Path, filepath.Join("dir", "x_loose_test.go")))
	qt.Check(t, qt.IsNil(out.Content))
	qt.Check(t, qt.HasLen(out.Funcs, 0))
}

func TestCustomTuplePath(t *testing.T) {
	in := parseInput(t, "x.go", `package p

//loosen:loose
func F(a int) {}
`)
	out, err := (&gen.Config{TuplePath: "example.com/go-tuples/v2"}).File(in)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.StringContains(string(out.Content), `import "example.com/go-tuples/v2"`))
	qt.Check(t, qt.StringContains(string(out.Content), "func F_loose(args tuples.T1[int]) {"))
}

func TestWriteLeavesOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x_loose.go")
	err := os.WriteFile(path, []byte("package p\n"), 0o666)
	qt.Assert(t, qt.IsNil(err))
	err = (&gen.Config{}).Write([]*gen.Output{{
		Source: filepath.Join(dir, "x.go"),
		Path:   path,
	}})
	qt.Assert(t, qt.IsNil(err))
	data, err := os.ReadFile(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(string(data), "package p\n"))
}

func TestIsGenerated(t *testing.T) {
	qt.Check(t, qt.IsTrue(gen.IsGenerated([]byte("// Code generated by loosen. DO NOT EDIT.\n\npackage p\n"))))
	qt.Check(t, qt.IsFalse(gen.IsGenerated([]byte("// Code generated by stringer. DO NOT EDIT.\n"))))
	qt.Check(t, qt.IsFalse(gen.IsGenerated([]byte("package p\n"))))
}

func TestPathsCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.go")
	err := os.WriteFile(path, []byte("package p\n\n//loosen:loose\nfunc F(a int) {}\n"), 0o666)
	qt.Assert(t, qt.IsNil(err))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&gen.Config{}).Paths(ctx, path)
	qt.Assert(t, qt.ErrorIs(err, context.Canceled))
}

func TestPackages(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"go.mod": "module example.com/p\n\ngo 1.23\n",
		"x.go": `package p

import . "strings"

//loosen:loose
func Grow(b *Builder, n int) {
	b.Grow(n)
}
`,
		"y.go": `package p

// Hand-written.
func Grow_loose() {}
`,
	})
	var logBuf bytes.Buffer
	cfg := &gen.Config{
		Logger: slog.New(slog.NewTextHandler(&logBuf, nil)),
	}
	outputs, err := cfg.Packages(context.Background(), dir, "./...")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(outputs, 2))

	var out *gen.Output
	for _, o := range outputs {
		if o.Content != nil {
			out = o
		}
	}
	qt.Assert(t, qt.IsNotNil(out))
	qt.Check(t, qt.Equals(out.Path, filepath.Join(dir, "x_loose.go")))
	qt.Check(t, qt.Equals(string(out.Content), `// Code generated by loosen. DO NOT EDIT.

package p

import (
	. "strings"

	"github.com/rogpeppe/loosen/tuple"
)

// Grow_loose is like Grow but takes its arguments as a single tuple.
//
//loosen:generated
func Grow_loose(args tuple.T2[*Builder, int]) {
	Grow(args.A0, args.A1)
}
`))
	qt.Check(t, qt.StringContains(logBuf.String(), "loosened function name already defined"))
}

func TestPackagesNoMatch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"go.mod": "module example.com/p\n\ngo 1.23\n",
	})
	_, err := (&gen.Config{}).Packages(context.Background(), dir, "./...")
	qt.Assert(t, qt.IsNotNil(err))
}

func parseInput(t *testing.T, path, src string) *gen.Input {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	return &gen.Input{
		Fset: fset,
		Path: path,
		Src:  []byte(src),
		File: f,
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	for name, data := range files {
		path := filepath.Join(dir, name)
		err := os.MkdirAll(filepath.Dir(path), 0o777)
		qt.Assert(t, qt.IsNil(err))
		err = os.WriteFile(path, []byte(data), 0o666)
		qt.Assert(t, qt.IsNil(err))
	}
}
