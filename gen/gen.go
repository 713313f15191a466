// Package gen finds function declarations marked for loosening in Go
// source files and generates the Go source holding their loosened
// variants.
//
// A function is marked for loosening by a //loosen:loose line in its
// doc comment, or by naming it in Config.Funcs:
//
//	// Distance returns the distance between two points.
//	//
//	//loosen:loose
//	func Distance(p, q Point) float64
//
// By default the loosened functions for a file x.go are written to
// x_loose.go (x_loose_test.go for a test file) in the same directory.
// In in-place mode, each loosened function is instead written directly
// after its original in the source file itself.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rogpeppe/loosen"
)

// DefaultTuplePath holds the default import path
// of the tuple package.
const DefaultTuplePath = "github.com/rogpeppe/loosen/tuple"

// header starts every file written in sibling mode.
const header = "// Code generated by loosen. DO NOT EDIT.\n"

// Config holds the configuration for generating code.
type Config struct {
	// TuplePath holds the import path of the tuple package.
	// If it's empty, DefaultTuplePath is used.
	TuplePath string

	// Funcs holds the names of functions to loosen in addition
	// to those marked with a directive. A method is named
	// as Type.Method (and will be rejected).
	Funcs []string

	// InPlace causes loosened functions to be written to the
	// source file rather than to a separate file.
	InPlace bool

	// Tests causes test files to be processed when loading packages.
	Tests bool

	// Jobs holds the maximum number of files processed
	// concurrently. If it's zero or less, there is no limit.
	Jobs int

	// Logger is used to log progress. If it's nil,
	// nothing is logged.
	Logger *slog.Logger
}

// Input holds a parsed source file.
type Input struct {
	Fset *token.FileSet
	Path string
	Src  []byte
	File *ast.File

	// The fields below are set only when type information
	// is available.

	// Info holds type information for File.
	Info *types.Info

	// Pkg holds the package that File is part of.
	Pkg *types.Package

	// Generated holds the positions of the names of
	// all the functions in Pkg that were generated by loosen.
	Generated map[token.Pos]bool

	// Names holds the names declared at package level in the
	// other files of the package. It is used in place of Pkg
	// when there is no type information.
	Names map[string]bool
}

// Output holds the result of generating code for one source file.
type Output struct {
	// Source holds the path of the source file.
	Source string

	// Path holds the path of the file to write.
	Path string

	// Content holds the content to write to Path.
	// If it's nil, there is nothing to write and
	// any existing file at Path written by loosen is stale.
	Content []byte

	// Funcs holds the names of the functions that were loosened.
	Funcs []string
}

func (cfg *Config) tuplePath() string {
	if cfg.TuplePath != "" {
		return cfg.TuplePath
	}
	return DefaultTuplePath
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// File generates the loosened functions for a single source file.
// If any marked function cannot be loosened, it returns all the
// errors found in the file and no output.
func (cfg *Config) File(in *Input) (*Output, error) {
	decls := cfg.selected(in.File)
	tq := cfg.tupleQualifier(in, decls)
	opts := &loosen.Options{
		Tuple: tq.qual,
	}
	out := &Output{
		Source: in.Path,
	}
	var (
		results []*loosen.Result
		errs    []error
	)
	for _, decl := range decls {
		out.Funcs = append(out.Funcs, funcKey(decl))
		r, err := loosen.Transform(in.Fset, decl, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, r)
		cfg.checkCollision(in, r)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	var err error
	if cfg.InPlace {
		out.Path = in.Path
		out.Content, err = cfg.inPlace(in, results, tq)
	} else {
		out.Path = siblingPath(in.Path)
		if len(results) > 0 {
			out.Content, err = cfg.sibling(in, results, tq)
		}
	}
	if err != nil {
		return nil, err
	}
	cfg.logger().Debug("processed file", "file", in.Path, "funcs", len(results))
	return out, nil
}

// selected returns the declarations in f to be loosened, in source order.
func (cfg *Config) selected(f *ast.File) []*ast.FuncDecl {
	var decls []*ast.FuncDecl
	for _, d := range f.Decls {
		decl, ok := d.(*ast.FuncDecl)
		if !ok || loosen.HasDirective(decl.Doc, loosen.GeneratedDirective) {
			continue
		}
		if loosen.HasDirective(decl.Doc, loosen.Directive) || slices.Contains(cfg.Funcs, funcKey(decl)) {
			decls = append(decls, decl)
		}
	}
	return decls
}

// funcKey returns the name used to select decl in Config.Funcs.
func funcKey(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name
	}
	return recvTypeName(decl.Recv.List[0].Type) + "." + decl.Name.Name
}

func recvTypeName(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return recvTypeName(e.X)
	case *ast.ParenExpr:
		return recvTypeName(e.X)
	case *ast.IndexExpr:
		return recvTypeName(e.X)
	case *ast.IndexListExpr:
		return recvTypeName(e.X)
	}
	return "?"
}

// checkCollision logs a warning if the package already defines
// the wrapper's name other than by an earlier run of loosen.
// The clash itself is left for the compiler to report.
func (cfg *Config) checkCollision(in *Input, r *loosen.Result) {
	if in.Pkg == nil {
		return
	}
	name := r.Wrapper.Name.Name
	obj := in.Pkg.Scope().Lookup(name)
	if obj == nil || in.Generated[obj.Pos()] {
		return
	}
	cfg.logger().Warn("loosened function name already defined",
		"func", r.Original.Name.Name,
		"name", name,
		"pos", in.Fset.Position(obj.Pos()).String(),
	)
}

// sibling returns the content of the separate file holding the
// wrappers in results.
func (cfg *Config) sibling(in *Input, results []*loosen.Result, tq tupleQual) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n")
	for _, line := range buildConstraints(in.File) {
		fmt.Fprintf(&buf, "%s\n\n", line)
	}
	fmt.Fprintf(&buf, "package %s\n", in.File.Name.Name)

	imports := usedImports(in, results)
	switch {
	case tq.add:
		imports = append(imports, importSpec{
			name: tq.importName,
			path: cfg.tuplePath(),
		})
	case tq.spec != nil:
		// Refer to the tuple package as the source file does.
		s := importSpec{
			path: cfg.tuplePath(),
		}
		if tq.spec.Name != nil {
			s.name = tq.spec.Name.Name
		}
		imports = append(imports, s)
	}
	writeImports(&buf, imports)

	for _, r := range results {
		buf.WriteString("\n")
		if err := loosen.Fprint(&buf, in.Fset, r.Wrapper); err != nil {
			return nil, fmt.Errorf("cannot print %s: %v", r.Wrapper.Name.Name, err)
		}
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated code for %s: %v", in.Path, err)
	}
	return data, nil
}

// buildConstraints returns any //go:build lines in f.
func buildConstraints(f *ast.File) []string {
	var lines []string
	for _, g := range f.Comments {
		if g.Pos() >= f.Package {
			break
		}
		for _, c := range g.List {
			if strings.HasPrefix(c.Text, "//go:build ") {
				lines = append(lines, c.Text)
			}
		}
	}
	return lines
}

// siblingPath returns the path of the file holding the
// loosened functions for the source file at path.
func siblingPath(path string) string {
	dir, base := filepath.Split(path)
	if s, ok := strings.CutSuffix(base, "_test.go"); ok {
		return filepath.Join(dir, s+loosen.Suffix+"_test.go")
	}
	return filepath.Join(dir, strings.TrimSuffix(base, ".go")+loosen.Suffix+".go")
}

// IsGenerated reports whether data holds the content of
// a file written by loosen in sibling mode.
func IsGenerated(data []byte) bool {
	return bytes.HasPrefix(data, []byte(header))
}
