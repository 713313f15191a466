package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"slices"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/rogpeppe/loosen"
)

// edit replaces the source between start and end with text.
type edit struct {
	start, end int
	text       []byte
}

// inPlace returns the content of the source file with each wrapper
// in results placed directly after its original declaration. Any
// wrappers generated previously are removed first.
func (cfg *Config) inPlace(in *Input, results []*loosen.Result, tq tupleQual) ([]byte, error) {
	offset := func(pos token.Pos) int {
		return in.Fset.Position(pos).Offset
	}
	var edits []edit
	for _, d := range in.File.Decls {
		decl, ok := d.(*ast.FuncDecl)
		if !ok || !loosen.HasDirective(decl.Doc, loosen.GeneratedDirective) {
			continue
		}
		end := offset(decl.End())
		if end < len(in.Src) && in.Src[end] == '\n' {
			end++
		}
		edits = append(edits, edit{
			start: offset(decl.Doc.Pos()),
			end:   end,
		})
	}
	for _, r := range results {
		var buf bytes.Buffer
		buf.WriteString("\n\n")
		if err := loosen.Fprint(&buf, in.Fset, r.Wrapper); err != nil {
			return nil, fmt.Errorf("cannot print %s: %v", r.Wrapper.Name.Name, err)
		}
		end := offset(lineEnd(in, r.Original))
		edits = append(edits, edit{
			start: end,
			end:   end,
			text:  bytes.TrimSuffix(buf.Bytes(), []byte("\n")),
		})
	}
	if len(edits) == 0 {
		return in.Src, nil
	}
	src := applyEdits(in.Src, edits)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, in.Path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("cannot parse rewritten %s: %v", in.Path, err)
	}
	path := cfg.tuplePath()
	switch {
	case len(results) > 0 && tq.add:
		astutil.AddNamedImport(fset, f, tq.importName, path)
	case len(results) == 0 && !astutil.UsesImport(f, path):
		// The tuple package was only used by wrappers
		// that no longer exist.
		for _, spec := range slices.Clone(f.Imports) {
			if importPath(spec) != path {
				continue
			}
			name := ""
			if spec.Name != nil {
				name = spec.Name.Name
			}
			if name != "_" {
				astutil.DeleteNamedImport(fset, f, name, path)
			}
		}
	}
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, f); err != nil {
		return nil, fmt.Errorf("cannot format rewritten %s: %v", in.Path, err)
	}
	return buf.Bytes(), nil
}

// lineEnd returns the end of decl including any comments
// that follow it on its last line.
func lineEnd(in *Input, decl *ast.FuncDecl) token.Pos {
	end := decl.End()
	line := in.Fset.Position(end).Line
	for _, g := range in.File.Comments {
		for _, c := range g.List {
			if c.Pos() >= end && in.Fset.Position(c.Pos()).Line == line {
				end = c.End()
			}
		}
	}
	return end
}

// applyEdits returns src with the given edits applied.
// The edits must not overlap.
func applyEdits(src []byte, edits []edit) []byte {
	edits = slices.Clone(edits)
	slices.SortStableFunc(edits, func(a, b edit) int {
		return a.start - b.start
	})
	var buf bytes.Buffer
	last := 0
	for _, e := range edits {
		buf.Write(src[last:e.start])
		buf.Write(e.text)
		last = e.end
	}
	buf.Write(src[last:])
	return buf.Bytes()
}
