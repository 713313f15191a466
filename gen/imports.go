package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/rogpeppe/loosen"
)

// fallbackTuple is the name used for the tuple package
// when its usual name is already taken.
const fallbackTuple = "loosetuple"

type importSpec struct {
	name string // empty when the package's own name is used
	path string
}

// tupleQual describes how generated code refers to the tuple package.
type tupleQual struct {
	// qual holds the qualifier passed to loosen.Transform.
	qual string

	// add reports whether the tuple package needs to be imported.
	add bool

	// importName holds the name to import the tuple package
	// with when add is true.
	importName string

	// spec holds the source file's existing import of the
	// tuple package, if any.
	spec *ast.ImportSpec
}

// tupleQualifier works out how to refer to the tuple package from
// the wrappers for decls generated for in.
func (cfg *Config) tupleQualifier(in *Input, decls []*ast.FuncDecl) tupleQual {
	path := cfg.tuplePath()
	if in.Pkg != nil && in.Pkg.Path() == path {
		return tupleQual{qual: "."}
	}
	// A type parameter hides any package-level name inside
	// the wrapper's signature.
	hidden := make(map[string]bool)
	for _, decl := range decls {
		for _, name := range typeParamNames(decl) {
			hidden[name] = true
		}
	}
	for _, spec := range in.File.Imports {
		if importPath(spec) != path {
			continue
		}
		switch name := localName(spec); {
		case name == "_":
		case name == ".":
			return tupleQual{qual: ".", spec: spec}
		case !hidden[name]:
			return tupleQual{qual: name, spec: spec}
		}
	}
	taken := topLevelNames(in.File)
	for _, spec := range in.File.Imports {
		taken[localName(spec)] = true
	}
	isTaken := func(name string) bool {
		return taken[name] || hidden[name] || in.Names[name] ||
			(in.Pkg != nil && in.Pkg.Scope().Lookup(name) != nil)
	}
	name := assumedName(path)
	qual := name
	for i := 1; isTaken(qual); i++ {
		qual = fallbackTuple
		if i > 1 {
			qual = fmt.Sprintf("%s%d", fallbackTuple, i)
		}
	}
	tq := tupleQual{
		qual: qual,
		add:  true,
	}
	if qual != name {
		tq.importName = qual
	}
	return tq
}

// typeParamNames returns the names of the type parameters of decl.
func typeParamNames(decl *ast.FuncDecl) []string {
	if decl.Type.TypeParams == nil {
		return nil
	}
	var names []string
	for _, f := range decl.Type.TypeParams.List {
		for _, id := range f.Names {
			names = append(names, id.Name)
		}
	}
	return names
}

// usedImports returns the imports of the source file that
// are referred to by the types copied into the wrappers.
func usedImports(in *Input, results []*loosen.Result) []importSpec {
	used := make(map[*ast.ImportSpec]bool)
	byName := make(map[string]*ast.ImportSpec)
	byPath := make(map[string]*ast.ImportSpec)
	for _, spec := range in.File.Imports {
		byName[localName(spec)] = spec
		byPath[importPath(spec)] = spec
	}
	visit := func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			id, ok := n.X.(*ast.Ident)
			if !ok {
				return true
			}
			if spec := importOf(in.Info, id, byPath); spec != nil {
				used[spec] = true
				return false
			}
			if in.Info == nil || in.Info.Uses[id] == nil {
				if spec := byName[id.Name]; spec != nil {
					used[spec] = true
				}
			}
			return false
		case *ast.Ident:
			// An unqualified identifier can refer to a
			// dot-imported package only when there's type information.
			if spec := importOf(in.Info, n, byPath); spec != nil {
				used[spec] = true
			}
		}
		return true
	}
	for _, r := range results {
		// Type information refers to the identifiers in the
		// original declaration, not the copies in the wrapper.
		ft := r.Original.Type
		for _, fl := range []*ast.FieldList{ft.TypeParams, ft.Params, ft.Results} {
			if fl != nil {
				ast.Inspect(fl, visit)
			}
		}
	}
	var specs []importSpec
	for _, spec := range in.File.Imports {
		if !used[spec] {
			continue
		}
		s := importSpec{
			path: importPath(spec),
		}
		if spec.Name != nil {
			s.name = spec.Name.Name
		}
		specs = append(specs, s)
	}
	return specs
}

// importOf returns the import in byPath that id refers to,
// according to info, or nil if there is none.
func importOf(info *types.Info, id *ast.Ident, byPath map[string]*ast.ImportSpec) *ast.ImportSpec {
	if info == nil {
		return nil
	}
	switch obj := info.Uses[id].(type) {
	case nil:
		return nil
	case *types.PkgName:
		return byPath[obj.Imported().Path()]
	case *types.TypeName, *types.Const:
		// A type or constant declared in another package and
		// referred to without a qualifier must be dot-imported.
		if pkg := obj.Pkg(); pkg != nil && obj.Parent() == pkg.Scope() {
			if spec := byPath[pkg.Path()]; spec != nil && localName(spec) == "." {
				return spec
			}
		}
	}
	return nil
}

// writeImports writes the import declaration for the given
// imports: standard library packages first, then the rest,
// each group sorted by path.
func writeImports(buf *bytes.Buffer, specs []importSpec) {
	specs = slices.Clone(specs)
	slices.SortFunc(specs, func(a, b importSpec) int {
		if sa, sb := isStd(a.path), isStd(b.path); sa != sb {
			if sa {
				return -1
			}
			return 1
		}
		return strings.Compare(a.path, b.path)
	})
	specs = slices.Compact(specs)
	line := func(s importSpec) string {
		if s.name != "" {
			return s.name + " " + strconv.Quote(s.path)
		}
		return strconv.Quote(s.path)
	}
	switch len(specs) {
	case 0:
	case 1:
		fmt.Fprintf(buf, "\nimport %s\n", line(specs[0]))
	default:
		buf.WriteString("\nimport (\n")
		for i, s := range specs {
			if i > 0 && isStd(specs[i-1].path) && !isStd(s.path) {
				buf.WriteString("\n")
			}
			fmt.Fprintf(buf, "\t%s\n", line(s))
		}
		buf.WriteString(")\n")
	}
}

// isStd reports whether path looks like the import path
// of a standard library package.
func isStd(path string) bool {
	elem, _, _ := strings.Cut(path, "/")
	return !strings.Contains(elem, ".")
}

func importPath(spec *ast.ImportSpec) string {
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return spec.Path.Value
	}
	return path
}

// localName returns the name that spec's package is known by
// in the importing file.
func localName(spec *ast.ImportSpec) string {
	if spec.Name != nil {
		return spec.Name.Name
	}
	return assumedName(importPath(spec))
}

// assumedName returns the package name that an import path
// is assumed to have when the package is not loaded: the last
// path element, skipping a major version suffix, without any
// "go-" prefix or any suffix starting with "." or "-".
func assumedName(path string) string {
	elems := strings.Split(path, "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && isMajorVersion(name) {
		name = elems[len(elems)-2]
	}
	name = strings.TrimPrefix(name, "go-")
	if i := strings.IndexAny(name, ".-"); i >= 0 {
		name = name[:i]
	}
	return name
}

func isMajorVersion(s string) bool {
	rest, ok := strings.CutPrefix(s, "v")
	if !ok || rest == "" {
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

// topLevelNames returns the names declared at package level in f.
func topLevelNames(f *ast.File) map[string]bool {
	names := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					names[spec.Name.Name] = true
				case *ast.ValueSpec:
					for _, id := range spec.Names {
						names[id.Name] = true
					}
				}
			}
		}
	}
	return names
}
