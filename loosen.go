// Package loosen derives "loosened" variants of Go functions.
//
// For a function
//
//	func F(a A, b B) R
//
// the loosened variant is
//
//	func F_loose(args tuple.T2[A, B]) R {
//		return F(args.A0, args.A1)
//	}
//
// It takes all the arguments of F as a single tuple value, which
// makes it possible to use F directly with generic operations that
// work on single-argument functions, for example mapping
// F over a sequence of argument tuples.
//
// This package implements the transformation on a single parsed
// declaration. See the gen package and the loosen command for
// finding declarations to loosen and writing the results.
package loosen

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/rogpeppe/loosen/tuple"
)

const (
	// Suffix is appended to a function's name to make the name
	// of its loosened variant.
	Suffix = "_loose"

	// Directive marks a function declaration to be loosened
	// when it appears as a line in the function's doc comment.
	Directive = "//loosen:loose"

	// GeneratedDirective marks a function declaration
	// that was generated by Transform.
	GeneratedDirective = "//loosen:generated"

	// DefaultTuple holds the default qualifier used to refer to the
	// tuple package.
	DefaultTuple = "tuple"

	// DefaultArgs holds the default name of the tuple parameter
	// of a loosened function.
	DefaultArgs = "args"
)

// WrapperName returns the name of the loosened variant
// of the function with the given name.
func WrapperName(name string) string {
	return name + Suffix
}

// Options holds options for Transform.
type Options struct {
	// Tuple holds the name that refers to the tuple package
	// in the file that the wrapper will be placed in.
	// If it's empty, DefaultTuple is used. If it's ".", tuple
	// types are referred to without a qualifier, as they would be
	// inside the tuple package itself or with a dot import.
	Tuple string

	// Args holds the preferred name of the tuple parameter.
	// If it's empty, DefaultArgs is used. The name is changed
	// if it would clash with another name used by the wrapper.
	Args string
}

// Param represents one parameter of a function.
// A field declaring several parameters, such as
// "a, b int", yields one Param for each name.
type Param struct {
	Name *ast.Ident
	Type ast.Expr
}

// Result holds the result of Transform.
type Result struct {
	// Original holds the original declaration, unchanged.
	Original *ast.FuncDecl

	// Wrapper holds the loosened declaration. Type expressions in
	// Wrapper are copies of those in Original, with the same
	// source positions; the nodes synthesized by Transform have no
	// position information.
	Wrapper *ast.FuncDecl

	// Params holds the parameters of Original in declaration order.
	Params []Param

	// Args holds the name of the wrapper's tuple parameter.
	Args string
}

// Decls returns the original declaration followed by the wrapper,
// suitable for splicing into the declarations of a file in place
// of the original.
func (r *Result) Decls() []ast.Decl {
	return []ast.Decl{r.Original, r.Wrapper}
}

// Transform returns the loosened variant of decl. It returns an
// *Error if decl cannot be loosened. The file set is used only to
// report the position of errors; it may be nil.
func Transform(fset *token.FileSet, decl *ast.FuncDecl, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	params, err := Params(fset, decl)
	if err != nil {
		return nil, err
	}
	qual := opts.Tuple
	if qual == "" {
		qual = DefaultTuple
	}
	if id := typeParam(decl, qual); id != nil {
		return nil, newError(fset, id.Pos(), decl, KindShadowed, "type parameter %s shadows the tuple package name", qual)
	}
	argsName := chooseArgs(decl, opts.Args, qual)

	typeParams, err := cloneFieldList(decl.Type.TypeParams)
	if err != nil {
		return nil, exprError(fset, decl, err)
	}
	results, err := cloneFieldList(decl.Type.Results)
	if err != nil {
		return nil, exprError(fset, decl, err)
	}
	elems := make([]ast.Expr, len(params))
	args := make([]ast.Expr, len(params))
	for i, p := range params {
		elems[i], err = cloneExpr(p.Type)
		if err != nil {
			return nil, exprError(fset, decl, err)
		}
		args[i] = &ast.SelectorExpr{
			X:   ast.NewIdent(argsName),
			Sel: ast.NewIdent(fmt.Sprintf("A%d", i)),
		}
	}
	call := &ast.CallExpr{
		Fun:  instantiate(ast.NewIdent(decl.Name.Name), typeParamNames(decl)),
		Args: args,
	}
	var stmt ast.Stmt = &ast.ExprStmt{X: call}
	if results != nil && len(results.List) > 0 {
		stmt = &ast.ReturnStmt{Results: []ast.Expr{call}}
	}
	name := WrapperName(decl.Name.Name)
	wrapper := &ast.FuncDecl{
		Doc: &ast.CommentGroup{
			List: []*ast.Comment{{
				Text: fmt.Sprintf("// %s is like %s but takes its arguments as a single tuple.", name, decl.Name.Name),
			}, {
				Text: "//",
			}, {
				Text: GeneratedDirective,
			}},
		},
		Name: ast.NewIdent(name),
		Type: &ast.FuncType{
			TypeParams: typeParams,
			Params: &ast.FieldList{
				List: []*ast.Field{{
					Names: []*ast.Ident{ast.NewIdent(argsName)},
					Type:  tupleType(qual, elems),
				}},
			},
			Results: results,
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{stmt},
		},
	}
	return &Result{
		Original: decl,
		Wrapper:  wrapper,
		Params:   params,
		Args:     argsName,
	}, nil
}

// Params returns the parameters of decl in declaration order.
// It returns an *Error if decl or any of its parameters
// cannot be loosened.
func Params(fset *token.FileSet, decl *ast.FuncDecl) ([]Param, error) {
	name := decl.Name.Name
	switch {
	case decl.Recv != nil:
		recv := "receiver"
		if r := decl.Recv.List; len(r) > 0 && len(r[0].Names) > 0 {
			recv = "receiver " + r[0].Names[0].Name
		}
		return nil, newError(fset, decl.Recv.Pos(), decl, KindReceiver, "%s: methods are not supported", recv)
	case name == "init":
		return nil, newError(fset, decl.Name.Pos(), decl, KindUncallable, "init functions cannot be called")
	case name == "_":
		return nil, newError(fset, decl.Name.Pos(), decl, KindUncallable, "blank functions cannot be called")
	case decl.Body == nil:
		return nil, newError(fset, decl.Name.Pos(), decl, KindExternal, "function without a body is implemented outside Go")
	case HasDirective(decl.Doc, "//export"):
		return nil, newError(fset, decl.Name.Pos(), decl, KindExternal, "function exported to C with //export")
	}
	var params []Param
	for _, field := range decl.Type.Params.List {
		if _, ok := field.Type.(*ast.Ellipsis); ok {
			pname := "..."
			if len(field.Names) > 0 {
				pname = field.Names[0].Name
			}
			return nil, newError(fset, field.Pos(), decl, KindVariadic, "variadic parameter %s is not supported", pname)
		}
		if len(field.Names) == 0 {
			return nil, newError(fset, field.Pos(), decl, KindUnnamed, "parameter %d has no name", len(params)+1)
		}
		for _, id := range field.Names {
			if id.Name == "_" {
				return nil, newError(fset, id.Pos(), decl, KindBlank, "parameter %d is blank", len(params)+1)
			}
			params = append(params, Param{
				Name: id,
				Type: field.Type,
			})
		}
	}
	if len(params) > tuple.MaxArity {
		return nil, newError(fset, decl.Type.Params.Pos(), decl, KindArity, "%d parameters is more than the maximum of %d", len(params), tuple.MaxArity)
	}
	return params, nil
}

// HasDirective reports whether the comment group contains
// the given directive on a line of its own, possibly
// followed by arguments.
func HasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if c.Text == directive || strings.HasPrefix(c.Text, directive+" ") {
			return true
		}
	}
	return false
}

// chooseArgs returns a name for the tuple parameter that does not
// clash with any name that the wrapper's body or signature refers to.
func chooseArgs(decl *ast.FuncDecl, base, qual string) string {
	if base == "" {
		base = DefaultArgs
	}
	used := map[string]bool{
		decl.Name.Name: true,
		qual:           true,
	}
	for _, name := range typeParamNames(decl) {
		used[name] = true
	}
	if res := decl.Type.Results; res != nil {
		for _, f := range res.List {
			for _, id := range f.Names {
				used[id.Name] = true
			}
		}
	}
	name := base
	for i := 1; used[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	return name
}

// typeParam returns the type parameter of decl with the given name,
// or nil if there is none.
func typeParam(decl *ast.FuncDecl, name string) *ast.Ident {
	if decl.Type.TypeParams == nil {
		return nil
	}
	for _, f := range decl.Type.TypeParams.List {
		for _, id := range f.Names {
			if id.Name == name {
				return id
			}
		}
	}
	return nil
}

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

// instantiate returns fun explicitly instantiated with the
// given type arguments.
func instantiate(fun ast.Expr, typeArgs []string) ast.Expr {
	switch len(typeArgs) {
	case 0:
		return fun
	case 1:
		return &ast.IndexExpr{
			X:     fun,
			Index: ast.NewIdent(typeArgs[0]),
		}
	}
	indices := make([]ast.Expr, len(typeArgs))
	for i, name := range typeArgs {
		indices[i] = ast.NewIdent(name)
	}
	return &ast.IndexListExpr{
		X:       fun,
		Indices: indices,
	}
}

// tupleType returns the tuple type with the given element types.
func tupleType(qual string, elems []ast.Expr) ast.Expr {
	var t ast.Expr = ast.NewIdent(fmt.Sprintf("T%d", len(elems)))
	if qual != "." {
		t = &ast.SelectorExpr{
			X:   ast.NewIdent(qual),
			Sel: t.(*ast.Ident),
		}
	}
	switch len(elems) {
	case 0:
		return t
	case 1:
		return &ast.IndexExpr{
			X:     t,
			Index: elems[0],
		}
	}
	return &ast.IndexListExpr{
		X:       t,
		Indices: elems,
	}
}
