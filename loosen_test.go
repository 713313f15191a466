package loosen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

var transformTests = []struct {
	testName string
	src      string
	opts     *Options
	want     string
}{{
	testName: "TwoParams",
	src:      `func fa(a A, b B) {}`,
	want: `
// fa_loose is like fa but takes its arguments as a single tuple.
//
//loosen:generated
func fa_loose(args tuple.T2[A, B]) {
	fa(args.A0, args.A1)
}
`,
}, {
	testName: "ExportedWithResult",
	src:      `func Fb(a A, b B) error { return nil }`,
	want: `
// Fb_loose is like Fb but takes its arguments as a single tuple.
//
//loosen:generated
func Fb_loose(args tuple.T2[A, B]) error {
	return Fb(args.A0, args.A1)
}
`,
}, {
	testName: "EmptyResultList",
	src:      `func Fb(a A, b B) () {}`,
	want: `
// Fb_loose is like Fb but takes its arguments as a single tuple.
//
//loosen:generated
func Fb_loose(args tuple.T2[A, B]) {
	Fb(args.A0, args.A1)
}
`,
}, {
	testName: "Generic",
	src:      `func ff[X, Y any](a *X, b *Y) {}`,
	want: `
// ff_loose is like ff but takes its arguments as a single tuple.
//
//loosen:generated
func ff_loose[X, Y any](args tuple.T2[*X, *Y]) {
	ff[X, Y](args.A0, args.A1)
}
`,
}, {
	testName: "SingleTypeParam",
	src:      `func one[T comparable](x T) T { return x }`,
	want: `
// one_loose is like one but takes its arguments as a single tuple.
//
//loosen:generated
func one_loose[T comparable](args tuple.T1[T]) T {
	return one[T](args.A0)
}
`,
}, {
	testName: "Constraints",
	src:      `func sum[S ~[]E, E int | float64](s S, init E) E { return init }`,
	want: `
// sum_loose is like sum but takes its arguments as a single tuple.
//
//loosen:generated
func sum_loose[S ~[]E, E int | float64](args tuple.T2[S, E]) E {
	return sum[S, E](args.A0, args.A1)
}
`,
}, {
	testName: "ZeroParams",
	src:      `func g() int { return 1 }`,
	want: `
// g_loose is like g but takes its arguments as a single tuple.
//
//loosen:generated
func g_loose(args tuple.T0) int {
	return g()
}
`,
}, {
	testName: "GroupedParams",
	src:      `func h(a, b int, s string) {}`,
	want: `
// h_loose is like h but takes its arguments as a single tuple.
//
//loosen:generated
func h_loose(args tuple.T3[int, int, string]) {
	h(args.A0, args.A1, args.A2)
}
`,
}, {
	testName: "NamedResults",
	src:      `func n(x int) (y int, err error) { return }`,
	want: `
// n_loose is like n but takes its arguments as a single tuple.
//
//loosen:generated
func n_loose(args tuple.T1[int]) (y int, err error) {
	return n(args.A0)
}
`,
}, {
	testName: "ArgsClash",
	src:      `func pick[args any](x args) (args1 args) { return x }`,
	want: `
// pick_loose is like pick but takes its arguments as a single tuple.
//
//loosen:generated
func pick_loose[args any](args2 tuple.T1[args]) (args1 args) {
	return pick[args](args2.A0)
}
`,
}, {
	testName: "FuncNamedArgs",
	src:      `func args(x int) {}`,
	want: `
// args_loose is like args but takes its arguments as a single tuple.
//
//loosen:generated
func args_loose(args1 tuple.T1[int]) {
	args(args1.A0)
}
`,
}, {
	testName: "CompositeTypes",
	src: `func m(f func(int) (string, error), ch <-chan struct{}, m map[string][]*pkg.Type, x interface{ M() }) {}`,
	want: `
// m_loose is like m but takes its arguments as a single tuple.
//
//loosen:generated
func m_loose(args tuple.T4[func(int) (string, error), <-chan struct{}, map[string][]*pkg.Type, interface{ M() }]) {
	m(args.A0, args.A1, args.A2, args.A3)
}
`,
}, {
	testName: "ParamsOnSeveralLines",
	src: `func lines(
	a int,
	b string,
) {
}`,
	want: `
// lines_loose is like lines but takes its arguments as a single tuple.
//
//loosen:generated
func lines_loose(args tuple.T2[int, string]) {
	lines(args.A0, args.A1)
}
`,
}, {
	testName: "Unqualified",
	src:      `func u(x int) {}`,
	opts:     &Options{Tuple: "."},
	want: `
// u_loose is like u but takes its arguments as a single tuple.
//
//loosen:generated
func u_loose(args T1[int]) {
	u(args.A0)
}
`,
}, {
	testName: "CustomNames",
	src:      `func c(x int) {}`,
	opts:     &Options{Tuple: "tup", Args: "t"},
	want: `
// c_loose is like c but takes its arguments as a single tuple.
//
//loosen:generated
func c_loose(t tup.T1[int]) {
	c(t.A0)
}
`,
}}

func TestTransform(t *testing.T) {
	for _, test := range transformTests {
		t.Run(test.testName, func(t *testing.T) {
			fset, decl := parseFunc(t, test.src)
			before := formatNode(t, fset, decl)

			r, err := Transform(fset, decl, test.opts)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(r.Original, decl))
			decls := r.Decls()
			qt.Assert(t, qt.HasLen(decls, 2))
			qt.Assert(t, qt.Equals(decls[0], ast.Decl(decl)))
			qt.Assert(t, qt.Equals(decls[1], ast.Decl(r.Wrapper)))

			got, err := Format(fset, r.Wrapper)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(got), test.want[1:]))

			// The original declaration must be left alone.
			qt.Assert(t, qt.Equals(formatNode(t, fset, decl), before))
		})
	}
}

func TestTransformParamsInOrder(t *testing.T) {
	fset, decl := parseFunc(t, `func f(z, y int, x string, w, v bool) {}`)
	r, err := Transform(fset, decl, nil)
	qt.Assert(t, qt.IsNil(err))
	var names []string
	for _, p := range r.Params {
		names = append(names, p.Name.Name)
	}
	qt.Assert(t, qt.DeepEquals(names, []string{"z", "y", "x", "w", "v"}))

	call := r.Wrapper.Body.List[0].(*ast.ExprStmt).X.(*ast.CallExpr)
	qt.Assert(t, qt.HasLen(call.Args, 5))
	for i, arg := range call.Args {
		sel := arg.(*ast.SelectorExpr)
		qt.Assert(t, qt.Equals(sel.X.(*ast.Ident).Name, r.Args))
		qt.Assert(t, qt.Equals(sel.Sel.Name, fmt.Sprintf("A%d", i)))
	}
	// The wrapper always has exactly one parameter.
	qt.Assert(t, qt.HasLen(r.Wrapper.Type.Params.List, 1))
	qt.Assert(t, qt.HasLen(r.Wrapper.Type.Params.List[0].Names, 1))
}

func TestTransformCopiesTypes(t *testing.T) {
	fset, decl := parseFunc(t, `func f(a map[string]int) []byte { return nil }`)
	r, err := Transform(fset, decl, nil)
	qt.Assert(t, qt.IsNil(err))

	elem := r.Wrapper.Type.Params.List[0].Type.(*ast.IndexExpr).Index.(*ast.MapType)
	elem.Key.(*ast.Ident).Name = "changed"
	r.Wrapper.Type.Results.List[0].Type.(*ast.ArrayType).Elt.(*ast.Ident).Name = "changed"

	qt.Assert(t, qt.Equals(formatNode(t, fset, decl.Type), "func(a map[string]int) []byte"))
}

var transformErrorTests = []struct {
	testName  string
	src       string
	kind      Kind
	is        error
	wantErr   string
	wantNoPos string
}{{
	testName:  "Method",
	src:       `func (t T) M(a int) {}`,
	kind:      KindReceiver,
	is:        ErrUnsupportedParam,
	wantErr:   `x.go:3:6: cannot loosen M: receiver t: methods are not supported`,
	wantNoPos: `cannot loosen M: receiver t: methods are not supported`,
}, {
	testName: "MethodPointerReceiver",
	src:      `func (*T) M(a int) {}`,
	kind:     KindReceiver,
	is:       ErrUnsupportedParam,
	wantErr:  `x.go:3:6: cannot loosen M: receiver: methods are not supported`,
}, {
	testName: "Unnamed",
	src:      `func u(int, string) {}`,
	kind:     KindUnnamed,
	is:       ErrUnsupportedParam,
	wantErr:  `x.go:3:8: cannot loosen u: parameter 1 has no name`,
}, {
	testName: "Blank",
	src:      `func b(a int, _ string) {}`,
	kind:     KindBlank,
	is:       ErrUnsupportedParam,
	wantErr:  `x.go:3:15: cannot loosen b: parameter 2 is blank`,
}, {
	testName: "Variadic",
	src:      `func v(a int, rest ...string) {}`,
	kind:     KindVariadic,
	is:       ErrUnsupportedParam,
	wantErr:  `x.go:3:15: cannot loosen v: variadic parameter rest is not supported`,
}, {
	testName: "NoBody",
	src:      `func ext(a int)`,
	kind:     KindExternal,
	is:       ErrUnsupportedFunc,
	wantErr:  `x.go:3:6: cannot loosen ext: function without a body is implemented outside Go`,
}, {
	testName: "ExportedToC",
	src: `//export cfn
func cfn(a int) {}`,
	kind:    KindExternal,
	is:      ErrUnsupportedFunc,
	wantErr: `x.go:4:6: cannot loosen cfn: function exported to C with //export`,
}, {
	testName: "Init",
	src:      `func init() {}`,
	kind:     KindUncallable,
	is:       ErrUnsupportedFunc,
	wantErr:  `x.go:3:6: cannot loosen init: init functions cannot be called`,
}, {
	testName: "BlankName",
	src:      `func _(a int) {}`,
	kind:     KindUncallable,
	is:       ErrUnsupportedFunc,
	wantErr:  `x.go:3:6: cannot loosen _: blank functions cannot be called`,
}, {
	testName: "TypeParamShadowsTuple",
	src:      `func Id[tuple any](a tuple) tuple { return a }`,
	kind:     KindShadowed,
	is:       ErrUnsupportedFunc,
	wantErr:  `x.go:3:9: cannot loosen Id: type parameter tuple shadows the tuple package name`,
}, {
	testName: "TooManyParams",
	src:      `func big(a, b, c, d, e, f, g, h, i, j int) {}`,
	kind:     KindArity,
	is:       ErrUnsupportedFunc,
	wantErr:  `x.go:3:9: cannot loosen big: 10 parameters is more than the maximum of 9`,
}, {
	testName: "UnsupportedTypeExpr",
	src:      `func bad(a [8]int, b [unsafe.Sizeof(x.(int))]byte) {}`,
	kind:     KindUnsupportedExpr,
	is:       ErrUnsupportedFunc,
	wantErr:  `x.go:3:37: cannot loosen bad: unexpected \*ast.TypeAssertExpr in type`,
}}

func TestTransformErrors(t *testing.T) {
	for _, test := range transformErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			fset, decl := parseFunc(t, test.src)
			r, err := Transform(fset, decl, nil)
			qt.Assert(t, qt.IsNil(r))
			qt.Assert(t, qt.ErrorMatches(err, test.wantErr))
			qt.Assert(t, qt.ErrorIs(err, test.is))

			var lerr *Error
			qt.Assert(t, qt.ErrorAs(err, &lerr))
			qt.Assert(t, qt.Equals(lerr.Kind, test.kind))
			qt.Assert(t, qt.Equals(lerr.Func, decl.Name.Name))

			if test.wantNoPos != "" {
				_, err := Transform(nil, decl, nil)
				qt.Assert(t, qt.ErrorMatches(err, test.wantNoPos))
			}
		})
	}
}

func TestHasDirective(t *testing.T) {
	_, decl := parseFunc(t, `// f does things.
//
//loosen:loose
func f() {}`)
	qt.Assert(t, qt.IsTrue(HasDirective(decl.Doc, Directive)))
	qt.Assert(t, qt.IsFalse(HasDirective(decl.Doc, GeneratedDirective)))
	qt.Assert(t, qt.IsFalse(HasDirective(nil, Directive)))

	_, decl = parseFunc(t, `// f mentions //loosen:loose but is not marked.
func f() {}`)
	qt.Assert(t, qt.IsFalse(HasDirective(decl.Doc, Directive)))
}

func TestKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(KindReceiver.String(), "receiver"))
	qt.Assert(t, qt.Equals(KindShadowed.String(), "shadowed tuple package"))
	qt.Assert(t, qt.Equals(Kind(99).String(), "Kind(99)"))
}

func TestWrapperName(t *testing.T) {
	for _, name := range []string{"f", "F", "fooBar", "x_y"} {
		qt.Assert(t, qt.Equals(WrapperName(name), name+"_loose"))
		qt.Assert(t, qt.IsTrue(strings.HasSuffix(WrapperName(name), Suffix)))
	}
}

func parseFunc(t *testing.T, src string) (*token.FileSet, *ast.FuncDecl) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "x.go", "package p\n\n"+src, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	for i := len(f.Decls) - 1; i >= 0; i-- {
		if decl, ok := f.Decls[i].(*ast.FuncDecl); ok {
			return fset, decl
		}
	}
	t.Fatalf("no function declaration found in %q", src)
	return nil, nil
}

func formatNode(t *testing.T, fset *token.FileSet, n ast.Node) string {
	t.Helper()
	var buf bytes.Buffer
	err := format.Node(&buf, fset, n)
	qt.Assert(t, qt.IsNil(err))
	return buf.String()
}
