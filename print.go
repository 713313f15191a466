package loosen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"io"
)

// Fprint writes the Go source for a wrapper declaration produced by
// Transform to w, preceded by its doc comment. Type expressions
// copied from the original declaration are printed as they appear
// in the source, using fset.
//
// The output is not necessarily formatted; use Format for that.
func Fprint(w io.Writer, fset *token.FileSet, decl *ast.FuncDecl) error {
	p := &printer{
		fset: fset,
	}
	p.funcDecl(decl)
	if p.err != nil {
		return p.err
	}
	_, err := w.Write(p.buf.Bytes())
	return err
}

// Format returns the gofmt-formatted source for a wrapper declaration
// produced by Transform.
func Format(fset *token.FileSet, decl *ast.FuncDecl) ([]byte, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, fset, decl); err != nil {
		return nil, err
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format %s: %v", decl.Name.Name, err)
	}
	return data, nil
}

// printer prints the declarations synthesized by Transform.
// Synthesized nodes have no positions so go/printer would lay them
// out according to whatever positions the copied nodes have;
// instead we print the synthesized shapes directly and defer to
// go/printer only for nodes copied from the source.
type printer struct {
	fset *token.FileSet
	buf  bytes.Buffer
	err  error
}

func (p *printer) printf(f string, a ...any) {
	fmt.Fprintf(&p.buf, f, a...)
}

func (p *printer) funcDecl(d *ast.FuncDecl) {
	if d.Doc != nil {
		for _, c := range d.Doc.List {
			p.printf("%s\n", c.Text)
		}
	}
	p.printf("func %s", d.Name.Name)
	if tp := d.Type.TypeParams; tp != nil && len(tp.List) > 0 {
		p.printf("[")
		p.fields(tp.List)
		p.printf("]")
	}
	p.printf("(")
	p.fields(d.Type.Params.List)
	p.printf(")")
	if res := d.Type.Results; res != nil && len(res.List) > 0 {
		if len(res.List) == 1 && len(res.List[0].Names) == 0 {
			p.printf(" ")
			p.expr(res.List[0].Type)
		} else {
			p.printf(" (")
			p.fields(res.List)
			p.printf(")")
		}
	}
	p.printf(" {\n")
	for _, stmt := range d.Body.List {
		p.printf("\t")
		p.stmt(stmt)
		p.printf("\n")
	}
	p.printf("}\n")
}

func (p *printer) fields(list []*ast.Field) {
	for i, f := range list {
		if i > 0 {
			p.printf(", ")
		}
		for j, id := range f.Names {
			if j > 0 {
				p.printf(", ")
			}
			p.printf("%s ", id.Name)
		}
		p.expr(f.Type)
	}
}

func (p *printer) stmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.ReturnStmt:
		p.printf("return")
		for i, e := range stmt.Results {
			if i > 0 {
				p.printf(",")
			}
			p.printf(" ")
			p.expr(e)
		}
	case *ast.ExprStmt:
		p.expr(stmt.X)
	default:
		p.node(stmt)
	}
}

func (p *printer) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Ident:
		p.printf("%s", e.Name)
	case *ast.SelectorExpr:
		p.expr(e.X)
		p.printf(".%s", e.Sel.Name)
	case *ast.IndexExpr:
		p.expr(e.X)
		p.printf("[")
		p.expr(e.Index)
		p.printf("]")
	case *ast.IndexListExpr:
		p.expr(e.X)
		p.printf("[")
		p.exprList(e.Indices)
		p.printf("]")
	case *ast.CallExpr:
		p.expr(e.Fun)
		p.printf("(")
		p.exprList(e.Args)
		p.printf(")")
	default:
		p.node(e)
	}
}

func (p *printer) exprList(list []ast.Expr) {
	for i, e := range list {
		if i > 0 {
			p.printf(", ")
		}
		p.expr(e)
	}
}

func (p *printer) node(n ast.Node) {
	if p.err != nil {
		return
	}
	fset := p.fset
	if fset == nil {
		fset = token.NewFileSet()
	}
	if err := format.Node(&p.buf, fset, n); err != nil {
		p.err = err
	}
}
