package loosen

import (
	"fmt"
	"go/ast"
)

type unsupportedExprError struct {
	expr ast.Expr
}

func (e *unsupportedExprError) Error() string {
	return fmt.Sprintf("unexpected %T in type", e.expr)
}

// cloneExpr returns a deep copy of the type expression e.
// Positions are preserved so that the copy prints as the original
// did; comments are dropped.
func cloneExpr(e ast.Expr) (ast.Expr, error) {
	if e == nil {
		return nil, nil
	}
	var err error
	clone := func(e ast.Expr) ast.Expr {
		if err != nil {
			return nil
		}
		var c ast.Expr
		c, err = cloneExpr(e)
		return c
	}
	var r ast.Expr
	switch e := e.(type) {
	case *ast.Ident:
		r = cloneIdent(e)
	case *ast.BasicLit:
		c := *e
		r = &c
	case *ast.SelectorExpr:
		r = &ast.SelectorExpr{
			X:   clone(e.X),
			Sel: cloneIdent(e.Sel),
		}
	case *ast.StarExpr:
		r = &ast.StarExpr{
			Star: e.Star,
			X:    clone(e.X),
		}
	case *ast.ParenExpr:
		r = &ast.ParenExpr{
			Lparen: e.Lparen,
			X:      clone(e.X),
			Rparen: e.Rparen,
		}
	case *ast.UnaryExpr:
		r = &ast.UnaryExpr{
			OpPos: e.OpPos,
			Op:    e.Op,
			X:     clone(e.X),
		}
	case *ast.BinaryExpr:
		r = &ast.BinaryExpr{
			X:     clone(e.X),
			OpPos: e.OpPos,
			Op:    e.Op,
			Y:     clone(e.Y),
		}
	case *ast.CallExpr:
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = clone(a)
		}
		r = &ast.CallExpr{
			Fun:      clone(e.Fun),
			Lparen:   e.Lparen,
			Args:     args,
			Ellipsis: e.Ellipsis,
			Rparen:   e.Rparen,
		}
	case *ast.Ellipsis:
		r = &ast.Ellipsis{
			Ellipsis: e.Ellipsis,
			Elt:      clone(e.Elt),
		}
	case *ast.ArrayType:
		r = &ast.ArrayType{
			Lbrack: e.Lbrack,
			Len:    clone(e.Len),
			Elt:    clone(e.Elt),
		}
	case *ast.MapType:
		r = &ast.MapType{
			Map:   e.Map,
			Key:   clone(e.Key),
			Value: clone(e.Value),
		}
	case *ast.ChanType:
		r = &ast.ChanType{
			Begin: e.Begin,
			Arrow: e.Arrow,
			Dir:   e.Dir,
			Value: clone(e.Value),
		}
	case *ast.IndexExpr:
		r = &ast.IndexExpr{
			X:      clone(e.X),
			Lbrack: e.Lbrack,
			Index:  clone(e.Index),
			Rbrack: e.Rbrack,
		}
	case *ast.IndexListExpr:
		indices := make([]ast.Expr, len(e.Indices))
		for i, index := range e.Indices {
			indices[i] = clone(index)
		}
		r = &ast.IndexListExpr{
			X:       clone(e.X),
			Lbrack:  e.Lbrack,
			Indices: indices,
			Rbrack:  e.Rbrack,
		}
	case *ast.FuncType:
		ft := &ast.FuncType{
			Func: e.Func,
		}
		if ft.TypeParams, err = cloneFieldList(e.TypeParams); err != nil {
			return nil, err
		}
		if ft.Params, err = cloneFieldList(e.Params); err != nil {
			return nil, err
		}
		if ft.Results, err = cloneFieldList(e.Results); err != nil {
			return nil, err
		}
		r = ft
	case *ast.StructType:
		fields, ferr := cloneFieldList(e.Fields)
		if ferr != nil {
			return nil, ferr
		}
		r = &ast.StructType{
			Struct:     e.Struct,
			Fields:     fields,
			Incomplete: e.Incomplete,
		}
	case *ast.InterfaceType:
		methods, ferr := cloneFieldList(e.Methods)
		if ferr != nil {
			return nil, ferr
		}
		r = &ast.InterfaceType{
			Interface:  e.Interface,
			Methods:    methods,
			Incomplete: e.Incomplete,
		}
	default:
		return nil, &unsupportedExprError{e}
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func cloneIdent(id *ast.Ident) *ast.Ident {
	if id == nil {
		return nil
	}
	return &ast.Ident{
		NamePos: id.NamePos,
		Name:    id.Name,
	}
}

// cloneFieldList returns a deep copy of the field list fl.
func cloneFieldList(fl *ast.FieldList) (*ast.FieldList, error) {
	if fl == nil {
		return nil, nil
	}
	r := &ast.FieldList{
		Opening: fl.Opening,
		Closing: fl.Closing,
		List:    make([]*ast.Field, len(fl.List)),
	}
	for i, f := range fl.List {
		t, err := cloneExpr(f.Type)
		if err != nil {
			return nil, err
		}
		nf := &ast.Field{
			Type: t,
		}
		for _, id := range f.Names {
			nf.Names = append(nf.Names, cloneIdent(id))
		}
		if f.Tag != nil {
			tag := *f.Tag
			nf.Tag = &tag
		}
		r.List[i] = nf
	}
	return r, nil
}
