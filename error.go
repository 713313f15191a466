package loosen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
)

var (
	// ErrUnsupportedParam is returned (wrapped in an *Error) when a
	// function has a parameter that cannot be part of a tuple.
	ErrUnsupportedParam = errors.New("unsupported parameter kind")

	// ErrUnsupportedFunc is returned (wrapped in an *Error) when a
	// function cannot be loosened for reasons other than
	// its parameters.
	ErrUnsupportedFunc = errors.New("unsupported function")
)

// Kind classifies the reason that a function cannot be loosened.
type Kind int

const (
	_ Kind = iota

	// KindReceiver is used for methods.
	KindReceiver

	// KindUnnamed is used for parameters without a name.
	KindUnnamed

	// KindBlank is used for parameters named _.
	KindBlank

	// KindVariadic is used for variadic parameters.
	KindVariadic

	// KindExternal is used for functions implemented or
	// called outside Go: those without a body and those
	// exported to C.
	KindExternal

	// KindUncallable is used for functions that cannot be
	// referred to, such as init.
	KindUncallable

	// KindArity is used for functions with more parameters
	// than the largest tuple type holds.
	KindArity

	// KindUnsupportedExpr is used when a parameter or result type
	// contains an expression that cannot be copied.
	KindUnsupportedExpr

	// KindShadowed is used when a type parameter has the name
	// that the wrapper would use to refer to the tuple package.
	KindShadowed
)

var kindStrings = map[Kind]string{
	KindReceiver:        "receiver",
	KindUnnamed:         "unnamed parameter",
	KindBlank:           "blank parameter",
	KindVariadic:        "variadic parameter",
	KindExternal:        "external function",
	KindUncallable:      "uncallable function",
	KindArity:           "too many parameters",
	KindUnsupportedExpr: "unsupported expression",
	KindShadowed:        "shadowed tuple package",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error describes a function declaration that cannot be loosened.
type Error struct {
	// Pos holds the position of the offending part of the
	// declaration. It is the zero Position when no file
	// set was provided.
	Pos token.Position

	// Func holds the name of the function.
	Func string

	// Kind classifies the error.
	Kind Kind

	// Detail holds a description of the problem.
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cannot loosen %s: %s", e.Func, e.Detail)
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

// Unwrap returns ErrUnsupportedParam or ErrUnsupportedFunc
// according to the kind of the error.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindReceiver, KindUnnamed, KindBlank, KindVariadic:
		return ErrUnsupportedParam
	}
	return ErrUnsupportedFunc
}

func newError(fset *token.FileSet, pos token.Pos, decl *ast.FuncDecl, kind Kind, format string, args ...any) *Error {
	e := &Error{
		Func:   decl.Name.Name,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
	if fset != nil && pos.IsValid() {
		e.Pos = fset.Position(pos)
	}
	return e
}

// exprError converts an error from cloneExpr into an *Error.
func exprError(fset *token.FileSet, decl *ast.FuncDecl, err error) *Error {
	var pos token.Pos
	if e, ok := err.(*unsupportedExprError); ok {
		pos = e.expr.Pos()
	}
	return newError(fset, pos, decl, KindUnsupportedExpr, "%v", err)
}
