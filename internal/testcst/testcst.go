// Package testcst builds internal/cst fixtures by hand, standing in for
// the external parser in tests (spec.md §1 excludes lexing/parsing from
// this repository's scope, so its own test suite needs a way to construct
// CSTs directly rather than through a real grammar).
package testcst

import "github.com/johndpope/SwiftRewriter/internal/cst"

// Pos builds a cst.Pos terse enough for table-driven fixtures.
func Pos(file string, line, token int) cst.Pos {
	return cst.Pos{File: file, Line: line, Token: token}
}

// TypeRef builds a cst.TypeRef with an optional nullability mark.
func TypeRef(text, nullabilityMark string) cst.TypeRef {
	return cst.TypeRef{Text: text, NullabilityMark: nullabilityMark}
}

// Interface builds a @interface ... @end Decl.
func Interface(name, superclass string, protocols ...string) cst.Decl {
	return cst.Decl{
		Kind:           cst.DeclInterface,
		Name:           name,
		SuperclassName: superclass,
		ProtocolNames:  protocols,
	}
}

// Implementation builds an @implementation ... @end Decl.
func Implementation(name string) cst.Decl {
	return cst.Decl{Kind: cst.DeclImplementation, Name: name}
}

// Category builds a named category Decl; categoryName == "" builds a
// class extension instead.
func Category(baseName, categoryName string) cst.Decl {
	return cst.Decl{Kind: cst.DeclCategory, Name: baseName, CategoryName: categoryName}
}

// Protocol builds a @protocol ... @end Decl.
func Protocol(name string, inherited ...string) cst.Decl {
	return cst.Decl{Kind: cst.DeclProtocol, Name: name, ProtocolNames: inherited}
}

// Property builds a PropertyDecl.
func Property(name string, typ cst.TypeRef, attrs cst.PropertyAttr) cst.PropertyDecl {
	return cst.PropertyDecl{Name: name, Type: typ, Attrs: attrs}
}

// Ivar builds an IvarDecl.
func Ivar(name string, typ cst.TypeRef, access cst.AccessLevel) cst.IvarDecl {
	return cst.IvarDecl{Name: name, Type: typ, Access: access}
}

// Method builds a MethodDecl from a selector's keyword pieces and matching
// parameter list; pieces and params must be the same length, or pieces
// must have exactly one entry and params be empty for a unary selector.
func Method(pieces []string, params []cst.Param, returnType cst.TypeRef, isClassMethod bool, body *cst.Stmt) cst.MethodDecl {
	return cst.MethodDecl{
		Signature: cst.Signature{
			SelectorPieces: pieces,
			Params:         params,
			ReturnType:     returnType,
			IsClassMethod:  isClassMethod,
		},
		Body: body,
	}
}

// Param builds a cst.Param.
func Param(name string, typ cst.TypeRef) cst.Param {
	return cst.Param{Name: name, Type: typ}
}
