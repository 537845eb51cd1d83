package astreader

import (
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// ReadFile builds one intention.FileIntention from the Decls an external
// parser produced for a single source (spec.md §4.3). It preserves
// declaration order exactly as it was in decls (required for §4.4's "final
// emitted order of types in a file follows insertion order"), and leaves
// cross-file/cross-Decl merging entirely to the Intention Passes pipeline
// that runs afterward — this function never looks at any other file.
func ReadFile(ctx Context, decls []cst.Decl) *intention.FileIntention {
	file := intention.NewFile(cst.Pos{File: ctx.FileName}, false, ctx.FileName)

	for i := range decls {
		readDecl(ctx, file, &decls[i])
	}

	return file
}

func readDecl(ctx Context, file *intention.FileIntention, d *cst.Decl) {
	nonnull := ctx.InNonnullRegion(d.Pos.Token)

	switch d.Kind {
	case cst.DeclInterface, cst.DeclImplementation:
		class := intention.NewClass(d.Pos, nonnull, d.Name)
		class.SuperclassName = d.SuperclassName
		if class.SuperclassName == "" {
			// An @interface/@implementation with no declared superclass is
			// still, implicitly, an NSObject subclass (spec.md §8's worked
			// example: "class C: NSObject {}" under default options, and
			// only "class C {}" once -omit-objc-compatibility drops it).
			class.SuperclassName = "NSObject"
		}
		class.ProtocolNames = d.ProtocolNames
		class.Synthesizes = d.Synthesizes
		class.FromImplementation = d.Kind == cst.DeclImplementation
		readMembers(ctx, d, func(iv *intention.InstanceVariableIntention) { class.AddIvar(iv) },
			func(p *intention.PropertyIntention) { class.AddProperty(p) },
			func(m *intention.MethodIntention) { class.AddMethod(m) })
		for i := range d.Inits {
			class.AddInit(readInit(ctx, &d.Inits[i], nonnull))
		}
		file.AddClass(class)

	case cst.DeclCategory, cst.DeclCategoryImplementation:
		ext := intention.NewClassExtension(d.Pos, nonnull, d.Name, d.CategoryName)
		readMembers(ctx, d, func(iv *intention.InstanceVariableIntention) { ext.AddIvar(iv) },
			func(p *intention.PropertyIntention) { ext.AddProperty(p) },
			func(m *intention.MethodIntention) { ext.AddMethod(m) })
		file.AddExtension(ext)

	case cst.DeclProtocol:
		proto := intention.NewProtocol(d.Pos, nonnull, d.Name)
		proto.ProtocolNames = d.ProtocolNames
		for i := range d.Properties {
			proto.AddProperty(readProperty(ctx, &d.Properties[i], nonnull))
		}
		for i := range d.Methods {
			proto.AddMethod(readMethod(ctx, &d.Methods[i], nonnull))
		}
		file.AddProtocol(proto)

	case cst.DeclTypedefEnum:
		e := intention.NewEnum(d.Pos, nonnull, d.Name, d.RawType)
		for _, c := range d.Cases {
			e.AddCase(intention.EnumCase{Name: c.Name, Pos: c.Pos})
		}
		file.AddEnum(e)

	case cst.DeclTypedefStruct:
		s := intention.NewStruct(d.Pos, nonnull, d.Name)
		for i := range d.Ivars {
			s.AddField(readIvar(ctx, &d.Ivars[i], nonnull))
		}
		file.AddStruct(s)

	case cst.DeclTypedefSimple:
		file.AddTypealias(intention.NewTypealias(d.Pos, nonnull, d.Name, resolveType(ctx, d.AliasedType)))

	case cst.DeclGlobalVariable:
		storage := readStorageSpec(ctx, d.VarStorage)
		lowered := readOptionalExpr(ctx, d.VarInit)
		file.AddGlobal(intention.NewGlobalVariable(d.Pos, nonnull, d.Name, storage, lowered))

	case cst.DeclGlobalFunction:
		sig := readSignature(ctx, d.Signature, nonnull)
		body := readOptionalStmt(ctx, d.Body)
		file.AddGlobalFunc(intention.NewGlobalFunction(d.Pos, nonnull, d.Name, sig, body))

	case cst.DeclPreprocessorDirective:
		file.PreprocessorDirectives = append(file.PreprocessorDirectives, d.RawText)
	}
}

func readMembers(
	ctx Context, d *cst.Decl,
	addIvar func(*intention.InstanceVariableIntention),
	addProperty func(*intention.PropertyIntention),
	addMethod func(*intention.MethodIntention),
) {
	nonnull := ctx.InNonnullRegion(d.Pos.Token)
	for i := range d.Ivars {
		addIvar(readIvar(ctx, &d.Ivars[i], nonnull))
	}
	for i := range d.Properties {
		addProperty(readProperty(ctx, &d.Properties[i], nonnull))
	}
	for i := range d.Methods {
		addMethod(readMethod(ctx, &d.Methods[i], nonnull))
	}
}

func readIvar(ctx Context, d *cst.IvarDecl, nonnull bool) *intention.InstanceVariableIntention {
	storage := intention.StorageSpec{Type: resolveType(ctx, d.Type)}
	return intention.NewInstanceVariable(d.Pos, nonnull, d.Name, storage, d.Access)
}

func readProperty(ctx Context, d *cst.PropertyDecl, nonnull bool) *intention.PropertyIntention {
	storage := intention.StorageSpec{
		Type:   resolveType(ctx, d.Type),
		IsWeak: d.Attrs&cst.PropAttrWeak != 0,
	}
	p := intention.NewProperty(d.Pos, nonnull, d.Name, storage, d.Attrs)
	p.GetterName = d.GetterName
	p.SetterName = d.SetterName
	return p
}

func readMethod(ctx Context, d *cst.MethodDecl, nonnull bool) *intention.MethodIntention {
	sig := readSignature(ctx, d.Signature, nonnull)
	body := readOptionalStmt(ctx, d.Body)
	m := intention.NewMethod(d.Pos, nonnull, sig, body)
	m.IsOptional = d.IsOptional
	return m
}

func readInit(ctx Context, d *cst.InitDecl, nonnull bool) *intention.InitializerIntention {
	sig := readSignature(ctx, d.Signature, nonnull)
	body := readOptionalStmt(ctx, d.Body)
	return intention.NewInitializer(d.Pos, nonnull, sig, body)
}

func readSignature(ctx Context, sig cst.Signature, nonnull bool) intention.Signature {
	params := make([]intention.ParamSignature, len(sig.Params))
	for i, p := range sig.Params {
		var annotation nullability.Annotation
		_ = annotation.Parse(p.Type.NullabilityMark)
		params[i] = intention.ParamSignature{
			Name:          p.Name,
			Type:          resolveType(ctx, p.Type),
			RawAnnotation: annotation,
		}
	}
	var retAnnotation nullability.Annotation
	_ = retAnnotation.Parse(sig.ReturnType.NullabilityMark)

	return intention.Signature{
		Selector:            intention.NewSelector(sig.SelectorPieces...),
		Params:              params,
		ReturnType:          resolveType(ctx, sig.ReturnType),
		ReturnRawAnnotation: retAnnotation,
		IsClassMethod:       sig.IsClassMethod,
	}
}

func readStorageSpec(ctx Context, s cst.StorageSpec) intention.StorageSpec {
	return intention.StorageSpec{
		Type:     resolveType(ctx, s.Type),
		IsConst:  s.IsConst,
		IsWeak:   s.IsWeak,
		IsStatic: s.IsStatic,
	}
}

func readOptionalStmt(ctx Context, s *cst.Stmt) *swiftast.Stmt {
	if s == nil {
		return nil
	}
	out := readStmt(ctx, s)
	return &out
}

func readOptionalExpr(ctx Context, e *cst.Expr) *swiftast.Expr {
	if e == nil {
		return nil
	}
	out := readExpr(ctx, e)
	return &out
}
