// Package swiftprint renders a finalized intention.Collection as Swift
// source text (spec.md §6): typealiases, then globals, then types, in
// that order; per type, ivars → properties → initializers → methods.
// This is the one collaborator downstream of the intention model that is
// allowed to assume the pipeline has already run to completion — nothing
// here mutates an intention, it only reads.
package swiftprint

import (
	"strings"

	"github.com/johndpope/SwiftRewriter/internal/config"
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// Writer accumulates rendered Swift source. The zero value is usable for
// rendering a single standalone expression (see exprString); Print and its
// callers always go through NewWriter so cfg is populated.
type Writer struct {
	b      strings.Builder
	cfg    config.WriterConfig
	indent int
}

func NewWriter(cfg config.WriterConfig) *Writer {
	return &Writer{cfg: cfg}
}

func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.b.WriteString("    ")
	}
}

// Print renders every file in col, in Collection order, separated by a
// blank line, and returns the accumulated Swift source.
func Print(col *intention.Collection, cfg config.WriterConfig) string {
	w := NewWriter(cfg)
	for i, f := range col.Files {
		if i > 0 {
			w.b.WriteString("\n")
		}
		w.writeFile(f)
	}
	return w.b.String()
}

func (w *Writer) writeFile(f *intention.FileIntention) {
	w.writeHistoryComment(f, "file "+f.Name)
	for _, dir := range f.PreprocessorDirectives {
		w.b.WriteString("// ")
		w.b.WriteString(dir)
		w.b.WriteString("\n")
	}

	for _, t := range f.Typealiases {
		w.writeTypealias(t)
	}
	for _, g := range f.Globals {
		w.writeGlobalVar(g)
	}
	for _, g := range f.GlobalFuncs {
		w.writeGlobalFunc(g)
	}

	for _, s := range f.Structs {
		w.writeStruct(s)
	}
	for _, e := range f.Enums {
		w.writeEnum(e)
	}
	for _, p := range f.Protocols {
		w.writeProtocol(p)
	}
	for _, c := range f.Classes {
		w.writeClass(c)
	}
	for _, e := range f.Extensions {
		w.writeExtension(e)
	}
}

// writeHistoryComment renders subject's history log as a leading comment
// block, headed by label, when cfg.PrintIntentionHistory is set (spec.md
// §6); otherwise it is a no-op. subject must be non-nil whenever history
// printing is enabled.
func (w *Writer) writeHistoryComment(subject intention.Intention, label string) {
	if !w.cfg.PrintIntentionHistory {
		return
	}
	w.writeIndent()
	w.b.WriteString("// history: ")
	w.b.WriteString(label)
	w.b.WriteString("\n")
	for _, rec := range subject.History().Records() {
		w.writeIndent()
		w.b.WriteString("//   [")
		w.b.WriteString(rec.Pass)
		w.b.WriteString("] ")
		w.b.WriteString(rec.Message)
		w.b.WriteString("\n")
	}
}

func (w *Writer) writeTypealias(t *intention.TypealiasIntention) {
	w.writeHistoryComment(t, "typealias "+t.Name)
	w.writeIndent()
	w.b.WriteString("typealias ")
	w.b.WriteString(t.Name)
	w.b.WriteString(" = ")
	w.b.WriteString(t.AliasedType.String())
	w.b.WriteString("\n")
}

func (w *Writer) writeGlobalVar(g *intention.GlobalVariableIntention) {
	w.writeHistoryComment(g, "global "+g.Name)
	w.writeIndent()
	w.writeStorageKeyword(g.Storage)
	w.b.WriteString(g.Name)
	w.b.WriteString(": ")
	w.b.WriteString(g.Storage.Type.String())
	if g.Init != nil {
		w.b.WriteString(" = ")
		w.writeExpr(g.Init)
	}
	w.b.WriteString("\n")
}

func (w *Writer) writeStorageKeyword(s intention.StorageSpec) {
	if s.IsStatic {
		w.b.WriteString("static ")
	}
	if s.IsWeak {
		w.b.WriteString("weak ")
	}
	if s.IsConst {
		w.b.WriteString("let ")
	} else {
		w.b.WriteString("var ")
	}
}

func (w *Writer) writeGlobalFunc(g *intention.GlobalFunctionIntention) {
	w.writeHistoryComment(g, "func "+g.Name)
	w.writeIndent()
	w.b.WriteString("func ")
	w.b.WriteString(g.Name)
	w.writeParamList(g.Signature)
	w.writeReturnClause(g.Signature.ReturnType)
	w.writeFuncBody(g.Body)
}

func (w *Writer) writeStruct(s *intention.StructIntention) {
	w.writeHistoryComment(s, "struct "+s.Name)
	w.writeIndent()
	w.b.WriteString("struct ")
	w.b.WriteString(s.Name)
	w.b.WriteString(" {\n")
	w.indent++
	for _, f := range s.Fields {
		w.writeIndent()
		w.writeStorageKeyword(f.Storage)
		w.b.WriteString(f.Name)
		w.b.WriteString(": ")
		w.b.WriteString(f.Storage.Type.String())
		w.b.WriteString("\n")
	}
	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")
}

func (w *Writer) writeEnum(e *intention.EnumIntention) {
	w.writeHistoryComment(e, "enum "+e.Name)
	w.writeIndent()
	w.b.WriteString("enum ")
	w.b.WriteString(e.Name)
	w.b.WriteString(": ")
	w.b.WriteString(e.RawType)
	w.b.WriteString(" {\n")
	w.indent++
	for _, c := range e.Cases {
		w.writeIndent()
		w.b.WriteString("case ")
		w.b.WriteString(c.Name)
		w.b.WriteString("\n")
	}
	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")
}

func (w *Writer) writeProtocol(p *intention.ProtocolIntention) {
	w.writeHistoryComment(p, "protocol "+p.Name)
	w.writeIndent()
	w.b.WriteString("protocol ")
	w.b.WriteString(p.Name)
	w.writeInheritanceClause(p.ProtocolNames)
	w.b.WriteString(" {\n")
	w.indent++
	for _, prop := range p.Props {
		w.writeProtocolProperty(prop)
	}
	for _, m := range p.Methods {
		w.writeProtocolMethod(m)
	}
	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")
}

func (w *Writer) writeProtocolProperty(p *intention.PropertyIntention) {
	w.writeIndent()
	w.b.WriteString("var ")
	w.b.WriteString(p.Name)
	w.b.WriteString(": ")
	w.b.WriteString(p.Storage.Type.String())
	if p.IsReadonly() {
		w.b.WriteString(" { get }")
	} else {
		w.b.WriteString(" { get set }")
	}
	w.b.WriteString("\n")
}

func (w *Writer) writeProtocolMethod(m *intention.MethodIntention) {
	w.writeIndent()
	if m.Signature.IsClassMethod {
		w.b.WriteString("static ")
	}
	w.b.WriteString("func ")
	w.b.WriteString(swiftMethodName(m.Signature.Selector))
	w.writeParamList(m.Signature)
	w.writeReturnClause(m.Signature.ReturnType)
	w.b.WriteString("\n")
}

// writeInheritanceClause prints `: A, B` after a type name, translating a
// bare "NSObject" inherited-protocol entry to NSObjectProtocol (the Swift
// name for opting a protocol into class-only, objc-runtime-compatible
// conformance) unless the writer is configured to omit ObjC compatibility
// entirely, in which case it's dropped (spec.md §6 option table).
func (w *Writer) writeInheritanceClause(names []string) {
	var kept []string
	for _, n := range names {
		if n == "NSObject" {
			if w.cfg.OmitObjCCompatibility {
				continue
			}
			n = "NSObjectProtocol"
		}
		kept = append(kept, n)
	}
	if len(kept) == 0 {
		return
	}
	w.b.WriteString(": ")
	w.b.WriteString(strings.Join(kept, ", "))
}

func (w *Writer) writeObjCAttr() {
	if w.cfg.OmitObjCCompatibility {
		return
	}
	w.writeIndent()
	w.b.WriteString("@objc\n")
}

func (w *Writer) writeClass(c *intention.ClassIntention) {
	w.writeHistoryComment(c, "class "+c.Name)
	w.writeObjCAttr()
	w.writeIndent()
	w.b.WriteString("class ")
	w.b.WriteString(c.Name)

	var bases []string
	if c.SuperclassName != "" && !(c.SuperclassName == "NSObject" && w.cfg.OmitObjCCompatibility) {
		bases = append(bases, c.SuperclassName)
	}
	bases = append(bases, c.ProtocolNames...)
	if len(bases) > 0 {
		w.b.WriteString(": ")
		w.b.WriteString(strings.Join(bases, ", "))
	}
	w.b.WriteString(" {\n")
	w.indent++

	for _, iv := range c.Ivars {
		w.writeIvar(iv)
	}
	for _, p := range c.Props {
		w.writeProperty(p)
	}
	for _, in := range c.Inits {
		w.writeInit(in)
	}
	for _, m := range c.Methods {
		w.writeMethod(m)
	}

	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")
}

func (w *Writer) writeIvar(iv *intention.InstanceVariableIntention) {
	w.writeIndent()
	w.b.WriteString(accessKeyword(iv.Access))
	w.writeStorageKeyword(iv.Storage)
	w.b.WriteString(iv.Name)
	w.b.WriteString(": ")
	w.b.WriteString(iv.Storage.Type.String())
	w.b.WriteString("\n")
}

func accessKeyword(a cst.AccessLevel) string {
	switch a {
	case cst.AccessPrivate:
		return "private "
	case cst.AccessProtected, cst.AccessPackage:
		return "internal "
	default:
		return ""
	}
}

func (w *Writer) writeProperty(p *intention.PropertyIntention) {
	w.writeHistoryComment(p, "property "+p.Name)
	w.writeObjCAttr()
	switch p.Mode {
	case intention.EPropertyMode.ComputedGetter():
		w.writeComputedProperty(p, false)
	case intention.EPropertyMode.ComputedGetterSetter():
		w.writeComputedProperty(p, true)
	default:
		w.writeStoredProperty(p)
	}
}

func (w *Writer) writeStoredProperty(p *intention.PropertyIntention) {
	w.writeIndent()
	if p.AccessDowngrade != "" {
		w.b.WriteString(p.AccessDowngrade)
		w.b.WriteByte(' ')
	}
	if p.Storage.IsWeak {
		w.b.WriteString("weak ")
	}
	if p.IsReadonly() && p.AccessDowngrade == "" {
		w.b.WriteString("let ")
	} else {
		w.b.WriteString("var ")
	}
	w.b.WriteString(p.Name)
	w.b.WriteString(": ")
	w.b.WriteString(p.Storage.Type.String())
	w.b.WriteString("\n")
}

func (w *Writer) writeComputedProperty(p *intention.PropertyIntention, hasSetter bool) {
	w.writeIndent()
	w.b.WriteString("var ")
	w.b.WriteString(p.Name)
	w.b.WriteString(": ")
	w.b.WriteString(p.Storage.Type.String())
	w.b.WriteString(" {\n")
	w.indent++

	w.writeIndent()
	w.b.WriteString("get {\n")
	w.indent++
	w.writeStmtBody(p.GetterBody)
	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")

	if hasSetter {
		w.writeIndent()
		w.b.WriteString("set {\n")
		w.indent++
		w.writeStmtBody(p.SetterBody)
		w.indent--
		w.writeIndent()
		w.b.WriteString("}\n")
	}

	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")
}

func (w *Writer) writeInit(in *intention.InitializerIntention) {
	w.writeHistoryComment(in, "init")
	w.writeIndent()
	if in.IsOverride {
		w.b.WriteString("override ")
	}
	w.b.WriteString("init")
	w.writeInitParamList(in.Signature)
	w.writeFuncBody(in.Body)
}

func (w *Writer) writeMethod(m *intention.MethodIntention) {
	w.writeHistoryComment(m, "method "+m.Signature.Selector.String())
	w.writeIndent()
	if m.IsOverride {
		w.b.WriteString("override ")
	}
	if m.Signature.IsClassMethod {
		w.b.WriteString("static ")
	}
	w.b.WriteString("func ")
	w.b.WriteString(swiftMethodName(m.Signature.Selector))
	w.writeParamList(m.Signature)
	w.writeReturnClause(m.Signature.ReturnType)
	w.writeFuncBody(m.Body)
}

func (w *Writer) writeExtension(e *intention.ClassExtensionIntention) {
	if e.CategoryName != "" {
		w.writeIndent()
		w.b.WriteString("// MARK: - ")
		w.b.WriteString(e.CategoryName)
		w.b.WriteString("\n")
	}
	w.writeHistoryComment(e, "extension "+e.BaseClassName)
	w.writeIndent()
	w.b.WriteString("extension ")
	w.b.WriteString(e.BaseClassName)
	w.b.WriteString(" {\n")
	w.indent++

	for _, iv := range e.Ivars {
		w.writeIvar(iv)
	}
	for _, p := range e.Props {
		w.writeProperty(p)
	}
	for _, m := range e.Methods {
		w.writeMethod(m)
	}

	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")
}

// writeFuncBody renders a function/method/initializer's `{ ... }` block. A
// nil body (a class method declared in an @interface with no
// implementation) prints an empty block. Protocol requirements are
// rendered separately by writeProtocolMethod and never reach here.
func (w *Writer) writeFuncBody(body *swiftast.Stmt) {
	w.b.WriteString(" {\n")
	w.indent++
	w.writeStmtBody(body)
	w.indent--
	w.writeIndent()
	w.b.WriteString("}\n")
}
