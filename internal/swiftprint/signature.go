package swiftprint

import (
	"strings"

	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// swiftMethodName derives a func's base name from its selector: the first
// keyword piece with its trailing colon stripped (spec.md §8's worked
// example `-(void)m` -> `func m()`, `-(NSString*)f:(NSObject*)o` -> a
// single-argument `f`, matches astreader's readMessageSend lowering a
// call's name the same way).
func swiftMethodName(sel intention.Selector) string {
	if len(sel.Pieces) == 0 {
		return ""
	}
	return stripColon(sel.Pieces[0])
}

func stripColon(piece string) string {
	return strings.TrimSuffix(piece, ":")
}

// writeParamList renders a method/global function's parameter list: the
// first parameter is unlabeled (`_ name: Type`), matching the call-site
// convention where the first selector piece becomes the callee name rather
// than an argument label; every later parameter is labeled with its own
// selector keyword.
func (w *Writer) writeParamList(sig intention.Signature) {
	w.b.WriteByte('(')
	for i, p := range sig.Params {
		if i > 0 {
			w.b.WriteString(", ")
		}
		label := ""
		if i > 0 && i < len(sig.Selector.Pieces) {
			label = stripColon(sig.Selector.Pieces[i])
		}
		w.writeParam(label, p.Name, p.Type, i == 0)
	}
	w.b.WriteByte(')')
}

// writeInitParamList renders an initializer's parameter list: every
// parameter, including the first, takes its own selector keyword as its
// label, since an initializer has no base-name word to absorb the first
// piece the way a regular method's func name does. The first piece also
// has its leading "initWith"/"init" stripped before becoming a label
// (`initWithName:age:` -> `init(name: String, age: Int)`), matching the
// convention every initializer selector in practice follows.
func (w *Writer) writeInitParamList(sig intention.Signature) {
	w.b.WriteByte('(')
	for i, p := range sig.Params {
		if i > 0 {
			w.b.WriteString(", ")
		}
		label := ""
		if i < len(sig.Selector.Pieces) {
			if i == 0 {
				label = firstInitParamLabel(sig.Selector.Pieces[0])
			} else {
				label = stripColon(sig.Selector.Pieces[i])
			}
		}
		w.writeParam(label, p.Name, p.Type, false)
	}
	w.b.WriteByte(')')
}

// firstInitParamLabel strips an initializer selector's leading "initWith"
// or "init" from its first keyword piece and lowercases the remainder's
// first letter, e.g. "initWithName:" -> "name", "initCount:" -> "count".
// If nothing remains after stripping (a bare "init:"), the piece's own
// colon-stripped text is used as a fallback label instead.
func firstInitParamLabel(piece string) string {
	rest := stripColon(piece)
	switch {
	case strings.HasPrefix(rest, "initWith"):
		rest = rest[len("initWith"):]
	case strings.HasPrefix(rest, "init"):
		rest = rest[len("init"):]
	}
	if rest == "" {
		return stripColon(piece)
	}
	return strings.ToLower(rest[:1]) + rest[1:]
}

func (w *Writer) writeParam(label, name string, typ swifttype.Type, unlabeledOk bool) {
	switch {
	case label == "" && unlabeledOk:
		w.b.WriteString("_ ")
		w.b.WriteString(name)
	case label == "" || label == name:
		w.b.WriteString(name)
	default:
		w.b.WriteString(label)
		w.b.WriteByte(' ')
		w.b.WriteString(name)
	}
	w.b.WriteString(": ")
	w.b.WriteString(typ.String())
}

func (w *Writer) writeReturnClause(ret swifttype.Type) {
	if ret.Kind == swifttype.EKind.Void() {
		return
	}
	w.b.WriteString(" -> ")
	w.b.WriteString(ret.String())
}
