// Package swifttype models the Swift-side type descriptor produced by the
// Type Mapper (spec.md §3/§4.1): a tagged variant, with optionality carried
// as a property of the descriptor rather than of whatever holds it.
package swifttype

// Kind tags which arm of the Type variant is populated.
type Kind uint8

const (
	kindNominal Kind = iota
	kindArray
	kindDictionary
	kindPointer
	kindBlock
	kindProtocolComposition
	kindAnyObject
	kindVoid
	kindGenericPlaceholder
)

var EKind = Kind(kindNominal)

func (Kind) Nominal() Kind              { return kindNominal }
func (Kind) Array() Kind                { return kindArray }
func (Kind) Dictionary() Kind           { return kindDictionary }
func (Kind) Pointer() Kind              { return kindPointer }
func (Kind) Block() Kind                { return kindBlock }
func (Kind) ProtocolComposition() Kind  { return kindProtocolComposition }
func (Kind) AnyObject() Kind            { return kindAnyObject }
func (Kind) Void() Kind                 { return kindVoid }
func (Kind) GenericPlaceholder() Kind   { return kindGenericPlaceholder }

// Optionality distinguishes a plain type, `T?`, and `T!`.
type Optionality uint8

const (
	optNone Optionality = iota
	optOptional
	optImplicitlyUnwrapped
)

var EOptionality = Optionality(optNone)

func (Optionality) None() Optionality                 { return optNone }
func (Optionality) Optional() Optionality              { return optOptional }
func (Optionality) ImplicitlyUnwrapped() Optionality   { return optImplicitlyUnwrapped }

// Type is the Swift-side type descriptor. Only the fields relevant to Kind
// are populated; callers switch on Kind, never on a Go runtime type test
// (Design Note §9 "dynamic type identification").
type Type struct {
	Kind        Kind
	Optionality Optionality

	// kindNominal / kindGenericPlaceholder
	Name         string
	GenericArgs  []Type

	// kindArray / kindPointer: Element is the held type
	Element *Type

	// kindDictionary
	Key   *Type
	Value *Type

	// kindBlock
	Params []Type
	Return *Type

	// kindProtocolComposition
	ProtocolNames []string
}

func Nominal(name string, genericArgs ...Type) Type {
	return Type{Kind: kindNominal, Name: name, GenericArgs: genericArgs}
}

func Array(element Type) Type {
	return Type{Kind: kindArray, Element: &element}
}

func Dictionary(key, value Type) Type {
	return Type{Kind: kindDictionary, Key: &key, Value: &value}
}

func Pointer(element Type) Type {
	return Type{Kind: kindPointer, Element: &element}
}

func Block(ret Type, params ...Type) Type {
	return Type{Kind: kindBlock, Return: &ret, Params: params}
}

func ProtocolComposition(names ...string) Type {
	return Type{Kind: kindProtocolComposition, ProtocolNames: names}
}

func AnyObject() Type { return Type{Kind: kindAnyObject} }
func Void() Type      { return Type{Kind: kindVoid} }

func GenericPlaceholder(name string) Type {
	return Type{Kind: kindGenericPlaceholder, Name: name}
}

// WithOptionality returns a copy of t with its optionality replaced.
func (t Type) WithOptionality(o Optionality) Type {
	t.Optionality = o
	return t
}

// String renders the type the way it would appear in emitted Swift source
// (used by tests and by history-record provenance comments; the real
// pretty-printer in internal/swiftprint calls the same logic).
func (t Type) String() string {
	base := t.baseString()
	switch t.Optionality {
	case optOptional:
		return base + "?"
	case optImplicitlyUnwrapped:
		return base + "!"
	default:
		return base
	}
}

func (t Type) baseString() string {
	switch t.Kind {
	case kindNominal:
		if len(t.GenericArgs) == 0 {
			return t.Name
		}
		args := ""
		for i, a := range t.GenericArgs {
			if i > 0 {
				args += ", "
			}
			args += a.String()
		}
		return t.Name + "<" + args + ">"
	case kindArray:
		return "[" + t.Element.String() + "]"
	case kindDictionary:
		return "[" + t.Key.String() + ": " + t.Value.String() + "]"
	case kindPointer:
		return "UnsafeMutablePointer<" + t.Element.String() + ">"
	case kindBlock:
		params := ""
		for i, p := range t.Params {
			if i > 0 {
				params += ", "
			}
			params += p.String()
		}
		return "(" + params + ") -> " + t.Return.String()
	case kindProtocolComposition:
		out := ""
		for i, n := range t.ProtocolNames {
			if i > 0 {
				out += " & "
			}
			out += n
		}
		return out
	case kindAnyObject:
		return "AnyObject"
	case kindVoid:
		return "Void"
	case kindGenericPlaceholder:
		return t.Name
	default:
		return "/* unknown */"
	}
}
