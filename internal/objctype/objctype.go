// Package objctype models the Objective-C type descriptor handed to the
// Type Mapper: what the external parser's CST carries for a declared type
// (spec.md §4.1), before nullability context is applied.
package objctype

// Kind tags which arm of the Objective-C type variant is populated.
type Kind uint8

const (
	kindID Kind = iota
	kindIDWithProtocols
	kindNamedPointer
	kindGenericPointer // e.g. NSArray<T>*
	kindPrimitive
	kindBlock
	kindVoid
)

var EKind = Kind(kindID)

func (Kind) ID() Kind              { return kindID }
func (Kind) IDWithProtocols() Kind { return kindIDWithProtocols }
func (Kind) NamedPointer() Kind    { return kindNamedPointer }
func (Kind) GenericPointer() Kind  { return kindGenericPointer }
func (Kind) Primitive() Kind       { return kindPrimitive }
func (Kind) Block() Kind           { return kindBlock }
func (Kind) Void() Kind            { return kindVoid }

// Type is the Objective-C side type descriptor fed into typemap.Map.
type Type struct {
	Kind Kind

	// kindNamedPointer / kindGenericPointer / kindPrimitive: the class name,
	// generic base name (e.g. "NSArray"), or primitive spelling (e.g. "NSInteger").
	Name string

	// kindIDWithProtocols
	ProtocolNames []string

	// kindGenericPointer: the single generic argument, if present (nil for
	// a bare `NSArray*` with no angle-bracket argument).
	GenericArg *Type

	// kindBlock
	Params []Type
	Return *Type
}

func ID() Type { return Type{Kind: kindID} }

func IDWithProtocols(names ...string) Type {
	return Type{Kind: kindIDWithProtocols, ProtocolNames: names}
}

func NamedPointer(name string) Type {
	return Type{Kind: kindNamedPointer, Name: name}
}

func GenericPointer(baseName string, arg *Type) Type {
	return Type{Kind: kindGenericPointer, Name: baseName, GenericArg: arg}
}

func Primitive(name string) Type {
	return Type{Kind: kindPrimitive, Name: name}
}

func Block(ret Type, params ...Type) Type {
	return Type{Kind: kindBlock, Return: &ret, Params: params}
}

func Void() Type { return Type{Kind: kindVoid} }

// KnownPrimitives is the set of C/Objective-C scalar spellings the Type
// Mapper always maps to a non-optional Swift value type (spec.md §4.1).
var KnownPrimitives = map[string]string{
	"BOOL":      "Bool",
	"NSInteger": "Int",
	"NSUInteger": "UInt",
	"CGFloat":   "CGFloat",
	"float":     "Float",
	"double":    "Double",
	"int":       "Int32",
	"int8_t":    "Int8",
	"int16_t":   "Int16",
	"int32_t":   "Int32",
	"int64_t":   "Int64",
	"uint8_t":   "UInt8",
	"uint16_t":  "UInt16",
	"uint32_t":  "UInt32",
	"uint64_t":  "UInt64",
	"char":      "Int8",
	"short":     "Int16",
	"long":      "Int",
	"NSTimeInterval": "TimeInterval",
}
