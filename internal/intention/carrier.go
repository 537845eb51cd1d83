package intention

import "github.com/johndpope/SwiftRewriter/internal/swiftast"

// CarrierKind tags which concrete body-carrying intention a BodyCarrier
// wraps (spec.md §4.5).
type CarrierKind uint8

const (
	CarrierGlobal CarrierKind = iota
	CarrierInit
	CarrierMethod
	CarrierProperty
)

var ECarrierKind = CarrierKind(CarrierGlobal)

func (CarrierKind) Global() CarrierKind   { return CarrierGlobal }
func (CarrierKind) Init() CarrierKind     { return CarrierInit }
func (CarrierKind) Method() CarrierKind   { return CarrierMethod }
func (CarrierKind) Property() CarrierKind { return CarrierProperty }

// BodyCarrier is the tagged variant `{ global(fn), init(ctor), method(m),
// property(p, isSetter) }` from spec.md §4.5: a uniform handle onto
// whichever intention owns the body a Function Body Queue work item
// carries, so downstream expression passes can rewrite the body and, when
// they need to, walk back up to the declaration that owns it (its
// signature, its nonnull context, its history).
type BodyCarrier struct {
	Kind CarrierKind

	Global   *GlobalFunctionIntention
	Init     *InitializerIntention
	Method   *MethodIntention
	Property *PropertyIntention
	// IsSetter distinguishes the property's setter body from its getter
	// body when Kind is CarrierProperty.
	IsSetter bool
}

func GlobalCarrier(fn *GlobalFunctionIntention) BodyCarrier {
	return BodyCarrier{Kind: ECarrierKind.Global(), Global: fn}
}

func InitCarrier(ctor *InitializerIntention) BodyCarrier {
	return BodyCarrier{Kind: ECarrierKind.Init(), Init: ctor}
}

func MethodCarrier(m *MethodIntention) BodyCarrier {
	return BodyCarrier{Kind: ECarrierKind.Method(), Method: m}
}

func PropertyCarrier(p *PropertyIntention, isSetter bool) BodyCarrier {
	return BodyCarrier{Kind: ECarrierKind.Property(), Property: p, IsSetter: isSetter}
}

// Body returns the statement tree this carrier wraps, or nil if the
// carried declaration has none (an abstract protocol method, a property
// with no accessor body yet).
func (c BodyCarrier) Body() *swiftast.Stmt {
	switch c.Kind {
	case ECarrierKind.Global():
		return c.Global.Body
	case ECarrierKind.Init():
		return c.Init.Body
	case ECarrierKind.Method():
		return c.Method.Body
	case ECarrierKind.Property():
		if c.IsSetter {
			return c.Property.SetterBody
		}
		return c.Property.GetterBody
	default:
		return nil
	}
}

// SetBody writes back a rewritten statement tree to whichever declaration
// this carrier wraps.
func (c BodyCarrier) SetBody(s *swiftast.Stmt) {
	switch c.Kind {
	case ECarrierKind.Global():
		c.Global.Body = s
	case ECarrierKind.Init():
		c.Init.Body = s
	case ECarrierKind.Method():
		c.Method.Body = s
	case ECarrierKind.Property():
		if c.IsSetter {
			c.Property.SetterBody = s
		} else {
			c.Property.GetterBody = s
		}
	}
}

// SourceLoc returns the intention this carrier wraps (nil for an unknown
// kind), whose Base carries the source location and history that
// diagnostics emitted by expression passes attach to.
func (c BodyCarrier) SourceLoc() Intention {
	switch c.Kind {
	case ECarrierKind.Global():
		return c.Global
	case ECarrierKind.Init():
		return c.Init
	case ECarrierKind.Method():
		return c.Method
	case ECarrierKind.Property():
		return c.Property
	default:
		return nil
	}
}
