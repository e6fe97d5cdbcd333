package urlparams

import (
	"encoding"
	"fmt"
)

// Value is a sealed interface over the closed set of shapes the encoder
// understands. Only String, Int, Uint, Float, Bool, Text, Optional, Seq,
// Variant, and Record implement it.
//
// Keeping the set closed means the encoder's dispatch is exhaustive: a shape
// that cannot be rendered is rejected with a typed error instead of being
// silently stringified.
type Value interface {
	value() // Sealed - only the types in this package implement it
}

// String is a text scalar. It is rendered as-is; no normalization or
// trimming is applied.
type String string

func (String) value() {}

// Int is a signed integer scalar, rendered in decimal.
type Int int64

func (Int) value() {}

// Uint is an unsigned integer scalar, rendered in decimal.
type Uint uint64

func (Uint) value() {}

// Float is a floating-point scalar. NaN and infinities have no query-string
// representation and fail the encode.
type Float float64

func (Float) value() {}

// Bool is a boolean scalar, rendered as "true" or "false".
type Bool bool

func (Bool) value() {}

// Text adapts any encoding.TextMarshaler into a scalar. The marshaled text
// is emitted verbatim; a marshal failure surfaces as an unrepresentable
// scalar error carrying the field's key path.
type Text struct {
	m encoding.TextMarshaler
}

func (Text) value() {}

// NewText wraps m as a Text scalar.
func NewText(m encoding.TextMarshaler) Text {
	return Text{m: m}
}

// Optional wraps a value that may be absent. An absent Optional contributes
// zero output pairs for its field.
type Optional struct {
	inner Value
}

func (Optional) value() {}

// None is the absent Optional.
var None = Optional{}

// Some wraps v as a present Optional. Some(nil) is equivalent to None.
func Some(v Value) Optional {
	return Optional{inner: v}
}

// Present reports whether the Optional holds a value.
func (o Optional) Present() bool {
	return o.inner != nil
}

// Seq is an ordered repetition of values sharing one key. Each element
// becomes its own output pair; elements are never joined into a single
// value.
type Seq []Value

func (Seq) value() {}

// Variant is one case of a closed enumeration, identified by its declared
// name. It renders as the name only; a non-nil Payload is rejected during
// encoding because the flat key=value format has no place for it.
type Variant struct {
	Name    string
	Payload Value
}

func (Variant) value() {}

// Case returns a payload-free Variant with the given declared name.
func Case(name string) Variant {
	return Variant{Name: name}
}

// kindName describes a value's shape for error messages.
func kindName(v Value) string {
	switch v.(type) {
	case String, Int, Uint, Float, Bool, Text:
		return "scalar"
	case Optional:
		return "optional"
	case Seq:
		return "sequence"
	case Variant:
		return "variant"
	case Record:
		return "record"
	default:
		return fmt.Sprintf("%T", v)
	}
}
