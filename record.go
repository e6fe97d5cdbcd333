package urlparams

// Field is one (key, value) pair of a Record. Key is the name under which
// the value's output pairs are emitted.
type Field struct {
	Key   string
	Value Value
}

// F is a shorthand for Field for ergonomic construction.
// Example: NewRecord(F("cursor", Some(Int(42))), F("username", String("boxdot")))
func F(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// Record is a struct-like value: a fixed set of named fields in declaration
// order. Fields are kept as a slice, not a map, because pair order is the
// wire format.
type Record struct {
	fields []Field
}

func (Record) value() {}

// NewRecord creates a Record from fields, preserving their order.
func NewRecord(fields ...Field) Record {
	return Record{fields: fields}
}

// Add appends a field after the existing ones.
func (r *Record) Add(key string, v Value) {
	r.fields = append(r.fields, Field{Key: key, Value: v})
}

// Fields returns the record's fields in declaration order.
func (r Record) Fields() []Field {
	return r.fields
}

// Len returns the number of declared fields, including ones that may encode
// to zero output pairs.
func (r Record) Len() int {
	return len(r.fields)
}

// Marshaler is the describable-record capability: a type that can state its
// own fields once, in a stable declared order. Implementations build a
// Record; the encoder never needs type-specific knowledge beyond that.
type Marshaler interface {
	MarshalParams() (Record, error)
}
