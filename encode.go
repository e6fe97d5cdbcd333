package urlparams

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/urlparams/internal/escape"
)

// Pair is one key=value unit of the final query string. A key is only ever
// emitted together with its value string, which may be empty.
type Pair struct {
	Key   string
	Value string
}

// EscapeMode selects the percent-encoding applied to each emitted key and
// value.
type EscapeMode int

const (
	// EscapeNone emits keys and values verbatim. Values containing '&',
	// '=', or non-ASCII text will produce an ambiguous query string;
	// callers own the escaping.
	EscapeNone EscapeMode = iota

	// EscapeForm applies application/x-www-form-urlencoded escaping
	// (space becomes '+').
	EscapeForm

	// EscapeQuery applies RFC 3986 query-component escaping
	// (space becomes "%20").
	EscapeQuery
)

// Option configures an encode call.
type Option func(*encoder)

// Escaping selects the percent-encoding mode. The default is EscapeNone.
func Escaping(mode EscapeMode) Option {
	return func(e *encoder) { e.mode = mode }
}

// encoder holds the transient state of one encode call: the pairs collected
// so far and the current key context. It is created per call and discarded
// when the call returns, so concurrent encodes never share state.
type encoder struct {
	pairs []Pair
	key   string // current field key; output pairs are emitted under it
	path  string // current key path for error reporting, e.g. "filter[1]"
	mode  EscapeMode
}

// Encode transforms a record into a query string: fields joined by '&',
// each rendered key=value, in declaration order. A record with zero output
// pairs encodes to the empty string.
//
// The top-level value must be a Record (an Optional wrapping one is
// unwrapped; an absent Optional encodes to the empty string). Scalars,
// sequences, and variants at the top level have no parameter key and are
// rejected.
//
// Escaping defaults to EscapeNone: callers must not assume reserved
// characters are percent-encoded unless they pass Escaping(EscapeForm) or
// Escaping(EscapeQuery).
func Encode(v Value, opts ...Option) (string, error) {
	pairs, err := EncodePairs(v, opts...)
	if err != nil {
		return "", err
	}
	return joinPairs(pairs), nil
}

// EncodePairs is Encode without the final join: it returns the ordered
// output pairs a record contributes. Useful when the caller assembles the
// URL itself.
func EncodePairs(v Value, opts ...Option) ([]Pair, error) {
	e := &encoder{}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.encodeTopLevel(v); err != nil {
		return nil, err
	}
	return e.pairs, nil
}

// Marshal asks m to describe itself as a Record, then encodes it.
func Marshal(m Marshaler, opts ...Option) (string, error) {
	rec, err := m.MarshalParams()
	if err != nil {
		return "", err
	}
	return Encode(rec, opts...)
}

// Encoder writes encoded query strings to an io.Writer. The whole encode is
// buffered first; nothing reaches the writer unless the encode succeeds, so
// a failed encode never leaves a partial query string behind.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode encodes v and writes the result to the underlying writer.
func (enc *Encoder) Encode(v Value) error {
	s, err := Encode(v, enc.opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(enc.w, s)
	return err
}

func (e *encoder) encodeTopLevel(v Value) error {
	switch val := v.(type) {
	case Record:
		return e.encodeRecord(val)
	case Optional:
		// The wrapper is transparent at the top level: Some(record)
		// encodes the record, absent encodes to the empty string.
		if !val.Present() {
			return nil
		}
		return e.encodeTopLevel(val.inner)
	case nil:
		return &Error{
			Code:    ErrCodeTopLevelShape,
			Message: "top-level value must be a record, got nil",
		}
	default:
		return newTopLevelError(v)
	}
}

func (e *encoder) encodeRecord(r Record) error {
	for _, f := range r.fields {
		e.key = f.Key
		e.path = f.Key
		if err := e.encodeField(f.Value); err != nil {
			return err
		}
	}
	return nil
}

// encodeField dispatches on the shape of one field value and emits its
// output pairs under the current key. The switch is exhaustive over the
// sealed Value set.
func (e *encoder) encodeField(v Value) error {
	switch val := v.(type) {
	case nil:
		// A nil field value behaves like an absent Optional.
		return nil
	case String:
		e.emit(string(val))
		return nil
	case Int:
		e.emit(formatInt(int64(val)))
		return nil
	case Uint:
		e.emit(formatUint(uint64(val)))
		return nil
	case Bool:
		e.emit(formatBool(bool(val)))
		return nil
	case Float:
		s, err := formatFloat(float64(val))
		if err != nil {
			return newUnrepresentableError(e.path, err)
		}
		e.emit(s)
		return nil
	case Text:
		b, err := val.m.MarshalText()
		if err != nil {
			return newUnrepresentableError(e.path, err)
		}
		e.emit(string(b))
		return nil
	case Optional:
		if !val.Present() {
			return nil
		}
		return e.encodeField(val.inner)
	case Seq:
		base := e.path
		for i, elem := range val {
			e.path = fmt.Sprintf("%s[%d]", base, i)
			if err := e.encodeField(elem); err != nil {
				return err
			}
		}
		e.path = base
		return nil
	case Variant:
		if val.Payload != nil {
			return newVariantDataError(e.path, val.Name)
		}
		e.emit(val.Name)
		return nil
	case Record:
		return newNestedRecordError(e.path)
	default:
		// Unreachable while Value stays sealed.
		return fmt.Errorf("unsupported shape %T at %s", v, e.path)
	}
}

// emit appends one output pair under the current key, applying the selected
// escaping to both key and value.
func (e *encoder) emit(value string) {
	key := e.key
	switch e.mode {
	case EscapeForm:
		key, value = escape.Form(key), escape.Form(value)
	case EscapeQuery:
		key, value = escape.Query(key), escape.Query(value)
	}
	e.pairs = append(e.pairs, Pair{Key: key, Value: value})
}

func joinPairs(pairs []Pair) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}
