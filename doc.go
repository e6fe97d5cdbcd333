// Package urlparams serializes structured values into URL parameter
// strings: an ordered sequence of key=value pairs joined by '&', suitable
// for building HTTP request URLs.
//
// A value is described by a closed set of shapes: scalars (String, Int,
// Uint, Float, Bool, Text), Optional, Seq, Variant, and Record. Encoding is
// a single depth-first traversal in field declaration order:
//
//   - scalars render to their canonical text form under the current key,
//   - an absent Optional contributes nothing,
//   - a Seq of N elements contributes N pairs sharing one key,
//   - a Variant contributes its declared case name,
//   - a Record nested inside a field is rejected rather than flattened.
//
// Encoding is deterministic and side-effect-free: the same input always
// yields byte-identical output, and a failure aborts the whole call with a
// typed Error instead of returning partial output.
//
// Types describe themselves once via the Marshaler interface:
//
//	type SearchRequest struct {
//		Film    string
//		PerPage *int
//		Filter  []string
//	}
//
//	func (r SearchRequest) MarshalParams() (urlparams.Record, error) {
//		perPage := urlparams.None
//		if r.PerPage != nil {
//			perPage = urlparams.Some(urlparams.Int(*r.PerPage))
//		}
//		filter := make(urlparams.Seq, len(r.Filter))
//		for i, f := range r.Filter {
//			filter[i] = urlparams.Case(f)
//		}
//		return urlparams.NewRecord(
//			urlparams.F("film", urlparams.String(r.Film)),
//			urlparams.F("per_page", perPage),
//			urlparams.F("filter", filter),
//		), nil
//	}
//
// Percent-encoding is off by default; pass Escaping(EscapeForm) or
// Escaping(EscapeQuery) when emitted text may contain reserved characters.
package urlparams
