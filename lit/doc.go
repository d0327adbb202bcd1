// Package lit decodes quoted literal tokens (plain and raw string
// literals, plain and raw byte string literals, and boolean literals)
// from an already-isolated source span into validated values.
//
// The package does not tokenize: callers hand it the exact span of one
// literal (quotes, prefixes and hash fences included) and get back either
// an immutable value with lazy access to the decoded content, or an
// *Error carrying the kind of the first violation and its byte position
// within the span.
//
// All parse functions are generic over Buffer, so the same decode logic
// runs over a borrowed string or an owned []byte without duplication.
package lit
