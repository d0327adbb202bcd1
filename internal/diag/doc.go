// Package diag defines the diagnostic model shared by the quill CLI layers.
//
//   - Provide deterministic, serialisable records for literal parse failures
//     found while inspecting or checking literal lists.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
//
// Package diag performs no formatting or IO: rendering lives in
// internal/diagfmt, orchestration in internal/driver. The library package
// lit reports single *lit.Error values; this package wraps them with file
// context so many of them can be aggregated, sorted and rendered together.
package diag
