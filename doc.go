// Package respcodec implements a zero-copy codec for the textual,
// length-prefixed, CRLF-framed wire protocol used by Redis-family in-memory
// stores. It supports two protocol revisions: V2 (package v2, five leaf
// types plus a homogeneous array) and V3 (package v3, adds boolean, double,
// big number, explicit null, bulk error, verbatim string, unordered map,
// unordered set, out-of-band push, and attributes).
//
// Components:
//   - v2, v3: revision facades. Each exposes Parse (parse-one), Iterator
//     (parse-iter), and Encode/EncodeLen/EncodeTo over that revision's Frame
//     type.
//   - convert: V2<->V3 frame conversion per the overlap rules in spec §4.5.
//   - internal/scanner: byte-level CRLF line scanner and tag classifier
//     shared by both revisions.
//
// Decoding never copies payload bytes: every bytes-carrying Frame field is a
// subslice of the buffer passed to Parse or NewIterator. The buffer must
// outlive any Frame derived from it.
//
// An Iterator is not safe for concurrent use by multiple goroutines; distinct
// Iterators over distinct buffers are fully independent and may run in
// parallel with no shared state.
package respcodec
