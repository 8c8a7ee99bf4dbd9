// Package exportfmt serializes frameview.View values -- and, for the raw
// passthrough case, already-encoded wire bytes -- into interchange formats
// for callers that need decoded frames outside this module's process (logs,
// message queues, HTTP responses).
package exportfmt

// Codec encodes and decodes a value of type V to and from a byte slice.
// Implementations return an error on malformed input; Encode/Decode are
// pure (no side effects).
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
