package exportfmt

// Bytes is an identity codec for already-encoded wire bytes. Encode/Decode
// return the input unchanged; used by the CLI's "raw" output format to
// bypass frameview entirely and emit each frame's wire bytes exactly as they
// appeared in the input.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }
