// Package v3 implements the extended RESP revision: the six V2 variants
// plus boolean, double, big number, an explicit null tag, bulk error,
// verbatim string, unordered map, unordered set, out-of-band push, and an
// attribute prefix that attaches a side map of metadata to the frame that
// follows it. Every bytes-carrying field in a decoded Frame is a subslice
// of the buffer passed to Parse or NewIterator; the buffer must outlive the
// Frame.
package v3

// Kind identifies which variant a Frame holds.
type Kind uint8

const (
	KindSimpleString Kind = iota
	KindSimpleError
	KindInteger
	KindBulkString
	KindNull
	KindArray
	KindBoolean
	KindDouble
	KindBigNumber
	KindBulkError
	KindVerbatimString
	KindMap
	KindSet
	KindPush
)

func (k Kind) String() string {
	switch k {
	case KindSimpleString:
		return "SimpleString"
	case KindSimpleError:
		return "SimpleError"
	case KindInteger:
		return "Integer"
	case KindBulkString:
		return "BulkString"
	case KindNull:
		return "Null"
	case KindArray:
		return "Array"
	case KindBoolean:
		return "Boolean"
	case KindDouble:
		return "Double"
	case KindBigNumber:
		return "BigNumber"
	case KindBulkError:
		return "BulkError"
	case KindVerbatimString:
		return "VerbatimString"
	case KindMap:
		return "Map"
	case KindSet:
		return "Set"
	case KindPush:
		return "Push"
	default:
		return "Unknown"
	}
}

// Frame is the sum type of all V3 values.
type Frame interface {
	Kind() Kind
	isFrame()
}

// Attributed is implemented by every Frame variant capable of carrying an
// attribute map: every leaf and Array, but not Null, Map, Set, or Push.
type Attributed interface {
	Frame
	GetAttrs() *Map
	withAttrs(*Map) Frame
}

// Pair is one key/value entry of a Map or one attribute entry.
type Pair struct {
	Key   Frame
	Value Frame
}

// SimpleString holds a "+" frame. Value is a subslice of the input buffer.
type SimpleString struct {
	Value []byte
	Attrs *Map
}

func (SimpleString) Kind() Kind             { return KindSimpleString }
func (SimpleString) isFrame()               {}
func (f SimpleString) GetAttrs() *Map       { return f.Attrs }
func (f SimpleString) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// SimpleError holds a "-" frame. Value is a subslice of the input buffer.
type SimpleError struct {
	Value []byte
	Attrs *Map
}

func (SimpleError) Kind() Kind             { return KindSimpleError }
func (SimpleError) isFrame()               {}
func (f SimpleError) GetAttrs() *Map       { return f.Attrs }
func (f SimpleError) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// Integer holds a ":" frame.
type Integer struct {
	Value int64
	Attrs *Map
}

func (Integer) Kind() Kind             { return KindInteger }
func (Integer) isFrame()               {}
func (f Integer) GetAttrs() *Map       { return f.Attrs }
func (f Integer) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// BulkString holds a "$" frame. Value is a subslice of the input buffer and
// may contain arbitrary bytes.
type BulkString struct {
	Value []byte
	Attrs *Map
}

func (BulkString) Kind() Kind             { return KindBulkString }
func (BulkString) isFrame()               {}
func (f BulkString) GetAttrs() *Map       { return f.Attrs }
func (f BulkString) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// Null holds a "_" frame. Null never carries attributes.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) isFrame()   {}

// Array holds a "*" frame.
type Array struct {
	Items []Frame
	Attrs *Map
}

func (Array) Kind() Kind             { return KindArray }
func (Array) isFrame()               {}
func (f Array) GetAttrs() *Map       { return f.Attrs }
func (f Array) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// Boolean holds a "#" frame.
type Boolean struct {
	Value bool
	Attrs *Map
}

func (Boolean) Kind() Kind             { return KindBoolean }
func (Boolean) isFrame()               {}
func (f Boolean) GetAttrs() *Map       { return f.Attrs }
func (f Boolean) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// Double holds a "," frame.
type Double struct {
	Value float64
	Attrs *Map
}

func (Double) Kind() Kind             { return KindDouble }
func (Double) isFrame()               {}
func (f Double) GetAttrs() *Map       { return f.Attrs }
func (f Double) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// BigNumber holds a "(" frame. Value is the raw decimal digits (with an
// optional leading '-' or '+'), kept as text since the value may exceed any fixed
// machine integer width.
type BigNumber struct {
	Value []byte
	Attrs *Map
}

func (BigNumber) Kind() Kind             { return KindBigNumber }
func (BigNumber) isFrame()               {}
func (f BigNumber) GetAttrs() *Map       { return f.Attrs }
func (f BigNumber) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// BulkError holds a "!" frame.
type BulkError struct {
	Value []byte
	Attrs *Map
}

func (BulkError) Kind() Kind             { return KindBulkError }
func (BulkError) isFrame()               {}
func (f BulkError) GetAttrs() *Map       { return f.Attrs }
func (f BulkError) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// VerbatimString holds a "=" frame: a three-byte format tag (e.g. "txt",
// "mkd") followed by ':' and the content.
type VerbatimString struct {
	Format [3]byte
	Value  []byte
	Attrs  *Map
}

func (VerbatimString) Kind() Kind             { return KindVerbatimString }
func (VerbatimString) isFrame()               {}
func (f VerbatimString) GetAttrs() *Map       { return f.Attrs }
func (f VerbatimString) withAttrs(m *Map) Frame { f.Attrs = m; return f }

// Map holds a "%" frame: N key/value pairs. Map never carries attributes,
// and a key may not itself be a Map, Set, or Push; a value may be any frame.
type Map struct {
	Pairs []Pair
}

func (Map) Kind() Kind { return KindMap }
func (Map) isFrame()   {}

// Set holds a "~" frame: N elements, none of which may be a Map, Set, or
// Push. Set never carries attributes.
type Set struct {
	Items []Frame
}

func (Set) Kind() Kind { return KindSet }
func (Set) isFrame()   {}

// Push holds a ">" frame: an out-of-band message, structurally identical to
// Array. Push never carries attributes.
type Push struct {
	Items []Frame
}

func (Push) Kind() Kind { return KindPush }
func (Push) isFrame()   {}

// attrsEligible reports whether k may carry an attribute map.
func attrsEligible(k Kind) bool {
	switch k {
	case KindNull, KindMap, KindSet, KindPush:
		return false
	default:
		return true
	}
}

// isRestrictedAsMember reports whether f is disallowed as a Map key or Set
// element: Map, Set, and Push may not nest directly inside one
// another at that position (checked one level deep only).
func isRestrictedAsMember(f Frame) bool {
	switch f.Kind() {
	case KindMap, KindSet, KindPush:
		return true
	default:
		return false
	}
}
