package scanner

// Kind identifies the tag of a classified token. Kinds not meaningful for a
// given revision are simply never produced by that revision's classifier.
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
	KindSet
	KindMap
	KindPush
	KindAttribute
)

// Token describes one classified line (plus, for length-prefixed kinds, its
// payload line) as a span into the scanner's buffer.
//
// For leaf kinds carrying inline text (SimpleString, SimpleError, Double,
// BigNumber, Boolean), Start/End bound the text content of the framing
// line, with no CRLF. For Integer, N holds the parsed value and Start/End
// are unused. For length-prefixed kinds (BulkString,
// BulkError, VerbatimString), Start/End bound exactly the declared-length
// payload, with no CRLF. For Null, Start == End == 0 and both are unused.
// For containers (Array, Set, Map, Push, Attribute), N holds the parsed
// count and Start/End are unused.
type Token struct {
	Kind  Kind
	Start int
	End   int
	N     int64
}
