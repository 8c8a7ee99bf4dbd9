// Package pool reuses output buffers across repeated Encode calls, e.g. a
// server writing frames to many connections in a loop. It wraps
// valyala/bytebufferpool; callers are bound by the same discipline that
// package documents: don't hold a *Buffer past the matching Put.
package pool

import "github.com/valyala/bytebufferpool"

// Pool hands out reusable byte buffers sized to the caller's recent
// encoding traffic. The zero value is ready to use.
type Pool struct {
	bbp bytebufferpool.Pool
}

// Get returns an empty buffer from the pool.
func (p *Pool) Get() *bytebufferpool.ByteBuffer { return p.bbp.Get() }

// Put returns buf to the pool for reuse. buf must not be used afterward.
func (p *Pool) Put(buf *bytebufferpool.ByteBuffer) { p.bbp.Put(buf) }

// EncodeWith runs encode against a pooled buffer's backing slice, returning
// a copy of the result and releasing the buffer back to the pool. Use this
// when the caller needs the encoded bytes to outlive the call (e.g. to hand
// to another goroutine); for a write that completes before returning, Get
// the buffer directly and write buf.B without copying.
func (p *Pool) EncodeWith(encode func(dst []byte) []byte) []byte {
	buf := p.Get()
	defer p.Put(buf)
	buf.B = encode(buf.B[:0])
	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out
}
