// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"io"

	"code.hybscloud.com/iox"
)

// Reader is a consuming cursor over a Buffer. It advances through the
// buffer's bytes in order, decoding multi-byte integers with the buffer's
// byte order as it stands at each call.
//
// A Reader observes appends made after its creation: the single owner may
// interleave appending to the Buffer and consuming from the Reader. It
// does not survive Reset or other truncation of the underlying Buffer.
//
// Two drain behaviors exist:
//   - NewReader: a drained cursor reports io.EOF, the usual io.Reader
//     contract for a fixed snapshot of work.
//   - NewTailReader: a drained cursor reports ErrWouldBlock instead. The
//     cursor is not done, it has merely caught up with the writer; the
//     owner appends more and retries. Any returned count is real progress.
type Reader struct {
	buf  *Buffer
	off  int
	tail bool
}

// NewReader returns a cursor over b that reports io.EOF when drained.
func NewReader(b *Buffer) *Reader { return &Reader{buf: b} }

// NewTailReader returns a cursor over b that reports ErrWouldBlock when it
// has consumed every byte currently stored. See Reader for the retry
// contract.
func NewTailReader(b *Buffer) *Reader { return &Reader{buf: b, tail: true} }

// Read copies up to len(p) unconsumed bytes into p. It implements
// io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= len(r.buf.data) {
		return 0, r.drained()
	}
	n := copy(p, r.buf.data[r.off:])
	r.off += n
	return n, nil
}

// ReadByte consumes and returns one byte. It implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.buf.data) {
		return 0, r.drained()
	}
	c := r.buf.data[r.off]
	r.off++
	return c, nil
}

// U8 consumes one byte, or ok=false without advancing if none remain.
func (r *Reader) U8() (uint8, bool) {
	v, ok := r.buf.ReadU8(r.off)
	if ok {
		r.off++
	}
	return v, ok
}

// U32 consumes 4 bytes decoded in the buffer's byte order, or ok=false
// without advancing if fewer remain.
func (r *Reader) U32() (uint32, bool) {
	v, ok := r.buf.ReadU32(r.off)
	if ok {
		r.off += 4
	}
	return v, ok
}

// U64 consumes 8 bytes decoded in the buffer's byte order, or ok=false
// without advancing if fewer remain.
func (r *Reader) U64() (uint64, bool) {
	v, ok := r.buf.ReadU64(r.off)
	if ok {
		r.off += 8
	}
	return v, ok
}

// Skip consumes n bytes without decoding them. It reports whether n bytes
// were available; on false the cursor does not move.
func (r *Reader) Skip(n int) bool {
	if n < 0 || len(r.buf.data)-r.off < n {
		return false
	}
	r.off += n
	return true
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int { return r.off }

// Remaining returns the number of unconsumed bytes currently stored.
func (r *Reader) Remaining() int {
	if n := len(r.buf.data) - r.off; n > 0 {
		return n
	}
	return 0
}

// Empty reports whether the cursor has consumed every byte currently
// stored.
func (r *Reader) Empty() bool { return r.off >= len(r.buf.data) }

func (r *Reader) drained() error {
	if r.tail {
		return ErrWouldBlock
	}
	return io.EOF
}

// ErrWouldBlock means “no further progress without new data”.
//
// It is an expected, non-failure control-flow signal returned by tail
// readers that have caught up with the buffer's write head. Any returned
// byte count still represents real progress.
//
// Caller action: append more bytes to the buffer (or switch to a plain
// Reader for EOF semantics) and retry.
var ErrWouldBlock = iox.ErrWouldBlock
