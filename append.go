// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

const wordSize = 4

// AppendU8 appends a single byte.
func (b *Buffer) AppendU8(v uint8) { b.data = append(b.data, v) }

// AppendU32 encodes v in the buffer's byte order and appends the 4 bytes.
func (b *Buffer) AppendU32(v uint32) {
	var scratch [4]byte
	b.order.PutUint32(scratch[:], v)
	b.data = append(b.data, scratch[:]...)
}

// AppendU64 encodes v in the buffer's byte order and appends the 8 bytes.
func (b *Buffer) AppendU64(v uint64) {
	var scratch [8]byte
	b.order.PutUint64(scratch[:], v)
	b.data = append(b.data, scratch[:]...)
}

// Append appends a copy of p.
func (b *Buffer) Append(p []byte) { b.data = append(b.data, p...) }

// AppendString appends the UTF-8 bytes of s with no terminator and no
// length prefix.
func (b *Buffer) AppendString(s string) { b.data = append(b.data, s...) }

// AppendNullByte appends a single zero byte.
func (b *Buffer) AppendNullByte() { b.data = append(b.data, 0x00) }

// AppendCString appends the UTF-8 bytes of s followed by a zero byte.
func (b *Buffer) AppendCString(s string) {
	b.data = append(b.data, s...)
	b.data = append(b.data, 0x00)
}

// PadToWordBoundary appends 4 − Len()%4 zero bytes. It always appends at
// least one byte: a buffer already on a word boundary gains a full word of
// padding. Callers that want alignment-only padding use
// AlignToWordBoundary.
func (b *Buffer) PadToWordBoundary() {
	pad := wordSize - len(b.data)%wordSize
	for i := 0; i < pad; i++ {
		b.data = append(b.data, 0x00)
	}
}

// AlignToWordBoundary appends zero bytes until Len() is a multiple of 4,
// appending nothing when the buffer is already aligned.
func (b *Buffer) AlignToWordBoundary() {
	if rem := len(b.data) % wordSize; rem != 0 {
		for i := rem; i < wordSize; i++ {
			b.data = append(b.data, 0x00)
		}
	}
}

// Write appends a copy of p and returns len(p). It implements io.Writer;
// the error is always nil, appends cannot fail.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteByte appends a single byte. It implements io.ByteWriter; the error
// is always nil.
func (b *Buffer) WriteByte(c byte) error {
	b.data = append(b.data, c)
	return nil
}

// WriteString appends the bytes of s and returns len(s). It implements
// io.StringWriter; the error is always nil.
func (b *Buffer) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}
