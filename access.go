// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

// Offset-addressed reads and in-place alterations.
//
// Every accessor validates offset and width against the current length
// before touching storage. Reads report (value, ok) and alterations report
// a success flag rather than an error: the only way these can fail is "not
// enough bytes", and a failed alteration leaves the buffer byte-for-byte
// unchanged. Decoding is the exact inverse of the append encoding under
// the byte order in effect at call time.

// ReadU8 returns the byte at offset, or ok=false if offset is out of
// bounds.
func (b *Buffer) ReadU8(offset int) (uint8, bool) {
	if offset < 0 || offset >= len(b.data) {
		return 0, false
	}
	return b.data[offset], true
}

// ReadU32 decodes the 4 bytes at offset in the buffer's byte order, or
// ok=false if the full width does not fit.
func (b *Buffer) ReadU32(offset int) (uint32, bool) {
	if offset < 0 || len(b.data)-offset < 4 {
		return 0, false
	}
	return b.order.Uint32(b.data[offset : offset+4]), true
}

// ReadU64 decodes the 8 bytes at offset in the buffer's byte order, or
// ok=false if the full width does not fit.
func (b *Buffer) ReadU64(offset int) (uint64, bool) {
	if offset < 0 || len(b.data)-offset < 8 {
		return 0, false
	}
	return b.order.Uint64(b.data[offset : offset+8]), true
}

// AlterU8 overwrites the byte at offset. It reports whether the write
// happened; out of bounds means no effect.
func (b *Buffer) AlterU8(offset int, v uint8) bool {
	if offset < 0 || offset >= len(b.data) {
		return false
	}
	b.data[offset] = v
	return true
}

// AlterU32 overwrites the 4 bytes at offset with v encoded in the buffer's
// byte order. It reports whether the write happened; a width that does not
// fit means no effect. The buffer never grows.
func (b *Buffer) AlterU32(offset int, v uint32) bool {
	if offset < 0 || len(b.data)-offset < 4 {
		return false
	}
	b.order.PutUint32(b.data[offset:offset+4], v)
	return true
}

// AlterU64 overwrites the 8 bytes at offset with v encoded in the buffer's
// byte order. It reports whether the write happened; a width that does not
// fit means no effect. The buffer never grows.
func (b *Buffer) AlterU64(offset int, v uint64) bool {
	if offset < 0 || len(b.data)-offset < 8 {
		return false
	}
	b.order.PutUint64(b.data[offset:offset+8], v)
	return true
}
