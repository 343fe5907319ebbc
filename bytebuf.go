// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bytebuf provides an owned, growable byte buffer with a configurable
// byte order for fixed-width unsigned integers.
//
// Semantics and design:
//   - Exclusive ownership: a Buffer always owns a private copy of its bytes.
//     It is not a view over caller memory; FromBytes copies its input.
//   - Byte order is a pure data-layout policy: encode and decode go through
//     the configured binary.ByteOrder explicitly, never through host memory
//     layout. The caller always exchanges ordinary host-native values.
//   - Bounds-checked access: offset reads return (value, ok) and in-place
//     alterations return a success flag. Out-of-range access never panics,
//     never grows the buffer and never partially writes.
//   - Single owner: no internal locking. Exactly one logical owner accesses
//     a Buffer at a time; share across goroutines only with external
//     serialization.
//
// The buffer is a primitive for building and inspecting binary structures
// (file headers, packets, offset tables). It defines no wire format of its
// own.
package bytebuf

import (
	"encoding/binary"

	"code.hybscloud.com/bytebuf/internal/bo"
)

// Buffer is a growable byte sequence with a byte-order mode for multi-byte
// integer access. The zero value is not ready for use; construct with New
// or FromBytes.
type Buffer struct {
	order binary.ByteOrder
	data  []byte
}

// New returns an empty Buffer.
//
// The byte order defaults to the build target's native order (bo.Native),
// mirroring the architecture the program runs on. Callers that need a
// portable layout should say so explicitly with WithOrder,
// WithNetworkOrder or WithNativeOrder.
func New(opts ...Option) *Buffer {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	var data []byte
	if o.Capacity > 0 {
		data = make([]byte, 0, o.Capacity)
	}
	return &Buffer{order: o.Order, data: data}
}

// FromBytes returns a Buffer holding a copy of p. The buffer owns the copy;
// later changes to p are not observed. Options apply as in New.
func FromBytes(p []byte, opts ...Option) *Buffer {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	capHint := len(p)
	if o.Capacity > capHint {
		capHint = o.Capacity
	}
	data := make([]byte, len(p), capHint)
	copy(data, p)
	return &Buffer{order: o.Order, data: data}
}

// SetOrder replaces the byte order used by subsequent multi-byte appends,
// reads and alterations. Bytes already stored are never rewritten.
func (b *Buffer) SetOrder(order binary.ByteOrder) { b.order = order }

// Order reports the byte order currently in effect.
func (b *Buffer) Order() binary.ByteOrder { return b.order }

// Bytes returns the buffer's contents as a borrowed slice. The slice stays
// valid only until the next mutating call; callers needing an independent
// copy use CopyBytes.
func (b *Buffer) Bytes() []byte { return b.data }

// CopyBytes returns an independent copy of the buffer's contents.
func (b *Buffer) CopyBytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Len reports the number of bytes currently stored.
func (b *Buffer) Len() int { return len(b.data) }

// OffsetU32 returns the current length as a uint32, for recording where the
// next field will start while writing 32-bit offset tables.
func (b *Buffer) OffsetU32() uint32 { return uint32(len(b.data)) }

// OffsetU64 returns the current length as a uint64, for 64-bit offset
// tables.
func (b *Buffer) OffsetU64() uint64 { return uint64(len(b.data)) }

// Reset truncates the buffer to zero length, keeping the allocated storage
// for reuse. The byte order is unchanged.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// Grow ensures capacity for at least n more bytes, so that the next n
// appended bytes do not reallocate. Len is unchanged. Negative n is a
// no-op.
func (b *Buffer) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(b.data)-len(b.data) >= n {
		return
	}
	data := make([]byte, len(b.data), len(b.data)+n)
	copy(data, b.data)
	b.data = data
}

func defaultOptions() Options {
	return Options{Order: bo.Native()}
}
