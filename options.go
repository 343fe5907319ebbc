// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"encoding/binary"

	"code.hybscloud.com/bytebuf/internal/bo"
)

// Options configures a Buffer at construction time.
type Options struct {
	// Order is the byte order used for multi-byte integer encode/decode.
	// The two recognized modes are binary.LittleEndian and binary.BigEndian.
	Order binary.ByteOrder

	// Capacity pre-allocates backing storage (bytes). Zero means no
	// pre-allocation.
	Capacity int
}

type Option func(*Options)

// WithOrder sets the byte order explicitly.
func WithOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.Order = order }
}

// Byte-order policy, single source of truth:
//   - Network → BigEndian (network byte order)
//   - Native  → the build target's byte order (multi-arch friendly)

// WithNetworkOrder selects big-endian, the network byte order.
func WithNetworkOrder() Option {
	return func(o *Options) { o.Order = binary.BigEndian }
}

// WithNativeOrder selects the build target's native byte order. This is
// also the construction default.
func WithNativeOrder() Option {
	return func(o *Options) { o.Order = bo.Native() }
}

// WithCapacity pre-allocates storage for at least n bytes.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}
