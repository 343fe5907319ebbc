//go:build !amd64 && !arm64 && !386 && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !arm && !s390x && !ppc64 && !mips && !mips64

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import (
	"encoding/binary"
	"unsafe"
)

var native = probe()

// probe inspects the in-memory layout of a known constant once at init.
func probe() binary.ByteOrder {
	x := uint16(0x0102)
	if (*(*[2]byte)(unsafe.Pointer(&x)))[0] == 0x01 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Native reports the probed byte order on otherwise-unlisted ports.
func Native() binary.ByteOrder { return native }
