package bytebuf_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"code.hybscloud.com/bytebuf"
	"code.hybscloud.com/bytebuf/internal/bo"
)

func TestNew_Defaults(t *testing.T) {
	b := bytebuf.New()
	if b.Len() != 0 {
		t.Fatalf("new buffer length: %d want 0", b.Len())
	}
	if b.Order() != bo.Native() {
		t.Fatalf("default order: %v want native (%v)", b.Order(), bo.Native())
	}
	if len(b.Bytes()) != 0 {
		t.Fatalf("new buffer not empty: %v", b.Bytes())
	}
}

func TestNew_OrderOptions(t *testing.T) {
	if got := bytebuf.New(bytebuf.WithOrder(binary.BigEndian)).Order(); got != binary.BigEndian {
		t.Fatalf("WithOrder: %v want BigEndian", got)
	}
	if got := bytebuf.New(bytebuf.WithNetworkOrder()).Order(); got != binary.BigEndian {
		t.Fatalf("WithNetworkOrder: %v want BigEndian", got)
	}
	if got := bytebuf.New(bytebuf.WithNativeOrder()).Order(); got != bo.Native() {
		t.Fatalf("WithNativeOrder: %v want %v", got, bo.Native())
	}
}

func TestFromBytes_Copies(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03}
	b := bytebuf.FromBytes(src)
	if !bytes.Equal(b.Bytes(), src) {
		t.Fatalf("contents: %x want %x", b.Bytes(), src)
	}

	// The buffer owns its copy: mutating the source must not show through.
	src[0] = 0xFF
	if b.Bytes()[0] != 0x01 {
		t.Fatalf("buffer aliases caller memory: %x", b.Bytes())
	}
}

func TestCopyBytes_Independent(t *testing.T) {
	b := bytebuf.FromBytes([]byte{0xAA, 0xBB})
	snap := b.CopyBytes()
	if !b.AlterU8(0, 0x00) {
		t.Fatal("AlterU8 failed")
	}
	if snap[0] != 0xAA {
		t.Fatalf("CopyBytes shares storage: %x", snap)
	}
	if b.Bytes()[0] != 0x00 {
		t.Fatalf("alteration lost: %x", b.Bytes())
	}
}

func TestLen_TracksAppends(t *testing.T) {
	b := bytebuf.New()
	const count = 666
	for i := 0; i < count; i++ {
		b.AppendU8(0xAA)
	}
	if b.Len() != count {
		t.Fatalf("length: %d want %d", b.Len(), count)
	}
}

func TestOffsetAccessors(t *testing.T) {
	b := bytebuf.New()
	b.AppendString("hdr")
	if b.OffsetU32() != 3 {
		t.Fatalf("OffsetU32: %d want 3", b.OffsetU32())
	}
	if b.OffsetU64() != 3 {
		t.Fatalf("OffsetU64: %d want 3", b.OffsetU64())
	}
	b.AppendU64(0)
	if b.OffsetU32() != 11 || b.OffsetU64() != 11 {
		t.Fatalf("offsets after append: %d/%d want 11", b.OffsetU32(), b.OffsetU64())
	}
}

func TestReset_KeepsOrder(t *testing.T) {
	b := bytebuf.New(bytebuf.WithOrder(binary.BigEndian))
	b.AppendU32(0xAABBCCDD)
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("length after Reset: %d", b.Len())
	}
	if b.Order() != binary.BigEndian {
		t.Fatalf("order after Reset: %v", b.Order())
	}
	b.AppendU32(0x01020304)
	if !bytes.Equal(b.Bytes(), []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Fatalf("append after Reset: %x", b.Bytes())
	}
}

func TestGrow_PreservesContents(t *testing.T) {
	b := bytebuf.FromBytes([]byte{1, 2, 3})
	b.Grow(1 << 10)
	if !bytes.Equal(b.Bytes(), []byte{1, 2, 3}) {
		t.Fatalf("contents after Grow: %x", b.Bytes())
	}
	if b.Len() != 3 {
		t.Fatalf("length after Grow: %d", b.Len())
	}
	b.Grow(-1) // no-op
	if b.Len() != 3 {
		t.Fatalf("length after Grow(-1): %d", b.Len())
	}
}

func TestWithCapacity_NoLengthChange(t *testing.T) {
	b := bytebuf.New(bytebuf.WithCapacity(256))
	if b.Len() != 0 {
		t.Fatalf("length: %d want 0", b.Len())
	}
	bb := bytebuf.FromBytes([]byte{9}, bytebuf.WithCapacity(256))
	if bb.Len() != 1 || bb.Bytes()[0] != 9 {
		t.Fatalf("FromBytes with capacity: len=%d bytes=%x", bb.Len(), bb.Bytes())
	}
}
