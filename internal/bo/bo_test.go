package bo

import (
	"encoding/binary"
	"testing"
)

func TestNativeIsLittleOrBigEndian(t *testing.T) {
	switch Native() {
	case binary.LittleEndian, binary.BigEndian:
	default:
		t.Fatalf("unexpected byte order: %v", Native())
	}
}

func TestNativeIsStable(t *testing.T) {
	if Native() != Native() {
		t.Fatal("Native changed between calls")
	}
}
