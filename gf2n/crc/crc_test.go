package crc

import (
	"testing"

	"github.com/rizkytaufiq/gf2n/gf2n"
)

func TestScenario4CRC32C(t *testing.T) {
	table := CRC32C()
	got := table.Checksum([]byte("Hello World!"))
	want := uint64(0xfe6cf1dc)
	if got != want {
		t.Fatalf("CRC32C(%q): got %#x want %#x", "Hello World!", got, want)
	}
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	table := CRC32C()
	data := []byte("the quick brown fox jumps over the lazy dog")

	oneShot := table.Checksum(data)

	reg := uint64(0)
	mid := len(data) / 3
	reg = table.Update(reg, data[:mid])
	reg = table.Update(reg, data[mid:])
	if reg != oneShot {
		t.Fatalf("incremental update diverged from one-shot: got %#x want %#x", reg, oneShot)
	}
}

func TestGenericTableSingleByteMatchesFieldArithmetic(t *testing.T) {
	f := gf2n.Default8()
	table := NewTable(f)
	for b := 0; b < 256; b++ {
		want := f.FromUint64(uint64(b))
		for i := 0; i < int(f.Width()); i++ {
			want = want.Mul(f.FromUint64(2))
		}
		got := table.Checksum([]byte{byte(b)})
		if got != want.Uint64() {
			t.Fatalf("byte %#x: got %#x want %#x", b, got, want.Uint64())
		}
	}
}
