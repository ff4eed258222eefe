package raid

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rizkytaufiq/gf2n/gf2n"
)

func randomDisks(r *rand.Rand, count, size int) [][]byte {
	disks := make([][]byte, count)
	for i := range disks {
		disks[i] = make([]byte, size)
		r.Read(disks[i])
	}
	return disks
}

func TestParity1RecoversSingleDisk(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	disks := randomDisks(r, 5, 64)
	p, err := Parity1(disks)
	if err != nil {
		t.Fatal(err)
	}

	lost := 2
	original := disks[lost]
	disks[lost] = nil

	recovered := make([]byte, len(p))
	copy(recovered, p)
	for i, d := range disks {
		if i == lost {
			continue
		}
		for j, b := range d {
			recovered[j] ^= b
		}
	}
	if !bytes.Equal(recovered, original) {
		t.Fatalf("XOR-recovered disk does not match original")
	}
}

func TestParity2ReconstructsTwoMissingDisks(t *testing.T) {
	f := gf2n.Default8()
	r := rand.New(rand.NewSource(2))
	disks := randomDisks(r, 4, 32)
	p, q, err := Parity2(f, disks)
	if err != nil {
		t.Fatal(err)
	}

	originals := [][]byte{
		append([]byte{}, disks[1]...),
		append([]byte{}, disks[3]...),
	}
	lost := []int{1, 3}
	work := make([][]byte, len(disks))
	copy(work, disks)
	for _, idx := range lost {
		work[idx] = nil
	}

	if err := Reconstruct(f, work, [][]byte{p, q}, lost); err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	for i, idx := range lost {
		if !bytes.Equal(work[idx], originals[i]) {
			t.Fatalf("disk %d not recovered: got %x want %x", idx, work[idx], originals[i])
		}
	}
}

func TestParity3ReconstructsThreeMissingDisks(t *testing.T) {
	f := gf2n.Default8()
	r := rand.New(rand.NewSource(3))
	disks := randomDisks(r, 6, 16)
	p, q, rr, err := Parity3(f, disks)
	if err != nil {
		t.Fatal(err)
	}

	lost := []int{0, 2, 5}
	originals := make([][]byte, len(lost))
	for i, idx := range lost {
		originals[i] = append([]byte{}, disks[idx]...)
	}
	work := make([][]byte, len(disks))
	copy(work, disks)
	for _, idx := range lost {
		work[idx] = nil
	}

	if err := Reconstruct(f, work, [][]byte{p, q, rr}, lost); err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	for i, idx := range lost {
		if !bytes.Equal(work[idx], originals[i]) {
			t.Fatalf("disk %d not recovered: got %x want %x", idx, work[idx], originals[i])
		}
	}
}

func TestReconstructTooManyMissing(t *testing.T) {
	f := gf2n.Default8()
	r := rand.New(rand.NewSource(4))
	disks := randomDisks(r, 4, 8)
	p, err := Parity1(disks)
	if err != nil {
		t.Fatal(err)
	}
	disks[0], disks[1] = nil, nil
	if err := Reconstruct(f, disks, [][]byte{p}, []int{0, 1}); err != ErrTooManyMissing {
		t.Fatalf("expected ErrTooManyMissing, got %v", err)
	}
}
