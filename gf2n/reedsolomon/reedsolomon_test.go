package reedsolomon

import (
	"bytes"
	"testing"

	"github.com/rizkytaufiq/gf2n/gf2n"
)

func TestEncodeDecodeNoErrors(t *testing.T) {
	f := gf2n.Default8()
	enc, err := NewEncoder(20, 6, f)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := NewDecoder(20, 6, f)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("reed solomon test!!")
	codeword, err := enc.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := dec.Decode(codeword)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 20) // Decode returns the full dataLen, zero-padded
	copy(want, data)
	if !bytes.Equal(got, want) {
		t.Fatalf("round trip without corruption: got %q want %q", got, want)
	}
}

func TestDecodeCorrectsErrors(t *testing.T) {
	f := gf2n.Default8()
	enc, err := NewEncoder(20, 6, f)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := NewDecoder(20, 6, f)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("correct up to three!")
	codeword, err := enc.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	codeword[1] ^= 0xff
	codeword[5] ^= 0x3c
	codeword[19] ^= 0x01
	got, err := dec.Decode(codeword)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("corrected decode: got %q want %q", got, data)
	}
}

func TestScenario6ReedSolomon255_223(t *testing.T) {
	enc, dec, err := Preset255_223()
	if err != nil {
		t.Fatal(err)
	}
	message := []byte("Hello World!")
	codeword, err := enc.Encode(message)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 16; i++ {
		codeword[i] ^= 0xa5
	}
	got, err := dec.Decode(codeword)
	if err != nil {
		t.Fatalf("Decode after 16 corrupted bytes: %v", err)
	}
	if !bytes.Equal(got[:len(message)], message) {
		t.Fatalf("recovered message: got %q want %q", got[:len(message)], message)
	}
}

func TestDecodeTooManyErrorsFails(t *testing.T) {
	f := gf2n.Default8()
	enc, _ := NewEncoder(20, 4, f)
	dec, _ := NewDecoder(20, 4, f)
	data := []byte("only two correctable")
	if len(data) > 20 {
		data = data[:20]
	}
	codeword, err := enc.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	codeword[0] ^= 0x01
	codeword[3] ^= 0x02
	codeword[7] ^= 0x03
	if _, err := dec.Decode(codeword); err != ErrUncorrectable {
		t.Fatalf("expected ErrUncorrectable for 3 errors against 2-error capacity, got %v", err)
	}
}
