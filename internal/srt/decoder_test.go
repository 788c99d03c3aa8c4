package srt

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeUTF8(t *testing.T) {
	dec, err := NewDecoder(nil, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	got, err := dec.Decode([]byte("héllo"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "héllo" {
		t.Errorf("Decode() = %q, want %q", got, "héllo")
	}
}

func TestDecodeStripsUTF8BOM(t *testing.T) {
	dec, err := NewDecoder(nil, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	got, err := dec.Decode(input)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Decode() = %q, want %q", got, "hello")
	}
}

func TestDecodeLatin1Fallthrough(t *testing.T) {
	dec, err := NewDecoder(nil, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	// 0xE9 is é in Latin-1 and invalid as UTF-8, so the chain must fall
	// through to the Latin-1 candidate.
	got, err := dec.Decode([]byte{'c', 'a', 'f', 0xE9})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "café" {
		t.Errorf("Decode() = %q, want %q", got, "café")
	}
}

func TestDecodeUTF16WithBOM(t *testing.T) {
	dec, err := NewDecoder([]string{"utf-16"}, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	input := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	got, err := dec.Decode(input)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "hi" {
		t.Errorf("Decode() = %q, want %q", got, "hi")
	}
}

func TestDecodeStrictFailure(t *testing.T) {
	dec, err := NewDecoder([]string{"utf-8", "ascii"}, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	_, err = dec.Decode([]byte{0xFF, 0xFE, 0xFD})
	if err == nil {
		t.Fatal("Decode() should fail for undecodable bytes under strict policy")
	}

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if len(decErr.Attempted) != 2 || decErr.Attempted[0] != "utf-8" || decErr.Attempted[1] != "ascii" {
		t.Errorf("Attempted = %v, want [utf-8 ascii]", decErr.Attempted)
	}
	if !strings.Contains(err.Error(), "utf-8") || !strings.Contains(err.Error(), "ascii") {
		t.Errorf("error message %q should name the attempted encodings", err.Error())
	}
}

func TestDecodeLenientNeverFails(t *testing.T) {
	dec, err := NewDecoder([]string{"utf-8", "ascii"}, PolicyLenient)
	if err != nil {
		t.Fatal(err)
	}

	got, err := dec.Decode([]byte{'o', 'k', 0xFF})
	if err != nil {
		t.Fatalf("Decode() error = %v, lenient policy must never fail", err)
	}
	if !strings.HasPrefix(got, "ok") {
		t.Errorf("Decode() = %q, want prefix %q", got, "ok")
	}
	if !strings.ContainsRune(got, '�') {
		t.Errorf("Decode() = %q, want replacement character for undecodable byte", got)
	}
}

func TestNewDecoderUnknownEncoding(t *testing.T) {
	if _, err := NewDecoder([]string{"utf-8", "klingon"}, PolicyStrict); err == nil {
		t.Error("NewDecoder() should reject unknown encoding names")
	}
}

func TestNewDecoderUnknownPolicy(t *testing.T) {
	if _, err := NewDecoder(nil, DecodePolicy("whatever")); err == nil {
		t.Error("NewDecoder() should reject unknown policies")
	}
}

func TestDecodeASCII(t *testing.T) {
	dec, err := NewDecoder([]string{"ascii"}, PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := dec.Decode([]byte("plain")); err != nil {
		t.Errorf("Decode() error = %v for pure ASCII", err)
	}
	if _, err := dec.Decode([]byte{0x80}); err == nil {
		t.Error("Decode() should fail for non-ASCII byte")
	}
}
