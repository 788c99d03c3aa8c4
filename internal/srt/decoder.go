package srt

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodePolicy controls the outcome when no candidate encoding decodes the
// input.
type DecodePolicy string

const (
	// PolicyStrict returns a *DecodeError when every candidate fails.
	PolicyStrict DecodePolicy = "strict"

	// PolicyLenient falls back to a lossy transcoding that substitutes the
	// replacement character for undecodable bytes. It never fails.
	PolicyLenient DecodePolicy = "lenient"
)

// DefaultEncodings is the candidate priority order, tried first to last.
func DefaultEncodings() []string {
	return []string{
		"utf-8-sig",
		"utf-8",
		"latin-1",
		"cp1252",
		"iso-8859-1",
		"ascii",
		"utf-16",
		"utf-16-le",
		"utf-16-be",
	}
}

// DecodeError reports that no candidate encoding could decode the input.
type DecodeError struct {
	Attempted []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode input with any known encoding, tried: %s",
		strings.Join(e.Attempted, ", "))
}

// Decoder turns a raw byte buffer into text by trying candidate encodings in
// a fixed priority order. It holds no mutable state and is safe for
// concurrent use.
type Decoder struct {
	names  []string
	codecs []func([]byte) (string, error)
	policy DecodePolicy
}

// NewDecoder builds a Decoder for the given encoding names. An empty list
// selects DefaultEncodings. Unknown names are rejected up front so a config
// typo surfaces at startup, not per file.
func NewDecoder(names []string, policy DecodePolicy) (*Decoder, error) {
	if len(names) == 0 {
		names = DefaultEncodings()
	}
	if policy == "" {
		policy = PolicyStrict
	}
	if policy != PolicyStrict && policy != PolicyLenient {
		return nil, fmt.Errorf("unknown decode policy %q", policy)
	}

	d := &Decoder{policy: policy}
	for _, name := range names {
		codec, err := codecFor(name)
		if err != nil {
			return nil, err
		}
		d.names = append(d.names, name)
		d.codecs = append(d.codecs, codec)
	}

	return d, nil
}

// Decode returns the first successful decode of b. Under PolicyLenient total
// failure degrades to a lossy decode; under PolicyStrict it yields a
// *DecodeError naming every attempted encoding.
func (d *Decoder) Decode(b []byte) (string, error) {
	for _, codec := range d.codecs {
		if s, err := codec(b); err == nil {
			return s, nil
		}
	}

	if d.policy == PolicyLenient {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
	}

	return "", &DecodeError{Attempted: append([]string(nil), d.names...)}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func codecFor(name string) (func([]byte) (string, error), error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8-sig":
		return decodeUTF8Sig, nil
	case "utf-8", "utf8":
		return decodeUTF8, nil
	case "latin-1", "latin1", "iso-8859-1":
		return transformCodec(charmap.ISO8859_1), nil
	case "cp1252", "windows-1252":
		return transformCodec(charmap.Windows1252), nil
	case "ascii":
		return decodeASCII, nil
	case "utf-16":
		return transformCodec(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), nil
	case "utf-16-le":
		return transformCodec(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)), nil
	case "utf-16-be":
		return transformCodec(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
}

func decodeUTF8Sig(b []byte) (string, error) {
	return decodeUTF8(bytes.TrimPrefix(b, utf8BOM))
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid UTF-8 sequence")
	}
	return string(b), nil
}

func decodeASCII(b []byte) (string, error) {
	for _, c := range b {
		if c > 0x7F {
			return "", fmt.Errorf("byte 0x%02X outside ASCII range", c)
		}
	}
	return string(b), nil
}

func transformCodec(enc encoding.Encoding) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		out, _, err := transform.Bytes(enc.NewDecoder(), b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
