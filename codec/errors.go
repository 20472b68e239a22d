package codec

import "fmt"

// InvalidMagic reports a stream whose first 12 bytes do not match the
// magic string, or whose length is too short to hold the magic and the
// 4-byte version together.
type InvalidMagic struct {
	Got []byte
}

func (e *InvalidMagic) Error() string {
	return fmt.Sprintf("codec: invalid magic bytes %q, want %q", e.Got, Magic)
}

// UnknownVersion reports a format_version this build does not know
// how to decode. Forward compatibility is handled by failing loudly,
// not by guessing (spec.md §4.4).
type UnknownVersion struct {
	Version uint32
}

func (e *UnknownVersion) Error() string {
	return fmt.Sprintf("codec: unknown format version %d", e.Version)
}

// ReadError wraps an I/O failure encountered while reading the header
// or payload.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("codec: read failed: %v", e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps an I/O failure encountered while writing the header
// or payload.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("codec: write failed: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// SerializeError wraps a failure turning a Document into its payload
// encoding (spec.md §7).
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("codec: serialize failed: %v", e.Err)
}
func (e *SerializeError) Unwrap() error { return e.Err }

// DeserializeError wraps a failure turning a payload encoding back
// into a Document.
type DeserializeError struct {
	Err error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("codec: deserialize failed: %v", e.Err)
}
func (e *DeserializeError) Unwrap() error { return e.Err }
