// Package endian provides the byte-order engine used by every
// multi-byte field in a HYBF file.
//
// HYBF's wire format fixes big-endian byte order for headers, column
// definitions, and codec payloads: this package exists as a thin,
// named seam around encoding/binary.BigEndian rather than a hardcoded
// import of encoding/binary everywhere. internal/bitio reads and
// writes every multi-byte integer through Big; codecs do not take an
// Engine parameter.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from the standard
// library into a single interface.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Big is the single engine HYBF uses on the wire. The format has no
// little-endian variant: every multi-byte integer in headers and
// framing is big-endian, with no per-file option.
var Big Engine = binary.BigEndian
