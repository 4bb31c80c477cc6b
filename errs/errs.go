// Package errs defines the sentinel error kinds returned by the HYBF
// encoding engine. Every failure the core detects itself is reported
// by returning one of these values directly, so callers can test the
// kind with errors.Is. An error from the caller's io.Writer sink is
// returned by WriteTable as is.
package errs

import "errors"

var (
	// ErrInvalidMagic is returned when the first 4 header bytes are not "HYBF".
	ErrInvalidMagic = errors.New("hybf: invalid magic")

	// ErrUnsupportedVersion is returned when the header version byte is not 1.
	ErrUnsupportedVersion = errors.New("hybf: unsupported version")

	// ErrUnknownFormat is returned when format_type is not 1 (Minimal) or 2 (Compressed).
	ErrUnknownFormat = errors.New("hybf: unknown format type")

	// ErrUnknownLogicalType is returned when a LogicalType tag is not one of the six defined values.
	ErrUnknownLogicalType = errors.New("hybf: unknown logical type")

	// ErrUnknownCodec is returned when a codec tag in a Compressed container is not recognised.
	// The reader still skips payload_length bytes before reporting this error.
	ErrUnknownCodec = errors.New("hybf: unknown codec")

	// ErrTruncated is returned when the source ends before a field is fully read.
	ErrTruncated = errors.New("hybf: truncated input")

	// ErrInvalidEncoding is returned when an internal codec invariant is violated,
	// e.g. an RLE run-length sum that doesn't match the row count, or a dictionary
	// code that is out of range.
	ErrInvalidEncoding = errors.New("hybf: invalid encoding")

	// ErrNameTooLong is returned when a column name exceeds 255 bytes.
	ErrNameTooLong = errors.New("hybf: column name too long")

	// ErrUnsupportedType is returned when a column's element type has no LogicalType mapping.
	ErrUnsupportedType = errors.New("hybf: unsupported column type")
)
