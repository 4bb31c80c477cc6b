// Package format defines the closed, on-disk type tags shared by every
// HYBF package: the logical column type, the per-column codec tag, and
// the container's format kind. These are the 1-byte enums that appear
// verbatim in the file layout.
package format

type (
	// LogicalType is the user-visible type of a column. It is a closed,
	// 6-entry set with stable 1-byte on-disk tags; extending it is
	// reserved for a future version byte.
	LogicalType uint8

	// CodecTag identifies which column codec produced a Compressed
	// container's payload.
	CodecTag uint8

	// Kind identifies which container layout a file uses.
	Kind uint8
)

const (
	Int32   LogicalType = 1
	Int64   LogicalType = 2
	Float32 LogicalType = 3
	Float64 LogicalType = 4
	String  LogicalType = 5
	Boolean LogicalType = 6
)

const (
	CodecRaw         CodecTag = 1
	CodecSingleValue CodecTag = 2
	CodecRLE         CodecTag = 3
	CodecDictionary  CodecTag = 4
	CodecNull        CodecTag = 5
)

const (
	// Minimal is the header's format_type value for the small-table container (C5).
	Minimal Kind = 1
	// Compressed is the header's format_type value for the per-column codec container (C6).
	Compressed Kind = 2
)

// Magic is the fixed 4-byte identifier at the start of every HYBF file.
const Magic = "HYBF"

// Version is the only version byte this implementation understands.
const Version uint8 = 1

func (t LogicalType) String() string {
	switch t {
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the six defined logical types.
func (t LogicalType) Valid() bool {
	return t >= Int32 && t <= Boolean
}

func (t CodecTag) String() string {
	switch t {
	case CodecRaw:
		return "Raw"
	case CodecSingleValue:
		return "SingleValue"
	case CodecRLE:
		return "RLE"
	case CodecDictionary:
		return "Dictionary"
	case CodecNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the five defined codec tags.
func (t CodecTag) Valid() bool {
	return t >= CodecRaw && t <= CodecNull
}

func (k Kind) String() string {
	switch k {
	case Minimal:
		return "Minimal"
	case Compressed:
		return "Compressed"
	default:
		return "Unknown"
	}
}
