// Package codec implements the column codec family and the encoding
// selector that picks among them.
//
// Each codec is a capability set {EstimateSize, Encode, Decode, Tag}
// rather than a class in an inheritance hierarchy: a small interface
// plus a tag-keyed dispatch table stand in for dynamic dispatch
// through a class hierarchy.
package codec

import (
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/format"
)

// Codec is the capability set every column encoding implements.
type Codec interface {
	// Tag returns the on-disk codec tag (format.CodecTag).
	Tag() format.CodecTag

	// EstimateSize returns the codec's predicted encoded payload size in
	// bytes for the given column data and storage type. Implementations
	// must not underestimate by more than a small documented constant
	// so the selector converges on a codec that is actually competitive.
	EstimateSize(data column.Array, st column.StorageType) (uint64, error)

	// Encode serializes data into its codec-specific payload bytes.
	Encode(data column.Array, st column.StorageType) ([]byte, error)

	// Decode reconstructs a column.Array of rowCount rows from a
	// codec-specific payload.
	Decode(payload []byte, logical format.LogicalType, st column.StorageType, rowCount int) (column.Array, error)
}

// registry is the dispatch table keyed by codec tag.
var registry = map[format.CodecTag]Codec{
	format.CodecRaw:         Raw{},
	format.CodecSingleValue: SingleValue{},
	format.CodecRLE:         RLE{},
	format.CodecDictionary:  Dictionary{},
	format.CodecNull:        Null{},
}

// Get retrieves the Codec registered for tag, or (nil, false) if tag is
// not one of the five defined codecs.
func Get(tag format.CodecTag) (Codec, bool) {
	c, ok := registry[tag]

	return c, ok
}
