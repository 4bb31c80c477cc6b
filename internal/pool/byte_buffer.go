// Package pool provides a growable byte buffer used by the codec and
// container packages to accumulate encoded column payloads without
// repeated reallocation.
package pool

// DefaultSize is the initial capacity handed out by NewByteBuffer when
// the caller has no better estimate.
const DefaultSize = 256

// ByteBuffer is a growable byte slice wrapper. Every caller in this
// module passes a size hint computed before writing into it (WriteTable
// uses the Raw EstimateSize total; each codec's Encode uses its own
// rough hint), and MustWrite leans on the append builtin's own growth
// for anything beyond that hint rather than a custom growth policy.
// It is never pulled from a shared sync.Pool: the encoding path holds
// no global mutable state, so every codec call constructs its own
// ByteBuffer and lets it become garbage when the call returns.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(initialCap int) *ByteBuffer {
	if initialCap < 0 {
		initialCap = 0
	}

	return &ByteBuffer{B: make([]byte, 0, initialCap)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}
