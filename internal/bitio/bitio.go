// Package bitio implements the byte I/O primitives underlying the
// encoding engine: big-endian fixed-width integers, length-prefixed
// strings, and an arbitrary-width bit-packed code stream. Every
// fixed-width integer and every dictionary code goes through this
// package. Raw integer values are written and read with the
// WriteU8..WriteU64 / ReadU8..ReadU64 primitives; only dictionary codes
// use the bit-packed stream (WriteBitPacked/ReadBitPacked). At widths
// 8, 16, 32 and 64 the two produce identical bytes.
package bitio

import (
	"github.com/hybfio/hybf/endian"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/internal/pool"
)

// Writer accumulates encoded bytes into a growable buffer using the
// format's fixed big-endian byte order.
type Writer struct {
	buf      *pool.ByteBuffer
	curByte  byte
	curBits  int
}

// NewWriter creates a Writer with the given initial capacity hint.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: pool.NewByteBuffer(sizeHint)}
}

// Bytes returns the bytes written so far. Any partially written
// bit-packed byte is flushed (zero-padded) first.
func (w *Writer) Bytes() []byte {
	w.FlushBits()
	return w.buf.Bytes()
}

// Len returns the number of complete bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteU8 appends a single byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf.MustWrite([]byte{v})
}

// WriteU16 appends a big-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	var tmp [2]byte
	endian.Big.PutUint16(tmp[:], v)
	w.buf.MustWrite(tmp[:])
}

// WriteU32 appends a big-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var tmp [4]byte
	endian.Big.PutUint32(tmp[:], v)
	w.buf.MustWrite(tmp[:])
}

// WriteU64 appends a big-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	var tmp [8]byte
	endian.Big.PutUint64(tmp[:], v)
	w.buf.MustWrite(tmp[:])
}

// WriteBytes appends raw bytes verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.MustWrite(b)
}

// WriteString writes a u8 length prefix followed by the UTF-8 bytes of s.
// Returns errs.ErrNameTooLong if s exceeds 255 bytes.
func (w *Writer) WriteString(s string) error {
	if len(s) > 255 {
		return errs.ErrNameTooLong
	}
	w.WriteU8(uint8(len(s)))
	w.buf.MustWrite([]byte(s))

	return nil
}

// WriteBits packs the low `width` bits of code into the bit stream,
// MSB-first, with no padding between successive codes. Call FlushBits
// (or Bytes) once the caller is done packing a run of codes to
// zero-pad the final partial byte.
func (w *Writer) WriteBits(code uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		bit := byte((code >> uint(i)) & 1)
		w.curByte = (w.curByte << 1) | bit
		w.curBits++
		if w.curBits == 8 {
			w.buf.MustWrite([]byte{w.curByte})
			w.curByte = 0
			w.curBits = 0
		}
	}
}

// WriteBitPacked writes every code in codes at a fixed width, in order,
// then flushes the trailing partial byte with zero padding.
func (w *Writer) WriteBitPacked(codes []uint64, width int) {
	for _, c := range codes {
		w.WriteBits(c, width)
	}
	w.FlushBits()
}

// FlushBits left-aligns and emits any pending partial byte. It is a
// no-op if the bit stream is currently byte-aligned.
func (w *Writer) FlushBits() {
	if w.curBits == 0 {
		return
	}
	w.curByte <<= uint(8 - w.curBits)
	w.buf.MustWrite([]byte{w.curByte})
	w.curByte = 0
	w.curBits = 0
}

// Reader consumes bytes from a fixed buffer using the format's
// big-endian byte order, tracking an internal read cursor.
type Reader struct {
	data     []byte
	pos      int
	curByte  byte
	curBits  int // number of unread bits remaining in curByte, MSB-first
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current byte offset of the read cursor.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return errs.ErrTruncated
	}

	return nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++

	return v, nil
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := endian.Big.Uint16(r.data[r.pos : r.pos+2])
	r.pos += 2

	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := endian.Big.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4

	return v, nil
}

// ReadU64 reads a big-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := endian.Big.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8

	return v, nil
}

// ReadBytes reads n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ReadString reads a u8 length prefix followed by that many UTF-8 bytes.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU8()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Skip advances the read cursor by n bytes without interpreting them,
// used by the Compressed container to skip an unrecognised codec's
// payload_length bytes.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n

	return nil
}

// ReadBitPacked reads n fixed-width codes from the bit stream,
// MSB-first, with no padding between codes. It must be called against
// bytes not yet consumed by ReadU8/ReadU16/etc. in the current record;
// callers typically slice out the payload bytes first and build a
// fresh Reader for bit-packed regions.
func (r *Reader) ReadBitPacked(n int, width int) ([]uint64, error) {
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		var code uint64
		for b := 0; b < width; b++ {
			if r.curBits == 0 {
				nb, err := r.ReadU8()
				if err != nil {
					return nil, err
				}
				r.curByte = nb
				r.curBits = 8
			}
			bit := (r.curByte >> uint(r.curBits-1)) & 1
			code = (code << 1) | uint64(bit)
			r.curBits--
		}
		out[i] = code
	}

	return out, nil
}
