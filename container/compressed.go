package container

import (
	"github.com/hybfio/hybf/codec"
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// encodeCompressed writes the Compressed container's body: header,
// column defs, then per column a codec tag, a u32 payload length, and
// the codec-specific payload, chosen independently per column by the
// selector.
func encodeCompressed(w *bitio.Writer, defs []column.Type, data []column.Array, rowCount uint32) error {
	writeHeader(w, format.Compressed, uint16(len(defs)), rowCount)
	for _, def := range defs {
		if err := writeColumnDef(w, def); err != nil {
			return err
		}
	}

	for i, def := range defs {
		chosen, err := codec.Select(data[i], def.Storage)
		if err != nil {
			return err
		}
		payload, err := chosen.Encode(data[i], def.Storage)
		if err != nil {
			return err
		}
		w.WriteU8(uint8(chosen.Tag()))
		w.WriteU32(uint32(len(payload)))
		w.WriteBytes(payload)
	}

	return nil
}

// decodeCompressed reads the Compressed container's per-column codec
// payloads for the already-read defs, given a Reader positioned past
// the header, row count and column definitions. An unrecognised codec
// tag is skipped by its
// declared payload_length (keeping the cursor valid for columns that
// follow) before the read fails with ErrUnknownCodec.
func decodeCompressed(r *bitio.Reader, defs []column.Type, rowCount uint32) ([]column.Array, error) {
	arrays := make([]column.Array, len(defs))
	for i, def := range defs {
		tagByte, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		tag := format.CodecTag(tagByte)

		length, err := r.ReadU32()
		if err != nil {
			return nil, err
		}

		c, ok := codec.Get(tag)
		if !ok {
			_ = r.Skip(int(length))

			return nil, errs.ErrUnknownCodec
		}

		payload, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}

		arr, err := c.Decode(payload, def.Logical, def.Storage, int(rowCount))
		if err != nil {
			return nil, err
		}
		arrays[i] = arr
	}

	return arrays, nil
}
