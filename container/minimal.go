package container

import (
	"github.com/hybfio/hybf/codec"
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// encodeMinimal writes the Minimal container's body: header, column
// defs, then each column's Raw payload concatenated in column order.
// No per-column length prefix; the row count already written by the
// header is the only length information a reader needs.
func encodeMinimal(w *bitio.Writer, defs []column.Type, data []column.Array, rowCount uint32) error {
	writeHeader(w, format.Minimal, uint16(len(defs)), rowCount)
	for _, def := range defs {
		if err := writeColumnDef(w, def); err != nil {
			return err
		}
	}

	raw := codec.Raw{}
	for i, def := range defs {
		payload, err := raw.Encode(data[i], def.Storage)
		if err != nil {
			return err
		}
		w.WriteBytes(payload)
	}

	return nil
}

// decodeMinimal reads the Minimal container's Raw payloads for the
// already-read defs, given a Reader positioned past the header, row
// count and column definitions.
func decodeMinimal(r *bitio.Reader, defs []column.Type, rowCount uint32) ([]column.Array, error) {
	raw := codec.Raw{}
	arrays := make([]column.Array, len(defs))
	for i, def := range defs {
		arr, err := raw.DecodeReader(r, def.Logical, def.Storage, int(rowCount))
		if err != nil {
			return nil, err
		}
		arrays[i] = arr
	}

	return arrays, nil
}
