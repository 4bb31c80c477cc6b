// Selector picks, for a column's analysed storage type, the codec with
// the smallest estimated size among those whose applicability
// predicate holds. The selector is pure: it only reads data, never
// mutates it, and is safe to call repeatedly or concurrently across
// independent columns.
package codec

import (
	"github.com/hybfio/hybf/column"
)

// candidate pairs a codec with its applicability predicate.
type candidate struct {
	codec   Codec
	applies func(data column.Array, distinctCount, runCount int) bool
}

// order fixes the tie-break priority: Null -> SingleValue ->
// Dictionary -> RLE -> Raw, earliest wins on equal estimated size.
var order = []candidate{
	{Null{}, func(data column.Array, distinctCount, runCount int) bool {
		return data.Len() > 0 && distinctCount == 1 && data.IsNull(0)
	}},
	{SingleValue{}, func(data column.Array, distinctCount, runCount int) bool {
		return data.Len() >= 2 && distinctCount == 1
	}},
	{Dictionary{}, func(data column.Array, distinctCount, runCount int) bool {
		return float64(distinctCount)/float64(data.Len()) <= 0.10
	}},
	{RLE{}, func(data column.Array, distinctCount, runCount int) bool {
		return runCount*4 <= data.Len()
	}},
	{Raw{}, func(column.Array, int, int) bool { return true }},
}

// Select returns the codec chosen for data given its analysed storage
// type.
func Select(data column.Array, st column.StorageType) (Codec, error) {
	if data.Len() == 0 {
		return Raw{}, nil
	}

	dict, _ := distinctValues(data)
	distinctCount := len(dict)
	runCount := len(runs(data))

	var best Codec
	var bestSize uint64
	haveBest := false

	for _, cand := range order {
		if !cand.applies(data, distinctCount, runCount) {
			continue
		}
		size, err := cand.codec.EstimateSize(data, st)
		if err != nil {
			return nil, err
		}
		if !haveBest || size < bestSize {
			best = cand.codec
			bestSize = size
			haveBest = true
		}
	}

	return best, nil
}
