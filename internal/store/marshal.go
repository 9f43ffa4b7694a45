package store

import (
	"encoding/binary"
	"fmt"
	"math"
)

// encodeFloats packs vs as little-endian float64 bits.
// A nil slice encodes to nil so the column stores NULL.
func encodeFloats(vs []float64) []byte {
	if vs == nil {
		return nil
	}
	buf := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

// decodeFloats is the inverse of encodeFloats. An empty blob decodes to nil.
func decodeFloats(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("decode floats: blob length %d is not a multiple of 8", len(b))
	}
	vs := make([]float64, len(b)/8)
	for i := range vs {
		vs[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return vs, nil
}
