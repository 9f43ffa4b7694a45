package dataset

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// DomainDataset separates dataset digests from any other SHA-256 use.
// The version suffix allows the encoding to change later.
const DomainDataset = "bounce/dataset/v1"

// Digest returns a content address for the curve values of d.
//
// Format: SHA256(domain + 0x00 + rows + gridLen + per-row column values),
// integers as little-endian uint64 and floats as their IEEE-754 bits. Stats
// and quadruples are not part of the digest.
func (d *Dataset) Digest() string {
	h := sha256.New()
	h.Write([]byte(DomainDataset))
	h.Write([]byte{0x00})

	buf := make([]byte, 0, 8*(2+d.ColumnLength()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(d.Len()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(d.Grid)))
	h.Write(buf)

	for _, r := range d.Rows {
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(r.Potential)+len(r.Derivative)))
		for _, v := range r.Potential {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
		for _, v := range r.Derivative {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
