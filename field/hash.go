package field

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// Hash returns a 64-bit digest of f's playable cells, used as a memo key
// by the evaluator's chain-potential feature (evaluator/potential.go)
// and the opening matcher's template lookup. Grounded on the teacher's
// use of xxhash.Sum64 for cheap game-state keys (cmd/mlproducer).
func (f *Field) Hash() uint64 {
	var buf [internalWidth * 3 * 2]byte
	i := 0
	for p := 0; p < 3; p++ {
		for x := 0; x < internalWidth; x++ {
			binary.LittleEndian.PutUint16(buf[i:], f.bits.planes[p][x])
			i += 2
		}
	}
	return xxhash.Sum64(buf[:])
}
