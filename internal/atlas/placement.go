package atlas

import "fmt"

// Placement locates one bitmap inside the atlas, in pixels from the top-left.
type Placement struct {
	Key Key
	X   int
	Y   int
}

func (p Placement) String() string {
	return fmt.Sprintf("Placement(%d @ %d,%d)", p.Key, p.X, p.Y)
}

// DecodePlacements reads count (identity, x, y) triples from the flat map m.
// Decoding stops at the last complete triple if m is shorter than 3*count.
func DecodePlacements(m []int64, count int) []Placement {
	if count < 0 {
		count = 0
	}
	if n := len(m) / 3; n < count {
		count = n
	}

	placements := make([]Placement, 0, count)
	for i := 0; i < count; i++ {
		placements = append(placements, Placement{
			Key: Key(m[i*3]),
			X:   int(int32(m[i*3+1])),
			Y:   int(int32(m[i*3+2])),
		})
	}
	return placements
}
