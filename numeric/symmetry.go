package numeric

import "math/bits"

// Symmetry is a set of D4 dihedral transforms, one bit per transform.
// Eight transforms span the group: four rotations, each either plain
// or reflected.
type Symmetry uint8

const (
	R000L Symmetry = 1 << iota // identity
	R090L                      // rotate 90, no reflection
	R180L                      // rotate 180, no reflection
	R270L                      // rotate 270, no reflection
	R000R                      // reflect, no rotation
	R090R                      // rotate 90, reflected
	R180R                      // rotate 180, reflected
	R270R                      // rotate 270, reflected
)

// NONE is the empty symmetry set.
const NONE Symmetry = 0

// ALL is the full D4 group.
const ALL Symmetry = R000L | R090L | R180L | R270L | R000R | R090R | R180R | R270R

// Count returns the number of transforms present in s.
func (s Symmetry) Count() int { return bits.OnesCount8(uint8(s)) }

// Has reports whether s includes t.
func (s Symmetry) Has(t Symmetry) bool { return s&t != 0 }

// Select picks a single transform out of set s using r as entropy: it
// takes the population count k of s, reduces r modulo k, and returns
// the (r mod k)-th set bit in ascending order. An empty set has no
// transform to select and falls back to R000L (the identity), the one
// transform guaranteed present in a well-formed non-empty program.
func (s Symmetry) Select(r uint32) Symmetry {
	k := s.Count()
	if k == 0 {
		return R000L
	}
	target := int(r % uint32(k))
	for i := 0; i < 8; i++ {
		bit := Symmetry(1 << uint(i))
		if s&bit == 0 {
			continue
		}
		if target == 0 {
			return bit
		}
		target--
	}
	return R000L
}
