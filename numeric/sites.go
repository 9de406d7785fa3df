package numeric

// Coord is an offset from an element's own site in the 2D grid.
type Coord struct {
	X, Y int
}

// Offsets lists the 41 sites of the Manhattan-radius-4 event window
// (the 2D ball {(x,y) : |x|+|y| <= 4}), in the canonical order the VM
// and compiler both index by. Index 0 is the element's own site. The
// remaining 40 sites are walked ring by ring outward (Manhattan
// distance 1, then 2, then 3, then 4); within each ring the walk
// starts at the west vertex and proceeds clockwise through the four
// diamond edges: west-to-north, north-to-east, east-to-south, and
// south-to-west.
var Offsets [41]Coord

func init() {
	Offsets[0] = Coord{0, 0}
	idx := 1
	for d := 1; d <= 4; d++ {
		for _, c := range ringWalk(d) {
			Offsets[idx] = c
			idx++
		}
	}
}

// ringWalk returns the 4d coordinates at Manhattan distance exactly d
// from the origin, starting at (-d, 0) (west) and proceeding clockwise
// through the four edges of the diamond: west to north, north to east,
// east to south, south to west.
func ringWalk(d int) []Coord {
	out := make([]Coord, 0, 4*d)
	// West (-d, 0) to North (0, -d): x increases, y decreases.
	for i := 0; i < d; i++ {
		out = append(out, Coord{-d + i, -i})
	}
	// North (0, -d) to East (d, 0): x increases, y increases.
	for i := 0; i < d; i++ {
		out = append(out, Coord{i, -d + i})
	}
	// East (d, 0) to South (0, d): x decreases, y increases.
	for i := 0; i < d; i++ {
		out = append(out, Coord{d - i, i})
	}
	// South (0, d) to West (-d, 0): x decreases, y decreases.
	for i := 0; i < d; i++ {
		out = append(out, Coord{-i, d - i})
	}
	return out
}

// offsetIndex is the reverse lookup from Coord to its index in Offsets,
// built once at init from the generated table.
var offsetIndex map[Coord]int

func init() {
	offsetIndex = make(map[Coord]int, 41)
	for i, c := range Offsets {
		offsetIndex[c] = i
	}
}

// Transform applies one of the eight D4 dihedral transforms to a
// coordinate. The four "L" transforms are plain rotations; the four
// "R" transforms are the same rotations preceded by a reflection
// across the y-axis (x negated). Every transform preserves Manhattan norm, so it
// always maps a site of the event window to another site of the same
// window.
func (s Symmetry) Transform(c Coord) Coord {
	switch s {
	case R000L:
		return Coord{c.X, c.Y}
	case R090L:
		return Coord{-c.Y, c.X}
	case R180L:
		return Coord{-c.X, -c.Y}
	case R270L:
		return Coord{c.Y, -c.X}
	case R000R:
		return Coord{-c.X, c.Y}
	case R090R:
		return Coord{-c.Y, -c.X}
	case R180R:
		return Coord{c.X, -c.Y}
	case R270R:
		return Coord{c.Y, c.X}
	default:
		return c
	}
}

// MapSite transforms the site at index `site` (0..40, in Offsets
// order) by sym and returns the index of the resulting site. site
// indices outside the table, or a transform landing outside the
// 41-site window (never happens for a single named transform, since
// each preserves Manhattan norm), return -1.
func MapSite(site int, sym Symmetry) int {
	if site < 0 || site >= len(Offsets) {
		return -1
	}
	mapped := sym.Transform(Offsets[site])
	if i, ok := offsetIndex[mapped]; ok {
		return i
	}
	return -1
}
