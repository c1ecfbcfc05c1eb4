// Package interactions infers covalent bonds from inter-atomic distances and
// element radii, and analyses the resulting bond network as an undirected
// graph. Candidate atom pairs are proposed by a spatial sector index that
// buckets atoms into a 3D grid.
package interactions

import (
	"math"

	"github.com/isambard-uob/ampal/ampal"
)

// SectorKey addresses one cell of the sector grid.
type SectorKey [3]int

// Sectors partitions atoms into a 3D grid of cells of the given size. An
// atom's cell is its position divided by cellSize and floored independently
// per axis. The index is ephemeral: it is built fresh per query batch and
// never stored on the hierarchy.
//
// Consumers that must be boundary-exact at a distance of interest d should
// pass a cellSize of at least d (the bond finder uses 1.1x its range) and be
// aware that pairs spanning adjacent cells are not co-located; see
// FindCovalentBonds for the consequences.
func Sectors(atoms []*ampal.Atom, cellSize float64) map[SectorKey][]*ampal.Atom {
	sectors := make(map[SectorKey][]*ampal.Atom)
	for _, a := range atoms {
		key := SectorKey{
			int(math.Floor(a.Pos[0] / cellSize)),
			int(math.Floor(a.Pos[1] / cellSize)),
			int(math.Floor(a.Pos[2] / cellSize)),
		}
		sectors[key] = append(sectors[key], a)
	}
	return sectors
}
