package ampal

import (
	"fmt"

	"github.com/isambard-uob/ampal/geom"
)

// Errors returned by hierarchy operations.
var (
	// ErrResidueNotFound is returned when a residue identifier is not
	// present in a polymer.
	ErrResidueNotFound = fmt.Errorf("residue not found")

	// ErrStateNotFound is returned when an alternate conformation state is
	// not present on a monomer.
	ErrStateNotFound = fmt.Errorf("alternate state not found")
)

// Container is any node of the hierarchy that can be flattened to atoms:
// Assembly, Polymer or Monomer. The transform and query operations below
// accept any Container.
type Container interface {
	// Atoms flattens the container to its atoms. Ligand atoms are included
	// when incLigands is true; atoms of inactive alternate conformations
	// when incAltStates is true.
	Atoms(incLigands, incAltStates bool) []*Atom
}

// Rotate rotates every atom in the container, including alternate
// conformations, by angle degrees about the axis passing through point.
func Rotate(c Container, angle float64, axis, point geom.Vec) {
	q := geom.RotationAbout(angle, axis)
	for _, a := range c.Atoms(true, true) {
		a.Pos = q.Rotate(a.Pos, point)
	}
}

// Translate moves every atom in the container, including alternate
// conformations, by the given vector.
func Translate(c Container, v geom.Vec) {
	for _, a := range c.Atoms(true, true) {
		a.Pos = a.Pos.Add(v)
	}
}

// CentreOfMass returns the mass-weighted centre of the container's atoms in
// their active conformations. Atoms of unknown elements weigh 1.
func CentreOfMass(c Container) geom.Vec {
	atoms := c.Atoms(true, false)
	points := make([]geom.Vec, len(atoms))
	masses := make([]float64, len(atoms))
	for i, a := range atoms {
		points[i] = a.Pos
		masses[i] = a.mass()
	}
	return geom.CentreOfMass(points, masses)
}

// IsWithin returns all atoms in the container within cutoff distance of
// point. The boundary is inclusive.
func IsWithin(c Container, cutoff float64, point geom.Vec) []*Atom {
	var within []*Atom
	for _, a := range c.Atoms(true, false) {
		if geom.Distance(a.Pos, point) <= cutoff {
			within = append(within, a)
		}
	}
	return within
}

// Coords returns the active-conformation atom positions of the container,
// excluding ligands.
func Coords(c Container) []geom.Vec {
	atoms := c.Atoms(false, false)
	coords := make([]geom.Vec, len(atoms))
	for i, a := range atoms {
		coords[i] = a.Pos
	}
	return coords
}
