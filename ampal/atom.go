// Package ampal models the composite hierarchy of a biomolecular structure:
// an Assembly owns Polymers, which own Monomers, which own Atoms. Children
// hold non-owning back-references to their parents. The package also carries
// the rigid-body transform, flattening and distance operations that the
// analysis packages (interactions, dssp, align) are built on.
package ampal

import (
	"fmt"

	"github.com/isambard-uob/ampal/geom"
)

// Atom is a point entity with a 3D position and an element.
//
// Derived data attached by the analysis packages lives in typed fields
// rather than a free-form cache: Bonded is filled by covalent bond tagging.
type Atom struct {
	Pos     geom.Vec
	Element string

	// ID is the atom serial, usually a number.
	ID string

	// Label is the name used by the owning Monomer to refer to this atom,
	// e.g. "CA" or "OD1".
	Label string

	Occupancy float64
	Bfactor   float64
	Charge    string

	// State identifies the alternate conformation this atom belongs to.
	State string

	// Parent is a non-owning reference to the Monomer that owns this atom.
	Parent *Monomer

	// Bonded lists the atoms covalently bonded to this one, as tagged by
	// interactions.FindCovalentBonds.
	Bonded []*Atom
}

// NewAtom creates an Atom in the default conformation state with full
// occupancy.
func NewAtom(pos geom.Vec, element, label string) *Atom {
	return &Atom{
		Pos:       pos,
		Element:   element,
		Label:     label,
		Occupancy: 1.0,
		Bfactor:   1.0,
		State:     "A",
	}
}

func (a *Atom) String() string {
	return fmt.Sprintf("<%s Atom (%s). Coordinates: (%.3f, %.3f, %.3f)>",
		a.Element, a.Label, a.Pos[0], a.Pos[1], a.Pos[2])
}

// UniqueID identifies the atom by its position in the hierarchy as
// (polymer id, monomer id, atom id). The atom must be attached to a full
// hierarchy.
func (a *Atom) UniqueID() (string, string, string) {
	return a.Parent.Parent.ID, a.Parent.ID, a.ID
}

// Rotate rotates the atom by angle degrees about the axis passing through
// point.
func (a *Atom) Rotate(angle float64, axis, point geom.Vec) {
	q := geom.RotationAbout(angle, axis)
	a.Pos = q.Rotate(a.Pos, point)
}

// Translate moves the atom by the given vector.
func (a *Atom) Translate(v geom.Vec) {
	a.Pos = a.Pos.Add(v)
}

// Copy returns a deep copy of the atom. The parent reference and bond tags
// are not carried over; they are rewired by the owning container's Copy.
func (a *Atom) Copy() *Atom {
	dup := *a
	dup.Parent = nil
	dup.Bonded = nil
	return &dup
}

// mass returns the atomic mass of the atom's element, or 1 if the element
// is not in the table.
func (a *Atom) mass() float64 {
	if data, ok := LookupElement(a.Element); ok {
		return data.Mass
	}
	return 1
}
