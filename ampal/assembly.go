package ampal

import "fmt"

// Assembly is a full structure: an ordered collection of Polymers. It is the
// root of the ownership hierarchy.
type Assembly struct {
	ID string

	polymers []*Polymer
}

// NewAssembly creates an Assembly from zero or more polymers, taking
// ownership of them.
func NewAssembly(id string, polymers ...*Polymer) *Assembly {
	a := &Assembly{ID: id}
	for _, p := range polymers {
		a.Append(p)
	}
	return a
}

func (a *Assembly) String() string {
	noun := "Polymers"
	if len(a.polymers) == 1 {
		noun = "Polymer"
	}
	return fmt.Sprintf("<Assembly containing %d %s>", len(a.polymers), noun)
}

// Len returns the number of polymers in the assembly.
func (a *Assembly) Len() int {
	return len(a.polymers)
}

// Append adds a polymer to the assembly, taking ownership of it.
func (a *Assembly) Append(p *Polymer) {
	p.Parent = a
	a.polymers = append(a.polymers, p)
}

// Polymer returns the polymer with the given identifier.
func (a *Assembly) Polymer(id string) (*Polymer, bool) {
	for _, p := range a.polymers {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Polymers returns the assembly's polymers in order.
func (a *Assembly) Polymers() []*Polymer {
	polymers := make([]*Polymer, len(a.polymers))
	copy(polymers, a.polymers)
	return polymers
}

// Monomers flattens the assembly to its monomers in polymer order.
func (a *Assembly) Monomers(incLigands bool) []*Monomer {
	var monomers []*Monomer
	for _, p := range a.polymers {
		monomers = append(monomers, p.Monomers(incLigands)...)
	}
	return monomers
}

// Atoms flattens the assembly to its atoms in polymer order. See
// Polymer.Atoms for the meaning of the arguments.
func (a *Assembly) Atoms(incLigands, incAltStates bool) []*Atom {
	var atoms []*Atom
	for _, p := range a.polymers {
		atoms = append(atoms, p.Atoms(incLigands, incAltStates)...)
	}
	return atoms
}

// Copy returns a deep copy of the assembly and everything it owns.
func (a *Assembly) Copy() *Assembly {
	dup := NewAssembly(a.ID)
	for _, p := range a.polymers {
		dup.Append(p.Copy())
	}
	return dup
}
