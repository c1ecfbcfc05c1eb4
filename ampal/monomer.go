package ampal

import (
	"fmt"
	"sort"
)

// SecStruct is the per-residue secondary-structure assignment attached to a
// Monomer by dssp.Tag.
type SecStruct struct {
	Assignment           byte
	Phi, Psi             float64
	SolventAccessibility int
}

// Accessibility is the per-residue solvent accessibility attached to a
// Monomer by naccess.Tag.
type Accessibility struct {
	AllAtomsAbs float64
	AllAtomsRel float64
}

// Monomer is a residue or ligand group: an ordered mapping from atom label
// to Atom. A monomer may carry several alternate conformation states, of
// which exactly one is active at a time.
type Monomer struct {
	// MolCode is the 1-3 character molecule code, e.g. "ALA" or "HOH".
	MolCode string

	// ID identifies the monomer within its polymer, usually the residue
	// number.
	ID string

	InsertionCode string
	Hetero        bool

	// Parent is a non-owning reference to the Polymer that owns this
	// monomer.
	Parent *Polymer

	// SecStruct holds the secondary-structure assignment, if tagged.
	SecStruct *SecStruct

	// Access holds the solvent accessibility, if tagged.
	Access *Accessibility

	states map[string]*atomDict
	active string
}

// atomDict is an insertion-ordered mapping from atom label to Atom.
type atomDict struct {
	labels []string
	atoms  map[string]*Atom
}

func newAtomDict() *atomDict {
	return &atomDict{atoms: make(map[string]*Atom)}
}

func (d *atomDict) set(label string, a *Atom) {
	if _, ok := d.atoms[label]; !ok {
		d.labels = append(d.labels, label)
	}
	d.atoms[label] = a
}

func (d *atomDict) list() []*Atom {
	atoms := make([]*Atom, len(d.labels))
	for i, label := range d.labels {
		atoms[i] = d.atoms[label]
	}
	return atoms
}

// NewMonomer creates an empty Monomer with a single active state "A".
func NewMonomer(molCode, id string) *Monomer {
	return &Monomer{
		MolCode: molCode,
		ID:      id,
		states:  map[string]*atomDict{"A": newAtomDict()},
		active:  "A",
	}
}

func (m *Monomer) String() string {
	noun := "Atoms"
	if m.Len() == 1 {
		noun = "Atom"
	}
	return fmt.Sprintf("<Monomer containing %d %s>", m.Len(), noun)
}

// Len returns the number of atoms in the active state.
func (m *Monomer) Len() int {
	return len(m.states[m.active].labels)
}

// Atom returns the atom with the given label in the active state.
func (m *Monomer) Atom(label string) (*Atom, bool) {
	a, ok := m.states[m.active].atoms[label]
	return a, ok
}

// AddAtom adds an atom to the active state under its label, replacing any
// atom already carrying that label. The atom's parent reference is set to
// this monomer. Atom labels are unique within a state.
func (m *Monomer) AddAtom(a *Atom) {
	m.AddAtomToState(m.active, a)
}

// AddAtomToState adds an atom to the named alternate conformation state,
// creating the state if it does not exist yet.
func (m *Monomer) AddAtomToState(state string, a *Atom) {
	d, ok := m.states[state]
	if !ok {
		d = newAtomDict()
		m.states[state] = d
	}
	a.Parent = m
	a.State = state
	d.set(a.Label, a)
}

// ActiveState returns the label of the currently active conformation state.
func (m *Monomer) ActiveState() string {
	return m.active
}

// SetActiveState switches the active conformation state. An error is
// returned if the state does not exist on this monomer.
func (m *Monomer) SetActiveState(state string) error {
	if _, ok := m.states[state]; !ok {
		return fmt.Errorf(
			"alternate state %q is not available, choose from %v: %w",
			state, m.States(), ErrStateNotFound)
	}
	m.active = state
	return nil
}

// States returns the labels of all conformation states, sorted.
func (m *Monomer) States() []string {
	labels := make([]string, 0, len(m.states))
	for label := range m.states {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Atoms returns the monomer's atoms. If incAltStates is true, the atoms of
// every conformation state are returned in state order; otherwise only the
// active state's atoms are returned, in insertion order. The incLigands
// argument is accepted for interface consistency and ignored.
func (m *Monomer) Atoms(incLigands, incAltStates bool) []*Atom {
	if !incAltStates {
		return m.states[m.active].list()
	}
	var atoms []*Atom
	for _, state := range m.States() {
		atoms = append(atoms, m.states[state].list()...)
	}
	return atoms
}

// Backbone returns a new Monomer sharing this monomer's backbone atoms
// (N, CA, C, O). Atoms not present are skipped.
func (m *Monomer) Backbone() *Monomer {
	bb := NewMonomer(m.MolCode, m.ID)
	bb.InsertionCode = m.InsertionCode
	bb.Hetero = m.Hetero
	for _, label := range []string{"N", "CA", "C", "O"} {
		if a, ok := m.Atom(label); ok {
			bb.states[bb.active].set(label, a)
		}
	}
	return bb
}

// Copy returns a deep copy of the monomer and its atoms. The parent
// reference is left nil for the new polymer to set.
func (m *Monomer) Copy() *Monomer {
	dup := NewMonomer(m.MolCode, m.ID)
	dup.InsertionCode = m.InsertionCode
	dup.Hetero = m.Hetero
	dup.active = m.active
	dup.states = make(map[string]*atomDict, len(m.states))
	if m.SecStruct != nil {
		ss := *m.SecStruct
		dup.SecStruct = &ss
	}
	if m.Access != nil {
		acc := *m.Access
		dup.Access = &acc
	}
	for state, d := range m.states {
		nd := newAtomDict()
		for _, label := range d.labels {
			a := d.atoms[label].Copy()
			a.Parent = dup
			nd.set(label, a)
		}
		dup.states[state] = nd
	}
	return dup
}
