package ampal

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a contiguous run of residues sharing one secondary-structure
// classification, stored on the owning Polymer by dssp.Tag. Type is the
// structure-type character; a space marks a loop region.
type Region struct {
	Start, End string
	Type       byte
}

// Polymer is an ordered chain of Monomers; order carries the sequence
// semantics. A polymer may have a group of associated ligands attached,
// kept separate from the chain itself.
type Polymer struct {
	ID string

	// MoleculeType describes the polymer contents, e.g. "protein",
	// "nucleic acid" or "ligands".
	MoleculeType string

	// Parent is a non-owning reference to the Assembly that owns this
	// polymer.
	Parent *Assembly

	// Ligands groups the hetero monomers associated with this chain.
	Ligands *Polymer

	// SmoothingLevel is the default smoothing used when deriving the
	// backbone primitive; it is carried for downstream geometry.
	SmoothingLevel int

	// SSRegions lists the tagged secondary-structure regions, if any.
	SSRegions []Region

	monomers []*Monomer
}

// NewPolymer creates a Polymer from zero or more monomers, taking ownership
// of them.
func NewPolymer(id string, monomers ...*Monomer) *Polymer {
	p := &Polymer{ID: id, SmoothingLevel: 2}
	for _, m := range monomers {
		p.Append(m)
	}
	return p
}

func (p *Polymer) String() string {
	noun := "Monomers"
	if len(p.monomers) == 1 {
		noun = "Monomer"
	}
	return fmt.Sprintf("<Polymer containing %d %s>", len(p.monomers), noun)
}

// Len returns the number of monomers in the chain, excluding ligands.
func (p *Polymer) Len() int {
	return len(p.monomers)
}

// Append adds a monomer to the end of the chain, taking ownership of it.
func (p *Polymer) Append(m *Monomer) {
	m.Parent = p
	p.monomers = append(p.monomers, m)
}

// Monomer returns the monomer with the given identifier.
func (p *Polymer) Monomer(id string) (*Monomer, bool) {
	for _, m := range p.monomers {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// MonomerAt returns the monomer at a sequence position.
func (p *Polymer) MonomerAt(i int) *Monomer {
	return p.monomers[i]
}

// Monomers returns the monomers of the chain in order. If incLigands is
// true, the associated ligand monomers are appended after the chain.
func (p *Polymer) Monomers(incLigands bool) []*Monomer {
	monomers := make([]*Monomer, len(p.monomers))
	copy(monomers, p.monomers)
	if incLigands && p.Ligands != nil {
		monomers = append(monomers, p.Ligands.monomers...)
	}
	return monomers
}

// Atoms flattens the polymer to its atoms in chain order. Ligand atoms are
// included when incLigands is true; atoms of inactive alternate
// conformations when incAltStates is true.
func (p *Polymer) Atoms(incLigands, incAltStates bool) []*Atom {
	var atoms []*Atom
	for _, m := range p.Monomers(incLigands) {
		atoms = append(atoms, m.Atoms(false, incAltStates)...)
	}
	return atoms
}

// Slice returns a new Polymer containing the contiguous run of monomers
// between the start and end residue identifiers, inclusive. The monomers are
// shared with the receiver, not copied. ErrResidueNotFound is returned if
// either identifier, or any identifier in the numeric range between them, is
// not present in the chain.
func (p *Polymer) Slice(start, end string) (*Polymer, error) {
	first, err := strconv.Atoi(start)
	if err != nil {
		return nil, fmt.Errorf("residue id %q is not numeric: %w",
			start, ErrResidueNotFound)
	}
	last, err := strconv.Atoi(end)
	if err != nil {
		return nil, fmt.Errorf("residue id %q is not numeric: %w",
			end, ErrResidueNotFound)
	}
	byID := make(map[string]*Monomer, len(p.monomers))
	for _, m := range p.monomers {
		byID[m.ID] = m
	}
	slice := NewPolymer(p.ID)
	slice.MoleculeType = p.MoleculeType
	for i := first; i <= last; i++ {
		m, ok := byID[strconv.Itoa(i)]
		if !ok {
			return nil, fmt.Errorf("no residue with id %d in polymer %q: %w",
				i, p.ID, ErrResidueNotFound)
		}
		slice.monomers = append(slice.monomers, m)
	}
	return slice, nil
}

// Backbone returns a new Polymer containing only the backbone atoms of each
// monomer. The atoms are shared with the receiver.
func (p *Polymer) Backbone() *Polymer {
	bb := NewPolymer(p.ID)
	bb.MoleculeType = p.MoleculeType
	for _, m := range p.monomers {
		bb.monomers = append(bb.monomers, m.Backbone())
	}
	return bb
}

// Sequence returns the single-letter residue sequence of the chain. Residues
// with molecule codes that are not standard amino acids appear as 'X'.
func (p *Polymer) Sequence() string {
	var seq strings.Builder
	for _, m := range p.monomers {
		if letter, ok := aminoThreeToOne[m.MolCode]; ok {
			seq.WriteByte(letter)
		} else {
			seq.WriteByte('X')
		}
	}
	return seq.String()
}

// RelabelMonomers renumbers the chain's monomers from 1.
func (p *Polymer) RelabelMonomers() {
	for i, m := range p.monomers {
		m.ID = strconv.Itoa(i + 1)
	}
}

// Copy returns a deep copy of the polymer, its monomers, atoms and ligands.
func (p *Polymer) Copy() *Polymer {
	dup := NewPolymer(p.ID)
	dup.MoleculeType = p.MoleculeType
	dup.SmoothingLevel = p.SmoothingLevel
	dup.SSRegions = append([]Region(nil), p.SSRegions...)
	for _, m := range p.monomers {
		dup.Append(m.Copy())
	}
	if p.Ligands != nil {
		dup.Ligands = p.Ligands.Copy()
	}
	return dup
}

// aminoThreeToOne maps three letter amino acid codes to their single letter
// representation.
var aminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// IsAminoAcid reports whether a molecule code is a standard amino acid.
func IsAminoAcid(molCode string) bool {
	_, ok := aminoThreeToOne[molCode]
	return ok
}
