package ampal

import (
	"fmt"
	"strings"
)

// MakePDB writes fixed-column ATOM/HETATM records for a list of monomers.
// If altStates is true, atoms of every conformation state are written with
// their alternate location indicators; otherwise only the active state is
// written. This is the representation handed to external collaborators such
// as DSSP and NACCESS.
func MakePDB(monomers []*Monomer, chainID string, altStates bool) string {
	var out strings.Builder
	if len(chainID) != 1 {
		chainID = " "
	}
	serial := 1
	for _, m := range monomers {
		for _, a := range m.Atoms(false, altStates) {
			state := a.State
			if !altStates || (state == "A" && len(m.States()) == 1) {
				state = " "
			}
			record := "ATOM  "
			if m.Hetero {
				record = "HETATM"
			}
			fmt.Fprintf(&out,
				"%s%5s %-4s%1s%-3s %1s%4s%1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%-2s\n",
				record,
				cap5(atomID(a, serial)),
				atomName(a.Label),
				cap1(state),
				cap3(m.MolCode),
				chainID,
				cap4(m.ID),
				cap1(m.InsertionCode),
				a.Pos[0], a.Pos[1], a.Pos[2],
				a.Occupancy, a.Bfactor,
				cap2(a.Element),
				cap2(a.Charge))
			serial++
		}
	}
	return out.String()
}

// PDB returns the PDB representation of the whole assembly, ligands
// included, with a TER record closing each chain.
func (a *Assembly) PDB() string {
	var out strings.Builder
	for _, p := range a.polymers {
		out.WriteString(p.PDB())
		out.WriteString("TER\n")
	}
	out.WriteString("END\n")
	return out.String()
}

// PDB returns the PDB representation of the chain and its ligands.
func (p *Polymer) PDB() string {
	return MakePDB(p.Monomers(true), p.ID, false)
}

// PDB returns the PDB representation of the monomer.
func (m *Monomer) PDB() string {
	chainID := " "
	if m.Parent != nil {
		chainID = m.Parent.ID
	}
	return MakePDB([]*Monomer{m}, chainID, false)
}

func atomID(a *Atom, serial int) string {
	if a.ID != "" {
		return a.ID
	}
	return fmt.Sprintf("%d", serial)
}

// atomName formats an atom label into the 4-character name field. Labels of
// fewer than four characters are indented by one so the element sits in the
// conventional column.
func atomName(label string) string {
	if len(label) < 4 {
		return " " + label
	}
	return label
}

// capN shortens a value to its last n characters, like the fixed columns of
// the format demand.
func capN(v string, n int) string {
	if len(v) <= n {
		return v
	}
	return v[len(v)-n:]
}

func cap1(v string) string { return capN(v, 1) }
func cap2(v string) string { return capN(v, 2) }
func cap3(v string) string { return capN(v, 3) }
func cap4(v string) string { return capN(v, 4) }
func cap5(v string) string { return capN(v, 5) }
