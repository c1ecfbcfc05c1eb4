package pdb

import (
	"strconv"
	"strings"
	"testing"

	"github.com/isambard-uob/ampal/ampal"
	"github.com/isambard-uob/ampal/geom"
)

func testAssembly() *ampal.Assembly {
	chain := ampal.NewPolymer("A")
	chain.MoleculeType = "protein"
	for i := 0; i < 2; i++ {
		res := ampal.NewMonomer("GLY", strconv.Itoa(i+1))
		base := geom.Vec{float64(3 * i), 0, 0}
		res.AddAtom(ampal.NewAtom(base, "N", "N"))
		res.AddAtom(ampal.NewAtom(base.Add(geom.Vec{1.5, -2.25, 0}), "C", "CA"))
		res.AddAtom(ampal.NewAtom(base.Add(geom.Vec{2, 0, 0.5}), "C", "C"))
		chain.Append(res)
	}
	water := ampal.NewMonomer("HOH", "101")
	water.Hetero = true
	water.AddAtom(ampal.NewAtom(geom.Vec{50, 50, 50}, "O", "O"))
	chain.Ligands = ampal.NewPolymer("A", water)
	chain.Ligands.MoleculeType = "ligands"
	return ampal.NewAssembly("test", chain)
}

func TestReadRoundTrip(t *testing.T) {
	orig := testAssembly()
	parsed, err := Read(strings.NewReader(orig.PDB()), "test")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if parsed.Len() != 1 {
		t.Fatalf("chains: got %d, want 1", parsed.Len())
	}
	chain, ok := parsed.Polymer("A")
	if !ok {
		t.Fatal("chain A missing")
	}
	if chain.MoleculeType != "protein" {
		t.Errorf("molecule type: got %q, want %q", chain.MoleculeType, "protein")
	}
	if chain.Len() != 2 {
		t.Fatalf("residues: got %d, want 2", chain.Len())
	}
	if chain.Ligands == nil || chain.Ligands.Len() != 1 {
		t.Fatal("water ligand missing")
	}
	if !chain.Ligands.MonomerAt(0).Hetero {
		t.Error("ligand should be marked hetero")
	}

	res, ok := chain.Monomer("1")
	if !ok {
		t.Fatal("residue 1 missing")
	}
	if res.MolCode != "GLY" {
		t.Errorf("residue code: got %q, want %q", res.MolCode, "GLY")
	}
	ca, ok := res.Atom("CA")
	if !ok {
		t.Fatal("CA missing")
	}
	if d := geom.Distance(ca.Pos, geom.Vec{1.5, -2.25, 0}); d > 1e-9 {
		t.Errorf("CA position: got %v", ca.Pos)
	}
	if ca.Element != "C" {
		t.Errorf("CA element: got %q, want %q", ca.Element, "C")
	}
}

func TestReadAltLoc(t *testing.T) {
	res := ampal.NewMonomer("SER", "1")
	res.AddAtom(ampal.NewAtom(geom.Vec{0, 0, 0}, "C", "CB"))
	res.AddAtomToState("B", ampal.NewAtom(geom.Vec{1, 0, 0}, "C", "CB"))
	out := ampal.MakePDB([]*ampal.Monomer{res}, "A", true)

	parsed, err := Read(strings.NewReader(out), "test")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	chain, _ := parsed.Polymer("A")
	mon, ok := chain.Monomer("1")
	if !ok {
		t.Fatal("residue 1 missing")
	}
	states := mon.States()
	if len(states) != 2 {
		t.Fatalf("states: got %v, want [A B]", states)
	}
	if err := mon.SetActiveState("B"); err != nil {
		t.Fatalf("SetActiveState: %v", err)
	}
	cb, _ := mon.Atom("CB")
	if cb.Pos != (geom.Vec{1, 0, 0}) {
		t.Errorf("state B CB position: got %v", cb.Pos)
	}
}

func TestReadStopsAtEndmdl(t *testing.T) {
	orig := testAssembly()
	one := orig.PDB()
	doubled := strings.Replace(one, "END\n", "ENDMDL\n", 1) + one
	parsed, err := Read(strings.NewReader(doubled), "test")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	chain, _ := parsed.Polymer("A")
	if chain.Len() != 2 {
		t.Errorf("second model should be skipped: got %d residues", chain.Len())
	}
	res, _ := chain.Monomer("1")
	if n, _ := res.Atom("N"); len(res.Atoms(false, true)) != 3 || n == nil {
		t.Errorf("residue 1 atoms: got %d", len(res.Atoms(false, true)))
	}
}

func TestReadBadCoordinate(t *testing.T) {
	line := "ATOM      1  CA  GLY A   1      banana!!   0.000   0.000  1.00  0.00           C\n"
	if _, err := Read(strings.NewReader(line), "test"); err == nil {
		t.Error("malformed coordinate should error")
	}
}

func TestIDFromFileName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"1abc.pdb", "1abc"},
		{"/data/structures/1abc.pdb.gz", "1abc"},
		{"model", "model"},
	}
	for _, test := range tests {
		if got := idFromFileName(test.path); got != test.want {
			t.Errorf("idFromFileName(%q): got %q, want %q", test.path, got, test.want)
		}
	}
}
