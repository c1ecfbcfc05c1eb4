package ampal

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/isambard-uob/ampal/geom"
)

// testChain builds a three residue glycine chain with one water ligand.
// Residue i has its N at (3i, 0, 0), CA at (3i+1, 0, 0) and C at (3i+2, 0, 0).
func testChain() *Polymer {
	chain := NewPolymer("A")
	chain.MoleculeType = "protein"
	for i := 0; i < 3; i++ {
		res := NewMonomer("GLY", strconv.Itoa(i+1))
		res.AddAtom(NewAtom(geom.Vec{float64(3 * i), 0, 0}, "N", "N"))
		res.AddAtom(NewAtom(geom.Vec{float64(3*i + 1), 0, 0}, "C", "CA"))
		res.AddAtom(NewAtom(geom.Vec{float64(3*i + 2), 0, 0}, "C", "C"))
		chain.Append(res)
	}
	water := NewMonomer("HOH", "101")
	water.Hetero = true
	water.AddAtom(NewAtom(geom.Vec{50, 50, 50}, "O", "O"))
	chain.Ligands = NewPolymer("A", water)
	chain.Ligands.MoleculeType = "ligands"
	return chain
}

func TestFlatten(t *testing.T) {
	chain := testChain()
	if n := len(chain.Atoms(false, false)); n != 9 {
		t.Errorf("chain atoms without ligands: got %d, want 9", n)
	}
	if n := len(chain.Atoms(true, false)); n != 10 {
		t.Errorf("chain atoms with ligands: got %d, want 10", n)
	}

	asm := NewAssembly("1abc", chain)
	if n := len(asm.Atoms(true, false)); n != 10 {
		t.Errorf("assembly atoms: got %d, want 10", n)
	}
	if n := len(asm.Monomers(false)); n != 3 {
		t.Errorf("assembly monomers without ligands: got %d, want 3", n)
	}
}

func TestAltStates(t *testing.T) {
	res := NewMonomer("SER", "1")
	res.AddAtom(NewAtom(geom.Vec{0, 0, 0}, "C", "CB"))
	alt := NewAtom(geom.Vec{1, 0, 0}, "C", "CB")
	res.AddAtomToState("B", alt)

	if n := len(res.Atoms(false, false)); n != 1 {
		t.Errorf("active atoms: got %d, want 1", n)
	}
	if n := len(res.Atoms(false, true)); n != 2 {
		t.Errorf("all atoms: got %d, want 2", n)
	}
	if err := res.SetActiveState("B"); err != nil {
		t.Fatalf("SetActiveState: %v", err)
	}
	if a, _ := res.Atom("CB"); a != alt {
		t.Error("active CB should come from state B")
	}
	if err := res.SetActiveState("Z"); !errors.Is(err, ErrStateNotFound) {
		t.Errorf("missing state: got %v, want ErrStateNotFound", err)
	}
}

func TestSlice(t *testing.T) {
	chain := testChain()
	slice, err := chain.Slice("1", "2")
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if slice.Len() != 2 {
		t.Fatalf("slice length: got %d, want 2", slice.Len())
	}
	// Monomers are shared, not copied.
	orig, _ := chain.Monomer("1")
	if slice.MonomerAt(0) != orig {
		t.Error("slice should share monomers with the source polymer")
	}

	if _, err := chain.Slice("2", "7"); !errors.Is(err, ErrResidueNotFound) {
		t.Errorf("absent id: got %v, want ErrResidueNotFound", err)
	}
	if _, err := chain.Slice("x", "2"); !errors.Is(err, ErrResidueNotFound) {
		t.Errorf("non-numeric id: got %v, want ErrResidueNotFound", err)
	}
}

func TestTransforms(t *testing.T) {
	res := NewMonomer("GLY", "1")
	res.AddAtom(NewAtom(geom.Vec{1, 0, 0}, "C", "CA"))
	chain := NewPolymer("A", res)

	Translate(chain, geom.Vec{0, 2, 0})
	a, _ := res.Atom("CA")
	if d := geom.Distance(a.Pos, geom.Vec{1, 2, 0}); d > 1e-9 {
		t.Errorf("translate: atom at %v", a.Pos)
	}

	Rotate(chain, 180, geom.Vec{0, 0, 1}, geom.Vec{})
	if d := geom.Distance(a.Pos, geom.Vec{-1, -2, 0}); d > 1e-9 {
		t.Errorf("rotate: atom at %v", a.Pos)
	}
}

func TestCentreOfMass(t *testing.T) {
	res := NewMonomer("UNK", "1")
	res.AddAtom(NewAtom(geom.Vec{0, 0, 0}, "C", "C1"))
	res.AddAtom(NewAtom(geom.Vec{2, 0, 0}, "C", "C2"))
	chain := NewPolymer("A", res)
	com := CentreOfMass(chain)
	if d := geom.Distance(com, geom.Vec{1, 0, 0}); d > 1e-9 {
		t.Errorf("equal masses: centre at %v", com)
	}
}

func TestIsWithin(t *testing.T) {
	chain := testChain()
	within := IsWithin(chain, 1.0, geom.Vec{0, 0, 0})
	if len(within) != 2 {
		t.Fatalf("atoms within 1.0 of origin: got %d, want 2", len(within))
	}
	// Boundary is inclusive.
	within = IsWithin(chain, 2.0, geom.Vec{0, 0, 0})
	if len(within) != 3 {
		t.Errorf("atoms within 2.0 of origin: got %d, want 3", len(within))
	}
}

func TestBackbone(t *testing.T) {
	chain := testChain()
	bb := chain.Backbone()
	if n := len(bb.Atoms(false, false)); n != 9 {
		t.Errorf("backbone atoms: got %d, want 9", n)
	}
	// Backbone shares atoms with the source.
	orig, _ := chain.MonomerAt(0).Atom("CA")
	got, _ := bb.MonomerAt(0).Atom("CA")
	if got != orig {
		t.Error("backbone should share atoms with the source polymer")
	}
}

func TestCopyIsDeep(t *testing.T) {
	chain := testChain()
	dup := chain.Copy()
	if dup.Len() != chain.Len() {
		t.Fatalf("copy length: got %d, want %d", dup.Len(), chain.Len())
	}
	Translate(dup, geom.Vec{10, 0, 0})
	a, _ := chain.MonomerAt(0).Atom("N")
	if a.Pos != (geom.Vec{0, 0, 0}) {
		t.Error("translating the copy moved the original")
	}
	da, _ := dup.MonomerAt(0).Atom("N")
	if da.Parent != dup.MonomerAt(0) {
		t.Error("copied atom parent not rewired")
	}
	if dup.Ligands == nil || dup.Ligands.Len() != 1 {
		t.Error("ligands not copied")
	}
}

func TestSequence(t *testing.T) {
	chain := testChain()
	if seq := chain.Sequence(); seq != "GGG" {
		t.Errorf("sequence: got %q, want %q", seq, "GGG")
	}
}

func TestLookupElement(t *testing.T) {
	for _, symbol := range []string{"Fe", "FE", "fe"} {
		data, ok := LookupElement(symbol)
		if !ok || data.Name != "Iron" {
			t.Errorf("LookupElement(%q): got %v, %v", symbol, data, ok)
		}
	}
	if _, ok := LookupElement("Xx"); ok {
		t.Error("unknown element should not resolve")
	}
}

func TestMakePDBColumns(t *testing.T) {
	res := NewMonomer("GLY", "1")
	res.AddAtom(NewAtom(geom.Vec{1.5, -2.25, 3}, "N", "N"))
	line := MakePDB([]*Monomer{res}, "A", false)
	if len(line) < 54 {
		t.Fatalf("record too short: %q", line)
	}
	if got := line[:6]; got != "ATOM  " {
		t.Errorf("record name: got %q", got)
	}
	if got := line[21]; got != 'A' {
		t.Errorf("chain id column: got %q", string(got))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	if err != nil || math.Abs(x-1.5) > 1e-9 {
		t.Errorf("x column: got %q", line[30:38])
	}
}
