// pdb-bonds infers the covalent bonds of a structure from inter-atomic
// distances and prints them, one per line. With -split, it instead breaks
// the bond between two named atoms and prints the resulting connected
// components of the bond graph.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/isambard-uob/ampal/ampal"
	"github.com/isambard-uob/ampal/cmd/util"
	"github.com/isambard-uob/ampal/interactions"
	"github.com/isambard-uob/ampal/pdb"
)

var (
	flagRange = flag.Float64("range", interactions.DefaultBondRange,
		"The longest inter-atomic distance considered for a bond, in angstroms.")
	flagThreshold = flag.Float64("threshold", interactions.DefaultBondThreshold,
		"The bond length tolerance as a multiple of the radius-sum distance.")
	flagSplit = flag.String("split", "",
		"Break the bond between two atoms given as 'res1:label1,res2:label2' "+
			"and print the fragments on each side.")
)

func main() {
	util.FlagParse("pdb-file", "")
	util.AssertNArg(1)

	asm, err := pdb.New(flag.Arg(0))
	util.Assert(err, "Could not read PDB file '%s'", flag.Arg(0))

	bonds, err := interactions.FindCovalentBonds(
		asm, *flagRange, *flagThreshold, true)
	util.Assert(err, "Could not infer covalent bonds")

	if len(*flagSplit) > 0 {
		splitBonds(bonds, *flagSplit)
		return
	}
	for _, bond := range bonds {
		fmt.Printf("%s (%0.3f A)\n", bond, bond.Dist)
	}
}

// splitBonds breaks one bond and prints each remaining fragment.
func splitBonds(bonds []interactions.Bond, spec string) {
	atom1, atom2 := findBreakPair(bonds, spec)
	graph := interactions.NewBondGraph(bonds)
	components, err := graph.SplitOnBreak(atom1, atom2)
	util.Assert(err, "Could not split on '%s'", spec)

	for i, component := range components {
		fmt.Printf("Fragment %d (%d atoms):\n", i+1, len(component))
		for _, a := range component {
			fmt.Printf("  %s %s\n", a.Parent.ID, a.Label)
		}
	}
}

// findBreakPair resolves a 'res1:label1,res2:label2' specification against
// the atoms appearing in the bond list.
func findBreakPair(bonds []interactions.Bond, spec string) (*ampal.Atom, *ampal.Atom) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		util.Fatalf("Bad -split value '%s'; want 'res1:label1,res2:label2'.", spec)
	}
	atom1 := findAtom(bonds, parts[0])
	atom2 := findAtom(bonds, parts[1])
	return atom1, atom2
}

func findAtom(bonds []interactions.Bond, spec string) *ampal.Atom {
	res, label, ok := strings.Cut(spec, ":")
	if !ok {
		util.Fatalf("Bad atom '%s'; want 'residue:label'.", spec)
	}
	for _, bond := range bonds {
		for _, a := range []*ampal.Atom{bond.A, bond.B} {
			if a.Parent.ID == res && a.Label == label {
				return a
			}
		}
	}
	util.Fatalf("No bonded atom '%s' in residue '%s'.", label, res)
	return nil
}
