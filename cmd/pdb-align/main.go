// pdb-align superposes the backbone of a mobile chain onto a reference
// chain by Metropolis Monte Carlo rigid-body moves and prints the best
// backbone RMSD found. With -out, the aligned pose is also written as a
// PDB file.
package main

import (
	"flag"
	"fmt"

	"github.com/isambard-uob/ampal/align"
	"github.com/isambard-uob/ampal/ampal"
	"github.com/isambard-uob/ampal/cmd/util"
	"github.com/isambard-uob/ampal/pdb"
	"github.com/isambard-uob/ampal/rmsd"
)

var (
	flagStopWhen = flag.Float64("stop-when", 0,
		"Stop early once the best RMSD is at or below this value, "+
			"in angstroms. Zero means run all rounds.")
	flagOut = flag.String("out", "",
		"Write the aligned mobile chain to this PDB file.")
	flagVerbose = flag.Bool("verbose", false,
		"Print per-round progress to stderr.")
	flagKabsch = flag.Bool("kabsch", false,
		"Print the superposition-optimal backbone RMSD (Kabsch) instead "+
			"of searching for a pose.")
)

func main() {
	util.FlagParse("reference-pdb ref-chain mobile-pdb mobile-chain", "")
	util.AssertNArg(4)

	reference := readChain(flag.Arg(0), flag.Arg(1))
	mobile := readChain(flag.Arg(2), flag.Arg(3))

	if *flagKabsch {
		best, err := rmsd.Superposed(
			ampal.Coords(mobile.Backbone()),
			ampal.Coords(reference.Backbone()))
		util.Assert(err, "Could not superpose '%s' onto '%s'",
			flag.Arg(2), flag.Arg(0))
		fmt.Printf("%f\n", best)
		return
	}

	var stopWhen *float64
	if *flagStopWhen > 0 {
		stopWhen = flagStopWhen
	}
	best, pose, err := align.Backbones(reference, mobile, stopWhen, *flagVerbose)
	util.Assert(err, "Could not align '%s' onto '%s'", flag.Arg(2), flag.Arg(0))

	fmt.Printf("%f\n", best)
	if len(*flagOut) > 0 {
		out := util.CreateFile(*flagOut)
		defer out.Close()
		_, err := out.WriteString(pose.PDB())
		util.Assert(err, "Could not write aligned pose to '%s'", *flagOut)
	}
}

func readChain(fileName, chainID string) *ampal.Polymer {
	asm, err := pdb.New(fileName)
	util.Assert(err, "Could not read PDB file '%s'", fileName)
	chain, ok := asm.Polymer(chainID)
	if !ok {
		util.Fatalf("The chain '%s' could not be found in '%s'.",
			chainID, fileName)
	}
	return chain
}
