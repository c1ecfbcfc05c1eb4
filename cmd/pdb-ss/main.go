// pdb-ss runs DSSP over a structure and prints its regions of continuous
// secondary structure. With -extract, the residues of every region matching
// the given assignment codes are written out as PDB records instead.
package main

import (
	"flag"
	"fmt"

	"github.com/isambard-uob/ampal/cmd/util"
	"github.com/isambard-uob/ampal/dssp"
	"github.com/isambard-uob/ampal/pdb"
)

var (
	flagExec = flag.String("dssp", dssp.DefaultConfig.Exec,
		"The path to the mkdssp executable.")
	flagExtract = flag.String("extract", "",
		"Write the residues of regions matching these assignment codes "+
			"(e.g. 'HE') as PDB records instead of listing regions.")
	flagVerbose = flag.Bool("verbose", false,
		"Print the commands executed to stderr.")
)

func main() {
	util.FlagParse("pdb-file", "")
	util.AssertNArg(1)

	conf := dssp.Config{Exec: *flagExec, Verbose: *flagVerbose}
	if !dssp.Available(conf) {
		util.Fatalf("DSSP is not available; '%s' could not be started.",
			conf.Exec)
	}

	asm, err := pdb.New(flag.Arg(0))
	util.Assert(err, "Could not read PDB file '%s'", flag.Arg(0))

	err = conf.Tag(asm, dssp.DefaultLoopTypes)
	util.Assert(err, "Could not tag '%s' with DSSP data", flag.Arg(0))

	if len(*flagExtract) > 0 {
		fragments, err := dssp.ExtractRegions(asm, []byte(*flagExtract))
		util.Assert(err, "Could not extract regions")
		for _, fragment := range fragments.Polymers() {
			fmt.Print(fragment.PDB())
		}
		return
	}
	for _, chain := range asm.Polymers() {
		for _, region := range chain.SSRegions {
			fmt.Printf("%s %s-%s %c\n", chain.ID, region.Start, region.End,
				region.Type)
		}
	}
}
