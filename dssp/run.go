package dssp

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/BurntSushi/cmd"

	"github.com/isambard-uob/ampal/ampal"
)

// Config locates the DSSP executable and controls how it is run.
type Config struct {
	// Exec points to the 'mkdssp' executable. If 'mkdssp' is in your PATH,
	// it is sufficient to leave this as 'mkdssp'.
	Exec string

	// When true, each command executed is printed to stderr and the
	// program's stderr is passed through.
	Verbose bool
}

// DefaultConfig runs 'mkdssp' from the PATH. For example:
//
//	out, err := dssp.DefaultConfig.Run(asm)
var DefaultConfig = Config{
	Exec: "mkdssp",
}

// Available reports whether the DSSP executable can be started. A run that
// starts and exits non-zero still counts as available; only a missing
// executable does not.
func Available(conf Config) bool {
	err := cmd.New(conf.Exec).Run()
	if err == nil {
		return true
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return false
	}
	return true
}

// Run executes DSSP over an assembly and returns its raw output. The
// assembly is serialised to a temporary PDB file which is removed before
// returning.
func (conf Config) Run(asm *ampal.Assembly) (string, error) {
	pdbFile, err := os.CreateTemp("", "ampal-dssp-*.pdb")
	if err != nil {
		return "", err
	}
	defer os.Remove(pdbFile.Name())
	defer pdbFile.Close()

	if _, err := pdbFile.WriteString(asm.PDB()); err != nil {
		return "", fmt.Errorf("writing temporary pdb: %v", err)
	}

	c := cmd.New(conf.Exec, pdbFile.Name())
	var out bytes.Buffer
	c.Cmd.Stdout = &out
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Tag runs DSSP over an assembly and writes the results onto it: each
// residue that DSSP reports gets its SecStruct set, and each chain gets
// its SSRegions filled in with loop regions normalised per loopTypes. Pass
// DefaultLoopTypes unless a non-standard loop classification is needed.
func (conf Config) Tag(asm *ampal.Assembly, loopTypes []byte) error {
	out, err := conf.Run(asm)
	if err != nil {
		return fmt.Errorf("running dssp: %w", err)
	}
	records, err := Parse(strings.NewReader(out))
	if err != nil {
		return err
	}
	return TagRecords(asm, records, loopTypes)
}
