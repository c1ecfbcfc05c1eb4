// Package naccess runs the NACCESS program to compute solvent
// accessibility and writes per-residue results back onto a structure.
//
// NACCESS is licensed separately and is not free for profit-making
// institutions; see http://www.bioinf.manchester.ac.uk/naccess/
package naccess

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/cmd"

	"github.com/isambard-uob/ampal/ampal"
)

// Config locates the NACCESS executable and controls how it is run.
type Config struct {
	// Exec points to the 'naccess' executable. If 'naccess' is in your
	// PATH, it is sufficient to leave this as 'naccess'.
	Exec string

	// IncludeHetatms passes '-h' so that HETATM records are included in
	// the calculation.
	IncludeHetatms bool

	// When true, each command executed is printed to stderr and the
	// program's stderr is passed through.
	Verbose bool
}

// DefaultConfig runs 'naccess' from the PATH.
var DefaultConfig = Config{
	Exec: "naccess",
}

// Available reports whether the NACCESS executable can be started. A run
// that starts and exits non-zero still counts as available; only a missing
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

// Run executes NACCESS over an assembly and returns the contents of its
// rsa output file. NACCESS writes its output files next to its input, so
// the run happens inside a temporary directory which is removed before
// returning.
func (conf Config) Run(asm *ampal.Assembly) (string, error) {
	tempDir, err := os.MkdirTemp("", "ampal-naccess")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tempDir)

	pdbPath := filepath.Join(tempDir, "input.pdb")
	if err := os.WriteFile(pdbPath, []byte(asm.PDB()), 0666); err != nil {
		return "", fmt.Errorf("writing temporary pdb: %v", err)
	}

	args := []string{}
	if conf.IncludeHetatms {
		args = append(args, "-h")
	}
	args = append(args, "input.pdb")

	c := cmd.New(conf.Exec, args...)
	c.Cmd.Dir = tempDir
	var out bytes.Buffer
	c.Cmd.Stdout = &out
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return "", err
	}

	rsa, err := os.ReadFile(filepath.Join(tempDir, "input.rsa"))
	if err != nil {
		return "", fmt.Errorf("reading naccess rsa output: %v", err)
	}
	return string(rsa), nil
}

// ResidueAccessibility is the per-residue output of NACCESS: the absolute
// and relative solvent accessible surface area over all of the residue's
// atoms.
type ResidueAccessibility struct {
	Chain       string
	Residue     string
	AllAtomsAbs float64
	AllAtomsRel float64
}

// Totals holds the whole-structure accessibility summary from the end of
// an rsa file.
type Totals struct {
	AllAtoms   float64
	SideChains float64
	MainChain  float64
	NonPolar   float64
	Polar      float64
}

// ParseRSA reads an rsa file and returns the per-residue accessibility
// records along with the whole-structure totals. Both RES and HEM records
// contribute residues.
func ParseRSA(r io.Reader) ([]ResidueAccessibility, Totals, error) {
	var (
		residues []ResidueAccessibility
		totals   Totals
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "RES") || strings.HasPrefix(line, "HEM"):
			if len(line) < 28 {
				continue
			}
			abs, err := strconv.ParseFloat(strings.TrimSpace(line[14:22]), 64)
			if err != nil {
				return nil, Totals{}, fmt.Errorf("bad rsa record %q: %v", line, err)
			}
			rel, err := strconv.ParseFloat(strings.TrimSpace(line[22:28]), 64)
			if err != nil {
				return nil, Totals{}, fmt.Errorf("bad rsa record %q: %v", line, err)
			}
			residues = append(residues, ResidueAccessibility{
				Chain:       strings.TrimSpace(line[8:9]),
				Residue:     strings.TrimSpace(line[9:13]),
				AllAtomsAbs: abs,
				AllAtomsRel: rel,
			})
		case strings.HasPrefix(line, "TOTAL"):
			fields := strings.Fields(line)[1:]
			if len(fields) != 5 {
				return nil, Totals{}, fmt.Errorf("bad rsa total line %q", line)
			}
			values := make([]float64, 5)
			for i, field := range fields {
				v, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, Totals{}, fmt.Errorf("bad rsa total line %q: %v",
						line, err)
				}
				values[i] = v
			}
			totals = Totals{
				AllAtoms:   values[0],
				SideChains: values[1],
				MainChain:  values[2],
				NonPolar:   values[3],
				Polar:      values[4],
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Totals{}, fmt.Errorf("reading rsa output: %v", err)
	}
	return residues, totals, nil
}

// TagResidues writes per-residue accessibility records onto an assembly.
// Records naming chains or residues the assembly does not have are
// skipped; NACCESS renumbers nothing, so on output produced from the same
// assembly every record should land.
func TagResidues(asm *ampal.Assembly, residues []ResidueAccessibility) {
	for _, rec := range residues {
		chain, ok := asm.Polymer(rec.Chain)
		if !ok {
			continue
		}
		mon, ok := chain.Monomer(rec.Residue)
		if !ok {
			continue
		}
		mon.Access = &ampal.Accessibility{
			AllAtomsAbs: rec.AllAtomsAbs,
			AllAtomsRel: rec.AllAtomsRel,
		}
	}
}

// Tag runs NACCESS over an assembly and sets each residue's Access from
// the results.
func (conf Config) Tag(asm *ampal.Assembly) error {
	rsa, err := conf.Run(asm)
	if err != nil {
		return fmt.Errorf("running naccess: %w", err)
	}
	residues, _, err := ParseRSA(strings.NewReader(rsa))
	if err != nil {
		return err
	}
	TagResidues(asm, residues)
	return nil
}
