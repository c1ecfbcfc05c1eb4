// Package dssp runs the DSSP program over a structure, parses its output
// and segments the per-residue assignments into regions of continuous
// secondary structure.
package dssp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/isambard-uob/ampal/ampal"
)

var (
	// ErrNotTagged is returned when region extraction is attempted on an
	// assembly that has no tagged secondary structure regions.
	ErrNotTagged = fmt.Errorf("no tagged secondary structure regions")

	// ErrNoRegions is returned when no region matches the requested
	// secondary structure types.
	ErrNoRegions = fmt.Errorf("no regions matching secondary structure type")
)

// DefaultLoopTypes are the DSSP assignment codes treated as loop when
// segmenting assignments into regions. The blank code covers unassigned
// residues.
var DefaultLoopTypes = []byte{' ', 'B', 'S', 'T'}

// ResidueRecord is the per-residue output of DSSP.
type ResidueRecord struct {
	ResNum  int
	SSType  byte
	Chain   string
	Residue byte
	Phi     float64
	Psi     float64
	Acc     int
}

// Parse reads DSSP output and returns one record per residue. The residue
// table starts after the header line whose third column is '#'; before that
// line everything is skipped. Table lines that fail to parse, such as chain
// break markers, are silently dropped.
func Parse(r io.Reader) ([]ResidueRecord, error) {
	var records []ResidueRecord
	active := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !active {
			if len(line) > 2 && line[2] == '#' {
				active = true
			}
			continue
		}
		if len(line) < 116 {
			continue
		}
		resNum, err := strconv.Atoi(strings.TrimSpace(line[5:10]))
		if err != nil {
			continue
		}
		phi, err := strconv.ParseFloat(strings.TrimSpace(line[103:109]), 64)
		if err != nil {
			continue
		}
		psi, err := strconv.ParseFloat(strings.TrimSpace(line[109:116]), 64)
		if err != nil {
			continue
		}
		acc, err := strconv.Atoi(strings.TrimSpace(line[35:38]))
		if err != nil {
			continue
		}
		records = append(records, ResidueRecord{
			ResNum:  resNum,
			SSType:  line[16],
			Chain:   strings.TrimSpace(line[10:12]),
			Residue: line[13],
			Phi:     phi,
			Psi:     psi,
			Acc:     acc,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dssp output: %v", err)
	}
	return records, nil
}

// FindRegions segments per-residue records into regions of continuous
// secondary structure. A region ends when the chain changes or when the
// assignment class changes: consecutive residues whose assignments are both
// in loopTypes stay in one region even if the codes differ, while
// non-loop residues group only on an exact assignment match. Records are
// consumed in the order given.
func FindRegions(records []ResidueRecord, loopTypes []byte) [][]ResidueRecord {
	if len(records) == 0 {
		return nil
	}
	var regions [][]ResidueRecord
	region := []ResidueRecord{records[0]}
	prev := records[0]
	for _, rec := range records[1:] {
		var grouped bool
		switch {
		case rec.Chain != prev.Chain:
			grouped = false
		case isLoop(prev.SSType, loopTypes):
			grouped = isLoop(rec.SSType, loopTypes)
		default:
			grouped = rec.SSType == prev.SSType
		}
		if grouped {
			region = append(region, rec)
		} else {
			regions = append(regions, region)
			region = []ResidueRecord{rec}
		}
		prev = rec
	}
	return append(regions, region)
}

// TagRecords writes per-residue records onto an assembly. Each record sets
// the matching residue's SecStruct, and the regions found by FindRegions are
// appended to each chain's SSRegions with loop regions normalised to the
// blank assignment code. An error is returned if a record names a chain or
// residue the assembly does not have.
func TagRecords(asm *ampal.Assembly, records []ResidueRecord, loopTypes []byte) error {
	for _, rec := range records {
		chain, ok := asm.Polymer(rec.Chain)
		if !ok {
			return fmt.Errorf("dssp record for unknown chain %q", rec.Chain)
		}
		mon, ok := chain.Monomer(strconv.Itoa(rec.ResNum))
		if !ok {
			return fmt.Errorf("dssp record for unknown residue %d in chain %q",
				rec.ResNum, rec.Chain)
		}
		mon.SecStruct = &ampal.SecStruct{
			Assignment:           rec.SSType,
			Phi:                  rec.Phi,
			Psi:                  rec.Psi,
			SolventAccessibility: rec.Acc,
		}
	}
	for _, region := range FindRegions(records, loopTypes) {
		first, last := region[0], region[len(region)-1]
		chain, ok := asm.Polymer(first.Chain)
		if !ok {
			return fmt.Errorf("dssp region on unknown chain %q", first.Chain)
		}
		ssType := first.SSType
		if isLoop(ssType, loopTypes) {
			ssType = ' '
		}
		chain.SSRegions = append(chain.SSRegions, ampal.Region{
			Start: strconv.Itoa(first.ResNum),
			End:   strconv.Itoa(last.ResNum),
			Type:  ssType,
		})
	}
	return nil
}

// ExtractRegions pulls the tagged regions whose assignment code is in
// ssTypes out of an assembly, one polymer per region. The returned polymers
// share monomers with the source. ErrNotTagged is returned if no chain has
// tagged regions; ErrNoRegions if regions exist but none match.
func ExtractRegions(asm *ampal.Assembly, ssTypes []byte) (*ampal.Assembly, error) {
	tagged := false
	for _, chain := range asm.Polymers() {
		if len(chain.SSRegions) > 0 {
			tagged = true
			break
		}
	}
	if !tagged {
		return nil, ErrNotTagged
	}
	fragments := ampal.NewAssembly(asm.ID)
	for _, chain := range asm.Polymers() {
		for _, region := range chain.SSRegions {
			if !contains(ssTypes, region.Type) {
				continue
			}
			fragment, err := chain.Slice(region.Start, region.End)
			if err != nil {
				return nil, fmt.Errorf("extracting region %s-%s of chain %s: %w",
					region.Start, region.End, chain.ID, err)
			}
			fragments.Append(fragment)
		}
	}
	if fragments.Len() == 0 {
		return nil, ErrNoRegions
	}
	return fragments, nil
}

func isLoop(ssType byte, loopTypes []byte) bool {
	return contains(loopTypes, ssType)
}

func contains(set []byte, t byte) bool {
	for _, member := range set {
		if t == member {
			return true
		}
	}
	return false
}
