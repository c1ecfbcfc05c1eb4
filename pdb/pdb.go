// Package pdb reads PDB format coordinate files into the structural
// hierarchy.
package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/isambard-uob/ampal/ampal"
	"github.com/isambard-uob/ampal/geom"
)

// New creates an Assembly from a PDB file. If the file cannot be read, or
// there is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
func New(fileName string) (*ampal.Assembly, error) {
	var reader io.Reader
	var err error

	reader, err = os.Open(fileName)
	if err != nil {
		return nil, err
	}

	// If the file is gzipped, use the gzip decompressor.
	if path.Ext(fileName) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}
	return Read(reader, idFromFileName(fileName))
}

// Read creates an Assembly with the given identifier from PDB formatted
// data. ATOM records populate each chain's residues; HETATM records
// populate the chain's ligand group. Alternate locations become alternate
// states on the residue, keyed by the altLoc character. Only the first
// model of a multi-model file is read.
func Read(r io.Reader, id string) (*ampal.Assembly, error) {
	asm := ampal.NewAssembly(id)

	// Monomers are keyed by chain, residue number and insertion code so
	// that alternate location records land on the residue they extend.
	monomers := make(map[string]*ampal.Monomer)

	breader := bufio.NewReaderSize(r, 1000)
	lineNum := 0
	for {
		// We ignore 'isPrefix' here, since we never care about lines
		// longer than 1000 characters, which is the size of our buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		lineNum++

		// The record name is always in the first six columns.
		record := strings.TrimSpace(string(chop(line, 0, 6)))
		switch record {
		case "ATOM", "HETATM":
			if err := parseAtom(asm, monomers, line, record == "HETATM"); err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNum, err)
			}
		case "ENDMDL":
			return asm, nil
		}
	}
	return asm, nil
}

// parseAtom loads one coordinate record. Columns follow the PDB fixed
// layout: serial 7-11, name 13-16, altLoc 17, resName 18-20, chainID 22,
// resSeq 23-26, iCode 27, x/y/z 31-54, occupancy 55-60, B factor 61-66,
// element 77-78 and charge 79-80 (columns counted from 1).
func parseAtom(asm *ampal.Assembly, monomers map[string]*ampal.Monomer, line []byte, hetero bool) error {
	if len(line) < 54 {
		return fmt.Errorf("coordinate record too short: %q", string(line))
	}

	x, err := coord(line, 30, 38)
	if err != nil {
		return err
	}
	y, err := coord(line, 38, 46)
	if err != nil {
		return err
	}
	z, err := coord(line, 46, 54)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(string(chop(line, 12, 16)))
	element := strings.TrimSpace(string(chop(line, 76, 78)))
	if element == "" {
		element = elementFromName(name)
	}

	atom := ampal.NewAtom(geom.Vec{x, y, z}, element, name)
	atom.ID = strings.TrimSpace(string(chop(line, 6, 11)))
	atom.Charge = strings.TrimSpace(string(chop(line, 78, 80)))
	if occ := strings.TrimSpace(string(chop(line, 54, 60))); occ != "" {
		if atom.Occupancy, err = strconv.ParseFloat(occ, 64); err != nil {
			return fmt.Errorf("bad occupancy %q", occ)
		}
	}
	if bfac := strings.TrimSpace(string(chop(line, 60, 66))); bfac != "" {
		if atom.Bfactor, err = strconv.ParseFloat(bfac, 64); err != nil {
			return fmt.Errorf("bad b factor %q", bfac)
		}
	}

	chainID := strings.TrimSpace(string(chop(line, 21, 22)))
	resName := strings.TrimSpace(string(chop(line, 17, 20)))
	resSeq := strings.TrimSpace(string(chop(line, 22, 26)))
	iCode := strings.TrimSpace(string(chop(line, 26, 27)))

	key := chainID + "\x00" + resSeq + "\x00" + iCode
	if hetero {
		key = "het\x00" + key
	}
	mon, ok := monomers[key]
	if !ok {
		mon = ampal.NewMonomer(resName, resSeq)
		mon.InsertionCode = iCode
		mon.Hetero = hetero
		monomers[key] = mon

		chain := getOrMakeChain(asm, chainID)
		if hetero {
			if chain.Ligands == nil {
				chain.Ligands = ampal.NewPolymer(chainID)
				chain.Ligands.MoleculeType = "ligands"
			}
			chain.Ligands.Append(mon)
		} else {
			chain.Append(mon)
			if ampal.IsAminoAcid(resName) {
				chain.MoleculeType = "protein"
			}
		}
	}

	if altLoc := chop(line, 16, 17)[0]; altLoc != ' ' {
		mon.AddAtomToState(string(altLoc), atom)
	} else {
		mon.AddAtom(atom)
	}
	return nil
}

// getOrMakeChain looks for a chain in the assembly corresponding to the
// chain identifier. If one exists, it is returned. If one doesn't exist,
// it is created, appended to the assembly and returned.
func getOrMakeChain(asm *ampal.Assembly, id string) *ampal.Polymer {
	if chain, ok := asm.Polymer(id); ok {
		return chain
	}
	chain := ampal.NewPolymer(id)
	asm.Append(chain)
	return chain
}

// chop returns the columns [start, end) of a record, tolerating records
// whose optional trailing columns are absent.
func chop(line []byte, start, end int) []byte {
	if start >= len(line) {
		return []byte{' '}
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

func coord(line []byte, start, end int) (float64, error) {
	field := strings.TrimSpace(string(line[start:end]))
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q", field)
	}
	return v, nil
}

// elementFromName falls back to the first alphabetic character of an atom
// name when the element columns are blank.
func elementFromName(name string) string {
	for _, c := range name {
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
			return string(c)
		}
	}
	return ""
}

func idFromFileName(fileName string) string {
	base := path.Base(fileName)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, path.Ext(base))
}
