package ampal

import "strings"

// ElementData holds the static per-element values used by the analysis
// packages: atomic mass for centres of mass and the atomic radius, in
// picometers, for covalent bond inference.
type ElementData struct {
	Name   string
	Mass   float64
	Radius float64
}

// Elements maps an element symbol to its data. Only the elements commonly
// found in biomolecular structures are present; look ups should go through
// LookupElement, which normalises the symbol case.
var Elements = map[string]ElementData{
	"H":  {"Hydrogen", 1.008, 25},
	"C":  {"Carbon", 12.011, 70},
	"N":  {"Nitrogen", 14.007, 65},
	"O":  {"Oxygen", 15.999, 60},
	"F":  {"Fluorine", 18.998, 50},
	"Na": {"Sodium", 22.990, 180},
	"Mg": {"Magnesium", 24.305, 150},
	"Si": {"Silicon", 28.086, 110},
	"P":  {"Phosphorus", 30.974, 100},
	"S":  {"Sulfur", 32.06, 100},
	"Cl": {"Chlorine", 35.45, 100},
	"K":  {"Potassium", 39.098, 220},
	"Ca": {"Calcium", 40.078, 180},
	"Mn": {"Manganese", 54.938, 140},
	"Fe": {"Iron", 55.845, 140},
	"Co": {"Cobalt", 58.933, 135},
	"Ni": {"Nickel", 58.693, 135},
	"Cu": {"Copper", 63.546, 135},
	"Zn": {"Zinc", 65.38, 135},
	"Se": {"Selenium", 78.971, 115},
	"Br": {"Bromine", 79.904, 115},
	"I":  {"Iodine", 126.904, 140},
}

// LookupElement returns the data for an element symbol. Symbols are
// normalised so that "FE", "fe" and "Fe" all resolve to iron.
func LookupElement(symbol string) (ElementData, bool) {
	data, ok := Elements[titleSymbol(symbol)]
	return data, ok
}

func titleSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
