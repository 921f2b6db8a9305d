// Package molecule contains the molecular data model: the element table, the
// coordinate file reader and the bond inference. A Molecule is built once from
// a file and is read-only afterwards.
package molecule

// Element describes one entry of the element table: its symbol as written in
// the coordinate file, its display color (packed 0xRRGGBBAA) and its display
// radius.
type Element struct {
	Symbol string
	Color  uint32
	Radius float32
}

// Elements is the fixed element table. The index of an entry is the element
// id stored in each Atom. The order must not change: ids are positions in
// this table.
var Elements = []Element{
	{"H", 0xFFFFFFFF, 0.25},
	{"C", 0x323232FF, 0.70},
	{"N", 0x5050FFFF, 0.65},
	{"O", 0xFF3232FF, 0.60},
	{"F", 0x00FF00FF, 0.50},
	{"P", 0xFFA500FF, 1.00},
	{"S", 0xFFFF00FF, 1.00},
	{"Cl", 0x00FF00FF, 1.00},
}

// elementID returns the index of the first entry of the table whose symbol is
// exactly equal to s, or false if there is none.
func elementID(s string) (uint8, bool) {
	for k, v := range Elements {
		if v.Symbol == s {
			return uint8(k), true
		}
	}
	return 0, false
}
