package molecule

// Atom is one parsed atom: an element id (index into Elements) and a position
// in the units of the coordinate file. Atoms are created by Read and never
// modified afterwards.
type Atom struct {
	Element uint8
	Pos     [3]float32
}

// Bond is a connectivity edge between two atoms, stored as indices into the
// atom slice of the Molecule. I is always lower than J.
type Bond struct {
	I, J int
}

// Molecule is the whole loaded structure: the atoms in file order and the
// bonds inferred from their positions. It is built once by Read and must be
// treated as read-only during the render loop.
type Molecule struct {
	Atoms []Atom
	Bonds []Bond
}

// New builds a Molecule from a slice of atoms. The bonds are inferred
// immediately so the structure is complete on return.
func New(atoms []Atom) *Molecule {
	return &Molecule{
		Atoms: atoms,
		Bonds: InferBonds(atoms),
	}
}
