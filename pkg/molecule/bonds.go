package molecule

import (
	"math"

	"github.com/kpotier/molview/pkg/util"
)

// BondCutoff is the distance below which two atoms are considered bonded. It
// is a single global threshold: the identity of the two atoms does not change
// it. Element specific radii are a possible extension but are not implemented.
const BondCutoff = 3.0

// InferBonds performs an exhaustive pairwise scan over the atoms and returns
// one Bond for every unordered pair closer than BondCutoff. The output order
// is the visit order of the double loop (ascending i, then ascending j), so
// two runs over the same atoms give the same slice. The scan is quadratic:
// the files this viewer loads hold tens of atoms, not millions.
func InferBonds(atoms []Atom) []Bond {
	var bonds []Bond
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			if Dist(atoms[i].Pos, atoms[j].Pos) < BondCutoff {
				bonds = append(bonds, Bond{i, j})
			}
		}
	}
	return bonds
}

// Dist returns the Euclidean distance between two positions.
func Dist(a, b [3]float32) float64 {
	var d float64
	for k := 0; k < 3; k++ {
		d += util.Pow(float64(a[k])-float64(b[k]), 2)
	}
	return math.Sqrt(d)
}
