package molecule

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Errors returned by Read for a malformed coordinate file. Coordinate tokens
// that are not numbers surface as a wrapped *strconv.NumError instead.
var (
	ErrLineLength     = errors.New("invalid line length")
	ErrUnknownElement = errors.New("unknown element symbol")
)

// Read opens and parses a coordinate file. The file may start with a two line
// header: if the first line contains exactly one character, this line and the
// following comment line are skipped. Every other line must contain four
// fields: the element symbol and the three coordinates.
//
// Read returns a complete Molecule (atoms in file order, bonds inferred) or
// an error. It never returns a partially populated Molecule.
func Read(path string) (*Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	atoms, err := readAtoms(bufio.NewScanner(f))
	if err != nil {
		return nil, err
	}

	return New(atoms), nil
}

// readAtoms scans the lines of a coordinate file and returns the atoms in
// file order.
func readAtoms(s *bufio.Scanner) ([]Atom, error) {
	var (
		atoms []Atom
		line  int
	)

	for s.Scan() {
		line++

		if line == 1 && len(strings.TrimSpace(s.Text())) == 1 {
			// Two line header: the atom count marker and the comment line
			// that follows it.
			if s.Scan() {
				line++
			}
			continue
		}

		a, err := readAtom(s.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		atoms = append(atoms, a)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return atoms, nil
}

// readAtom parses one data line: an element symbol followed by the x, y and z
// coordinates, separated by whitespace.
func readAtom(l string) (a Atom, err error) {
	fields := strings.Fields(l)
	if len(fields) != 4 {
		err = fmt.Errorf("%w (4 fields expected; got %d)", ErrLineLength, len(fields))
		return
	}

	id, ok := elementID(fields[0])
	if !ok {
		err = fmt.Errorf("%w `%s`", ErrUnknownElement, fields[0])
		return
	}
	a.Element = id

	for k := 0; k < 3; k++ {
		v, errP := strconv.ParseFloat(fields[k+1], 32)
		if errP != nil {
			err = fmt.Errorf("coordinate %d: %w", k+1, errP)
			return
		}
		a.Pos[k] = float32(v)
	}

	return
}
