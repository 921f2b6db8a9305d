package molecule

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "molecule.xyz")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRead(t *testing.T) {
	m, err := Read(writeFile(t, "O 0.000 1.210 0.000\nC 0 0 0\nH -1.5 2.25 0.5\n"))
	require.NoError(t, err)
	require.Len(t, m.Atoms, 3)

	assert.Equal(t, uint8(3), m.Atoms[0].Element)
	assert.Equal(t, uint8(1), m.Atoms[1].Element)
	assert.Equal(t, uint8(0), m.Atoms[2].Element)

	assert.InDelta(t, 0, float64(m.Atoms[0].Pos[0]), 1e-6)
	assert.InDelta(t, 1.21, float64(m.Atoms[0].Pos[1]), 1e-6)
	assert.InDelta(t, -1.5, float64(m.Atoms[2].Pos[0]), 1e-6)
	assert.InDelta(t, 2.25, float64(m.Atoms[2].Pos[1]), 1e-6)
	assert.InDelta(t, 0.5, float64(m.Atoms[2].Pos[2]), 1e-6)
}

// Every symbol of the table must resolve to its own position.
func TestReadElementOrder(t *testing.T) {
	for k, e := range Elements {
		m, err := Read(writeFile(t, fmt.Sprintf("%s 1 2 3\n", e.Symbol)))
		require.NoError(t, err)
		require.Len(t, m.Atoms, 1)
		assert.Equal(t, uint8(k), m.Atoms[0].Element)
	}
}

func TestReadHeader(t *testing.T) {
	body := "O 0 0 0\nH 0 1 0\n"

	plain, err := Read(writeFile(t, body))
	require.NoError(t, err)

	header, err := Read(writeFile(t, "2\nwater fragment\n"+body))
	require.NoError(t, err)

	assert.Equal(t, plain.Atoms, header.Atoms)
	assert.Equal(t, plain.Bonds, header.Bonds)
}

func TestReadErrors(t *testing.T) {
	t.Run("three fields", func(t *testing.T) {
		m, err := Read(writeFile(t, "O 0.0 1.0\n"))
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrLineLength)
	})

	t.Run("five fields", func(t *testing.T) {
		m, err := Read(writeFile(t, "O 0.0 1.0 2.0 3.0\n"))
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrLineLength)
	})

	t.Run("unknown element", func(t *testing.T) {
		m, err := Read(writeFile(t, "Zz 0.0 1.0 2.0\n"))
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrUnknownElement)
	})

	t.Run("bad coordinate", func(t *testing.T) {
		m, err := Read(writeFile(t, "O abc 1.0 2.0\n"))
		assert.Nil(t, m)

		var numErr *strconv.NumError
		assert.ErrorAs(t, err, &numErr)
	})

	t.Run("line number in error", func(t *testing.T) {
		_, err := Read(writeFile(t, "O 0 0 0\nO 0 0\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("missing file", func(t *testing.T) {
		m, err := Read(filepath.Join(t.TempDir(), "nope.xyz"))
		assert.Nil(t, m)
		assert.True(t, os.IsNotExist(err))
	})
}
