package garden

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeometry = Geometry{Width: 1250, Height: 700, TileSize: 50}

func testCatalog(n int) Catalog {
	c := make(Catalog, n)
	for i := range c {
		c[i] = Object{Name: string(rune('a' + i)), Cost: i}
	}
	return c
}

func TestGeometry(t *testing.T) {
	assert.Equal(t, 14, testGeometry.Rows())
	assert.Equal(t, 25, testGeometry.Cols())
	assert.Zero(t, Geometry{Width: 10, Height: 10}.Rows())
}

func TestNewRejectsBadCatalog(t *testing.T) {
	_, err := New(testGeometry, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = New(testGeometry, testCatalog(11))
	assert.ErrorIs(t, err, ErrCatalogTooLarge)

	_, err = New(Geometry{Width: 10, Height: 10, TileSize: 50}, testCatalog(2))
	assert.Error(t, err)
}

func TestLoadMissingFileIsGround(t *testing.T) {
	g, err := Load(filepath.Join(t.TempDir(), "none.map"), testGeometry, testCatalog(4))
	require.NoError(t, err)
	assert.Equal(t, 14, g.Rows())
	assert.Equal(t, 25, g.Cols())
	for _, row := range g.Cells() {
		for _, idx := range row {
			assert.Zero(t, idx)
		}
	}
}

func TestPlaceAtAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.map")
	g, err := Load(path, testGeometry, testCatalog(4))
	require.NoError(t, err)

	require.NoError(t, g.PlaceAt(120, 80, 2))
	assert.Equal(t, 2, g.Cells()[1][2])
	require.NoError(t, g.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[1], "002"), "line 2 = %q", lines[1])
	assert.Equal(t, strings.Repeat("0", 25), lines[0])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.map")
	g, err := New(testGeometry, testCatalog(10))
	require.NoError(t, err)
	require.NoError(t, g.Place(0, 0, 9))
	require.NoError(t, g.Place(13, 24, 5))
	require.NoError(t, g.Place(7, 3, 1))
	require.NoError(t, g.Save(path))

	loaded, err := Load(path, testGeometry, testCatalog(10))
	require.NoError(t, err)
	assert.Equal(t, g.Cells(), loaded.Cells())
	assert.Equal(t, g.Encode(), loaded.Encode())
}

func TestPlaceLastWriteWins(t *testing.T) {
	g, err := New(testGeometry, testCatalog(4))
	require.NoError(t, err)
	require.NoError(t, g.Place(3, 3, 1))
	require.NoError(t, g.Place(3, 3, 3))
	idx, err := g.Cell(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestPlaceErrors(t *testing.T) {
	g, err := New(testGeometry, testCatalog(4))
	require.NoError(t, err)

	var bounds *BoundsError
	assert.ErrorAs(t, g.Place(14, 0, 1), &bounds)
	assert.ErrorAs(t, g.Place(0, -1, 1), &bounds)
	assert.ErrorIs(t, g.Place(0, 0, 4), ErrUnknownObject)

	err = g.PlaceAt(-10, 40, 1)
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, -1, bounds.Col)
	assert.ErrorAs(t, g.PlaceAt(1250, 0, 1), &bounds)

	for _, row := range g.Cells() {
		for _, idx := range row {
			assert.Zero(t, idx, "failed placements must not modify the grid")
		}
	}
}

func TestCellAt(t *testing.T) {
	g, err := New(testGeometry, testCatalog(2))
	require.NoError(t, err)

	row, col, ok := g.CellAt(0, 0)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})

	row, col, ok = g.CellAt(1249, 699)
	assert.True(t, ok)
	assert.Equal(t, [2]int{13, 24}, [2]int{row, col})

	_, _, ok = g.CellAt(1250, 10)
	assert.False(t, ok)
}

func TestLoadFormatErrors(t *testing.T) {
	geom := Geometry{Width: 150, Height: 100, TileSize: 50}
	cases := map[string]struct {
		content string
		line    int
	}{
		"non-numeric":   {content: "000\n0x0\n", line: 2},
		"short row":     {content: "000\n00\n", line: 2},
		"long row":      {content: "0000\n000\n", line: 1},
		"unknown index": {content: "000\n050\n", line: 2},
		"too few rows":  {content: "000\n", line: 2},
		"too many rows": {content: "000\n000\n000\n", line: 3},
		"oversized row": {content: "000\n" + strings.Repeat("0", 70000) + "\n", line: 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.map")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			_, err := Load(path, geom, testCatalog(3))
			var ferr *FormatError
			require.True(t, errors.As(err, &ferr), "got %v", err)
			assert.Equal(t, tc.line, ferr.Line)
			assert.Equal(t, path, ferr.Path)
		})
	}
}

func TestLoadAcceptsCRLF(t *testing.T) {
	geom := Geometry{Width: 100, Height: 100, TileSize: 50}
	path := filepath.Join(t.TempDir(), "crlf.map")
	require.NoError(t, os.WriteFile(path, []byte("01\r\n20\r\n"), 0o644))
	g, err := Load(path, geom, testCatalog(3))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 0}}, g.Cells())
}

func TestPlacements(t *testing.T) {
	g, err := New(testGeometry, testCatalog(4))
	require.NoError(t, err)
	seq := g.Placements()

	require.NoError(t, g.Place(2, 5, 3))
	require.NoError(t, g.Place(0, 1, 1))

	var got []PlacedObject
	for p := range seq {
		got = append(got, p)
	}
	require.Len(t, got, 2)
	assert.Equal(t, PlacedObject{Index: 1, Object: g.Catalog()[1], Row: 0, Col: 1, X: 50, Y: 0}, got[0])
	assert.Equal(t, PlacedObject{Index: 3, Object: g.Catalog()[3], Row: 2, Col: 5, X: 250, Y: 100}, got[1])

	count := 0
	for range seq {
		count++
	}
	assert.Equal(t, 2, count, "sequence must be restartable")

	for range seq {
		break
	}
}
