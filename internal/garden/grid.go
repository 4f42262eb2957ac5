// Package garden models the virtual garden: a fixed-size grid of catalog
// indices persisted as one line of digits per row, plus the catalogs,
// metadata and on-disk library that surround it.
package garden

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"
)

// Geometry describes the pixel area and tile size a grid covers.
type Geometry struct {
	Width    int
	Height   int
	TileSize int
}

func (g Geometry) Rows() int {
	if g.TileSize <= 0 {
		return 0
	}
	return g.Height / g.TileSize
}

func (g Geometry) Cols() int {
	if g.TileSize <= 0 {
		return 0
	}
	return g.Width / g.TileSize
}

// PlacedObject is a render projection of one non-ground cell.
type PlacedObject struct {
	Index  int
	Object Object
	Row    int
	Col    int
	X      int
	Y      int
}

// Grid is a rectangular map of catalog indices. It is not safe for
// concurrent use.
type Grid struct {
	geom    Geometry
	catalog Catalog
	cells   [][]int
}

// New returns an all-ground grid.
func New(geom Geometry, catalog Catalog) (*Grid, error) {
	if err := catalog.validate(); err != nil {
		return nil, err
	}
	if geom.Rows() <= 0 || geom.Cols() <= 0 {
		return nil, fmt.Errorf("garden geometry %dx%d at %dpx has no cells", geom.Width, geom.Height, geom.TileSize)
	}
	cells := make([][]int, geom.Rows())
	for r := range cells {
		cells[r] = make([]int, geom.Cols())
	}
	return &Grid{geom: geom, catalog: catalog, cells: cells}, nil
}

// Load reads a map file. A missing file yields an all-ground grid.
func Load(path string, geom Geometry, catalog Catalog) (*Grid, error) {
	g, err := New(geom, catalog)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return g, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open garden map: %w", err)
	}
	defer f.Close()

	rows, cols := geom.Rows(), geom.Cols()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		text := strings.TrimSuffix(scanner.Text(), "\r")
		line++
		if line > rows {
			return nil, &FormatError{Path: path, Line: line, Reason: fmt.Sprintf("expected %d rows", rows)}
		}
		if len(text) != cols {
			return nil, &FormatError{Path: path, Line: line, Reason: fmt.Sprintf("row has %d cells, expected %d", len(text), cols)}
		}
		for c := 0; c < len(text); c++ {
			ch := text[c]
			if ch < '0' || ch > '9' {
				return nil, &FormatError{Path: path, Line: line, Column: c + 1, Reason: fmt.Sprintf("non-numeric cell %q", ch)}
			}
			idx := int(ch - '0')
			if !catalog.Valid(idx) {
				return nil, &FormatError{Path: path, Line: line, Column: c + 1, Reason: fmt.Sprintf("object index %d not in catalog", idx)}
			}
			g.cells[line-1][c] = idx
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Path: path, Line: line + 1, Reason: fmt.Sprintf("row exceeds %d bytes, expected %d cells", bufio.MaxScanTokenSize, cols)}
		}
		return nil, fmt.Errorf("read garden map: %w", err)
	}
	if line != rows {
		return nil, &FormatError{Path: path, Line: line + 1, Reason: fmt.Sprintf("found %d rows, expected %d", line, rows)}
	}
	return g, nil
}

func (g *Grid) Rows() int          { return len(g.cells) }
func (g *Grid) Cols() int          { return g.geom.Cols() }
func (g *Grid) Geometry() Geometry { return g.geom }
func (g *Grid) Catalog() Catalog   { return g.catalog }

// Cell returns the index at (row, col).
func (g *Grid) Cell(row, col int) (int, error) {
	if err := g.checkBounds(row, col); err != nil {
		return 0, err
	}
	return g.cells[row][col], nil
}

// Cells returns a copy of the grid contents.
func (g *Grid) Cells() [][]int {
	out := make([][]int, len(g.cells))
	for r, row := range g.cells {
		out[r] = append([]int(nil), row...)
	}
	return out
}

func (g *Grid) checkBounds(row, col int) error {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return &BoundsError{Row: row, Col: col, Rows: g.Rows(), Cols: g.Cols()}
	}
	return nil
}

// Place overwrites a cell. Last write wins.
func (g *Grid) Place(row, col, idx int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	if !g.catalog.Valid(idx) {
		return fmt.Errorf("%w: index %d", ErrUnknownObject, idx)
	}
	g.cells[row][col] = idx
	return nil
}

// CellAt maps a pixel position to the cell beneath it.
func (g *Grid) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/g.geom.TileSize, x/g.geom.TileSize
	if g.checkBounds(row, col) != nil {
		return 0, 0, false
	}
	return row, col, true
}

// PlaceAt places idx in the cell under pixel (x, y).
func (g *Grid) PlaceAt(x, y, idx int) error {
	row, col, ok := g.CellAt(x, y)
	if !ok {
		return &BoundsError{Row: floorDiv(y, g.geom.TileSize), Col: floorDiv(x, g.geom.TileSize), Rows: g.Rows(), Cols: g.Cols()}
	}
	return g.Place(row, col, idx)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Placements yields every non-ground cell in row-major order. The sequence
// reads the grid when iterated, so it reflects placements made since it was
// created and can be ranged over repeatedly.
func (g *Grid) Placements() iter.Seq[PlacedObject] {
	return func(yield func(PlacedObject) bool) {
		tile := g.geom.TileSize
		for r, row := range g.cells {
			for c, idx := range row {
				if idx == 0 {
					continue
				}
				p := PlacedObject{
					Index:  idx,
					Object: g.catalog[idx],
					Row:    r,
					Col:    c,
					X:      c * tile,
					Y:      r * tile,
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Encode renders the grid in the map file format.
func (g *Grid) Encode() []byte {
	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols() + 1))
	for _, row := range g.cells {
		for _, idx := range row {
			b.WriteByte(byte('0' + idx))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Save overwrites path with the encoded grid. The write is not atomic.
func (g *Grid) Save(path string) error {
	if err := os.WriteFile(path, g.Encode(), 0o644); err != nil {
		return fmt.Errorf("save garden map: %w", err)
	}
	return nil
}
