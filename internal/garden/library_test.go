package garden

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWallet struct {
	points int
}

var errBroke = errors.New("not enough points")

func (w *fakeWallet) Spend(n int) error {
	if n > w.points {
		return errBroke
	}
	w.points -= n
	return nil
}

func (w *fakeWallet) Refund(n int) error {
	w.points += n
	return nil
}

func newTestLibrary(t *testing.T) (*Library, string) {
	t.Helper()
	dir := t.TempDir()
	lib, err := NewLibrary(LibraryConfig{
		Dir:               filepath.Join(dir, "gardens"),
		MetadataPath:      filepath.Join(dir, "gardens_data.json"),
		AssetsDir:         "assets",
		DefaultVegetation: "Rainforest",
		Geometry:          testGeometry,
	}, nil)
	require.NoError(t, err)
	return lib, dir
}

func TestCatalogFor(t *testing.T) {
	c, err := CatalogFor("Desert", "assets")
	require.NoError(t, err)
	assert.Len(t, c, 6)
	assert.Equal(t, 0, c.Ground().Cost)
	assert.Equal(t, filepath.Join("assets", "desert_sand.png"), c.Ground().Image)
	assert.Equal(t, 8, c[5].Cost)

	_, err = CatalogFor("Tundra", "")
	assert.ErrorIs(t, err, ErrUnknownVegetation)
	assert.Equal(t, []string{"City Park", "Desert", "Rainforest"}, Vegetations())
}

func TestLibraryCreateOpen(t *testing.T) {
	lib, _ := newTestLibrary(t)

	g, err := lib.Create("Backyard", "City Park")
	require.NoError(t, err)
	assert.FileExists(t, g.Path())

	_, err = lib.Create("Backyard", "Desert")
	assert.ErrorIs(t, err, ErrGardenExists)
	_, err = lib.Create("../evil", "Desert")
	assert.ErrorIs(t, err, ErrInvalidName)
	_, err = lib.Create("Dunes", "Tundra")
	assert.ErrorIs(t, err, ErrUnknownVegetation)

	names, err := lib.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Backyard"}, names)

	opened, err := lib.Open("Backyard")
	require.NoError(t, err)
	assert.Equal(t, "City Park", opened.Vegetation)
	assert.Len(t, opened.Grid.Catalog(), 7)

	_, err = lib.Open("Nowhere")
	assert.ErrorIs(t, err, ErrGardenNotFound)
}

func TestGardenBuy(t *testing.T) {
	lib, _ := newTestLibrary(t)
	g, err := lib.Create("Jungle", "Rainforest")
	require.NoError(t, err)

	w := &fakeWallet{points: 10}
	require.NoError(t, g.Buy(w, 1, 2, 2))
	assert.Equal(t, 2, w.points)

	assert.ErrorIs(t, g.Buy(w, 1, 3, 3), errBroke)
	assert.Equal(t, 2, w.points)

	var bounds *BoundsError
	assert.ErrorAs(t, g.Buy(w, 99, 0, 1), &bounds)
	assert.ErrorIs(t, g.Buy(w, 0, 0, 9), ErrUnknownObject)
	assert.Equal(t, 2, w.points)

	reopened, err := lib.Open("Jungle")
	require.NoError(t, err)
	idx, err := reopened.Grid.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	idx, _ = reopened.Grid.Cell(1, 3)
	assert.Zero(t, idx)
}

func TestReconcile(t *testing.T) {
	lib, dir := newTestLibrary(t)
	metaPath := filepath.Join(dir, "gardens_data.json")

	require.NoError(t, SaveMetadata(metaPath, Metadata{
		"Ghost": {Vegetation: "Desert"},
		"Kept":  {Vegetation: "City Park"},
	}))
	for _, name := range []string{"Kept", "Orphan"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "gardens", name+".map"), nil, 0o644))
	}

	removed, added, err := lib.Reconcile()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ghost"}, removed)
	assert.Equal(t, []string{"Orphan"}, added)

	md, err := LoadMetadata(metaPath)
	require.NoError(t, err)
	assert.Equal(t, Metadata{
		"Kept":   {Vegetation: "City Park"},
		"Orphan": {Vegetation: "Rainforest"},
	}, md)
}

func TestReconcileMalformedMetadata(t *testing.T) {
	lib, dir := newTestLibrary(t)
	metaPath := filepath.Join(dir, "gardens_data.json")
	require.NoError(t, os.WriteFile(metaPath, []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gardens", "A.map"), nil, 0o644))

	_, err := LoadMetadata(metaPath)
	assert.Error(t, err)

	_, added, err := lib.Reconcile()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, added)

	veg, err := lib.Vegetation("A")
	require.NoError(t, err)
	assert.Equal(t, "Rainforest", veg)
}

func TestLibraryDelete(t *testing.T) {
	lib, _ := newTestLibrary(t)
	_, err := lib.Create("Temp", "Desert")
	require.NoError(t, err)
	require.NoError(t, lib.Delete("Temp"))
	names, err := lib.List()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.ErrorIs(t, lib.Delete("Temp"), ErrGardenNotFound)
}

func TestGardenBuyRefundsWhenSaveFails(t *testing.T) {
	lib, dir := newTestLibrary(t)
	g, err := lib.Create("Jungle", "Rainforest")
	require.NoError(t, err)
	g.path = filepath.Join(dir, "missing", "Jungle.map")

	w := &fakeWallet{points: 10}
	assert.Error(t, g.Buy(w, 1, 2, 2))
	assert.Equal(t, 10, w.points)
	idx, err := g.Grid.Cell(1, 2)
	require.NoError(t, err)
	assert.Zero(t, idx)
}

func TestLibraryRejectsPathNames(t *testing.T) {
	lib, dir := newTestLibrary(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.map"), nil, 0o644))

	for _, name := range []string{"../x", "a/b", "", ".hidden"} {
		_, err := lib.Open(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
		assert.ErrorIs(t, lib.Delete(name), ErrInvalidName, name)
	}
	_, err := os.Stat(filepath.Join(dir, "x.map"))
	assert.NoError(t, err)
}
