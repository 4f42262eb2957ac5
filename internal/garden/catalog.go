package garden

import (
	"fmt"
	"path/filepath"
	"sort"
)

// MaxCatalogSize is the largest catalog a one-digit-per-cell map can encode.
const MaxCatalogSize = 10

// Object is a placeable garden object type.
type Object struct {
	Name  string
	Image string
	Cost  int
}

// Catalog is the ordered set of object types; index 0 is the ground.
type Catalog []Object

// Valid reports whether idx addresses an entry.
func (c Catalog) Valid(idx int) bool {
	return idx >= 0 && idx < len(c)
}

// Ground returns the background object.
func (c Catalog) Ground() Object {
	if len(c) == 0 {
		return Object{}
	}
	return c[0]
}

func (c Catalog) validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	if len(c) > MaxCatalogSize {
		return fmt.Errorf("%w: %d entries", ErrCatalogTooLarge, len(c))
	}
	return nil
}

type vegetationSpec struct {
	ground  string
	objects []Object
}

var vegetations = map[string]vegetationSpec{
	"City Park": {
		ground: "park_grass.png",
		objects: []Object{
			{Name: "path", Image: "park_path.png", Cost: 2},
			{Name: "path_horizontal", Image: "park_path_horizontal.png", Cost: 2},
			{Name: "path_cross", Image: "park_path_cross.png", Cost: 2},
			{Name: "flowers", Image: "park_flowers.png", Cost: 2},
			{Name: "bench", Image: "park_bench.png", Cost: 4},
			{Name: "tree", Image: "park_tree.png", Cost: 8},
		},
	},
	"Desert": {
		ground: "desert_sand.png",
		objects: []Object{
			{Name: "bush", Image: "desert_bush.png", Cost: 2},
			{Name: "bush2", Image: "desert_bush2.png", Cost: 2},
			{Name: "cactus", Image: "desert_cactus.png", Cost: 4},
			{Name: "cactus2", Image: "desert_cactus2.png", Cost: 4},
			{Name: "skeleton", Image: "desert_skeleton.png", Cost: 8},
		},
	},
	"Rainforest": {
		ground: "rainforest_ground.png",
		objects: []Object{
			{Name: "flowers", Image: "rainforest_flowers.png", Cost: 2},
			{Name: "tree", Image: "rainforest_tree.png", Cost: 8},
			{Name: "trees", Image: "rainforest_trees.png", Cost: 10},
		},
	},
}

// Vegetations returns the known vegetation names, sorted.
func Vegetations() []string {
	names := make([]string, 0, len(vegetations))
	for name := range vegetations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CatalogFor builds the catalog of a vegetation with image paths under assetsDir.
func CatalogFor(vegetation, assetsDir string) (Catalog, error) {
	spec, ok := vegetations[vegetation]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVegetation, vegetation)
	}
	catalog := make(Catalog, 0, len(spec.objects)+1)
	catalog = append(catalog, Object{Name: "ground", Image: filepath.Join(assetsDir, spec.ground)})
	for _, obj := range spec.objects {
		obj.Image = filepath.Join(assetsDir, obj.Image)
		catalog = append(catalog, obj)
	}
	return catalog, nil
}
