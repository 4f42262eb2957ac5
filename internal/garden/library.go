package garden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/akyairhashvil/prodgarden/internal/util"
)

const mapExtension = ".map"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _-]{0,31}$`)

// Wallet pays for placements.
type Wallet interface {
	Spend(points int) error
	Refund(points int) error
}

// Library is the directory of map files plus the metadata file.
type Library struct {
	dir               string
	metaPath          string
	assetsDir         string
	defaultVegetation string
	geom              Geometry
	logger            util.Logger
}

// LibraryConfig configures a Library.
type LibraryConfig struct {
	Dir               string
	MetadataPath      string
	AssetsDir         string
	DefaultVegetation string
	Geometry          Geometry
}

// NewLibrary creates the maps directory if needed.
func NewLibrary(cfg LibraryConfig, logger util.Logger) (*Library, error) {
	if cfg.Dir == "" {
		return nil, errors.New("garden library needs a directory")
	}
	if _, ok := vegetations[cfg.DefaultVegetation]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVegetation, cfg.DefaultVegetation)
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create garden dir: %w", err)
	}
	if cfg.MetadataPath == "" {
		cfg.MetadataPath = filepath.Join(cfg.Dir, "gardens_data.json")
	}
	if logger == nil {
		logger = util.NopLogger()
	}
	return &Library{
		dir:               cfg.Dir,
		metaPath:          cfg.MetadataPath,
		assetsDir:         cfg.AssetsDir,
		defaultVegetation: cfg.DefaultVegetation,
		geom:              cfg.Geometry,
		logger:            logger,
	}, nil
}

// List returns the garden names with a map file, sorted.
func (l *Library) List() ([]string, error) {
	return listMaps(l.dir)
}

func (l *Library) mapPath(name string) string {
	return filepath.Join(l.dir, name+mapExtension)
}

// metadata loads the metadata file, treating undecodable content as empty.
func (l *Library) metadata() (Metadata, error) {
	md, err := LoadMetadata(l.metaPath)
	if errors.Is(err, ErrMalformedMetadata) {
		l.logger.Warnf("garden metadata unreadable, starting empty: %v", err)
		return md, nil
	}
	return md, err
}

// Reconcile syncs the metadata file with the map files on disk.
func (l *Library) Reconcile() (removed, added []string, err error) {
	removed, added, err = ReconcileMetadata(l.dir, l.metaPath, l.defaultVegetation)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range removed {
		l.logger.Infof("removed metadata entry %q (no map file)", name)
	}
	for _, name := range added {
		l.logger.Infof("added metadata entry %q with vegetation %q", name, l.defaultVegetation)
	}
	return removed, added, nil
}

// Vegetation returns the recorded vegetation for name, or the default.
func (l *Library) Vegetation(name string) (string, error) {
	md, err := l.metadata()
	if err != nil {
		return "", err
	}
	if entry, ok := md[name]; ok && entry.Vegetation != "" {
		return entry.Vegetation, nil
	}
	return l.defaultVegetation, nil
}

// Create makes a new, empty garden and records its vegetation.
func (l *Library) Create(name, vegetation string) (*Garden, error) {
	name = strings.TrimSpace(name)
	if err := validName(name); err != nil {
		return nil, err
	}
	path := l.mapPath(name)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrGardenExists, name)
	}
	catalog, err := CatalogFor(vegetation, l.assetsDir)
	if err != nil {
		return nil, err
	}
	grid, err := New(l.geom, catalog)
	if err != nil {
		return nil, err
	}
	g := &Garden{Name: name, Vegetation: vegetation, Grid: grid, path: path}
	if err := g.Save(); err != nil {
		return nil, err
	}
	md, err := l.metadata()
	if err != nil {
		return nil, err
	}
	md[name] = MetadataEntry{Vegetation: vegetation}
	if err := SaveMetadata(l.metaPath, md); err != nil {
		return nil, err
	}
	l.logger.Infof("created garden %q (%s)", name, vegetation)
	return g, nil
}

// validName rejects names that are not plain garden names.
func validName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Open loads an existing garden with the catalog of its recorded vegetation.
func (l *Library) Open(name string) (*Garden, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	path := l.mapPath(name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrGardenNotFound, name)
		}
		return nil, err
	}
	vegetation, err := l.Vegetation(name)
	if err != nil {
		return nil, err
	}
	catalog, err := CatalogFor(vegetation, l.assetsDir)
	if err != nil {
		return nil, err
	}
	grid, err := Load(path, l.geom, catalog)
	if err != nil {
		return nil, err
	}
	return &Garden{Name: name, Vegetation: vegetation, Grid: grid, path: path}, nil
}

// Delete removes a garden's map file and metadata entry.
func (l *Library) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(l.mapPath(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrGardenNotFound, name)
		}
		return err
	}
	md, err := l.metadata()
	if err != nil {
		return err
	}
	delete(md, name)
	return SaveMetadata(l.metaPath, md)
}

// Garden is a named grid bound to its map file.
type Garden struct {
	Name       string
	Vegetation string
	Grid       *Grid
	path       string
}

func (g *Garden) Path() string { return g.path }

// Save writes the grid back to its map file.
func (g *Garden) Save() error {
	return g.Grid.Save(g.path)
}

// Buy charges the object's cost to w, places it and saves the map.
// Nothing is charged when the cell or object is invalid. A failed save
// restores the cell and refunds the cost.
func (g *Garden) Buy(w Wallet, row, col, idx int) error {
	if _, err := g.Grid.Cell(row, col); err != nil {
		return err
	}
	catalog := g.Grid.Catalog()
	if !catalog.Valid(idx) {
		return fmt.Errorf("%w: index %d", ErrUnknownObject, idx)
	}
	cost := catalog[idx].Cost
	if err := w.Spend(cost); err != nil {
		return err
	}
	prev := g.Grid.cells[row][col]
	g.Grid.cells[row][col] = idx
	if err := g.Save(); err != nil {
		g.Grid.cells[row][col] = prev
		if rerr := w.Refund(cost); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}
