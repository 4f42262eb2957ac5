package garden

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MetadataEntry records how a garden was created.
type MetadataEntry struct {
	Vegetation string `json:"vegetation"`
}

// Metadata maps garden name to its entry.
type Metadata map[string]MetadataEntry

// LoadMetadata reads the metadata file. A missing file is an empty set.
// Undecodable content also yields an empty set, together with an error
// matching ErrMalformedMetadata.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Metadata{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read garden metadata: %w", err)
	}
	md := Metadata{}
	if len(data) == 0 {
		return md, nil
	}
	if err := json.Unmarshal(data, &md); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	return md, nil
}

// SaveMetadata writes md with four-space indentation.
func SaveMetadata(path string, md Metadata) error {
	if md == nil {
		md = Metadata{}
	}
	data, err := json.MarshalIndent(md, "", "    ")
	if err != nil {
		return fmt.Errorf("encode garden metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write garden metadata: %w", err)
	}
	return nil
}

// reconcile drops entries without a map and adds entries for maps without one.
func reconcile(md Metadata, names []string, defaultVegetation string) (removed, added []string) {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}
	for name := range md {
		if !present[name] {
			delete(md, name)
			removed = append(removed, name)
		}
	}
	for _, name := range names {
		if _, ok := md[name]; !ok {
			md[name] = MetadataEntry{Vegetation: defaultVegetation}
			added = append(added, name)
		}
	}
	return removed, added
}

func listMaps(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list gardens: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != mapExtension {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), mapExtension))
	}
	sort.Strings(names)
	return names, nil
}

// ReconcileMetadata rewrites the metadata file at metaPath so it has exactly
// one entry per map file in dir. New entries get defaultVegetation.
func ReconcileMetadata(dir, metaPath, defaultVegetation string) (removed, added []string, err error) {
	names, err := listMaps(dir)
	if err != nil {
		return nil, nil, err
	}
	md, err := LoadMetadata(metaPath)
	if err != nil && !errors.Is(err, ErrMalformedMetadata) {
		return nil, nil, err
	}
	removed, added = reconcile(md, names, defaultVegetation)
	sort.Strings(removed)
	if err := SaveMetadata(metaPath, md); err != nil {
		return nil, nil, err
	}
	return removed, added, nil
}
