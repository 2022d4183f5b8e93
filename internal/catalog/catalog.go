package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oindrieel/purulia/internal/model"
)

// Catalog holds the full set of tourism locations, loaded once at startup
// and read-only afterwards.
type Catalog struct {
	locations []model.Location
	corpus    []string
}

// New builds a catalog from an already-validated list of locations
func New(locations []model.Location) *Catalog {
	corpus := make([]string, len(locations))
	for i, loc := range locations {
		corpus[i] = fmt.Sprintf("%s: %s", loc.Name, loc.Description)
	}
	return &Catalog{locations: locations, corpus: corpus}
}

// Load reads the location catalog from a JSON file.
// A record missing its name, tags or zone is a load error, not a
// planner-time error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var locations []model.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for i, loc := range locations {
		if loc.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: missing name", i)
		}
		if len(loc.Tags) == 0 {
			return nil, fmt.Errorf("catalog entry %q: missing tags", loc.Name)
		}
		if loc.Zone == "" {
			return nil, fmt.Errorf("catalog entry %q: missing zone", loc.Name)
		}
	}

	return New(locations), nil
}

// Locations returns all catalog entries in load order
func (c *Catalog) Locations() []model.Location {
	return c.locations
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.locations)
}

// Location returns the catalog entry at the given corpus index
func (c *Catalog) Location(i int) (model.Location, bool) {
	if i < 0 || i >= len(c.locations) {
		return model.Location{}, false
	}
	return c.locations[i], true
}

// FilterByTag returns the names of all locations carrying the given tag,
// matched case-insensitively, in catalog order. An empty result means
// "no matches", not failure.
func (c *Catalog) FilterByTag(tag string) []string {
	var names []string
	for _, loc := range c.locations {
		if loc.HasTag(tag) {
			names = append(names, loc.Name)
		}
	}
	return names
}

// TextCorpus returns one "Name: Description" string per location, in
// catalog order. Corpus indexes line up with Location indexes, which is
// what the similarity index relies on.
func (c *Catalog) TextCorpus() []string {
	return c.corpus
}
