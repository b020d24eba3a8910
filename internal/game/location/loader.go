package location

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// extensions lists the accepted location file suffixes in lookup order.
// JSON is a subset of YAML, so one decoder serves both.
var extensions = []string{".json", ".yaml", ".yml"}

// locationFile is the on-disk representation of a location.
type locationFile struct {
	ID   string              `yaml:"id"`
	Name string              `yaml:"name"`
	Text map[string][]string `yaml:"text"`
}

// LoadFromBytes parses and validates a location from JSON or YAML bytes.
//
// Postcondition: Returns a validated Location or a non-nil error.
func LoadFromBytes(data []byte) (*Location, error) {
	var f locationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing location: %w", err)
	}
	loc := &Location{ID: f.ID, Name: f.Name, Text: f.Text}
	if loc.Text == nil {
		loc.Text = make(map[string][]string)
	}
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("validating location: %w", err)
	}
	return loc, nil
}

// LoadFromFile reads and validates a single location file.
//
// Precondition: path must point to a JSON or YAML location file.
// Postcondition: Returns a validated Location or a non-nil error.
func LoadFromFile(path string) (*Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading location file %s: %w", path, err)
	}
	loc, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return loc, nil
}

// Loader resolves location IDs to files in a content directory.
type Loader struct {
	dir string
}

// NewLoader returns a Loader reading from dir.
//
// Precondition: dir must be non-empty.
func NewLoader(dir string) *Loader {
	if dir == "" {
		panic("location: NewLoader precondition violated: dir must be non-empty")
	}
	return &Loader{dir: dir}
}

// Dir returns the directory the loader reads from.
func (l *Loader) Dir() string {
	return l.dir
}

// Load reads the location with the given ID from <dir>/<id>.json,
// falling back to .yaml and .yml.
//
// Postcondition: Returns a validated Location whose ID equals id, or a non-nil error.
func (l *Loader) Load(id string) (*Location, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	for _, ext := range extensions {
		path := filepath.Join(l.dir, id+ext)
		loc, err := LoadFromFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if loc.ID != id {
			return nil, fmt.Errorf("location file %s declares id %q, want %q", path, loc.ID, id)
		}
		return loc, nil
	}
	return nil, fmt.Errorf("location %q not found in %s: %w", id, l.dir, fs.ErrNotExist)
}

// LoadAll loads every location file in the directory, keyed by ID.
//
// Postcondition: Returns all validated locations or the first error encountered.
func (l *Loader) LoadAll() (map[string]*Location, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading location directory %s: %w", l.dir, err)
	}
	locations := make(map[string]*Location)
	for _, entry := range entries {
		if entry.IsDir() || !hasLocationExt(entry.Name()) {
			continue
		}
		loc, err := LoadFromFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := locations[loc.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q in %s", loc.ID, l.dir)
		}
		locations[loc.ID] = loc
	}
	return locations, nil
}

func hasLocationExt(name string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
