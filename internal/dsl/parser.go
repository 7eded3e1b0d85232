package dsl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestKey lists the active entity documents in processing order.
const ManifestKey = "x-caramello-entities"

var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrNoEntities       = errors.New("manifest lists no entities")
)

// Manifest is the ordered set of active entity documents.
type Manifest struct {
	Entities []string `yaml:"x-caramello-entities"`
}

// LoadError is a missing or malformed entity document.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// LoadManifest reads the manifest. A missing file yields ErrManifestNotFound.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	// blank entries are ignored
	clean := m.Entities[:0]
	for _, name := range m.Entities {
		if name = strings.TrimSpace(name); name != "" {
			clean = append(clean, name)
		}
	}
	m.Entities = clean
	if len(m.Entities) == 0 {
		return &m, ErrNoEntities
	}
	return &m, nil
}

// LoadEntity reads one entity document.
func LoadEntity(path string) (*Entity, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	var e Entity
	if err := yaml.Unmarshal(b, &e); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if strings.TrimSpace(e.Name) == "" {
		return nil, &LoadError{Path: path, Err: errors.New("entity has no name")}
	}
	e.Name = strings.TrimSpace(e.Name)
	e.Source = filepath.Base(path)
	return &e, nil
}

// Document is the outcome of loading one manifest entry.
type Document struct {
	File   string
	Entity *Entity
	Err    error
}

// LoadManifestEntities loads every document the manifest lists, in order.
// Per-document failures are returned in the Document and do not stop the load;
// only a manifest failure is returned as error.
func LoadManifestEntities(manifestPath, entitiesDir string) ([]Document, error) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(m.Entities))
	for _, file := range m.Entities {
		e, err := LoadEntity(filepath.Join(entitiesDir, file))
		docs = append(docs, Document{File: file, Entity: e, Err: err})
	}
	return docs, nil
}

// Loaded returns the successfully loaded entities of docs, in order.
func Loaded(docs []Document) []*Entity {
	out := make([]*Entity, 0, len(docs))
	for _, d := range docs {
		if d.Entity != nil {
			out = append(out, d.Entity)
		}
	}
	return out
}
