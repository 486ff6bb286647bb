package orbit

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// fixtureDoc is the YAML layout of a fixture graph:
//
//	root:
//	  - {Id: 1, Type: Person, Weight: 0.4, Name: Ada}
//	related:
//	  "Person:1":
//	    - {Id: 7, Type: Project, Weight: 0.8}
type fixtureDoc struct {
	Root    []map[string]any            `yaml:"root"`
	Related map[string][]map[string]any `yaml:"related"`
}

// FixtureFetcher serves item sets from a YAML file instead of a server. The
// root view returns the root list; a selection returns the list stored under
// "Type:Id", or no items if there is none.
type FixtureFetcher struct {
	path string

	mu      sync.RWMutex
	root    []ItemRecord
	related map[string][]ItemRecord
}

// NewFixtureFetcher loads the fixture at path.
func NewFixtureFetcher(path string) (*FixtureFetcher, error) {
	f := &FixtureFetcher{path: path}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFixture builds a fetcher from YAML bytes. Reload fails on fetchers
// built this way.
func ParseFixture(data []byte) (*FixtureFetcher, error) {
	f := &FixtureFetcher{}
	if err := f.load(data); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the file the fetcher was loaded from.
func (f *FixtureFetcher) Path() string {
	return f.path
}

// Reload re-reads the fixture file. On error the previous data is kept.
func (f *FixtureFetcher) Reload() error {
	if f.path == "" {
		return fmt.Errorf("reload fixture: no file")
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("reload fixture: %w", err)
	}
	return f.load(data)
}

func (f *FixtureFetcher) load(data []byte) error {
	var doc fixtureDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}
	root := recordsFromMaps(doc.Root)
	related := make(map[string][]ItemRecord, len(doc.Related))
	for key, list := range doc.Related {
		related[key] = recordsFromMaps(list)
	}

	f.mu.Lock()
	f.root = root
	f.related = related
	f.mu.Unlock()
	return nil
}

func recordsFromMaps(ms []map[string]any) []ItemRecord {
	out := make([]ItemRecord, len(ms))
	for i, m := range ms {
		out[i] = RecordFromMap(m)
	}
	return out
}

// Fetch implements Fetcher. The returned slice is a copy.
func (f *FixtureFetcher) Fetch(ctx context.Context, req FetchRequest) ([]ItemRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	src := f.root
	if req.SelectedType != "" {
		src = f.related[req.SelectedType+":"+req.SelectedID]
	}
	return append([]ItemRecord(nil), src...), nil
}
