// Package optionset loads named select option catalogs from YAML or JSON
// files. Each top-level key names a set: a sequence becomes a model.List and a
// mapping becomes a model.Keyed in document order. Labels keep their marker
// suffixes; they are parsed when the select is rendered.
//
//	countries:
//	  fr: France
//	  de: Germany --selected
//	sizes: [S, M, L, XL --disabled]
package optionset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Store holds option sets by name. It is read-only once loaded.
type Store struct {
	sets    map[string]model.Options
	sources map[string]string
}

// LoadDir loads every catalog file below dir.
func LoadDir(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return &Store{sets: make(map[string]model.Options)}, nil
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS walks fsys and parses .yaml, .yml and .json catalog files. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{
		sets:    make(map[string]model.Options),
		sources: make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("optionset: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes a single catalog document. source is only used in errors.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{
		sets:    make(map[string]model.Options),
		sources: make(map[string]string),
	}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Get returns the set registered under name.
func (s *Store) Get(name string) (model.Options, bool) {
	if s == nil {
		return model.Options{}, false
	}
	options, ok := s.sets[strings.TrimSpace(name)]
	return options, ok
}

// Names returns the registered set names sorted alphabetically.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.sets))
	for name := range s.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) add(data []byte, source string) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("optionset: file %s is empty", source)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("optionset: parse %s: %w", source, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fmt.Errorf("optionset: file %s has no document", source)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("optionset: file %s must map set names to options", source)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := strings.TrimSpace(root.Content[i].Value)
		if name == "" {
			return fmt.Errorf("optionset: file %s defines a set with an empty name (line %d)", source, root.Content[i].Line)
		}
		if previous, exists := s.sources[name]; exists {
			return fmt.Errorf("optionset: duplicate set %q (files %s and %s)", name, previous, source)
		}

		options, err := decodeSet(root.Content[i+1])
		if err != nil {
			return fmt.Errorf("optionset: file %s set %q: %w", source, name, err)
		}
		s.sets[name] = options
		s.sources[name] = source
	}
	return nil
}

func decodeSet(node *yaml.Node) (model.Options, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		labels := make([]string, 0, len(node.Content))
		for idx, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return model.Options{}, fmt.Errorf("entry %d is not a scalar (line %d)", idx, item.Line)
			}
			labels = append(labels, item.Value)
		}
		return model.List(labels...), nil
	case yaml.MappingNode:
		entries := make([]model.Entry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return model.Options{}, fmt.Errorf("entry %q is not a scalar pair (line %d)", key.Value, key.Line)
			}
			entries = append(entries, model.Entry{Value: key.Value, Label: value.Value})
		}
		return model.Keyed(entries...), nil
	default:
		return model.Options{}, fmt.Errorf("expected a sequence or mapping (line %d)", node.Line)
	}
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
