// Package dataset implements the campaign result store: one compressed
// container file holding root-level groups of named float64 vectors,
// with string attributes at both the group and the dataset level.
//
// "Root level" means the groups at the top of the store; "first level"
// means the datasets inside a root group.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/google/renameio/v2"

	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

// Extension is the canonical store file extension.
const Extension = ".mtd"

// Permissions for written store files.
const filePerm = 0o600

var (
	// ErrDuplicateGroup is returned when a root group name is taken.
	ErrDuplicateGroup = errors.New("dataset: duplicate group")

	// ErrDuplicateDataset is returned when a dataset name is taken
	// within its group.
	ErrDuplicateDataset = errors.New("dataset: duplicate dataset")

	// ErrMissingDataset is returned when a group lacks a dataset that
	// an operation requires.
	ErrMissingDataset = errors.New("dataset: missing dataset")
)

// Dataset is a named float64 vector with string attributes.
type Dataset struct {
	Name   string
	Attrs  map[string]string
	Values []float64
}

// Group is an ordered collection of datasets with its own attributes.
type Group struct {
	Name     string
	Attrs    map[string]string
	Datasets []*Dataset
}

// Store is the in-memory form of a result store file. Groups keep
// their creation order.
type Store struct {
	path   string
	Groups []*Group
}

// Create writes an empty store file at path, replacing any previous
// content, and returns it ready for groups.
func Create(path string) (*Store, error) {
	s := &Store{path: path}

	err := s.Save()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Open loads a store file.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	groups, err := decodeGroups(data)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, Groups: groups}, nil
}

// Path returns the file path backing this store.
func (s *Store) Path() string {
	return s.path
}

// Save writes the store to its backing file atomically.
func (s *Store) Save() error {
	data, err := encodeGroups(s.Groups)
	if err != nil {
		return err
	}

	err = renameio.WriteFile(s.path, data, filePerm)
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	return nil
}

// CreateGroup appends a new root group.
func (s *Store) CreateGroup(name string) (*Group, error) {
	if s.Group(name) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, name)
	}

	g := &Group{Name: name, Attrs: make(map[string]string)}
	s.Groups = append(s.Groups, g)

	return g, nil
}

// Group returns the named root group, or nil when absent.
func (s *Store) Group(name string) *Group {
	for _, g := range s.Groups {
		if g.Name == name {
			return g
		}
	}

	return nil
}

// GroupNames returns the root group names in creation order.
func (s *Store) GroupNames() []string {
	names := make([]string, len(s.Groups))
	for i, g := range s.Groups {
		names[i] = g.Name
	}

	return names
}

// CreateDataset appends a named vector to the group.
func (g *Group) CreateDataset(name string, values []float64) (*Dataset, error) {
	if g.Dataset(name) != nil {
		return nil, fmt.Errorf("%w: %q in group %q", ErrDuplicateDataset, name, g.Name)
	}

	d := &Dataset{Name: name, Attrs: make(map[string]string), Values: values}
	g.Datasets = append(g.Datasets, d)

	return d, nil
}

// Dataset returns the named dataset, or nil when absent.
func (g *Group) Dataset(name string) *Dataset {
	for _, d := range g.Datasets {
		if d.Name == name {
			return d
		}
	}

	return nil
}

// DatasetNames returns the dataset names in creation order.
func (g *Group) DatasetNames() []string {
	names := make([]string, len(g.Datasets))
	for i, d := range g.Datasets {
		names[i] = d.Name
	}

	return names
}

// FirstLevelAttrs returns the unique attribute names over all
// first-level datasets, in first-seen order. Each dataset's keys are
// visited sorted, keeping the result deterministic.
func (s *Store) FirstLevelAttrs() []string {
	lists := make([][]string, 0, len(s.Groups))

	for _, g := range s.Groups {
		for _, d := range g.Datasets {
			lists = append(lists, sortedKeys(d.Attrs))
		}
	}

	return strutil.UniqueFlatten(lists)
}

// Walk calls fn for every node, root groups in order, each followed by
// its datasets as "group/dataset".
func (s *Store) Walk(fn func(path string)) {
	for _, g := range s.Groups {
		fn(g.Name)

		for _, d := range g.Datasets {
			fn(g.Name + "/" + d.Name)
		}
	}
}

// Structure returns the node paths Walk visits.
func (s *Store) Structure() []string {
	var paths []string

	s.Walk(func(p string) {
		paths = append(paths, p)
	})

	return paths
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
