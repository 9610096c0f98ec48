package dataset

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

// Restructure swaps root groups with first-level dataset keys. With M
// model groups each holding V variable datasets, the rewritten store
// has V root groups of M datasets, so every output variable collects
// the results of all models under one group.
//
// New group k carries the attributes of the datasets named k (the last
// model's copy wins); its datasets are named after the old groups,
// carry the old group attributes, and hold the old group's k vector.
// Without explicit keys, every dataset key seen across groups is used,
// in first-seen order.
//
// The swapped layout is written to a sibling temp file first and then
// moved over the store path, and the in-memory store reloads from the
// rewritten file. A group missing a requested key fails the whole
// operation before anything is written.
func (s *Store) Restructure(keys ...string) error {
	if len(keys) == 0 {
		lists := make([][]string, 0, len(s.Groups))
		for _, g := range s.Groups {
			lists = append(lists, g.DatasetNames())
		}

		keys = strutil.UniqueFlatten(lists)
	}

	for _, g := range s.Groups {
		for _, key := range keys {
			if g.Dataset(key) == nil {
				return fmt.Errorf("%w: %q in group %q", ErrMissingDataset, key, g.Name)
			}
		}
	}

	// Attributes of same-named datasets collapse; the last group wins.
	datasetAttrs := make(map[string]map[string]string)

	for _, g := range s.Groups {
		for _, d := range g.Datasets {
			datasetAttrs[d.Name] = d.Attrs
		}
	}

	swapped := make([]*Group, 0, len(keys))

	for _, key := range keys {
		newGroup := &Group{Name: key, Attrs: cloneAttrs(datasetAttrs[key])}

		for _, g := range s.Groups {
			newGroup.Datasets = append(newGroup.Datasets, &Dataset{
				Name:   g.Name,
				Attrs:  cloneAttrs(g.Attrs),
				Values: slices.Clone(g.Dataset(key).Values),
			})
		}

		swapped = append(swapped, newGroup)
	}

	data, err := encodeGroups(swapped)
	if err != nil {
		return err
	}

	tempPath := filepath.Join(filepath.Dir(s.path), "temp"+Extension)

	err = os.WriteFile(tempPath, data, filePerm)
	if err != nil {
		return fmt.Errorf("write restructured store: %w", err)
	}

	err = os.Rename(tempPath, s.path)
	if err != nil {
		return fmt.Errorf("swap restructured store: %w", err)
	}

	reloaded, err := Open(s.path)
	if err != nil {
		return err
	}

	s.Groups = reloaded.Groups

	return nil
}

// cloneAttrs copies an attribute map so swapped nodes never alias the
// originals.
func cloneAttrs(attrs map[string]string) map[string]string {
	clone := make(map[string]string, len(attrs))
	maps.Copy(clone, attrs)

	return clone
}
