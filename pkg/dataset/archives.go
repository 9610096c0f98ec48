package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rodrigo1392/misc-tools/pkg/persist"
	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

// ErrNoArchives is returned when an import is given nothing to import.
var ErrNoArchives = errors.New("dataset: no archives given")

// ImportArchives builds a store from array archive files, JSON objects
// of dataset name to numeric vector. Each archive becomes a root group
// named "1".."N" in input order. Optional attrs attach to the groups,
// keyed by the 1-based model number. An empty target derives the store
// path from the first archive. Returns the saved store and the unique
// dataset keys seen across archives.
func ImportArchives(archives []string, target string, attrs map[int]map[string]string) (*Store, []string, error) {
	if len(archives) == 0 {
		return nil, nil, ErrNoArchives
	}

	if target == "" {
		first := archives[0]
		target = strings.TrimSuffix(first, filepath.Ext(first)) + Extension
	}

	store := &Store{path: target}
	keyLists := make([][]string, 0, len(archives))

	for pos, archivePath := range archives {
		modelNo := pos + 1

		group, err := store.CreateGroup(strconv.Itoa(modelNo))
		if err != nil {
			return nil, nil, err
		}

		for k, v := range attrs[modelNo] {
			group.Attrs[k] = v
		}

		arrays := make(map[string][]float64)

		err = persist.LoadFile(archivePath, persist.NewJSONCodec(), &arrays)
		if err != nil {
			return nil, nil, fmt.Errorf("load archive %q: %w", archivePath, err)
		}

		// Archive objects are unordered; datasets land sorted by name.
		keys := make([]string, 0, len(arrays))
		for k := range arrays {
			keys = append(keys, k)
		}

		slices.Sort(keys)
		keyLists = append(keyLists, keys)

		for _, k := range keys {
			_, err = group.CreateDataset(k, arrays[k])
			if err != nil {
				return nil, nil, err
			}
		}
	}

	err := store.Save()
	if err != nil {
		return nil, nil, err
	}

	return store, strutil.UniqueFlatten(keyLists), nil
}
