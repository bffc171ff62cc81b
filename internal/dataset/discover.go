package dataset

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/pkg/errors"
)

var sourceRegexp = regexp.MustCompile(`^[^.].*\.txt$`)

// DiscoverSources returns the sample files beneath root in lexical order.
// Hidden files are skipped.
func DiscoverSources(root string) ([]string, error) {
	entries := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if sourceRegexp.MatchString(d.Name()) {
			entries = append(entries, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "discover sources")
	}
	sort.Strings(entries)
	return entries, nil
}
