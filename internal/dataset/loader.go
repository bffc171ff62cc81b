package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadStats describes one load.
type LoadStats struct {
	Loaded    int
	Truncated bool // input remained after the dataset filled up
}

// Load reads whitespace separated (feature, target) pairs from r into d until
// r is exhausted or d is full. Pairs read before an error stay in d.
func Load(r io.Reader, d *Dataset) (LoadStats, error) {
	var stats LoadStats
	sc := bufio.NewScanner(bufio.NewReader(r))
	sc.Split(bufio.ScanWords)

	var (
		pair    [2]float64
		have    int
		tokenNo int
	)
	for sc.Scan() {
		tokenNo++
		if d.Len() >= d.Cap() {
			stats.Truncated = true
			break
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return stats, errors.Wrapf(err, "token %d", tokenNo)
		}
		pair[have] = v
		have++
		if have < len(pair) {
			continue
		}
		have = 0
		if err := d.Add(pair[0], pair[1]); err != nil {
			return stats, errors.Wrapf(err, "token %d", tokenNo)
		}
		stats.Loaded++
	}
	if err := sc.Err(); err != nil {
		return stats, errors.Wrap(err, "read samples")
	}
	if have != 0 {
		return stats, errors.Errorf("incomplete pair at token %d", tokenNo)
	}
	return stats, nil
}

// LoadFile loads pairs from the file at path.
func LoadFile(path string, d *Dataset) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, errors.Wrap(err, "open samples")
	}
	defer f.Close()

	stats, err := Load(f, d)
	if err != nil {
		return stats, errors.Wrapf(err, "load %s", path)
	}
	return stats, nil
}

// LoadPath loads a single file, or every sample source under a directory in
// DiscoverSources order, stopping once d is full.
func LoadPath(path string, d *Dataset) (LoadStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return LoadStats{}, errors.Wrap(err, "stat samples")
	}
	if !info.IsDir() {
		return LoadFile(path, d)
	}

	sources, err := DiscoverSources(path)
	if err != nil {
		return LoadStats{}, err
	}
	var total LoadStats
	for _, src := range sources {
		if d.Len() >= d.Cap() {
			total.Truncated = true
			break
		}
		stats, err := LoadFile(src, d)
		total.Loaded += stats.Loaded
		total.Truncated = stats.Truncated
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
