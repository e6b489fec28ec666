package encoder

import (
	"fmt"
	"hash/fnv"
	"math"
	"runtime"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tablevec/frame"
)

// DefaultMinHashComponents is the output width per column of the
// default high-cardinality encoder.
const DefaultMinHashComponents = 30

// MinHash encodes high-cardinality categorical columns as dense numeric
// vectors. Each value is decomposed into character n-grams, the gram set
// is min-hashed under NComponents independent permutations, and the
// normalized minima become the features. Similar strings (shared grams)
// land close together, which is what makes the encoding useful for dirty
// high-cardinality identifiers.
//
// The encoding is stateless beyond its configuration: no vocabulary is
// learned, so unseen values at transform time are handled naturally.
// Output names are "{column}_{i}" for i in [0, NComponents).
type MinHash struct {
	NComponents int      `json:"n_components"`
	NGramSize   int      `json:"n_gram_size"`
	Seed        uint64   `json:"seed"`
	Columns     []string `json:"columns"`
	Fitted      bool     `json:"fitted"`
}

// NewMinHash creates a min-hash encoder with the given output width per
// column.
func NewMinHash(nComponents int) *MinHash {
	return &MinHash{NComponents: nComponents, NGramSize: 3, Seed: 0x9E3779B97F4A7C15}
}

// TypeName implements Stateful.
func (e *MinHash) TypeName() string { return "minhash" }

// Fit records the assigned columns. The encoding itself is hash-based
// and deterministic for a fixed seed.
func (e *MinHash) Fit(cols []*frame.Column) error {
	if e.NComponents <= 0 {
		return fmt.Errorf("minhash: n_components must be positive, got %d", e.NComponents)
	}
	if e.NGramSize <= 0 {
		e.NGramSize = 3
	}
	e.Columns = columnNames(cols)
	e.Fitted = true
	return nil
}

// Transform encodes every column independently. Columns are processed in
// parallel with a bounded worker group; the result order is fixed by the
// fitted column order regardless of scheduling.
func (e *MinHash) Transform(cols []*frame.Column) (*frame.Frame, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	if err := checkColumns(e.Columns, cols); err != nil {
		return nil, err
	}

	a, b := e.permutations()
	encoded := make([][]*frame.Column, len(cols))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for j, c := range cols {
		j, c := j, c
		g.Go(func() error {
			encoded[j] = e.encodeColumn(c, a, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*frame.Column, 0, len(cols)*e.NComponents)
	for _, group := range encoded {
		out = append(out, group...)
	}
	return frame.New(out...)
}

// FeatureNames returns "{column}_{i}" names in column order.
func (e *MinHash) FeatureNames() ([]string, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	names := make([]string, 0, len(e.Columns)*e.NComponents)
	for _, col := range e.Columns {
		for i := 0; i < e.NComponents; i++ {
			names = append(names, fmt.Sprintf("%s_%d", col, i))
		}
	}
	return names, nil
}

func (e *MinHash) encodeColumn(c *frame.Column, a, b []uint64) []*frame.Column {
	vals := make([][]float64, e.NComponents)
	for j := range vals {
		vals[j] = make([]float64, c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		if c.Missing(i) {
			continue
		}
		grams := e.gramSet(c.Render(i))
		if grams.IsEmpty() {
			continue
		}
		for j := 0; j < e.NComponents; j++ {
			minHash := uint32(math.MaxUint32)
			it := grams.Iterator()
			for it.HasNext() {
				h := uint32(a[j]*uint64(it.Next()) + b[j])
				if h < minHash {
					minHash = h
				}
			}
			vals[j][i] = float64(minHash) / float64(math.MaxUint32)
		}
	}
	out := make([]*frame.Column, e.NComponents)
	for j := range out {
		out[j] = frame.NewFloatColumn(fmt.Sprintf("%s_%d", c.Name(), j), vals[j])
	}
	return out
}

// gramSet hashes the character n-grams of a value into a bitmap. The
// bitmap deduplicates repeated grams so each distinct gram contributes
// once to the minimum.
func (e *MinHash) gramSet(s string) *roaring.Bitmap {
	bm := roaring.New()
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return bm
	}
	n := e.NGramSize
	if len(runes) < n {
		bm.Add(hashGram(string(runes)))
		return bm
	}
	for i := 0; i+n <= len(runes); i++ {
		bm.Add(hashGram(string(runes[i : i+n])))
	}
	return bm
}

func hashGram(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

// permutations derives NComponents multiply-add permutations over the
// 32-bit hash ring from the seed. Multipliers are forced odd so each
// pair is a bijection.
func (e *MinHash) permutations() (a, b []uint64) {
	a = make([]uint64, e.NComponents)
	b = make([]uint64, e.NComponents)
	state := e.Seed
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for j := 0; j < e.NComponents; j++ {
		a[j] = next() | 1
		b[j] = next()
	}
	return a, b
}
