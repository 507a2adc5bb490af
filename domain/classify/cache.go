package classify

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

type result struct {
	features []float32
	id       int
	conf     float32
}

// Cached memoises a classifier by a hash of the exact feature bits. Static
// UI elements produce identical vectors tick after tick. A hit only counts
// when the stored vector is bit-identical to the query.
type Cached struct {
	inner Classifier
	cache *lru.Cache[uint64, result]
	key   func([]float32) uint64
}

// NewCached wraps inner with an LRU of size entries. size <= 0 returns inner.
func NewCached(inner Classifier, size int) (Classifier, error) {
	if size <= 0 {
		return inner, nil
	}
	c, err := lru.New[uint64, result](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: c, key: featureKey}, nil
}

func (c *Cached) Classify(features []float32) (int, float32) {
	key := c.key(features)
	if r, ok := c.cache.Get(key); ok && sameBits(r.features, features) {
		return r.id, r.conf
	}
	id, conf := c.inner.Classify(features)
	c.cache.Add(key, result{features: slices.Clone(features), id: id, conf: conf})
	return id, conf
}

// Len reports the number of cached entries.
func (c *Cached) Len() int { return c.cache.Len() }

func sameBits(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

func featureKey(features []float32) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, f := range features {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
