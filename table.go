package chainhash

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

const (
	maxLoadFactor = 0.7
	growthFactor  = 2
)

// Table is a hash table with separate chaining. Each bucket holds a singly
// linked chain of entries in insertion order. The bucket array doubles
// whenever Set leaves the load factor at or above 0.7.
//
// A Table is not safe for concurrent use.
type Table[K, V any] struct {
	buckets []*node[K, V]
	count   int
	hasher  Hasher[K]
	logger  *zap.Logger
}

// New creates an empty table using h to hash and compare keys.
// It panics if h is nil or the initial bucket count is below 1.
func New[K, V any](h Hasher[K], opts ...Option) *Table[K, V] {
	if h == nil {
		panic("chainhash: nil Hasher")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.initialBuckets < 1 {
		panic(fmt.Sprintf("chainhash: invalid initial bucket count %d", cfg.initialBuckets))
	}

	return &Table[K, V]{
		buckets: make([]*node[K, V], cfg.initialBuckets),
		hasher:  h,
		logger:  cfg.logger,
	}
}

// NewComparable creates an empty table for any comparable key type.
func NewComparable[K comparable, V any](opts ...Option) *Table[K, V] {
	return New[K, V](NewComparableHasher[K](), opts...)
}

// bucketIndex maps a hash code to a bucket: |hash| mod size.
// The magnitude is taken on uint64 so math.MinInt64 does not overflow.
func bucketIndex(hash int64, size int) int {
	mag := uint64(hash)
	if hash < 0 {
		mag = -mag
	}
	return int(mag % uint64(size))
}

// Set stores value under key, overwriting any existing value in place.
// Inserting a new key may rebuild the table.
func (t *Table[K, V]) Set(key K, value V) {
	t.count += t.place(newNode(t.hasher, key, value))

	if t.LoadFactor() >= maxLoadFactor {
		t.rebuild()
	}
}

// place links n into its bucket and returns how many entries were added.
func (t *Table[K, V]) place(n *node[K, V]) int {
	idx := bucketIndex(n.hash, len(t.buckets))
	head := t.buckets[idx]
	if head == nil {
		t.buckets[idx] = n
		return 1
	}
	return head.insertOrUpdate(t.hasher, n)
}

// rebuild replays every entry, in iteration order, into a bucket array
// twice the size. Nodes are relinked, not copied, so hash codes carry over.
func (t *Table[K, V]) rebuild() {
	oldSize := len(t.buckets)
	fresh := &Table[K, V]{
		buckets: make([]*node[K, V], oldSize*growthFactor),
		hasher:  t.hasher,
	}

	for n := range t.nodes() {
		n.next = nil
		fresh.count += fresh.place(n)
	}

	t.buckets = fresh.buckets
	t.count = fresh.count

	t.logger.Debug("rebuilt table",
		zap.Int("old_buckets", oldSize),
		zap.Int("new_buckets", len(t.buckets)),
		zap.Int("entries", t.count),
		zap.Float64("load_factor", t.LoadFactor()),
	)
}

func (t *Table[K, V]) find(key K) *node[K, V] {
	head := t.buckets[bucketIndex(t.hasher.Hash(key), len(t.buckets))]
	if head == nil {
		return nil
	}
	for n := range head.chain() {
		if t.hasher.Equal(n.key, key) {
			return n
		}
	}
	return nil
}

// Get returns the value stored under key, or def if there is none.
func (t *Table[K, V]) Get(key K, def V) V {
	if n := t.find(key); n != nil {
		return n.value
	}
	return def
}

// Lookup returns the value stored under key and whether it was found.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Delete removes key and returns its value. The boolean is false, and the
// table untouched, when key is absent.
func (t *Table[K, V]) Delete(key K) (V, bool) {
	var zero V

	idx := bucketIndex(t.hasher.Hash(key), len(t.buckets))
	head := t.buckets[idx]
	if head == nil {
		return zero, false
	}

	if t.hasher.Equal(head.key, key) {
		t.buckets[idx] = head.next
		head.next = nil
		t.count--
		return head.value, true
	}

	for prev, cur := head, head.next; cur != nil; prev, cur = cur, cur.next {
		if t.hasher.Equal(cur.key, key) {
			prev.next = cur.next
			cur.next = nil
			t.count--
			return cur.value, true
		}
	}

	return zero, false
}

// nodes walks buckets in ascending index order, each in chain order.
func (t *Table[K, V]) nodes() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		for _, head := range t.buckets {
			if head == nil {
				continue
			}
			for n := range head.chain() {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// All yields every key/value pair by ascending bucket index, then by
// insertion order within a bucket. The order is deterministic for a given
// sequence of operations.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range t.nodes() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys yields keys in the order of All.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.nodes() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values yields values in the order of All.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range t.nodes() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int {
	return t.count
}

// Buckets returns the current bucket count.
func (t *Table[K, V]) Buckets() int {
	return len(t.buckets)
}

// LoadFactor returns Len()/Buckets().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

// Clear removes every entry. The bucket count is kept.
func (t *Table[K, V]) Clear() {
	clear(t.buckets)
	t.count = 0
}
