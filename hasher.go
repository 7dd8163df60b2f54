package chainhash

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
)

// Hasher supplies the hash function and equality test for a key type.
//
// Keys that are Equal must produce the same Hash. Hash codes may be negative.
// A Hasher that cannot hash a key should panic; the table does not recover.
type Hasher[K any] interface {
	Hash(key K) int64
	Equal(a, b K) bool
}

// HasherFunc adapts a pair of functions to the Hasher interface.
type HasherFunc[K any] struct {
	HashFn  func(key K) int64
	EqualFn func(a, b K) bool
}

func (f HasherFunc[K]) Hash(key K) int64  { return f.HashFn(key) }
func (f HasherFunc[K]) Equal(a, b K) bool { return f.EqualFn(a, b) }

// StringHasher hashes string keys with xxhash.
type StringHasher struct{}

func (StringHasher) Hash(key string) int64  { return int64(xxhash.Sum64String(key)) }
func (StringHasher) Equal(a, b string) bool { return a == b }

// IntHasher uses the integer itself as its hash code.
type IntHasher struct{}

func (IntHasher) Hash(key int) int64  { return int64(key) }
func (IntHasher) Equal(a, b int) bool { return a == b }

// ComparableHasher hashes any comparable key with hash/maphash.
// Equal is consistent with ==.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a random seed.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h ComparableHasher[K]) Hash(key K) int64  { return int64(maphash.Comparable(h.seed, key)) }
func (h ComparableHasher[K]) Equal(a, b K) bool { return a == b }

// SipKeySize is the key length required by NewSipHasher.
const SipKeySize = 16

// ErrInvalidSipKey is returned by NewSipHasher for a key that is not SipKeySize bytes.
var ErrInvalidSipKey = errors.New("invalid siphash key size")

// SipHasher hashes byte-slice keys with keyed SipHash-2-4.
type SipHasher struct {
	k0, k1 uint64
}

// NewSipHasher builds a SipHasher from a 16-byte secret.
func NewSipHasher(key []byte) (*SipHasher, error) {
	if len(key) != SipKeySize {
		return nil, fmt.Errorf("failed to create sip hasher: got %d bytes: %w", len(key), ErrInvalidSipKey)
	}
	return &SipHasher{
		k0: binary.LittleEndian.Uint64(key[0:8]),
		k1: binary.LittleEndian.Uint64(key[8:16]),
	}, nil
}

func (h *SipHasher) Hash(key []byte) int64  { return int64(siphash.Hash(h.k0, h.k1, key)) }
func (h *SipHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }
