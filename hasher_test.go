package chainhash_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/theflywheel/chainhash"
)

func TestStringHasher(t *testing.T) {
	var h chainhash.StringHasher

	if got, want := h.Hash("foo"), int64(xxhash.Sum64String("foo")); got != want {
		t.Errorf("Expected xxhash %d, got %d", want, got)
	}
	if h.Hash("foo") != h.Hash("foo") {
		t.Error("Expected stable hash for the same key")
	}
	if !h.Equal("foo", "foo") || h.Equal("foo", "bar") {
		t.Error("Unexpected equality result")
	}
}

func TestIntHasher(t *testing.T) {
	var h chainhash.IntHasher
	for _, k := range []int{0, 3, -6, 1 << 40} {
		if h.Hash(k) != int64(k) {
			t.Errorf("Expected identity hash for %d, got %d", k, h.Hash(k))
		}
	}
}

func TestComparableHasher(t *testing.T) {
	type key struct {
		Name string
		ID   int
	}
	h := chainhash.NewComparableHasher[key]()

	a := key{"a", 1}
	if h.Hash(a) != h.Hash(key{"a", 1}) {
		t.Error("Expected equal keys to hash equally")
	}
	if !h.Equal(a, key{"a", 1}) {
		t.Error("Expected equal keys to compare equal")
	}
	if h.Equal(a, key{"a", 2}) {
		t.Error("Expected different keys to compare unequal")
	}
}

func TestSipHasher(t *testing.T) {
	secret := []byte("0123456789abcdef")
	h, err := chainhash.NewSipHasher(secret)
	if err != nil {
		t.Fatalf("Failed to create sip hasher: %v", err)
	}

	other, err := chainhash.NewSipHasher(bytes.Repeat([]byte{7}, chainhash.SipKeySize))
	if err != nil {
		t.Fatalf("Failed to create sip hasher: %v", err)
	}
	if h.Hash([]byte("foo")) == other.Hash([]byte("foo")) {
		t.Error("Expected different secrets to produce different hashes")
	}

	table := chainhash.New[[]byte, string](h, chainhash.WithInitialBuckets(2))
	keys := [][]byte{[]byte("alpha"), []byte("beta"), []byte("gamma"), []byte("delta")}
	for _, k := range keys {
		table.Set(k, string(k))
	}

	for _, k := range keys {
		// A fresh slice with the same bytes must find the entry.
		lookup := append([]byte(nil), k...)
		if got := table.Get(lookup, ""); got != string(k) {
			t.Errorf("Expected %q, got %q", k, got)
		}
	}
	if table.Len() != len(keys) {
		t.Errorf("Expected %d entries, got %d", len(keys), table.Len())
	}
}

func TestInvalidSipKey(t *testing.T) {
	testCases := []struct {
		name string
		key  []byte
	}{
		{"Nil", nil},
		{"TooShort", make([]byte, chainhash.SipKeySize-1)},
		{"TooLong", make([]byte, chainhash.SipKeySize+1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := chainhash.NewSipHasher(tc.key)
			if err == nil {
				t.Fatal("Expected error for invalid key size, got nil")
			}
			if !errors.Is(err, chainhash.ErrInvalidSipKey) {
				t.Errorf("Expected ErrInvalidSipKey, got %v", err)
			}
			if h != nil {
				t.Error("Expected nil hasher on error")
			}
		})
	}
}
