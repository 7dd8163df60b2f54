/*
Package chainhash provides an in-memory hash table with separate chaining.

Table maps keys to values through a bucket array. Keys are hashed by a
user-supplied Hasher, which also decides key equality; two different keys may
share a hash code and still be stored side by side. Entries that land in the
same bucket form a singly linked chain kept in insertion order.

Basic usage:

	import "github.com/theflywheel/chainhash"

	// String keys hashed with xxhash
	t := chainhash.New[string, int](chainhash.StringHasher{})

	t.Set("foo", 2)
	t.Get("foo", 0)       // 2
	t.Get("bar", -1)      // -1
	t.Delete("foo")       // 2, true
	t.Delete("foo")       // 0, false

	for key, val := range t.All() {
		fmt.Printf("%s: %d\n", key, val)
	}

Features:

  - Pluggable hashing and equality per key type (Hasher)
  - Ready-made hashers: StringHasher (xxhash), SipHasher (keyed SipHash over
    []byte), ComparableHasher (hash/maphash), IntHasher (identity)
  - Automatic resizing when the load factor reaches 0.7
  - Deterministic iteration order
  - Optional zap logger for resize tracing

Implementation Details:

A key's bucket is the absolute value of its hash code modulo the bucket count.
Set appends new keys at the tail of their chain and overwrites the value of an
existing key in place, so re-setting a key never changes Len.

When Set leaves Len()/Buckets() at or above 0.7 the table is rebuilt
synchronously: a bucket array twice the size is allocated and every entry is
replayed into it in iteration order. Get and Delete never resize, and the
table never shrinks.

Iteration walks buckets by ascending index and each chain from head to tail.
Because a rebuild replays entries in that same order, keys that collide keep
their relative order across resizes.

Table is not safe for concurrent use; callers must synchronize access.
*/
package chainhash
