package chainhash

import "iter"

// node is one entry of a bucket chain. hash is fixed at construction;
// next is owned by this node alone.
type node[K, V any] struct {
	key   K
	value V
	hash  int64
	next  *node[K, V]
}

func newNode[K, V any](h Hasher[K], key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, hash: h.Hash(key)}
}

// equals compares keys only.
func (n *node[K, V]) equals(h Hasher[K], other *node[K, V]) bool {
	return other != nil && h.Equal(n.key, other.key)
}

// insertOrUpdate walks the chain starting at n. If a node with an equal key
// exists its value is overwritten and 0 is returned; otherwise nn is appended
// at the tail and 1 is returned.
func (n *node[K, V]) insertOrUpdate(h Hasher[K], nn *node[K, V]) int {
	var tail *node[K, V]
	for cur := n; cur != nil; cur = cur.next {
		if cur.equals(h, nn) {
			cur.value = nn.value
			return 0
		}
		tail = cur
	}
	tail.next = nn
	return 1
}

// chain yields n and every node after it. next is read before each yield,
// so the consumer may unlink or relink the yielded node.
func (n *node[K, V]) chain() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		for cur := n; cur != nil; {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}
