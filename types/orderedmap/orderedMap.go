// Package orderedmap provides a typed, insertion-ordered map on top of
// github.com/wk8/go-ordered-map.
package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key-value pairs in insertion order. Overwriting an existing key
// keeps its original position.
type OrderedMap[K comparable, V any] struct {
	inner *wk8.OrderedMap
}

// Iterator walks an OrderedMap starting at OrderedMap.Front or OrderedMap.Back
type Iterator[K comparable, V any] struct {
	Key     *K
	Value   V
	forward bool
	pair    *wk8.Pair
}

// NewOrderedMap creates a new OrderedMap of type K, V
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		inner: wk8.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// it will overwrite the existing value in place
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.inner.Set(key, val)
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, exists := o.inner.Get(key)
	if !exists {
		return *new(V), false
	}

	return val.(V), true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.inner.Get(key)
	return exists
}

// Delete will remove the key and its associated value. It returns false when the key was absent.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	_, present := o.inner.Delete(key)
	return present
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return o.inner.Len()
}

// Clear removes all keys
func (o *OrderedMap[K, V]) Clear() {
	o.inner = wk8.New()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.inner.Len())
	for pair := o.inner.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(K))
	}

	return keys
}

// Values returns the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.inner.Len())
	for pair := o.inner.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value.(V))
	}

	return values
}

// Front returns an iterator pointing to the oldest (inserted-first) pair or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o == nil {
		return nil
	}

	return newIterator[K, V](o.inner.Oldest(), true)
}

// Back returns an Iterator pointing to the newest (inserted-last) pair or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Iterator[K, V] {
	if o == nil {
		return nil
	}

	return newIterator[K, V](o.inner.Newest(), false)
}

func newIterator[K comparable, V any](pair *wk8.Pair, forward bool) *Iterator[K, V] {
	if pair == nil {
		return nil
	}

	iter := &Iterator[K, V]{forward: forward}
	iter.load(pair)

	return iter
}

func (n *Iterator[K, V]) load(pair *wk8.Pair) {
	key := pair.Key.(K)
	n.pair = pair
	n.Key = &key
	n.Value = pair.Value.(V)
}

// Next advances in the iteration direction, returning nil when no more pairs remain
func (n *Iterator[K, V]) Next() *Iterator[K, V] {
	if n == nil || n.pair == nil {
		return nil
	}

	return n.step(n.forward)
}

// Prev moves against the iteration direction, returning nil when no more pairs remain
func (n *Iterator[K, V]) Prev() *Iterator[K, V] {
	if n == nil || n.pair == nil {
		return nil
	}

	return n.step(!n.forward)
}

func (n *Iterator[K, V]) step(forward bool) *Iterator[K, V] {
	var next *wk8.Pair
	if forward {
		next = n.pair.Next()
	} else {
		next = n.pair.Prev()
	}

	if next == nil {
		return nil
	}
	n.load(next)

	return n
}
