// Package queue provides a typed double-ended queue on top of github.com/ef-ds/deque.
package queue

import "github.com/ef-ds/deque"

// Q is a generic stack/queue structure that supports both stack and queue operations.
// All push and pop operations are O(1).
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// From creates a Q holding items in order, the first item at the front
func From[T any](items ...T) *Q[T] {
	q := New[T]()
	for _, item := range items {
		q.Enqueue(item)
	}

	return q
}

// Stack Operations

// Push adds an item to the top of the stack (stack behavior)
func (q *Q[T]) Push(item T) {
	q.d.PushBack(item)
}

// Pop removes and returns the top item from the stack (stack behavior)
func (q *Q[T]) Pop() (T, bool) {
	return unbox[T](q.d.PopBack())
}

// Peek returns the top item from the stack without removing it
func (q *Q[T]) Peek() (T, bool) {
	return unbox[T](q.d.Back())
}

// Queue Operations

// Enqueue adds an item to the end of the queue (queue behavior)
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item from the queue (queue behavior)
func (q *Q[T]) Dequeue() (T, bool) {
	return unbox[T](q.d.PopFront())
}

// Front returns the first item of the queue without removing it
func (q *Q[T]) Front() (T, bool) {
	return unbox[T](q.d.Front())
}

// Utility Methods

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// IsEmpty reports whether the Q holds no items
func (q *Q[T]) IsEmpty() bool {
	return q.d.Len() == 0
}

type IterationCallback[T any] func(item T, index int) (keepGoing bool)

// ForEach iterates over the items from front to back. Returning false from the
// callback stops further callbacks; the Q is left unchanged either way.
func (q *Q[T]) ForEach(callback IterationCallback[T]) {
	keepGoing := true
	for i, n := 0, q.d.Len(); i < n; i++ {
		v, _ := q.d.PopFront()
		q.d.PushBack(v)
		if keepGoing {
			item, _ := unbox[T](v, true)
			keepGoing = callback(item, i)
		}
	}
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.d.Init()
}

func unbox[T any](v interface{}, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}
	if v == nil {
		var zero T
		return zero, true
	}

	return v.(T), true
}
