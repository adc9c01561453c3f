package pack

import (
	"fmt"

	"fortio.org/safecast"
)

// ValueStore interns values by structural equality. Two inserts of
// structurally equal values yield one id; ids are dense and start at 1.
// The key function must be injective over structurally distinct values.
type ValueStore[Id ~uint32, V any] struct {
	key    func(V) string
	index  map[string]Id
	values []V
}

// NewValueStore creates an empty by-value store around a structural key
// function.
func NewValueStore[Id ~uint32, V any](key func(V) string) *ValueStore[Id, V] {
	return &ValueStore[Id, V]{
		key:   key,
		index: make(map[string]Id, 64),
	}
}

// Insert returns the id of an equal previously inserted value, or
// allocates the next id.
func (s *ValueStore[Id, V]) Insert(v V) Id {
	k := s.key(v)
	if id, ok := s.index[k]; ok {
		return id
	}
	next, err := safecast.Conv[uint32](len(s.values) + 1)
	if err != nil {
		panic(fmt.Errorf("value store overflow: %w", err))
	}
	id := Id(next)
	s.values = append(s.values, v)
	s.index[k] = id
	return id
}

// Len reports the number of distinct stored values.
func (s *ValueStore[Id, V]) Len() int { return len(s.values) }

// Finalize freezes the store into an id-to-value map.
func (s *ValueStore[Id, V]) Finalize() map[Id]V {
	out := make(map[Id]V, len(s.values))
	for i, v := range s.values {
		out[Id(i+1)] = v
	}
	return out
}

// KeyedStore interns values by an external comparable key. The first
// insert for a key wins; repeats return the existing id and the stored
// value is never overwritten.
type KeyedStore[Id ~uint32, K comparable, V any] struct {
	index  map[K]Id
	values []V
}

// NewKeyedStore creates an empty by-key store.
func NewKeyedStore[Id ~uint32, K comparable, V any]() *KeyedStore[Id, K, V] {
	return &KeyedStore[Id, K, V]{
		index: make(map[K]Id, 16),
	}
}

// Insert returns the existing id if the key was seen before, ignoring v,
// else allocates the next id and stores v under it.
func (s *KeyedStore[Id, K, V]) Insert(k K, v V) Id {
	if id, ok := s.index[k]; ok {
		return id
	}
	next, err := safecast.Conv[uint32](len(s.values) + 1)
	if err != nil {
		panic(fmt.Errorf("keyed store overflow: %w", err))
	}
	id := Id(next)
	s.values = append(s.values, v)
	s.index[k] = id
	return id
}

// Get looks a key up without inserting.
func (s *KeyedStore[Id, K, V]) Get(k K) (Id, bool) {
	id, ok := s.index[k]
	return id, ok
}

// IsEmpty reports whether nothing has been inserted.
func (s *KeyedStore[Id, K, V]) IsEmpty() bool { return len(s.values) == 0 }

// Len reports the number of stored entries.
func (s *KeyedStore[Id, K, V]) Len() int { return len(s.values) }

// Finalize freezes the store into an id-to-value map.
func (s *KeyedStore[Id, K, V]) Finalize() map[Id]V {
	out := make(map[Id]V, len(s.values))
	for i, v := range s.values {
		out[Id(i+1)] = v
	}
	return out
}
