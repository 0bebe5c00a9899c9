package types

import (
	"github.com/goccy/go-json"
)

// Set is an insertion-ordered set; order is preserved so that catalog
// round-trips stay byte identical.
type Set[T comparable] struct {
	index   map[T]int
	ordered []T
}

func NewSet[T comparable](elems ...T) *Set[T] {
	set := &Set[T]{
		index:   make(map[T]int),
		ordered: []T{},
	}
	set.Insert(elems...)

	return set
}

func (s *Set[T]) Insert(elems ...T) {
	for _, elem := range elems {
		if _, found := s.index[elem]; found {
			continue
		}

		s.index[elem] = len(s.ordered)
		s.ordered = append(s.ordered, elem)
	}
}

func (s *Set[T]) Exists(elem T) bool {
	if s == nil {
		return false
	}

	_, found := s.index[elem]
	return found
}

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.ordered)
}

// Array returns elements in insertion order; mutating the result does not
// affect the set.
func (s *Set[T]) Array() []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s.ordered))
	copy(out, s.ordered)

	return out
}

func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Array())
}

func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}

	s.index = make(map[T]int)
	s.ordered = s.ordered[:0]
	s.Insert(elems...)

	return nil
}
