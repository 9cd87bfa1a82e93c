// Package store holds the ordered in-memory record collections backing each
// dashboard page. One generic implementation replaces the per-page copies of
// the same bookkeeping.
package store

// Record is anything the store can index by id.
type Record interface {
	RecordID() string
}

// Store is an insertion-ordered collection of records. It is single-owner:
// every operation runs to completion before the next, so there is no
// locking.
type Store[T Record] struct {
	records []T
}

func New[T Record]() *Store[T] {
	return &Store[T]{}
}

// Add appends a record, preserving display order.
func (s *Store[T]) Add(record T) {
	s.records = append(s.records, record)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	for _, record := range s.records {
		if record.RecordID() == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// Replace swaps the record at id in place, keeping its position. It reports
// whether the id was found.
func (s *Store[T]) Replace(id string, record T) bool {
	for i, existing := range s.records {
		if existing.RecordID() == id {
			s.records[i] = record
			return true
		}
	}
	return false
}

// Delete removes the record with the given id. A missing id is a no-op.
func (s *Store[T]) Delete(id string) bool {
	for i, record := range s.records {
		if record.RecordID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the records in insertion order.
func (s *Store[T]) List() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Len() int {
	return len(s.records)
}
