package memory

import (
	"context"

	"personapi/internal/repository"
)

// PersonMemory is a fixed, in-process person roster. It is read-only after
// construction and therefore safe for concurrent use.
type PersonMemory struct {
	ids map[int64]struct{}
}

// NewPersonMemory creates a roster holding the given ids.
func NewPersonMemory(ids ...int64) *PersonMemory {
	m := &PersonMemory{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
	return m
}

var _ repository.PersonRepository = (*PersonMemory)(nil)

// Exists reports whether id is part of the roster.
func (m *PersonMemory) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := m.ids[id]
	return ok, nil
}
