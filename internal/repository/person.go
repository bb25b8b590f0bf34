package repository

import "context"

// Package repository contains data access abstractions.
// Implementations live in subpackages (memory, postgres) inside this directory.

// PersonRepository answers roster lookups for person ids.
// No business logic here; strictly persistence operations.
type PersonRepository interface {
	// Exists reports whether id is part of the roster.
	Exists(ctx context.Context, id int64) (bool, error)
}
