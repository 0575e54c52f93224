package store

import "errors"

var (
	// ErrNotFound is returned when a referenced id has no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrSlugAlreadyTaken is returned when creating a category or blog post
	// whose slug collides with an existing one. Slugs are unique lookup
	// handles, so a collision would make one of the records unreachable.
	ErrSlugAlreadyTaken = errors.New("slug already taken")
)
