// Package id provides the store-assigned identity type shared by all resources.
// Identities are BIGSERIAL values; zero means "not yet persisted".
package id

import (
	"fmt"
	"strconv"
)

// ID is the primary key of every entity.
type ID = int64

// Parse converts a path segment to ID. Only positive values are accepted.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("parse id %q: must be positive", s)
	}
	return v, nil
}

// IsNil checks if ID has not been assigned by the store.
func IsNil(id ID) bool {
	return id == 0
}
