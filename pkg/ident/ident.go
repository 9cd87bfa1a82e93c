// Package ident supplies record identifiers. Services take a Generator so
// tests can swap in deterministic ids.
package ident

import "github.com/google/uuid"

// Generator hands out collision-free record ids on demand.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 identifiers.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}
