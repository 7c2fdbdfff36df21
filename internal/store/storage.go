// Package store provides named-slot storage backends for the client-side
// trip collection. A slot holds one JSON document, mirroring how the web
// client kept its whole trip list under a single local-storage key.
package store

import "errors"

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Storage is a minimal named-slot backend. Implementations must be safe for
// concurrent use; callers perform whole-document read-modify-write.
type Storage interface {
	// Read returns the document stored under slot, or ErrNotFound.
	Read(slot string) ([]byte, error)

	// Write replaces the document stored under slot.
	Write(slot string, data []byte) error
}
