package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/i474232898/travel-planner/internal/store"
	"github.com/i474232898/travel-planner/internal/trip"
)

// tripsSlot is the storage slot holding the whole trip collection, the
// counterpart of the web client's single local-storage key.
const tripsSlot = "trips"

// TripStore is the client-side repository of persisted trips. Every mutation
// is a whole-collection read-modify-write against the backing slot, which is
// the sole source of truth for rendering after a restart.
type TripStore struct {
	storage store.Storage

	mu     sync.Mutex
	lastID int64
}

// NewTripStore creates a TripStore over the given storage backend.
func NewTripStore(storage store.Storage) *TripStore {
	return &TripStore{storage: storage}
}

// List returns every persisted trip in insertion order. An unwritten slot is
// an empty collection, not an error.
func (s *TripStore) List() ([]trip.Record, error) {
	data, err := s.storage.Read(tripsSlot)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []trip.Record{}, nil
		}
		return nil, fmt.Errorf("read trips: %w", err)
	}

	var trips []trip.Record
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("decode trips: %w", err)
	}
	if trips == nil {
		trips = []trip.Record{}
	}
	return trips, nil
}

// Add appends a trip to the collection, assigning a wall-clock id when the
// record does not carry one. Ids are Unix milliseconds bumped to stay
// strictly increasing within this store, so back-to-back persists in the
// same millisecond still get distinct ids.
func (s *TripStore) Add(rec trip.Record) (trip.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == 0 {
		id := time.Now().UnixMilli()
		if id <= s.lastID {
			id = s.lastID + 1
		}
		s.lastID = id
		rec.ID = id
	}

	trips, err := s.List()
	if err != nil {
		return trip.Record{}, err
	}
	trips = append(trips, rec)

	if err := s.write(trips); err != nil {
		return trip.Record{}, err
	}
	return rec, nil
}

// Persist builds a Record from an enrichment response and adds it.
func (s *TripStore) Persist(enriched trip.EnrichedTrip, destination, startDate, endDate string) (trip.Record, error) {
	return s.Add(trip.Record{
		Destination:  destination,
		StartDate:    startDate,
		EndDate:      endDate,
		LocationInfo: enriched.LocationInfo,
		Weather:      enriched.Weather,
		Image:        enriched.Image,
	})
}

// RemoveByID filters the collection down to the complement of id and writes
// it back. Removing an id that is not present is a no-op.
func (s *TripStore) RemoveByID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.List()
	if err != nil {
		return err
	}

	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	return s.write(kept)
}

func (s *TripStore) write(trips []trip.Record) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("encode trips: %w", err)
	}
	if err := s.storage.Write(tripsSlot, data); err != nil {
		return fmt.Errorf("write trips: %w", err)
	}
	return nil
}
