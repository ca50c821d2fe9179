// Package filestore provides a file-backed implementation of the order store.
//
// All records live in a single JSON document keyed by order id. Every
// mutation rewrites the whole file (no append log, no schema versioning), so
// a single mutex serializes the full load-mutate-save cycle; without it
// concurrent writers would silently lose each other's updates. An in-memory
// map mirrors the file so reads never touch the disk.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/pkg/errs"
)

// orderDocument is the persisted representation of one order record.
type orderDocument struct {
	OrderID     string          `json:"order_id"`
	Customer    json.RawMessage `json:"customer"`
	Items       json.RawMessage `json:"items"`
	Status      string          `json:"status"`
	TrackingID  string          `json:"tracking_id,omitempty"`
	Error       string          `json:"error,omitempty"`
	DispatchSeq int             `json:"dispatch_seq"`
}

// Store is a file-backed order store.
// Implements ports.OrderStore with write-through persistence: mutations
// update the in-memory map and rewrite the backing file before returning.
type Store struct {
	path string

	mu        sync.RWMutex
	documents map[string]orderDocument
}

// NewStore creates a store backed by the file at path.
// An existing file is loaded; a missing file is treated as an empty store and
// created on the first mutation.
func NewStore(path string) (*Store, error) {
	store := &Store{
		path:      path,
		documents: make(map[string]orderDocument),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read order store file %s: %w", path, err)
	}

	if err = json.Unmarshal(data, &store.documents); err != nil {
		return nil, fmt.Errorf("parse order store file %s: %w", path, err)
	}

	return store, nil
}

// Put inserts or overwrites the full record under its identifier.
// Last write wins; overwriting is not an error.
func (s *Store) Put(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromDomain(aggregate)

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.documents[doc.OrderID]
	s.documents[doc.OrderID] = doc

	if err := s.save(); err != nil {
		// Keep memory consistent with the file that failed to update.
		if existed {
			s.documents[doc.OrderID] = previous
		} else {
			delete(s.documents, doc.OrderID)
		}
		return err
	}

	return nil
}

// Patch merges the non-nil patch fields into the stored record.
// Returns false without error when the id is unknown. A fenced patch whose
// dispatch sequence no longer matches is a no-op that still returns true.
func (s *Store) Patch(_ context.Context, id kernel.UUID, patch order.Patch) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id.String()]
	if !ok {
		return false, nil
	}

	if patch.IsStaleFor(doc.DispatchSeq) {
		return true, nil
	}

	previous := doc
	applyPatch(&doc, patch)
	s.documents[doc.OrderID] = doc

	if err := s.save(); err != nil {
		s.documents[doc.OrderID] = previous
		return true, err
	}

	return true, nil
}

// Get retrieves a record by its identifier.
func (s *Store) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	doc, ok := s.documents[id.String()]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return toDomain(doc)
}

// CountByStatus returns the number of stored orders per status.
func (s *Store) CountByStatus(_ context.Context) (map[order.Status]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[order.Status]int)
	for _, doc := range s.documents {
		status, err := order.StatusFromString(doc.Status)
		if err != nil {
			return nil, err
		}
		counts[status]++
	}

	return counts, nil
}

// save rewrites the whole backing file. Callers must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.documents, "", "  ")
	if err != nil {
		return fmt.Errorf("encode order store: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write order store file %s: %w", s.path, err)
	}

	return nil
}

// applyPatch merges the non-nil patch fields into the document.
func applyPatch(doc *orderDocument, patch order.Patch) {
	if patch.Status != nil {
		doc.Status = patch.Status.String()
	}
	if patch.TrackingID != nil {
		doc.TrackingID = *patch.TrackingID
	}
	if patch.LastError != nil {
		doc.Error = *patch.LastError
	}
	if patch.DispatchSeq != nil {
		doc.DispatchSeq = *patch.DispatchSeq
	}
}

// fromDomain converts an order aggregate to its persisted representation.
func fromDomain(aggregate *order.Order) orderDocument {
	doc := orderDocument{
		OrderID:     aggregate.ID().String(),
		Customer:    aggregate.Customer(),
		Items:       aggregate.Items(),
		Status:      aggregate.Status().String(),
		DispatchSeq: aggregate.DispatchSeq(),
	}

	if tracking := aggregate.TrackingID(); tracking != nil {
		doc.TrackingID = *tracking
	}
	if lastError := aggregate.LastError(); lastError != nil {
		doc.Error = *lastError
	}

	return doc
}

// toDomain reconstructs an order aggregate from its persisted representation.
func toDomain(doc orderDocument) (*order.Order, error) {
	id, err := kernel.UUIDFromString(doc.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(doc.Status)
	if err != nil {
		return nil, err
	}

	var trackingID *string
	if doc.TrackingID != "" {
		trackingID = &doc.TrackingID
	}

	var lastError *string
	if doc.Error != "" {
		lastError = &doc.Error
	}

	return order.RestoreOrder(id, doc.Customer, doc.Items, status, trackingID, lastError, doc.DispatchSeq)
}
