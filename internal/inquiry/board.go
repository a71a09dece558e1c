package inquiry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ErrUnknownStatus is returned for a transition target outside the workflow.
var ErrUnknownStatus = errors.New("unknown inquiry status")

// ErrNotFound is returned when no inquiry exists for the given identifier.
var ErrNotFound = errors.New("inquiry not found")

// StatusStore persists a status transition for exactly one inquiry. It must
// update only the status column and report ErrNotFound (or a wrapped form of
// it) when the identifier matches no row.
type StatusStore interface {
	UpdateInquiryStatus(ctx context.Context, id string, status model.InquiryStatus) error
}

// Board holds the in-memory inquiry collection backing the admin console and
// drives the status workflow against it.
//
// Transitions follow a persist-then-reflect protocol: the store update must
// succeed before the local snapshot is patched. A failed persist leaves the
// snapshot exactly as it was, so the console never shows a status the backing
// store did not accept. Concurrent transitions against the same record are
// resolved last-write-wins by persist-completion order.
type Board struct {
	store StatusStore

	mu    sync.RWMutex
	items []model.Inquiry
}

// NewBoard creates a board over the given store with an empty snapshot.
func NewBoard(store StatusStore) *Board {
	return &Board{store: store}
}

// Replace swaps in a freshly loaded snapshot of the collection.
func (b *Board) Replace(items []model.Inquiry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = make([]model.Inquiry, len(items))
	copy(b.items, items)
}

// Items returns a copy of the current snapshot.
func (b *Board) Items() []model.Inquiry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Inquiry, len(b.items))
	copy(out, b.items)
	return out
}

// Has reports whether the current snapshot contains the given identifier.
func (b *Board) Has(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.items {
		if b.items[i].ID == id {
			return true
		}
	}
	return false
}

// SetStatus transitions the inquiry identified by id to status. Any valid
// status is an accepted target, including the record's current one; a
// self-transition still round-trips through the store.
func (b *Board) SetStatus(ctx context.Context, id string, status model.InquiryStatus) (model.Inquiry, error) {
	if !status.Valid() {
		return model.Inquiry{}, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	if err := b.store.UpdateInquiryStatus(ctx, id, status); err != nil {
		logrus.Errorf("Failed to persist status %s for inquiry %s: %v", status, id, err)
		return model.Inquiry{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].Status = status
			return b.items[i], nil
		}
	}

	// Persisted, but the record is not in the current snapshot (it was loaded
	// before this inquiry arrived). The caller should refresh.
	return model.Inquiry{}, ErrNotFound
}
