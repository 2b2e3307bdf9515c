// Package cart holds the visitor's shopping cart: an in-memory line
// collection merged on the (product, size, color) identity key, persisted to
// the visitor state store after every mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
	"github.com/shopspring/decimal"
)

const (
	writeQueueDepth = 64
	writeTimeout    = 5 * time.Second
)

// Store owns one visitor's cart. Mutations apply synchronously to memory and
// enqueue a full re-serialization on an ordered write queue; persistence
// failures are logged, never surfaced. Writes are suppressed until Load has
// hydrated the store, so a slow load can never be clobbered by an empty cart.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	loaded bool
	closed bool

	state localstore.Store
	key   string
	logg  *logger.Logger

	writes  chan []Line
	pending sync.WaitGroup
}

// NewStore builds an unhydrated store persisting under the given state key.
func NewStore(state localstore.Store, key string, logg *logger.Logger) (*Store, error) {
	if state == nil {
		return nil, fmt.Errorf("state store required")
	}
	if key == "" {
		return nil, fmt.Errorf("state key required")
	}

	s := &Store{
		state:  state,
		key:    key,
		logg:   logg,
		writes: make(chan []Line, writeQueueDepth),
	}
	go s.writer()
	return s, nil
}

// Load hydrates the cart from the state store. A missing key means a fresh
// cart; a corrupt payload is discarded and treated the same way. Load is
// idempotent.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	payload, err := s.state.Get(ctx, s.key)
	switch {
	case errors.Is(err, localstore.ErrNotFound):
		s.lines = nil
	case err != nil:
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "state_key", s.key), "cart load failed, starting empty")
		}
		s.lines = nil
	default:
		var lines []Line
		if err := json.Unmarshal([]byte(payload), &lines); err != nil {
			if s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "state_key", s.key), "corrupt cart payload, starting empty")
			}
			lines = nil
		}
		s.lines = lines
	}

	s.loaded = true
	return nil
}

// Add merges the product into the cart. An existing line with the same
// identity key has its quantity incremented; otherwise a new line is
// appended. Non-positive quantities are clamped to one.
func (s *Store) Add(product shopapi.Product, quantity int, size, color *string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].matches(product.ID, size, color) {
			s.lines[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}

	s.lines = append(s.lines, newLine(product, quantity, size, color))
	s.persistLocked()
}

// Update sets (not increments) the quantity of the matching line. A quantity
// of zero or less removes the line. Updating a line that does not exist is a
// no-op.
func (s *Store) Update(productID string, quantity int, size, color *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if !s.lines[i].matches(productID, size, color) {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		s.persistLocked()
		return
	}
}

// Remove drops the matching line, if any.
func (s *Store) Remove(productID string, size, color *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].matches(productID, size, color) {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Clear empties the cart. Used after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persistLocked()
}

// Lines returns a copy of the current cart lines in display order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of price times quantity over all lines, recomputed on
// every read.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Quantity is the sum of line quantities, recomputed on every read.
func (s *Store) Quantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Flush blocks until every enqueued write has been applied.
func (s *Store) Flush() {
	s.pending.Wait()
}

// Close drains the write queue and stops the writer.
func (s *Store) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.writes)
	}
	s.mu.Unlock()
	s.pending.Wait()
	return nil
}

// persistLocked snapshots the lines onto the write queue. Callers hold mu.
func (s *Store) persistLocked() {
	if !s.loaded || s.closed {
		return
	}
	snapshot := make([]Line, len(s.lines))
	copy(snapshot, s.lines)
	s.pending.Add(1)
	s.writes <- snapshot
}

func (s *Store) writer() {
	for snapshot := range s.writes {
		s.write(snapshot)
		s.pending.Done()
	}
}

func (s *Store) write(snapshot []Line) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(context.Background(), "serializing cart", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.state.Set(ctx, s.key, string(payload)); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "state_key", s.key), "cart write failed")
		}
	}
}
