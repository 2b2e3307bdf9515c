package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"go.uber.org/multierr"
)

// Manager hands out one hydrated Store per visitor for the lifetime of the
// process. Stores are created lazily on first access.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	state  localstore.Store
	logg   *logger.Logger
}

// NewManager builds a manager over the shared visitor state store.
func NewManager(state localstore.Store, logg *logger.Logger) (*Manager, error) {
	if state == nil {
		return nil, fmt.Errorf("state store required")
	}
	return &Manager{
		stores: make(map[string]*Store),
		state:  state,
		logg:   logg,
	}, nil
}

// Store returns the visitor's cart, hydrating it on first access.
func (m *Manager) Store(ctx context.Context, visitorID string) (*Store, error) {
	if visitorID == "" {
		return nil, fmt.Errorf("visitor id required")
	}

	m.mu.Lock()
	store, ok := m.stores[visitorID]
	if !ok {
		var err error
		store, err = NewStore(m.state, Key(visitorID), m.logg)
		if err != nil {
			m.mu.Unlock()
			return nil, err
		}
		m.stores[visitorID] = store
	}
	m.mu.Unlock()

	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// Close drains every store's write queue.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	for _, store := range m.stores {
		err = multierr.Append(err, store.Close())
	}
	return err
}

// Key is the visitor state key the cart serializes under.
func Key(visitorID string) string {
	return "visitor:" + visitorID + ":cart"
}
