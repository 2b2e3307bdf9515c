package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
)

// Manager hands out one restored Holder per visitor, created lazily.
type Manager struct {
	mu      sync.Mutex
	holders map[string]*Holder
	api     upstream
	state   localstore.Store
	logg    *logger.Logger
}

// NewManager builds a manager over the shared visitor state store.
func NewManager(api upstream, state localstore.Store, logg *logger.Logger) (*Manager, error) {
	if api == nil {
		return nil, fmt.Errorf("shop API client required")
	}
	if state == nil {
		return nil, fmt.Errorf("state store required")
	}
	return &Manager{
		holders: make(map[string]*Holder),
		api:     api,
		state:   state,
		logg:    logg,
	}, nil
}

// Holder returns the visitor's session holder, restoring a persisted token
// on first access.
func (m *Manager) Holder(ctx context.Context, visitorID string) (*Holder, error) {
	if visitorID == "" {
		return nil, fmt.Errorf("visitor id required")
	}

	m.mu.Lock()
	holder, ok := m.holders[visitorID]
	if !ok {
		var err error
		holder, err = NewHolder(m.api, m.state, Key(visitorID), m.logg)
		if err != nil {
			m.mu.Unlock()
			return nil, err
		}
		m.holders[visitorID] = holder
	}
	m.mu.Unlock()

	holder.Restore(ctx)
	return holder, nil
}

// Key is the visitor state key the bearer token persists under.
func Key(visitorID string) string {
	return "visitor:" + visitorID + ":token"
}
