// Package history holds the collaborator-facing storage contracts: the
// most recent observed price per route and traveler point balances. The
// core itself stays stateless; these stores live at the edge.
package history

import (
	"context"
	"sync"
)

// Reader returns the most recent prior price for a route.
type Reader interface {
	LastPrice(ctx context.Context, route string) (int, bool, error)
}

// Recorder persists the latest observed price for a route.
type Recorder interface {
	RecordPrice(ctx context.Context, route string, priceCents int) error
}

// Store combines price history reading and recording.
type Store interface {
	Reader
	Recorder
	Close() error
}

// BalanceSource supplies a traveler's current loyalty point balance.
type BalanceSource interface {
	Balance(ctx context.Context, userID string) (int, error)
}

// MemoryStore is an in-process Store and BalanceSource for development and
// tests.
type MemoryStore struct {
	mu       sync.RWMutex
	prices   map[string]int
	balances map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prices:   make(map[string]int),
		balances: make(map[string]int),
	}
}

func (s *MemoryStore) LastPrice(ctx context.Context, route string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	price, ok := s.prices[route]
	return price, ok, nil
}

func (s *MemoryStore) RecordPrice(ctx context.Context, route string, priceCents int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[route] = priceCents
	return nil
}

func (s *MemoryStore) Balance(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[userID], nil
}

// SetBalance seeds a traveler's balance.
func (s *MemoryStore) SetBalance(userID string, points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[userID] = points
}

func (s *MemoryStore) Close() error {
	return nil
}
