package store

import (
	"context"
	"sync"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// OverviewStore holds the dashboard's pre-aggregated counters. Not a
// collection: one value, replaced wholesale, with the same
// generation-guarded fetch discipline.
type OverviewStore struct {
	client api.Client
	log    logging.Logger

	mu      sync.Mutex
	data    *models.Overview
	loading bool
	err     error
	gen     uint64
}

func NewOverviewStore(client api.Client, log logging.Logger) *OverviewStore {
	return &OverviewStore{client: client, log: log.With("store", "overview")}
}

// Overview returns the last fetched counters, or nil before the first
// successful fetch.
func (s *OverviewStore) Overview() *models.Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *OverviewStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *OverviewStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *OverviewStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	data, err := s.client.Overview(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return err
	}
	s.loading = false
	if err != nil {
		s.err = err
		s.log.Warn(ctx, "fetch failed", "err", err)
		return err
	}
	s.data = data
	return nil
}
