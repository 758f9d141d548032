package store

import (
	"context"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// StatusStore caches the full telemetry collection across machines.
type StatusStore struct {
	Collection[models.MachineStatus]
	client api.Client
	log    logging.Logger
}

func NewStatusStore(client api.Client, log logging.Logger) *StatusStore {
	return &StatusStore{client: client, log: log.With("store", "statuses")}
}

func (s *StatusStore) Fetch(ctx context.Context) error {
	err := fetchInto(ctx, &s.Collection, s.client.MachineStatuses)
	if err != nil {
		s.log.Warn(ctx, "fetch failed", "err", err)
	}
	return err
}

// LatestByMachine returns one machine's most recent reading, or nil when the
// machine has none. The backend serves the series most-recent-first, so the
// latest reading is the first element; that ordering is a precondition here.
// This is a narrowing projection: it does not touch the shared cache.
func (s *StatusStore) LatestByMachine(ctx context.Context, machineID string) (*models.MachineStatus, error) {
	series, err := s.client.MachineStatusesByMachine(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, nil
	}
	latest := series[0]
	return &latest, nil
}

// Create records a reading. The backend acknowledges without an entity body,
// so on success the store refetches the collection to pick up the
// server-assigned row.
func (s *StatusStore) Create(ctx context.Context, input api.StatusInput) error {
	if err := s.client.CreateMachineStatus(ctx, input); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *StatusStore) Update(ctx context.Context, id string, input api.StatusInput) (*models.MachineStatus, error) {
	status, err := s.client.UpdateMachineStatus(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.replaceByID(id, *status)
	return status, nil
}

func (s *StatusStore) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteMachineStatus(ctx, id); err != nil {
		return err
	}
	s.removeByID(id)
	return nil
}
