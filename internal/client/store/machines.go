package store

import (
	"context"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// MachineStore caches the machine inventory.
type MachineStore struct {
	Collection[models.Machine]
	client api.Client
	log    logging.Logger
}

func NewMachineStore(client api.Client, log logging.Logger) *MachineStore {
	return &MachineStore{client: client, log: log.With("store", "machines")}
}

func (s *MachineStore) Fetch(ctx context.Context) error {
	err := fetchInto(ctx, &s.Collection, s.client.Machines)
	if err != nil {
		s.log.Warn(ctx, "fetch failed", "err", err)
	}
	return err
}

func (s *MachineStore) Create(ctx context.Context, input api.MachineInput) (*models.Machine, error) {
	machine, err := s.client.CreateMachine(ctx, input)
	if err != nil {
		return nil, err
	}
	s.prepend(*machine)
	return machine, nil
}

func (s *MachineStore) Update(ctx context.Context, id string, input api.MachineInput) (*models.Machine, error) {
	machine, err := s.client.UpdateMachine(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.replaceByID(id, *machine)
	return machine, nil
}

func (s *MachineStore) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteMachine(ctx, id); err != nil {
		return err
	}
	s.removeByID(id)
	return nil
}
