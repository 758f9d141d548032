package store

import (
	"context"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// TicketStore caches the ticket collection.
type TicketStore struct {
	Collection[models.Ticket]
	client api.Client
	log    logging.Logger
}

func NewTicketStore(client api.Client, log logging.Logger) *TicketStore {
	return &TicketStore{client: client, log: log.With("store", "tickets")}
}

// Fetch replaces the cached list with the server's. On failure the previous
// list stays visible and the error is recorded on the store as well as
// returned.
func (s *TicketStore) Fetch(ctx context.Context) error {
	err := fetchInto(ctx, &s.Collection, s.client.Tickets)
	if err != nil {
		s.log.Warn(ctx, "fetch failed", "err", err)
	}
	return err
}

// ByMachine returns the tickets raised against one machine. This is a
// projection straight from the server; it does not touch the shared cache.
func (s *TicketStore) ByMachine(ctx context.Context, machineID string) ([]models.Ticket, error) {
	return s.client.TicketsByMachine(ctx, machineID)
}

// Create submits a new ticket and, once the server confirms, prepends the
// returned entity so it surfaces first. The created ticket is returned for
// chaining. On failure the cache is untouched.
func (s *TicketStore) Create(ctx context.Context, input api.TicketInput) (*models.Ticket, error) {
	ticket, err := s.client.CreateTicket(ctx, input)
	if err != nil {
		return nil, err
	}
	s.prepend(*ticket)
	return ticket, nil
}

// Update replaces the matching cached ticket with the server's version,
// keeping every other item and the list order intact.
func (s *TicketStore) Update(ctx context.Context, id string, input api.TicketInput) (*models.Ticket, error) {
	ticket, err := s.client.UpdateTicket(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.replaceByID(id, *ticket)
	return ticket, nil
}

// Delete removes the ticket only after the server has confirmed the delete.
func (s *TicketStore) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteTicket(ctx, id); err != nil {
		return err
	}
	s.removeByID(id)
	return nil
}
