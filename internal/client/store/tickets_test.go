package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
)

func ticketIDs(items []models.Ticket) []string {
	out := make([]string, len(items))
	for i, t := range items {
		out[i] = t.ID
	}
	return out
}

func TestTicketStoreFetch(t *testing.T) {
	fc := &fakeClient{TicketsRet: []models.Ticket{{ID: "t1"}, {ID: "t2"}}}
	s := NewTicketStore(fc, testLogger())

	require.NoError(t, s.Fetch(context.Background()))
	require.Equal(t, []string{"t1", "t2"}, ticketIDs(s.Items()))
}

func TestTicketStoreFetchFailureKeepsCache(t *testing.T) {
	fc := &fakeClient{TicketsRet: []models.Ticket{{ID: "t1"}}}
	s := NewTicketStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	boom := errors.New("down")
	fc.TicketsErr = boom

	err := s.Fetch(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Err(), boom)
	require.Equal(t, []string{"t1"}, ticketIDs(s.Items()))
}

func TestTicketStoreCreatePrepends(t *testing.T) {
	fc := &fakeClient{
		TicketsRet: []models.Ticket{{ID: "t1"}},
		CreateRet:  &models.Ticket{ID: "t2", Problem: "leaking coolant"},
	}
	s := NewTicketStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	created, err := s.Create(context.Background(), api.TicketInput{Problem: "leaking coolant"})
	require.NoError(t, err)
	require.Equal(t, "t2", created.ID)
	require.Equal(t, []string{"t2", "t1"}, ticketIDs(s.Items()))
}

func TestTicketStoreCreateFailureLeavesCacheUntouched(t *testing.T) {
	fc := &fakeClient{
		TicketsRet: []models.Ticket{{ID: "t1"}},
		CreateErr:  errors.New("rejected"),
	}
	s := NewTicketStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	_, err := s.Create(context.Background(), api.TicketInput{})
	require.Error(t, err)
	require.Equal(t, []string{"t1"}, ticketIDs(s.Items()))
}

func TestTicketStoreUpdateInPlace(t *testing.T) {
	fc := &fakeClient{
		TicketsRet: []models.Ticket{{ID: "t1"}, {ID: "t2", Status: models.TicketOpen}, {ID: "t3"}},
		UpdateRet:  &models.Ticket{ID: "t2", Status: models.TicketResolved},
	}
	s := NewTicketStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	updated, err := s.Update(context.Background(), "t2", api.TicketInput{Status: models.TicketResolved})
	require.NoError(t, err)
	require.Equal(t, models.TicketResolved, updated.Status)

	require.Equal(t, []string{"t1", "t2", "t3"}, ticketIDs(s.Items()))
	cached, ok := s.Get("t2")
	require.True(t, ok)
	require.Equal(t, models.TicketResolved, cached.Status)
}

func TestTicketStoreDelete(t *testing.T) {
	fc := &fakeClient{TicketsRet: []models.Ticket{{ID: "t1"}, {ID: "t2"}}}
	s := NewTicketStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	require.NoError(t, s.Delete(context.Background(), "t1"))
	require.Equal(t, []string{"t2"}, ticketIDs(s.Items()))
}

func TestTicketStoreDeleteFailureKeepsItem(t *testing.T) {
	fc := &fakeClient{
		TicketsRet: []models.Ticket{{ID: "t1"}},
		DeleteErr:  errors.New("forbidden"),
	}
	s := NewTicketStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	require.Error(t, s.Delete(context.Background(), "t1"))
	require.Equal(t, 1, s.Len())
}
