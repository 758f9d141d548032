package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maintdesk/maintdesk/internal/client/models"
)

func sampleTickets() []models.Ticket {
	return []models.Ticket{
		{
			ID:        "t1",
			ProductID: "L-1001",
			Machine:   &models.Machine{Name: "Hydraulic Press"},
			Problem:   "Coolant pump leaking",
			Priority:  models.PriorityHigh,
			Status:    models.TicketOpen,
		},
		{
			ID:            "t2",
			ProductID:     "M-2002",
			Problem:       "Belt slipping",
			ProblemDetail: "Drive belt slips under load on the main conveyor",
			Priority:      models.PriorityLow,
			Status:        models.TicketResolved,
		},
		{
			ID:        "t3",
			ProductID: "H-3003",
			Problem:   "Spindle vibration",
			Priority:  models.PriorityHigh,
			Status:    models.TicketInProgress,
		},
	}
}

func ticketIDs(items []models.Ticket) []string {
	out := make([]string, len(items))
	for i, t := range items {
		out[i] = t.ID
	}
	return out
}

func TestTicketsDefaultFilterMatchesAll(t *testing.T) {
	got := Tickets(sampleTickets(), DefaultTicketFilter())
	require.Equal(t, []string{"t1", "t2", "t3"}, ticketIDs(got))
}

func TestTicketsSearchIsCaseInsensitive(t *testing.T) {
	f := DefaultTicketFilter()
	f.Search = "PUMP"
	got := Tickets(sampleTickets(), f)
	require.Equal(t, []string{"t1"}, ticketIDs(got))
}

func TestTicketsSearchMatchesDetailAndMachine(t *testing.T) {
	f := DefaultTicketFilter()
	f.Search = "conveyor"
	require.Equal(t, []string{"t2"}, ticketIDs(Tickets(sampleTickets(), f)))

	f.Search = "hydraulic"
	require.Equal(t, []string{"t1"}, ticketIDs(Tickets(sampleTickets(), f)))
}

func TestTicketsEnumGatesCombine(t *testing.T) {
	f := DefaultTicketFilter()
	f.Priority = string(models.PriorityHigh)
	require.Equal(t, []string{"t1", "t3"}, ticketIDs(Tickets(sampleTickets(), f)))

	f.Status = string(models.TicketInProgress)
	require.Equal(t, []string{"t3"}, ticketIDs(Tickets(sampleTickets(), f)))
}

func TestTicketsPreservesInputOrder(t *testing.T) {
	items := sampleTickets()
	f := DefaultTicketFilter()
	f.Priority = string(models.PriorityHigh)

	got := Tickets(items, f)
	require.Equal(t, []string{"t1", "t3"}, ticketIDs(got))
	// Input slice untouched.
	require.Equal(t, []string{"t1", "t2", "t3"}, ticketIDs(items))
}

func TestTicketFilterActive(t *testing.T) {
	require.Zero(t, DefaultTicketFilter().Active())

	f := TicketFilter{Search: "pump", Status: string(models.TicketOpen), Priority: All}
	require.Equal(t, 2, f.Active())
}

func TestMachinesSearch(t *testing.T) {
	items := []models.Machine{
		{ID: "m1", ProductID: "L-1001", Name: "Hydraulic Press"},
		{ID: "m2", ProductID: "M-2002", Name: "Conveyor"},
	}

	got := Machines(items, MachineFilter{Search: "l-10"})
	require.Len(t, got, 1)
	require.Equal(t, "m1", got[0].ID)

	got = Machines(items, MachineFilter{})
	require.Len(t, got, 2)
}

func sampleUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Alice Admin", Username: "alice", Email: "alice@plant.io", Role: models.RoleAdmin, IsVerified: true},
		{ID: "u2", Name: "Bob Builder", Username: "bob", Email: "bob@plant.io", Role: models.RoleEngineer},
		{ID: "u3", Name: "Carol Crane", Username: "carol", Email: "carol@plant.io", Role: models.RoleEngineer, IsVerified: true},
	}
}

func TestUsersVerificationGate(t *testing.T) {
	f := DefaultUserFilter()
	f.Verified = VerifiedOnly
	got := Users(sampleUsers(), f)
	require.Len(t, got, 2)

	f.Verified = VerifiedNot
	got = Users(sampleUsers(), f)
	require.Len(t, got, 1)
	require.Equal(t, "u2", got[0].ID)
}

func TestUsersRoleAndSearch(t *testing.T) {
	f := DefaultUserFilter()
	f.Role = string(models.RoleEngineer)
	f.Search = "carol"

	got := Users(sampleUsers(), f)
	require.Len(t, got, 1)
	require.Equal(t, "u3", got[0].ID)
}
