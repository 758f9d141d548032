package filter

import "github.com/maintdesk/maintdesk/internal/client/models"

// TicketCounts is the ticket breakdown shown on the overview page. It is
// recomputed from the collection on every call; the collection stays the
// single source of truth.
type TicketCounts struct {
	Total      int
	ByStatus   map[models.TicketStatus]int
	ByPriority map[models.TicketPriority]int
}

func CountTickets(items []models.Ticket) TicketCounts {
	c := TicketCounts{
		Total:      len(items),
		ByStatus:   make(map[models.TicketStatus]int),
		ByPriority: make(map[models.TicketPriority]int),
	}
	for _, t := range items {
		c.ByStatus[t.Status]++
		c.ByPriority[t.Priority]++
	}
	return c
}

// UserCounts is the verification breakdown for the user-management header.
type UserCounts struct {
	Total    int
	Verified int
	Pending  int
	ByRole   map[models.Role]int
}

func CountUsers(items []models.User) UserCounts {
	c := UserCounts{Total: len(items), ByRole: make(map[models.Role]int)}
	for _, u := range items {
		if u.IsVerified {
			c.Verified++
		} else {
			c.Pending++
		}
		c.ByRole[u.Role]++
	}
	return c
}

// MachineHealth summarizes the latest known reading per machine. Readings
// are bucketed by machine and the first reading seen for a machine wins,
// which matches the backend's most-recent-first ordering.
type MachineHealth struct {
	Reporting int
	Healthy   int
	Failing   int
	Failures  map[string]int
}

func SummarizeHealth(statuses []models.MachineStatus) MachineHealth {
	h := MachineHealth{Failures: make(map[string]int)}
	seen := make(map[string]bool)
	for _, s := range statuses {
		if seen[s.MachineID] {
			continue
		}
		seen[s.MachineID] = true
		h.Reporting++
		if s.Failing() {
			h.Failing++
			if s.FailureType != "" {
				h.Failures[s.FailureType]++
			}
		} else {
			h.Healthy++
		}
	}
	return h
}
