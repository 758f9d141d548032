// Package filter holds the pure transforms between a cached collection and
// what a table displays: substring search and enum gating, plus the derived
// counts behind the overview widgets. Nothing here mutates or reorders its
// input; display order is the collection's order.
package filter

import (
	"strings"

	"github.com/maintdesk/maintdesk/internal/client/models"
)

// All is the sentinel that disables an enum gate.
const All = "all"

// TicketFilter is the ticket table's filter state. Zero value plus
// Status/Priority set to All matches everything.
type TicketFilter struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// DefaultTicketFilter matches the whole collection.
func DefaultTicketFilter() TicketFilter {
	return TicketFilter{Status: All, Priority: All}
}

// Active counts the filter dimensions currently narrowing the view.
func (f TicketFilter) Active() int {
	n := 0
	if f.Search != "" {
		n++
	}
	if f.Status != All && f.Status != "" {
		n++
	}
	if f.Priority != All && f.Priority != "" {
		n++
	}
	return n
}

// Tickets returns the subset of items matching f, in the input order. The
// search matches case-insensitively against problem, detail, machine
// identifier, and ticket id.
func Tickets(items []models.Ticket, f TicketFilter) []models.Ticket {
	out := make([]models.Ticket, 0, len(items))
	for _, t := range items {
		if !matchesEnum(string(t.Status), f.Status) {
			continue
		}
		if !matchesEnum(string(t.Priority), f.Priority) {
			continue
		}
		if !matchesSearch(f.Search, t.Problem, t.ProblemDetail, t.ProductID, t.MachineLabel(), t.ID) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// MachineFilter is the machine inventory's filter state.
type MachineFilter struct {
	Search string `json:"search"`
}

// Machines filters by substring over name, product id, and id.
func Machines(items []models.Machine, f MachineFilter) []models.Machine {
	out := make([]models.Machine, 0, len(items))
	for _, m := range items {
		if !matchesSearch(f.Search, m.Name, m.ProductID, m.ID) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Verification gate values for UserFilter.
const (
	VerifiedAny  = All
	VerifiedOnly = "verified"
	VerifiedNot  = "unverified"
)

// UserFilter is the user-management table's filter state.
type UserFilter struct {
	Search   string `json:"search"`
	Role     string `json:"role"`
	Verified string `json:"verified"`
}

func DefaultUserFilter() UserFilter {
	return UserFilter{Role: All, Verified: VerifiedAny}
}

// Users filters by substring over name/username/email plus exact role and
// verification gates.
func Users(items []models.User, f UserFilter) []models.User {
	out := make([]models.User, 0, len(items))
	for _, u := range items {
		if !matchesEnum(string(u.Role), f.Role) {
			continue
		}
		switch f.Verified {
		case VerifiedOnly:
			if !u.IsVerified {
				continue
			}
		case VerifiedNot:
			if u.IsVerified {
				continue
			}
		}
		if !matchesSearch(f.Search, u.Name, u.Username, u.Email) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// matchesEnum applies an exact-match gate unless the filter value is empty
// or the All sentinel.
func matchesEnum(value, want string) bool {
	if want == "" || want == All {
		return true
	}
	return value == want
}

// matchesSearch reports whether any field contains the query,
// case-insensitively. An empty query matches.
func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
