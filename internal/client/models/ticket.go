package models

import "time"

type TicketPriority string

const (
	PriorityLow    TicketPriority = "LOW"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityHigh   TicketPriority = "HIGH"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

// Ticket is a maintenance request raised against a machine. The machine is
// referenced by its product id; the backend may additionally embed the full
// machine record.
type Ticket struct {
	ID            string         `json:"id"`
	ProductID     string         `json:"productId"`
	Machine       *Machine       `json:"machine,omitempty"`
	Priority      TicketPriority `json:"priority"`
	Status        TicketStatus   `json:"status"`
	Problem       string         `json:"problem"`
	ProblemDetail string         `json:"problemDetail"`
	IsPublished   bool           `json:"isPublished"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (t Ticket) EntityID() string { return t.ID }

// MachineLabel returns the best available machine identifier for display:
// the embedded machine name when present, otherwise the product id.
func (t Ticket) MachineLabel() string {
	if t.Machine != nil && t.Machine.Name != "" {
		return t.Machine.Name
	}
	return t.ProductID
}
