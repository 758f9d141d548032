// Package api wraps the maintenance backend's REST surface. It is the only
// place that knows the wire envelope {message, data, error}; everything
// decoded here is a typed model, and every failure is one of the sentinel
// errors or an *Error carrying the server's message.
//
// The split contract the stores rely on: read results degrade gracefully
// (the calling store records the error and keeps prior data visible), while
// write errors must be handled by the caller. The api package itself treats
// both uniformly as returned errors.
package api

import (
	"context"

	"github.com/maintdesk/maintdesk/internal/client/models"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token with a nil error means "not logged in"; the request is then
// sent without an Authorization header and the backend answers 401.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// RegisterInput is the payload for POST /auth/register.
type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TicketInput is the payload for creating or updating a ticket.
type TicketInput struct {
	ProductID     string                `json:"productId"`
	Priority      models.TicketPriority `json:"priority"`
	Status        models.TicketStatus   `json:"status"`
	Problem       string                `json:"problem"`
	ProblemDetail string                `json:"problemDetail"`
	IsPublished   bool                  `json:"isPublished"`
}

// MachineInput is the payload for creating or updating a machine.
type MachineInput struct {
	Name      string `json:"name"`
	ProductID string `json:"productId"`
}

// StatusInput is the payload for creating or updating a telemetry reading.
type StatusInput struct {
	MachineID          string            `json:"machineId"`
	Type               models.StatusType `json:"type"`
	AirTemperature     float64           `json:"airTemperature"`
	ProcessTemperature float64           `json:"processTemperature"`
	RotationalSpeed    int               `json:"rotationalSpeed"`
	Torque             float64           `json:"torque"`
	ToolWear           int               `json:"toolWear"`
	Target             int               `json:"target"`
	FailureType        string            `json:"failureType,omitempty"`
}

// Client is the backend surface the rest of the application programs
// against. The concrete implementation is HTTPClient; tests substitute
// lightweight fakes.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)

	// Tickets.
	Tickets(ctx context.Context) ([]models.Ticket, error)
	TicketsByMachine(ctx context.Context, machineID string) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, input TicketInput) (*models.Ticket, error)
	UpdateTicket(ctx context.Context, id string, input TicketInput) (*models.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error

	// Machines.
	Machines(ctx context.Context) ([]models.Machine, error)
	CreateMachine(ctx context.Context, input MachineInput) (*models.Machine, error)
	UpdateMachine(ctx context.Context, id string, input MachineInput) (*models.Machine, error)
	DeleteMachine(ctx context.Context, id string) error

	// Telemetry. Creation returns no entity body; the store refetches.
	MachineStatuses(ctx context.Context) ([]models.MachineStatus, error)
	MachineStatusesByMachine(ctx context.Context, machineID string) ([]models.MachineStatus, error)
	CreateMachineStatus(ctx context.Context, input StatusInput) error
	UpdateMachineStatus(ctx context.Context, id string, input StatusInput) (*models.MachineStatus, error)
	DeleteMachineStatus(ctx context.Context, id string) error

	// User management (admin).
	Users(ctx context.Context) ([]models.User, error)
	VerifyUser(ctx context.Context, id string) error
	UnverifyUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error

	// Dashboard.
	Overview(ctx context.Context) (*models.Overview, error)

	// Assistant chat.
	ChatMessages(ctx context.Context) ([]models.ChatMessage, error)
	SendChatMessage(ctx context.Context, content string) (*models.ChatMessage, error)
	ClearChatMessages(ctx context.Context) error
	DeleteChatMessage(ctx context.Context, id string) error
}
