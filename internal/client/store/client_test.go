package store

import (
	"context"
	"io"
	"log/slog"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for store tests. Only the methods a test
// configures are expected to be called; the embedded nil interface panics on
// anything else, which is the point.
type fakeClient struct {
	api.Client

	TicketsRet []models.Ticket
	TicketsErr error
	CreateRet  *models.Ticket
	CreateErr  error
	UpdateRet  *models.Ticket
	UpdateErr  error
	DeleteErr  error

	MachinesRet []models.Machine
	MachinesErr error

	StatusesRet      []models.MachineStatus
	StatusesErr      error
	ByMachineRet     []models.MachineStatus
	ByMachineErr     error
	CreateStatusErr  error
	statusFetchCalls int
	UpdateStatusRet  *models.MachineStatus
	UpdateStatusErr  error
	DeleteStatusErr  error

	UsersRet    []models.User
	UsersErr    error
	VerifyErr   error
	UnverifyErr error

	MessagesRet []models.ChatMessage
	MessagesErr error
	SendRet     *models.ChatMessage
	SendErr     error
	ClearErr    error
}

func (f *fakeClient) Tickets(ctx context.Context) ([]models.Ticket, error) {
	return f.TicketsRet, f.TicketsErr
}

func (f *fakeClient) CreateTicket(ctx context.Context, input api.TicketInput) (*models.Ticket, error) {
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateTicket(ctx context.Context, id string, input api.TicketInput) (*models.Ticket, error) {
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteTicket(ctx context.Context, id string) error {
	return f.DeleteErr
}

func (f *fakeClient) Machines(ctx context.Context) ([]models.Machine, error) {
	return f.MachinesRet, f.MachinesErr
}

func (f *fakeClient) MachineStatuses(ctx context.Context) ([]models.MachineStatus, error) {
	f.statusFetchCalls++
	return f.StatusesRet, f.StatusesErr
}

func (f *fakeClient) MachineStatusesByMachine(ctx context.Context, machineID string) ([]models.MachineStatus, error) {
	return f.ByMachineRet, f.ByMachineErr
}

func (f *fakeClient) CreateMachineStatus(ctx context.Context, input api.StatusInput) error {
	return f.CreateStatusErr
}

func (f *fakeClient) UpdateMachineStatus(ctx context.Context, id string, input api.StatusInput) (*models.MachineStatus, error) {
	return f.UpdateStatusRet, f.UpdateStatusErr
}

func (f *fakeClient) DeleteMachineStatus(ctx context.Context, id string) error {
	return f.DeleteStatusErr
}

func (f *fakeClient) Users(ctx context.Context) ([]models.User, error) {
	return f.UsersRet, f.UsersErr
}

func (f *fakeClient) VerifyUser(ctx context.Context, id string) error {
	return f.VerifyErr
}

func (f *fakeClient) UnverifyUser(ctx context.Context, id string) error {
	return f.UnverifyErr
}

func (f *fakeClient) ChatMessages(ctx context.Context) ([]models.ChatMessage, error) {
	return f.MessagesRet, f.MessagesErr
}

func (f *fakeClient) SendChatMessage(ctx context.Context, content string) (*models.ChatMessage, error) {
	return f.SendRet, f.SendErr
}

func (f *fakeClient) ClearChatMessages(ctx context.Context) error {
	return f.ClearErr
}
