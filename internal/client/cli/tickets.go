package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/filter"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/client/validation"
)

// ListTickets fetches the collection and renders the filtered view.
func (a *App) ListTickets(ctx context.Context) error {
	if err := a.tickets.Fetch(ctx); err != nil {
		return err
	}

	items := filter.Tickets(a.tickets.Items(), a.ticketFilter)
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		rows = append(rows, []string{
			t.ID,
			t.MachineLabel(),
			truncate(t.Problem, 40),
			string(t.Priority),
			string(t.Status),
			t.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	renderTable(a.out, []string{"ID", "MACHINE", "PROBLEM", "PRIORITY", "STATUS", "CREATED"}, rows)

	if n := a.ticketFilter.Active(); n > 0 {
		fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("%d of %d tickets shown (%d filters active)", len(items), a.tickets.Len(), n)))
	}
	return nil
}

// TicketCommand handles the ticket subcommands: add, edit, del, filter.
func (a *App) TicketCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ticket add|edit|del|filter")
	}
	switch args[0] {
	case "add":
		return a.addTicket(ctx)
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: ticket edit <id>")
		}
		return a.editTicket(ctx, args[1])
	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: ticket del <id>")
		}
		return a.deleteTicket(ctx, args[1])
	case "filter":
		return a.filterTickets()
	default:
		return fmt.Errorf("unknown ticket subcommand: %s", args[0])
	}
}

func (a *App) addTicket(ctx context.Context) error {
	form := validation.TicketForm{}
	var err error

	if form.Machine, err = GetSimpleText(a.reader, "Machine product id", a.out); err != nil {
		return err
	}
	priority, err := GetSimpleText(a.reader, "Priority (LOW/MEDIUM/HIGH)", a.out)
	if err != nil {
		return err
	}
	form.Priority = strings.ToUpper(priority)
	if form.Problem, err = GetSimpleText(a.reader, "Problem summary", a.out); err != nil {
		return err
	}
	if form.Detail, err = GetMultiline(a.reader, "Problem detail", a.out); err != nil {
		return err
	}

	if err := validation.Check(form); err != nil {
		return err
	}

	ticket, err := a.tickets.Create(ctx, api.TicketInput{
		ProductID:     form.Machine,
		Priority:      models.TicketPriority(form.Priority),
		Status:        models.TicketOpen,
		Problem:       form.Problem,
		ProblemDetail: form.Detail,
		IsPublished:   true,
	})
	if err != nil {
		return fmt.Errorf("creating ticket: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Ticket %s created.", ticket.ID)))
	return nil
}

func (a *App) editTicket(ctx context.Context, id string) error {
	current, ok := a.tickets.Get(id)
	if !ok {
		return fmt.Errorf("no cached ticket %s; run 'tickets' first", id)
	}

	status, err := GetSimpleText(a.reader, fmt.Sprintf("Status [%s] (OPEN/IN_PROGRESS/RESOLVED/CLOSED)", current.Status), a.out)
	if err != nil {
		return err
	}
	if status == "" {
		status = string(current.Status)
	}
	priority, err := GetSimpleText(a.reader, fmt.Sprintf("Priority [%s]", current.Priority), a.out)
	if err != nil {
		return err
	}
	if priority == "" {
		priority = string(current.Priority)
	}

	updated, err := a.tickets.Update(ctx, id, api.TicketInput{
		ProductID:     current.ProductID,
		Priority:      models.TicketPriority(strings.ToUpper(priority)),
		Status:        models.TicketStatus(strings.ToUpper(status)),
		Problem:       current.Problem,
		ProblemDetail: current.ProblemDetail,
		IsPublished:   current.IsPublished,
	})
	if err != nil {
		return fmt.Errorf("updating ticket: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Ticket %s is now %s/%s.", updated.ID, updated.Status, updated.Priority)))
	return nil
}

func (a *App) deleteTicket(ctx context.Context, id string) error {
	if err := a.tickets.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting ticket: %w", err)
	}
	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Ticket %s deleted.", id)))
	return nil
}

// filterTickets edits the persistent ticket filter. Empty answers keep the
// current value; "all" clears an enum gate.
func (a *App) filterTickets() error {
	search, err := GetSimpleText(a.reader, fmt.Sprintf("Search [%s]", a.ticketFilter.Search), a.out)
	if err != nil {
		return err
	}
	status, err := GetSimpleText(a.reader, fmt.Sprintf("Status [%s]", a.ticketFilter.Status), a.out)
	if err != nil {
		return err
	}
	priority, err := GetSimpleText(a.reader, fmt.Sprintf("Priority [%s]", a.ticketFilter.Priority), a.out)
	if err != nil {
		return err
	}

	if search != "" {
		a.ticketFilter.Search = search
	}
	if status != "" {
		a.ticketFilter.Status = strings.ToUpper(status)
		if strings.EqualFold(status, filter.All) {
			a.ticketFilter.Status = filter.All
		}
	}
	if priority != "" {
		a.ticketFilter.Priority = strings.ToUpper(priority)
		if strings.EqualFold(priority, filter.All) {
			a.ticketFilter.Priority = filter.All
		}
	}
	return nil
}
