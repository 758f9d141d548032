package cli

import (
	"context"
	"fmt"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/filter"
	"github.com/maintdesk/maintdesk/internal/client/validation"
)

// ListMachines fetches the inventory and renders the filtered view.
func (a *App) ListMachines(ctx context.Context) error {
	if err := a.machines.Fetch(ctx); err != nil {
		return err
	}

	items := filter.Machines(a.machines.Items(), a.machineFilter)
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			m.ID,
			m.ProductID,
			m.Name,
			m.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	renderTable(a.out, []string{"ID", "PRODUCT ID", "NAME", "ADDED"}, rows)

	if a.machineFilter.Search != "" {
		fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("%d of %d machines match %q", len(items), a.machines.Len(), a.machineFilter.Search)))
	}
	return nil
}

// MachineCommand handles the machine subcommands: view, add, edit, del,
// filter.
func (a *App) MachineCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: machine view|add|edit|del|filter")
	}
	switch args[0] {
	case "view":
		if len(args) < 2 {
			return fmt.Errorf("usage: machine view <id>")
		}
		return a.viewMachine(ctx, args[1])
	case "add":
		return a.addMachine(ctx)
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: machine edit <id>")
		}
		return a.editMachine(ctx, args[1])
	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: machine del <id>")
		}
		return a.deleteMachine(ctx, args[1])
	case "filter":
		search, err := GetSimpleText(a.reader, fmt.Sprintf("Search [%s]", a.machineFilter.Search), a.out)
		if err != nil {
			return err
		}
		a.machineFilter.Search = search
		return nil
	default:
		return fmt.Errorf("unknown machine subcommand: %s", args[0])
	}
}

// viewMachine is the machine detail view: the machine itself, its most
// recent reading, and the tickets raised against it.
func (a *App) viewMachine(ctx context.Context, id string) error {
	machine, ok := a.machines.Get(id)
	if !ok {
		if err := a.machines.Fetch(ctx); err != nil {
			return err
		}
		if machine, ok = a.machines.Get(id); !ok {
			return fmt.Errorf("no machine %s", id)
		}
	}

	fmt.Fprintln(a.out, headerStyle.Render(machine.Name))
	fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("%s, added %s", machine.ProductID, machine.CreatedAt.Format("2006-01-02"))))

	if err := a.latestStatus(ctx, id); err != nil {
		fmt.Fprintln(a.out, errStyle.Render(err.Error()))
	}

	tickets, err := a.tickets.ByMachine(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching machine tickets: %w", err)
	}
	if len(tickets) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No tickets for this machine."))
		return nil
	}
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			t.ID,
			truncate(t.Problem, 40),
			string(t.Priority),
			string(t.Status),
			t.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	renderTable(a.out, []string{"ID", "PROBLEM", "PRIORITY", "STATUS", "CREATED"}, rows)
	return nil
}

func (a *App) addMachine(ctx context.Context) error {
	form := validation.MachineForm{}
	var err error

	if form.Name, err = GetSimpleText(a.reader, "Machine name", a.out); err != nil {
		return err
	}
	if form.ProductID, err = GetSimpleText(a.reader, "Product id", a.out); err != nil {
		return err
	}

	if err := validation.Check(form); err != nil {
		return err
	}

	machine, err := a.machines.Create(ctx, api.MachineInput{
		Name:      form.Name,
		ProductID: form.ProductID,
	})
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Machine %s (%s) added.", machine.Name, machine.ProductID)))
	return nil
}

func (a *App) editMachine(ctx context.Context, id string) error {
	current, ok := a.machines.Get(id)
	if !ok {
		return fmt.Errorf("no cached machine %s; run 'machines' first", id)
	}

	form := validation.MachineForm{Name: current.Name, ProductID: current.ProductID}

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name [%s]", current.Name), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		form.Name = name
	}
	productID, err := GetSimpleText(a.reader, fmt.Sprintf("Product id [%s]", current.ProductID), a.out)
	if err != nil {
		return err
	}
	if productID != "" {
		form.ProductID = productID
	}

	if err := validation.Check(form); err != nil {
		return err
	}

	machine, err := a.machines.Update(ctx, id, api.MachineInput{
		Name:      form.Name,
		ProductID: form.ProductID,
	})
	if err != nil {
		return fmt.Errorf("updating machine: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Machine %s updated.", machine.ID)))
	return nil
}

func (a *App) deleteMachine(ctx context.Context, id string) error {
	if err := a.machines.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting machine: %w", err)
	}
	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Machine %s deleted.", id)))
	return nil
}
