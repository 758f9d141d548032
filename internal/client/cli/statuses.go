package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/client/validation"
)

// ListStatuses fetches and renders the telemetry collection across all
// machines, most recent first.
func (a *App) ListStatuses(ctx context.Context) error {
	if err := a.statuses.Fetch(ctx); err != nil {
		return err
	}

	items := a.statuses.Items()
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		state := "OK"
		if s.Failing() {
			state = "FAIL"
			if s.FailureType != "" {
				state = s.FailureType
			}
		}
		rows = append(rows, []string{
			s.ID,
			s.MachineID,
			string(s.Type),
			fmt.Sprintf("%.1f", s.AirTemperature),
			fmt.Sprintf("%.1f", s.ProcessTemperature),
			fmt.Sprintf("%d", s.RotationalSpeed),
			fmt.Sprintf("%.1f", s.Torque),
			fmt.Sprintf("%d", s.ToolWear),
			state,
			s.RecordedAt.Format("2006-01-02 15:04"),
		})
	}
	renderTable(a.out, []string{"ID", "MACHINE", "TYPE", "AIR °K", "PROC °K", "RPM", "TORQUE", "WEAR", "STATE", "RECORDED"}, rows)
	return nil
}

// StatusCommand handles the status subcommands: add, latest, edit, del.
func (a *App) StatusCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: status add|latest <machine>|edit <id>|del <id>")
	}
	switch args[0] {
	case "add":
		return a.addStatus(ctx)
	case "latest":
		if len(args) < 2 {
			return fmt.Errorf("usage: status latest <machine id>")
		}
		return a.latestStatus(ctx, args[1])
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: status edit <id>")
		}
		return a.editStatus(ctx, args[1])
	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: status del <id>")
		}
		return a.deleteStatus(ctx, args[1])
	default:
		return fmt.Errorf("unknown status subcommand: %s", args[0])
	}
}

// promptStatusForm collects a full reading. Defaults come from an existing
// reading on edit, zero values on add.
func (a *App) promptStatusForm(form *validation.StatusForm) error {
	var err error

	typ, err := GetSimpleText(a.reader, fmt.Sprintf("Type L/M/H [%s]", form.Type), a.out)
	if err != nil {
		return err
	}
	if typ != "" {
		form.Type = strings.ToUpper(typ)
	}
	if form.AirTemperature, err = GetFloat(a.reader, "Air temperature (K)", a.out); err != nil {
		return err
	}
	if form.ProcessTemperature, err = GetFloat(a.reader, "Process temperature (K)", a.out); err != nil {
		return err
	}
	if form.RotationalSpeed, err = GetInt(a.reader, "Rotational speed (rpm)", a.out); err != nil {
		return err
	}
	if form.Torque, err = GetFloat(a.reader, "Torque (Nm)", a.out); err != nil {
		return err
	}
	if form.ToolWear, err = GetInt(a.reader, "Tool wear (min)", a.out); err != nil {
		return err
	}
	if form.Target, err = GetInt(a.reader, "Target (0 normal, 1 failure)", a.out); err != nil {
		return err
	}
	if form.Target == models.TargetFailure {
		if form.FailureType, err = GetSimpleText(a.reader, "Failure type", a.out); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) addStatus(ctx context.Context) error {
	form := validation.StatusForm{}
	var err error

	if form.MachineID, err = GetSimpleText(a.reader, "Machine id", a.out); err != nil {
		return err
	}
	if err := a.promptStatusForm(&form); err != nil {
		return err
	}
	if err := validation.Check(form); err != nil {
		return err
	}

	err = a.statuses.Create(ctx, api.StatusInput{
		MachineID:          form.MachineID,
		Type:               models.StatusType(form.Type),
		AirTemperature:     form.AirTemperature,
		ProcessTemperature: form.ProcessTemperature,
		RotationalSpeed:    form.RotationalSpeed,
		Torque:             form.Torque,
		ToolWear:           form.ToolWear,
		Target:             form.Target,
		FailureType:        form.FailureType,
	})
	if err != nil {
		return fmt.Errorf("recording status: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render("Reading recorded."))
	return nil
}

// latestStatus shows one machine's most recent reading as a card.
func (a *App) latestStatus(ctx context.Context, machineID string) error {
	latest, err := a.statuses.LatestByMachine(ctx, machineID)
	if err != nil {
		return fmt.Errorf("fetching latest status: %w", err)
	}
	if latest == nil {
		fmt.Fprintln(a.out, dimStyle.Render("No readings for this machine yet."))
		return nil
	}

	state := "healthy"
	if latest.Failing() {
		state = "failing"
		if latest.FailureType != "" {
			state = "failing: " + latest.FailureType
		}
	}
	renderCards(a.out, [][2]string{
		{"State", state},
		{"Air temp", fmt.Sprintf("%.1f K", latest.AirTemperature)},
		{"Process temp", fmt.Sprintf("%.1f K", latest.ProcessTemperature)},
		{"Speed", fmt.Sprintf("%d rpm", latest.RotationalSpeed)},
		{"Torque", fmt.Sprintf("%.1f Nm", latest.Torque)},
		{"Tool wear", fmt.Sprintf("%d min", latest.ToolWear)},
	})
	fmt.Fprintln(a.out, dimStyle.Render("Recorded "+latest.RecordedAt.Format("2006-01-02 15:04:05")))
	return nil
}

func (a *App) editStatus(ctx context.Context, id string) error {
	current, ok := a.statuses.Get(id)
	if !ok {
		return fmt.Errorf("no cached reading %s; run 'statuses' first", id)
	}

	form := validation.StatusForm{
		MachineID: current.MachineID,
		Type:      string(current.Type),
	}
	if err := a.promptStatusForm(&form); err != nil {
		return err
	}
	if err := validation.Check(form); err != nil {
		return err
	}

	updated, err := a.statuses.Update(ctx, id, api.StatusInput{
		MachineID:          form.MachineID,
		Type:               models.StatusType(form.Type),
		AirTemperature:     form.AirTemperature,
		ProcessTemperature: form.ProcessTemperature,
		RotationalSpeed:    form.RotationalSpeed,
		Torque:             form.Torque,
		ToolWear:           form.ToolWear,
		Target:             form.Target,
		FailureType:        form.FailureType,
	})
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Reading %s updated.", updated.ID)))
	return nil
}

func (a *App) deleteStatus(ctx context.Context, id string) error {
	if err := a.statuses.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting status: %w", err)
	}
	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Reading %s deleted.", id)))
	return nil
}
