package cli

import (
	"context"
	"fmt"

	"github.com/maintdesk/maintdesk/internal/client/filter"
)

// Overview renders the server-side dashboard counters, plus a failure
// breakdown derived from the cached telemetry when it is available.
func (a *App) Overview(ctx context.Context) error {
	if err := a.overview.Fetch(ctx); err != nil {
		return err
	}
	o := a.overview.Overview()

	renderCards(a.out, [][2]string{
		{"Machines", fmt.Sprintf("%d", o.TotalMachines)},
		{"Healthy", fmt.Sprintf("%d", o.HealthyMachines)},
		{"Failing", fmt.Sprintf("%d", o.FailingMachines)},
		{"Tickets", fmt.Sprintf("%d", o.TotalTickets)},
		{"Open", fmt.Sprintf("%d", o.OpenTickets)},
		{"Resolved", fmt.Sprintf("%d", o.ResolvedTickets)},
		{"Users", fmt.Sprintf("%d", o.TotalUsers)},
		{"Verified", fmt.Sprintf("%d", o.VerifiedUsers)},
	})

	if a.statuses.Len() > 0 {
		health := filter.SummarizeHealth(a.statuses.Items())
		if len(health.Failures) > 0 {
			fmt.Fprintln(a.out, headerStyle.Render("Failure types"))
			for kind, n := range health.Failures {
				fmt.Fprintf(a.out, "  %s: %d\n", kind, n)
			}
		}
	}
	return nil
}
