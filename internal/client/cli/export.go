package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/maintdesk/maintdesk/internal/client/export"
	"github.com/maintdesk/maintdesk/internal/client/filter"
	"github.com/maintdesk/maintdesk/internal/filex"
)

// Export writes a collection to a CSV file. The current filter applies, so
// what lands in the file is what the corresponding list command shows.
// Without an explicit filename the file goes into an exports/ directory next
// to the binary, named after the collection and the date.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: export tickets|machines|users|statuses [file]")
	}
	collection := args[0]

	var filename string
	if len(args) > 1 {
		filename = args[1]
	} else {
		dir, err := filex.EnsureSubDir("exports")
		if err != nil {
			return err
		}
		filename = filepath.Join(dir, export.Filename(collection, time.Now()))
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	var n int
	switch collection {
	case "tickets":
		if err := a.tickets.Fetch(ctx); err != nil {
			return err
		}
		items := filter.Tickets(a.tickets.Items(), a.ticketFilter)
		n = len(items)
		err = export.Tickets(f, items)
	case "machines":
		if err := a.machines.Fetch(ctx); err != nil {
			return err
		}
		items := filter.Machines(a.machines.Items(), a.machineFilter)
		n = len(items)
		err = export.Machines(f, items)
	case "users":
		if err := a.users.Fetch(ctx); err != nil {
			return err
		}
		items := filter.Users(a.users.Items(), a.userFilter)
		n = len(items)
		err = export.Users(f, items)
	case "statuses":
		if err := a.statuses.Fetch(ctx); err != nil {
			return err
		}
		items := a.statuses.Items()
		n = len(items)
		err = export.Statuses(f, items)
	default:
		return fmt.Errorf("unknown collection: %s", collection)
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", collection, err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Wrote %d %s to %s.", n, collection, filename)))
	return nil
}
