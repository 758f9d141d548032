package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Overview(ctx context.Context) error

	ListTickets(ctx context.Context) error
	TicketCommand(ctx context.Context, args []string) error

	ListMachines(ctx context.Context) error
	MachineCommand(ctx context.Context, args []string) error

	ListStatuses(ctx context.Context) error
	StatusCommand(ctx context.Context, args []string) error

	ListUsers(ctx context.Context) error
	UserCommand(ctx context.Context, args []string) error

	Chat(ctx context.Context) error
	Export(ctx context.Context, args []string) error
}

const loggedInHelp = `Available commands:
  overview                      dashboard counters
  tickets                       list tickets (current filter applies)
  ticket add|edit|del|filter    manage tickets
  machines                      list machines
  machine view <id>             machine detail with latest reading and tickets
  machine add|edit|del|filter   manage machines
  statuses                      list telemetry readings
  status add|latest <machine>   record / inspect telemetry
  users                         list accounts (admin)
  user verify|unverify|del <id> manage accounts (admin)
  user filter                   set the account filter
  chat                          talk to the assistant
  export <collection> [file]    write a CSV export
  whoami  logout  exit`

const loggedOutHelp = `Available commands: login, register, exit`

// runREPL reads commands line by line and dispatches them until EOF or
// exit. Handlers report their own errors; the loop only prints them, so a
// failing command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "maintdesk %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, loggedInHelp)
			} else {
				fmt.Fprintln(w, loggedOutHelp)
			}

		case "login":
			err = a.Login(ctx)
		case "register":
			err = a.Register(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)

		case "overview":
			err = a.Overview(ctx)

		case "tickets":
			err = a.ListTickets(ctx)
		case "ticket":
			err = a.TicketCommand(ctx, args)

		case "machines":
			err = a.ListMachines(ctx)
		case "machine":
			err = a.MachineCommand(ctx, args)

		case "statuses":
			err = a.ListStatuses(ctx)
		case "status":
			err = a.StatusCommand(ctx, args)

		case "users":
			err = a.ListUsers(ctx)
		case "user":
			err = a.UserCommand(ctx, args)

		case "chat":
			err = a.Chat(ctx)

		case "export":
			err = a.Export(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, errStyle.Render(err.Error()))
		}
	}
}
