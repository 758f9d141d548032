package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/maintdesk/maintdesk/internal/client/filter"
)

// ListUsers fetches the account list and renders the filtered view with a
// verification summary on top. The backend rejects this for non-admins.
func (a *App) ListUsers(ctx context.Context) error {
	if err := a.users.Fetch(ctx); err != nil {
		return err
	}

	counts := filter.CountUsers(a.users.Items())
	fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("%d accounts, %d verified, %d pending", counts.Total, counts.Verified, counts.Pending)))

	items := filter.Users(a.users.Items(), a.userFilter)
	rows := make([][]string, 0, len(items))
	for _, u := range items {
		verified := "pending"
		if u.IsVerified {
			verified = "verified"
		}
		rows = append(rows, []string{
			u.ID,
			u.Name,
			u.Username,
			u.Email,
			string(u.Role),
			verified,
		})
	}
	renderTable(a.out, []string{"ID", "NAME", "USERNAME", "EMAIL", "ROLE", "STATUS"}, rows)
	return nil
}

// UserCommand handles the account subcommands: verify, unverify, del, filter.
func (a *App) UserCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: user verify|unverify|del <id> or user filter")
	}
	switch args[0] {
	case "verify":
		if len(args) < 2 {
			return fmt.Errorf("usage: user verify <id>")
		}
		if err := a.users.Verify(ctx, args[1]); err != nil {
			return fmt.Errorf("verifying user: %w", err)
		}
		fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("User %s verified.", args[1])))
		return nil

	case "unverify":
		if len(args) < 2 {
			return fmt.Errorf("usage: user unverify <id>")
		}
		if err := a.users.Unverify(ctx, args[1]); err != nil {
			return fmt.Errorf("unverifying user: %w", err)
		}
		fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("User %s set back to pending.", args[1])))
		return nil

	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: user del <id>")
		}
		if err := a.users.Delete(ctx, args[1]); err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("User %s deleted.", args[1])))
		return nil

	case "filter":
		return a.filterUsers()

	default:
		return fmt.Errorf("unknown user subcommand: %s", args[0])
	}
}

func (a *App) filterUsers() error {
	search, err := GetSimpleText(a.reader, fmt.Sprintf("Search [%s]", a.userFilter.Search), a.out)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, fmt.Sprintf("Role [%s] (ADMIN/ENGINEER/all)", a.userFilter.Role), a.out)
	if err != nil {
		return err
	}
	verified, err := GetSimpleText(a.reader, fmt.Sprintf("Verification [%s] (verified/unverified/all)", a.userFilter.Verified), a.out)
	if err != nil {
		return err
	}

	if search != "" {
		a.userFilter.Search = search
	}
	if role != "" {
		if strings.EqualFold(role, filter.All) {
			a.userFilter.Role = filter.All
		} else {
			a.userFilter.Role = strings.ToUpper(role)
		}
	}
	if verified != "" {
		switch strings.ToLower(verified) {
		case filter.VerifiedOnly, filter.VerifiedNot, filter.VerifiedAny:
			a.userFilter.Verified = strings.ToLower(verified)
		default:
			return fmt.Errorf("verification must be verified, unverified, or all")
		}
	}
	return nil
}
