package cli

import (
	"context"
	"fmt"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/validation"
	"github.com/maintdesk/maintdesk/internal/shared"
)

// Login prompts for credentials and opens a session. The password never
// echoes.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Logged in as %s.", a.session.User().Name)))
	return nil
}

// Register creates an account and routes back to login; new accounts wait
// for admin verification.
func (a *App) Register(ctx context.Context) error {
	form := validation.RegisterForm{}
	var err error

	if form.Name, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if form.Username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	form.Password = string(password)
	shared.WipeByteArray(password)

	if err := validation.Check(form); err != nil {
		return err
	}

	user, err := a.session.Register(ctx, api.RegisterInput{
		Name:     form.Name,
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Account %s created. An admin needs to verify it before you can log in.", user.Username)))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current session's user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	verified := "pending verification"
	if u.IsVerified {
		verified = "verified"
	}
	fmt.Fprintf(a.out, "%s <%s> %s, %s\n", u.Name, u.Email, u.Role, verified)
	return nil
}
