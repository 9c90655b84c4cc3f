package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/diradmin/internal/client/flows"
	"github.com/dmitrijs2005/diradmin/internal/client/forms"
	"github.com/dmitrijs2005/diradmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the admin email and password and submits the login
// form. Rule violations are printed next to the field they belong to and
// nothing is sent. A granted login shows the user list.
//
// The password is masked unless TogglePassword switched masking off.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	var password string
	if a.login.PasswordHidden() {
		pw, err := getPassword(a.reader, "Enter password", a.out)
		if err != nil {
			return err
		}
		password = string(pw)
		common.WipeByteArray(pw)
	} else {
		password, err = getSimpleText(a.reader, "Enter password", a.out)
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	a.login.Form.Username = username
	a.login.Form.Password = password
	defer func() { a.login.Form.Password = "" }()

	if err := a.login.Submit(ctx); err != nil {
		if errors.Is(err, forms.ErrInvalidForm) {
			for _, f := range []string{forms.FieldUsername, forms.FieldPassword} {
				if msg := a.login.Form.ErrorMessage(f); msg != "" {
					fmt.Fprintln(a.out, msg)
				}
			}
		}
		return err
	}

	a.identifier = username
	if a.nav.Route() == flows.RouteUsers {
		return a.List(ctx)
	}
	return nil
}

// TogglePassword switches password echo for the login prompt.
func (a *App) TogglePassword(ctx context.Context) error {
	a.login.TogglePasswordVisibility()
	if a.login.PasswordHidden() {
		fmt.Fprintln(a.out, "Password input is hidden")
	} else {
		fmt.Fprintln(a.out, "Password input is visible")
	}
	return nil
}

// Logout forgets the stored token and the remembered account.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.identifier = ""
	a.nav.Navigate(flows.RouteLogin)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints what is known locally about the current login.
func (a *App) Whoami(ctx context.Context) error {
	acc, err := a.auth.Account(ctx)
	if err != nil {
		a.logger.Error(ctx, "reading account failed", "error", err)
		return err
	}
	renderAccount(a.out, acc)
	return nil
}
