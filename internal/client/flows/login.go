package flows

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/diradmin/internal/client/forms"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/logging"
)

// ErrLoginFailed is returned by Login.Submit when the backend call failed
// or did not grant the login.
var ErrLoginFailed = errors.New("login failed")

// InvalidCredentialsMessage is shown for every failed login.
const InvalidCredentialsMessage = "Invalid login credentials"

// Authenticator is the part of the auth service used by the login flow.
type Authenticator interface {
	Login(ctx context.Context, identifier, secret string) (*models.LoginResponse, error)
}

// Login is the sign-in screen.
type Login struct {
	Form forms.LoginForm

	auth         Authenticator
	notifier     Notifier
	nav          Navigator
	logger       logging.Logger
	hidePassword bool
}

func NewLogin(auth Authenticator, notifier Notifier, nav Navigator, logger logging.Logger) *Login {
	return &Login{auth: auth, notifier: notifier, nav: nav, logger: logger, hidePassword: true}
}

// TogglePasswordVisibility flips password masking. It affects display only.
func (l *Login) TogglePasswordVisibility() {
	l.hidePassword = !l.hidePassword
}

func (l *Login) PasswordHidden() bool {
	return l.hidePassword
}

// Submit sends the form when every rule passes; otherwise it returns
// forms.ErrInvalidForm without contacting the backend. A granted login
// navigates to the user list. Any other outcome shows the same generic
// notification and returns ErrLoginFailed. A done ctx is returned as is,
// without a notification.
func (l *Login) Submit(ctx context.Context) error {
	if !l.Form.Valid() {
		return forms.ErrInvalidForm
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	resp, err := l.auth.Login(ctx, l.Form.Username, l.Form.Password)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil || !resp.Succeeded() {
		if err != nil {
			l.logger.Warn(ctx, "login failed", "error", err)
		} else {
			l.logger.Info(ctx, "login refused", "status", resp.Status)
		}
		l.notifier.Notify(NotifyError, InvalidCredentialsMessage)
		return ErrLoginFailed
	}

	l.logger.Info(ctx, "logged in", "identifier", l.Form.Username)
	l.Form.Password = ""
	l.nav.Navigate(RouteUsers)
	return nil
}
