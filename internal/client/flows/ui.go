// Package flows implements the console's screens as UI-independent state
// machines: login, the user list with its create/edit dialog, and the user
// profile. Flows talk to the backend through the client interfaces and to
// the user through the small capability interfaces declared here, so any
// front end (the terminal REPL, tests) can drive them.
package flows

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/diradmin/internal/client/models"
)

// ErrCancelled is returned by a Dialog that was closed without a result.
var ErrCancelled = errors.New("dialog cancelled")

// Routes a Navigator understands.
const (
	RouteLogin   = "/login"
	RouteUsers   = "/users"
	RouteProfile = "/users/profile"
)

// NotifyKind is the severity of a notification.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
	NotifyInfo    NotifyKind = "info"
	NotifyWarning NotifyKind = "warning"
)

// Notifier shows a transient message.
type Notifier interface {
	Notify(kind NotifyKind, message string)
}

// Dialog presents an edit dialog and blocks until it closes. It returns the
// submitted values, or ErrCancelled.
type Dialog interface {
	Confirm(ctx context.Context, dlg *UserDialog) (models.UserInput, error)
}

// Navigator switches the active view.
type Navigator interface {
	Navigate(route string)
}
