package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/diradmin/internal/client/client"
	"github.com/dmitrijs2005/diradmin/internal/client/flows"
	"github.com/dmitrijs2005/diradmin/internal/client/table"
)

// List reloads the current server page and prints it.
func (a *App) List(ctx context.Context) error {
	a.nav.Navigate(flows.RouteUsers)
	if err := a.users.Load(ctx); err != nil {
		a.reloginHint(err)
		return err
	}
	renderUsers(a.out, a.users)
	return nil
}

// Page moves to the 1-based server page named by arg.
func (a *App) Page(ctx context.Context, arg string) error {
	n, err := positive(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return err
	}
	if n > a.users.PageCount() {
		fmt.Fprintf(a.out, "There are only %d pages\n", a.users.PageCount())
		return nil
	}
	return a.changePage(ctx, n-1, a.users.PageSize())
}

// Size changes the page size, keeping the first row of the current page
// in view.
func (a *App) Size(ctx context.Context, arg string) error {
	n, err := positive(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: size <n>")
		return err
	}
	first := a.users.PageIndex() * a.users.PageSize()
	return a.changePage(ctx, first/n, n)
}

func (a *App) Next(ctx context.Context) error {
	if a.users.PageIndex()+1 >= a.users.PageCount() {
		fmt.Fprintln(a.out, "Already on the last page")
		return nil
	}
	return a.changePage(ctx, a.users.PageIndex()+1, a.users.PageSize())
}

func (a *App) Prev(ctx context.Context) error {
	if a.users.PageIndex() == 0 {
		fmt.Fprintln(a.out, "Already on the first page")
		return nil
	}
	return a.changePage(ctx, a.users.PageIndex()-1, a.users.PageSize())
}

func (a *App) changePage(ctx context.Context, index, size int) error {
	if err := a.users.PageChange(ctx, index, size); err != nil {
		a.reloginHint(err)
		return err
	}
	renderUsers(a.out, a.users)
	return nil
}

// Filter narrows the loaded page to rows containing text; empty text
// clears the filter.
func (a *App) Filter(ctx context.Context, text string) error {
	if err := a.users.ApplyFilter(ctx, text); err != nil {
		a.reloginHint(err)
		return err
	}
	renderUsers(a.out, a.users)
	return nil
}

// Sort orders the loaded page by column.
func (a *App) Sort(ctx context.Context, column, dir string) error {
	d, ok := table.ParseDirection(dir)
	if !ok {
		fmt.Fprintln(a.out, "Usage: sort <column> [asc|desc|none]")
		return nil
	}
	if !a.users.SortBy(column, d) {
		fmt.Fprintf(a.out, "Unknown column %q, expected one of: %s\n", column, strings.Join(a.users.Columns(), ", "))
		return nil
	}
	renderUsers(a.out, a.users)
	return nil
}

// Create runs the user dialog for a new record.
func (a *App) Create(ctx context.Context) error {
	if err := a.users.OpenCreate(ctx); err != nil {
		return err
	}
	renderUsers(a.out, a.users)
	return nil
}

// Edit runs the user dialog on the record named by arg.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return err
	}
	if err := a.users.OpenEdit(ctx, id); err != nil {
		a.reloginHint(err)
		return err
	}
	renderUsers(a.out, a.users)
	return nil
}

// Show prints the profile of the record named by arg.
func (a *App) Show(ctx context.Context, arg string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64); err != nil {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return err
	}
	a.nav.Navigate(flows.RouteProfile)
	if err := a.profile.Load(ctx, arg); err != nil {
		fmt.Fprintf(a.out, "[%s] %s\n", flows.NotifyError, errorText(err))
		a.reloginHint(err)
		return err
	}
	renderProfile(a.out, a.profile.User(), a.profile.Details(), a.profile.Image(ctx))
	return nil
}

func (a *App) reloginHint(err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		fmt.Fprintln(a.out, "The session is no longer accepted, use 'login' to sign in again")
	}
}

// errorText prefers the backend-provided message over the error text.
func errorText(err error) string {
	if msg := client.MessageOf(err); msg != "" {
		return msg
	}
	return err.Error()
}

func positive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
