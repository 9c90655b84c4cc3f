package flows

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/diradmin/internal/client/client"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/client/table"
	"github.com/dmitrijs2005/diradmin/internal/logging"
)

// State of the user list.
type State int

const (
	Idle State = iota
	Loading
	Loaded
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	}
	return "idle"
}

// Notification texts for successful writes.
const (
	UserCreatedMessage = "User created successfully"
	UserUpdatedMessage = "User updated successfully"
)

// DefaultPageSize is the server page size used when none is configured.
const DefaultPageSize = 10

// UserColumns are the list columns in display order.
var UserColumns = []table.Column[models.User]{
	{Name: "id", Value: func(u models.User) string { return strconv.FormatInt(u.ID, 10) }},
	{Name: "name", Value: func(u models.User) string { return u.Name }},
	{Name: "father_name", Value: func(u models.User) string { return u.FatherName }},
	{Name: "grandfather_name", Value: func(u models.User) string { return u.GrandfatherName }},
	{Name: "family_branch_name", Value: func(u models.User) string { return u.FamilyBranchName }},
	{Name: "tribe", Value: func(u models.User) string { return u.Tribe }},
	{Name: "image", Value: func(u models.User) string { return u.Image }},
	{Name: "gender", Value: func(u models.User) string { return u.Gender }},
	{Name: "date_of_birth", Value: func(u models.User) string { return u.DateOfBirth }},
	{Name: "country", Value: func(u models.User) string { return u.Country.DisplayName() }},
	{Name: "phone", Value: func(u models.User) string { return u.Phone }},
	{Name: "email", Value: func(u models.User) string { return u.Email }},
	{Name: "type", Value: func(u models.User) string { return u.Type }},
	{Name: "active", Value: func(u models.User) string { return u.Active.String() }},
	{Name: "is_premium", Value: func(u models.User) string { return u.IsPremium.String() }},
	{Name: "created_at", Value: func(u models.User) string { return u.CreatedAt }},
	{Name: "updated_at", Value: func(u models.User) string { return u.UpdatedAt }},
}

// UserList is the paginated directory view. Server pages are 0-indexed
// here and sent 1-indexed. Filter and sort apply to the loaded page only
// and survive reloads.
type UserList struct {
	api      client.DirectoryAPI
	notifier Notifier
	dialog   Dialog
	logger   logging.Logger
	opts     DialogOptions

	state     State
	pageIndex int
	pageSize  int
	total     int
	table     *table.DataSource[models.User]
}

func NewUserList(api client.DirectoryAPI, notifier Notifier, dialog Dialog, logger logging.Logger, pageSize int, opts DialogOptions) *UserList {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &UserList{
		api:      api,
		notifier: notifier,
		dialog:   dialog,
		logger:   logger,
		opts:     opts,
		pageSize: pageSize,
		table:    table.New(UserColumns, pageSize),
	}
}

func (l *UserList) State() State { return l.state }
func (l *UserList) PageIndex() int { return l.pageIndex }
func (l *UserList) PageSize() int { return l.pageSize }
func (l *UserList) Total() int { return l.total }
func (l *UserList) Filter() string { return l.table.Filter() }
func (l *UserList) Columns() []string { return l.table.Columns() }

// PageCount is the number of server pages, at least 1.
func (l *UserList) PageCount() int {
	if l.total <= 0 {
		return 1
	}
	return (l.total + l.pageSize - 1) / l.pageSize
}

// Rows returns the displayed rows: the loaded page after filter and sort.
func (l *UserList) Rows() []models.User {
	return l.table.Rows()
}

// Sort returns the active sort column and direction.
func (l *UserList) Sort() (string, table.Direction) {
	return l.table.Sort()
}

// Load fetches the current server page. On failure the previous rows stay
// and the state returns to Idle.
func (l *UserList) Load(ctx context.Context) error {
	l.state = Loading

	page, err := l.api.ListUsers(ctx, l.pageIndex+1, l.pageSize)
	if err != nil {
		l.state = Idle
		l.logger.Error(ctx, "failed to load users", "page", l.pageIndex+1, "error", err)
		l.notifier.Notify(NotifyError, messageFor(err))
		return err
	}

	l.total = page.Total
	l.table.Paginator.PageSize = l.pageSize
	l.table.SetData(page.Items)
	l.state = Loaded
	l.logger.Debug(ctx, "users loaded", "page", page.Page, "rows", len(page.Items), "total", page.Total)
	return nil
}

// PageChange moves to server page index (0-based) with the given size and
// reloads. If the load fails the previous index and size are kept, so they
// keep describing the rows on display.
func (l *UserList) PageChange(ctx context.Context, index, size int) error {
	if index < 0 {
		index = 0
	}
	if size < 1 {
		size = l.pageSize
	}
	prevIndex, prevSize := l.pageIndex, l.pageSize
	l.pageIndex, l.pageSize = index, size
	if err := l.Load(ctx); err != nil {
		l.pageIndex, l.pageSize = prevIndex, prevSize
		return err
	}
	return nil
}

// ApplyFilter sets the filter text and returns to the first page. When the
// first server page is not the one loaded, it is fetched.
func (l *UserList) ApplyFilter(ctx context.Context, text string) error {
	l.table.SetFilter(text)
	if l.pageIndex != 0 {
		return l.PageChange(ctx, 0, l.pageSize)
	}
	return nil
}

// SortBy orders the displayed rows by column; false for an unknown column.
func (l *UserList) SortBy(column string, dir table.Direction) bool {
	return l.table.SortBy(column, dir)
}

// OpenCreate runs the dialog for a new record and creates it.
func (l *UserList) OpenCreate(ctx context.Context) error {
	dlg := OpenUserDialog(ctx, l.api, nil, l.opts, l.logger)
	values, err := l.dialog.Confirm(ctx, dlg)
	if err != nil {
		return dialogResult(err)
	}

	if err := normalizeInput(&values); err != nil {
		l.notifier.Notify(NotifyError, err.Error())
		return err
	}

	if _, err := l.api.CreateUser(ctx, values); err != nil {
		l.logger.Error(ctx, "create user failed", "error", err)
		l.notifier.Notify(NotifyError, messageFor(err))
		return err
	}

	l.reloadAfterWrite(ctx)
	l.notifier.Notify(NotifySuccess, UserCreatedMessage)
	return nil
}

// OpenEdit fetches the current version of record id, runs the dialog on it
// and submits the result as a full replacement.
func (l *UserList) OpenEdit(ctx context.Context, id int64) error {
	user, err := l.api.GetUser(ctx, id)
	if err != nil {
		l.logger.Error(ctx, "fetch user failed", "id", id, "error", err)
		l.notifier.Notify(NotifyError, messageFor(err))
		return err
	}

	dlg := OpenUserDialog(ctx, l.api, user, l.opts, l.logger)
	values, err := l.dialog.Confirm(ctx, dlg)
	if err != nil {
		return dialogResult(err)
	}

	if err := normalizeInput(&values); err != nil {
		l.notifier.Notify(NotifyError, err.Error())
		return err
	}

	if _, err := l.api.UpdateUser(ctx, values, user.ID); err != nil {
		l.logger.Error(ctx, "update user failed", "id", user.ID, "error", err)
		l.notifier.Notify(NotifyError, messageFor(err))
		return err
	}

	l.reloadAfterWrite(ctx)
	l.notifier.Notify(NotifySuccess, UserUpdatedMessage)
	return nil
}

// reloadAfterWrite refreshes the current page. A failed reload has already
// been reported by Load and does not undo the write.
func (l *UserList) reloadAfterWrite(ctx context.Context) {
	_ = l.Load(ctx)
}

func normalizeInput(v *models.UserInput) error {
	d, err := NormalizeDate(v.DateOfBirth)
	if err != nil {
		return fmt.Errorf("date of birth: %w", err)
	}
	v.DateOfBirth = d
	return nil
}

// dialogResult maps a cancelled dialog to nil.
func dialogResult(err error) error {
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	return err
}

// messageFor prefers the backend-provided message over the error text.
func messageFor(err error) string {
	if msg := client.MessageOf(err); msg != "" {
		return msg
	}
	return err.Error()
}
