package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/diradmin/internal/client/forms"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/logging"
)

// SubmitMode decides whether an invalid dialog may be submitted.
type SubmitMode string

const (
	// SubmitPermissive closes with the raw values whatever their validity.
	SubmitPermissive SubmitMode = "permissive"
	// SubmitStrict refuses to close while the form has errors.
	SubmitStrict SubmitMode = "strict"
)

// ParseSubmitMode accepts "permissive" and "strict"; "" means permissive.
func ParseSubmitMode(s string) (SubmitMode, error) {
	switch SubmitMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SubmitPermissive:
		return SubmitPermissive, nil
	case SubmitStrict:
		return SubmitStrict, nil
	}
	return "", fmt.Errorf("unknown submit mode %q", s)
}

// DialogOptions configure every user dialog a flow opens.
type DialogOptions struct {
	SubmitMode     SubmitMode
	MatchPasswords bool
}

// CountryLister is the part of the directory API the dialog needs.
type CountryLister interface {
	ListCountries(ctx context.Context) ([]models.Country, error)
}

// UserDialog is the create/edit form together with the country option
// lists. The option lists are filled once, when the dialog opens.
type UserDialog struct {
	Form *forms.UserForm

	// Parallel option lists, in backend order.
	CountryIDs   []int64
	PhoneCodes   []string
	CountryCodes []string

	countries []models.Country
	mode      SubmitMode
	closed    bool
}

// OpenUserDialog builds a dialog seeded from u (nil for create) and loads
// the country reference list. A failed country load is logged and leaves
// the option lists empty.
func OpenUserDialog(ctx context.Context, api CountryLister, u *models.User, opts DialogOptions, logger logging.Logger) *UserDialog {
	d := &UserDialog{
		Form: forms.NewUserForm(u, opts.MatchPasswords),
		mode: opts.SubmitMode,
	}

	countries, err := api.ListCountries(ctx)
	if err != nil {
		logger.Error(ctx, "failed to fetch countries", "error", err)
		return d
	}

	d.countries = countries
	for _, c := range countries {
		d.CountryIDs = append(d.CountryIDs, c.ID)
		d.PhoneCodes = append(d.PhoneCodes, c.PhoneCode)
		d.CountryCodes = append(d.CountryCodes, c.ISO2)
	}
	return d
}

// Countries returns the reference list loaded at open.
func (d *UserDialog) Countries() []models.Country {
	return d.countries
}

// Editing reports whether the dialog edits an existing record.
func (d *UserDialog) Editing() bool {
	return d.Form.ID != nil
}

// ErrorMessage returns the message for one field, or "".
func (d *UserDialog) ErrorMessage(field string) string {
	return d.Form.ErrorMessage(field)
}

// Submit closes the dialog with the raw form values. In strict mode an
// invalid form keeps the dialog open and returns forms.ErrInvalidForm.
func (d *UserDialog) Submit() (models.UserInput, error) {
	if d.closed {
		return models.UserInput{}, ErrCancelled
	}
	if d.mode == SubmitStrict && !d.Form.Valid() {
		return models.UserInput{}, forms.ErrInvalidForm
	}
	d.closed = true
	return d.Form.Values(), nil
}

// Cancel closes the dialog without a result.
func (d *UserDialog) Cancel() error {
	d.closed = true
	return ErrCancelled
}

// Closed reports whether Submit or Cancel has closed the dialog.
func (d *UserDialog) Closed() bool {
	return d.closed
}
