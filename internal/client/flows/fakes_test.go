package flows

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/diradmin/internal/apitest"
	"github.com/dmitrijs2005/diradmin/internal/client/client"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/logging"
	"github.com/stretchr/testify/require"
)

type note struct {
	Kind    NotifyKind
	Message string
}

type fakeNotifier struct {
	notes []note
}

func (f *fakeNotifier) Notify(kind NotifyKind, message string) {
	f.notes = append(f.notes, note{Kind: kind, Message: message})
}

func (f *fakeNotifier) last() note {
	if len(f.notes) == 0 {
		return note{}
	}
	return f.notes[len(f.notes)-1]
}

type fakeNavigator struct {
	routes []string
}

func (f *fakeNavigator) Navigate(route string) { f.routes = append(f.routes, route) }

// fakeDialog runs fill on the dialog it is given, then returns its result.
type fakeDialog struct {
	fill   func(d *UserDialog) (models.UserInput, error)
	opened []*UserDialog
}

func (f *fakeDialog) Confirm(ctx context.Context, d *UserDialog) (models.UserInput, error) {
	f.opened = append(f.opened, d)
	return f.fill(d)
}

func submitWith(values map[string]string) func(d *UserDialog) (models.UserInput, error) {
	return func(d *UserDialog) (models.UserInput, error) {
		for k, v := range values {
			if err := d.Form.Set(k, v); err != nil {
				return models.UserInput{}, err
			}
		}
		return d.Submit()
	}
}

func cancel(d *UserDialog) (models.UserInput, error) { return models.UserInput{}, d.Cancel() }

type fakeAuth struct {
	resp  *models.LoginResponse
	err   error
	calls int
}

func (f *fakeAuth) Login(ctx context.Context, identifier, secret string) (*models.LoginResponse, error) {
	f.calls++
	return f.resp, f.err
}

func newAPI(t *testing.T) (*apitest.Server, *client.HTTPClient) {
	t.Helper()
	srv := apitest.New(t)
	srv.SetCountries([]models.Country{
		{ID: 7, Name: "Kuwait", ISO2: "KW", PhoneCode: "965"},
		{ID: 3, Name: "Saudi Arabia", ISO2: "SA", PhoneCode: "966"},
	})
	c, err := client.New(srv.BaseURL(), client.DefaultHeaders(), staticToken(srv.Token()), logging.Discard())
	require.NoError(t, err)
	return srv, c
}

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

func completeUser() map[string]string {
	return map[string]string{
		"name":             "Sara",
		"gender":           "female",
		"date_of_birth":    "1990-05-17",
		"country_id":       "7",
		"country_code":     "KW",
		"phone":            "501234567",
		"phone_code":       "965",
		"email":            "sara@example.com",
		"type":             "user",
		"password":         "secret1",
		"confirm_password": "secret1",
	}
}
