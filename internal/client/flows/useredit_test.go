package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/diradmin/internal/client/forms"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countriesFunc func(ctx context.Context) ([]models.Country, error)

func (f countriesFunc) ListCountries(ctx context.Context) ([]models.Country, error) { return f(ctx) }

func TestOpenUserDialog_OptionLists(t *testing.T) {
	calls := 0
	api := countriesFunc(func(context.Context) ([]models.Country, error) {
		calls++
		return []models.Country{
			{ID: 9, ISO2: "SA", PhoneCode: "966"},
			{ID: 1, ISO2: "KW", PhoneCode: "965"},
			{ID: 5, ISO2: "KW", PhoneCode: "965"},
		}, nil
	})

	d := OpenUserDialog(context.Background(), api, nil, DialogOptions{}, logging.Discard())
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int64{9, 1, 5}, d.CountryIDs)
	assert.Equal(t, []string{"966", "965", "965"}, d.PhoneCodes)
	assert.Equal(t, []string{"SA", "KW", "KW"}, d.CountryCodes)
	assert.Len(t, d.Countries(), 3)
}

func TestOpenUserDialog_CountriesFailure(t *testing.T) {
	api := countriesFunc(func(context.Context) ([]models.Country, error) { return nil, errors.New("down") })

	d := OpenUserDialog(context.Background(), api, &models.User{ID: 3, Name: "A"}, DialogOptions{}, logging.Discard())
	assert.Empty(t, d.CountryIDs)
	assert.Equal(t, "A", d.Form.Name)
	assert.True(t, d.Editing())
}

func TestUserDialog_SubmitModes(t *testing.T) {
	api := countriesFunc(func(context.Context) ([]models.Country, error) { return nil, nil })

	permissive := OpenUserDialog(context.Background(), api, nil, DialogOptions{}, logging.Discard())
	v, err := permissive.Submit()
	require.NoError(t, err, "permissive submit ignores validity")
	assert.Equal(t, "", v.Name)
	assert.True(t, permissive.Closed())

	strict := OpenUserDialog(context.Background(), api, nil, DialogOptions{SubmitMode: SubmitStrict}, logging.Discard())
	_, err = strict.Submit()
	require.ErrorIs(t, err, forms.ErrInvalidForm)
	assert.False(t, strict.Closed())
	assert.Equal(t, "You must enter a value", strict.ErrorMessage("name"))

	for k, val := range completeUser() {
		require.NoError(t, strict.Form.Set(k, val))
	}
	v, err = strict.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Sara", v.Name)
}

func TestUserDialog_StrictWithPasswordMatch(t *testing.T) {
	api := countriesFunc(func(context.Context) ([]models.Country, error) { return nil, nil })
	d := OpenUserDialog(context.Background(), api, nil,
		DialogOptions{SubmitMode: SubmitStrict, MatchPasswords: true}, logging.Discard())

	for k, val := range completeUser() {
		require.NoError(t, d.Form.Set(k, val))
	}
	require.NoError(t, d.Form.Set("confirm_password", "different"))

	_, err := d.Submit()
	require.ErrorIs(t, err, forms.ErrInvalidForm)
}

func TestUserDialog_Cancel(t *testing.T) {
	api := countriesFunc(func(context.Context) ([]models.Country, error) { return nil, nil })
	d := OpenUserDialog(context.Background(), api, nil, DialogOptions{}, logging.Discard())

	require.ErrorIs(t, d.Cancel(), ErrCancelled)
	_, err := d.Submit()
	require.ErrorIs(t, err, ErrCancelled, "a closed dialog yields nothing")
}

func TestParseSubmitMode(t *testing.T) {
	m, err := ParseSubmitMode("")
	require.NoError(t, err)
	assert.Equal(t, SubmitPermissive, m)

	m, err = ParseSubmitMode("STRICT")
	require.NoError(t, err)
	assert.Equal(t, SubmitStrict, m)

	_, err = ParseSubmitMode("lenient")
	require.Error(t, err)
}
