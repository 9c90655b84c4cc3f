package forms

import (
	"testing"

	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *models.User {
	return &models.User{
		ID:          9,
		Name:        "Sara",
		Gender:      "female",
		DateOfBirth: "1990-05-17",
		CountryID:   7,
		CountryCode: "KW",
		Phone:       "501234567",
		PhoneCode:   "965",
		Email:       "sara@example.com",
		Type:        "user",
		Password:    "pw",
		CreatedAt:   "2024-01-01",
		Code:        "X1",
	}
}

func TestNewUserForm_Empty(t *testing.T) {
	f := NewUserForm(nil, false)
	assert.Nil(t, f.ID)
	assert.False(t, bool(f.Active))

	errs := f.Errors()
	for _, name := range []string{FieldName, FieldGender, FieldDateOfBirth, FieldCountryID, FieldCountryCode,
		FieldPhone, FieldPhoneCode, FieldEmail, FieldType, FieldPassword, FieldConfirmPassword} {
		assert.True(t, errs[name].Has(KindRequired), name)
	}
	for _, name := range []string{FieldFatherName, FieldTribe, FieldActive, FieldIsPremium} {
		assert.NotContains(t, errs, name)
	}
}

func TestNewUserForm_Seeded(t *testing.T) {
	f := NewUserForm(validUser(), false)
	require.NotNil(t, f.ID)
	assert.Equal(t, int64(9), *f.ID)
	assert.Equal(t, "", f.ConfirmPassword)
	assert.Equal(t, "7", f.Value(FieldCountryID))
	assert.Equal(t, "false", f.Value(FieldActive))

	errs := f.Errors()
	assert.Equal(t, map[string]Errors{FieldConfirmPassword: {KindRequired: 0}}, errs)

	require.NoError(t, f.Set(FieldConfirmPassword, "anything"))
	assert.True(t, f.Valid(), "mismatch rule is detached")
}

func TestUserForm_PasswordMatch(t *testing.T) {
	f := NewUserForm(validUser(), true)
	require.NoError(t, f.Set(FieldConfirmPassword, "other"))

	assert.False(t, f.Valid())
	assert.True(t, f.FormErrors().Has(KindMismatch))
	assert.Equal(t, "Passwords do not match", f.FormErrorMessage())

	require.NoError(t, f.Set(FieldConfirmPassword, "pw"))
	assert.True(t, f.Valid())
	assert.Equal(t, "", f.FormErrorMessage())
}

func TestUserForm_Phone(t *testing.T) {
	f := NewUserForm(validUser(), false)

	for _, bad := range []string{"0501234567", "50123456", "5012345678", "601234567", "50123456a"} {
		require.NoError(t, f.Set(FieldPhone, bad))
		assert.True(t, f.FieldErrors(FieldPhone).Has(KindPattern), bad)
		assert.Equal(t, "Invalid phone number", f.ErrorMessage(FieldPhone), bad)
	}

	require.NoError(t, f.Set(FieldPhone, "509876543"))
	assert.Equal(t, "", f.ErrorMessage(FieldPhone))

	require.NoError(t, f.Set(FieldPhone, ""))
	assert.Equal(t, "You must enter a value", f.ErrorMessage(FieldPhone))
}

func TestUserForm_Email(t *testing.T) {
	f := NewUserForm(validUser(), false)
	require.NoError(t, f.Set(FieldEmail, "not-an-email"))
	assert.Equal(t, "Invalid email address", f.ErrorMessage(FieldEmail))
}

func TestUserForm_Set(t *testing.T) {
	f := NewUserForm(nil, false)

	require.NoError(t, f.Set(FieldActive, "yes"))
	assert.True(t, bool(f.Active))
	require.NoError(t, f.Set(FieldIsPremium, "1"))
	assert.True(t, bool(f.IsPremium))
	require.Error(t, f.Set(FieldActive, "maybe"))

	require.NoError(t, f.Set(FieldCountryID, " 12 "))
	assert.Equal(t, int64(12), f.CountryID)
	require.Error(t, f.Set(FieldCountryID, "twelve"))
	require.NoError(t, f.Set(FieldCountryID, ""))
	assert.Equal(t, int64(0), f.CountryID)

	require.Error(t, f.Set("nope", "x"))
	assert.Equal(t, "", f.Value("nope"))
	assert.Equal(t, "", f.ErrorMessage("nope"))
}

func TestUserForm_Values(t *testing.T) {
	f := NewUserForm(validUser(), false)
	require.NoError(t, f.Set(FieldConfirmPassword, "pw"))

	v := f.Values()
	require.NotNil(t, v.ID)
	assert.Equal(t, int64(9), *v.ID)
	assert.Equal(t, "Sara", v.Name)
	assert.Equal(t, int64(7), v.CountryID)
	assert.Equal(t, "pw", v.ConfirmPassword)
	assert.Equal(t, "2024-01-01", v.CreatedAt)
	assert.Equal(t, "X1", v.Code)
}

func TestUserFields_Order(t *testing.T) {
	names := make([]string, 0, len(UserFields))
	for _, fd := range UserFields {
		names = append(names, fd.Name)
	}
	assert.Equal(t, []string{
		"name", "father_name", "grandfather_name", "family_branch_name", "tribe", "gender", "date_of_birth",
		"country_id", "country_code", "phone", "phone_code", "email", "type", "active", "is_premium",
		"password", "confirm_password",
	}, names)

	pw, ok := LookupUserField(FieldPassword)
	require.True(t, ok)
	assert.True(t, pw.Secret)
}
