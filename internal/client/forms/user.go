package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/diradmin/internal/client/models"
)

// User form field names; they match the wire names.
const (
	FieldName             = "name"
	FieldFatherName       = "father_name"
	FieldGrandfatherName  = "grandfather_name"
	FieldFamilyBranchName = "family_branch_name"
	FieldTribe            = "tribe"
	FieldGender           = "gender"
	FieldDateOfBirth      = "date_of_birth"
	FieldCountryID        = "country_id"
	FieldCountryCode      = "country_code"
	FieldPhone            = "phone"
	FieldPhoneCode        = "phone_code"
	FieldEmail            = "email"
	FieldType             = "type"
	FieldActive           = "active"
	FieldIsPremium        = "is_premium"
	FieldConfirmPassword  = "confirm_password"
)

// PhonePattern is the local mobile number format: 50 followed by 7 digits.
var PhonePattern = regexp.MustCompile(`^50\d{7}$`)

// UserField describes one editable field of the user form.
type UserField struct {
	Name  string
	Label string
	Rules Rules
	// Flag is set for boolean-like fields.
	Flag bool
	// Secret is set for fields whose input should be masked.
	Secret bool

	get func(*UserForm) string
	set func(*UserForm, string) error
}

func textField(name, label string, rules Rules, p func(*UserForm) *string) UserField {
	return UserField{
		Name:  name,
		Label: label,
		Rules: rules,
		get:   func(f *UserForm) string { return *p(f) },
		set:   func(f *UserForm, v string) error { *p(f) = v; return nil },
	}
}

func flagField(name, label string, p func(*UserForm) *models.Flag) UserField {
	return UserField{
		Name:  name,
		Label: label,
		Rules: Rules{Required: true},
		Flag:  true,
		get:   func(f *UserForm) string { return p(f).String() },
		set: func(f *UserForm, v string) error {
			b, err := models.ParseFlag(v)
			if err != nil {
				return err
			}
			*p(f) = b
			return nil
		},
	}
}

var required = Rules{Required: true}

// UserFields lists the form's fields in display order.
var UserFields = []UserField{
	textField(FieldName, "Name", required, func(f *UserForm) *string { return &f.Name }),
	textField(FieldFatherName, "Father's Name", Rules{}, func(f *UserForm) *string { return &f.FatherName }),
	textField(FieldGrandfatherName, "Grandfather's Name", Rules{}, func(f *UserForm) *string { return &f.GrandfatherName }),
	textField(FieldFamilyBranchName, "Family Branch Name", Rules{}, func(f *UserForm) *string { return &f.FamilyBranchName }),
	textField(FieldTribe, "Tribe", Rules{}, func(f *UserForm) *string { return &f.Tribe }),
	textField(FieldGender, "Gender", required, func(f *UserForm) *string { return &f.Gender }),
	textField(FieldDateOfBirth, "Date of Birth", required, func(f *UserForm) *string { return &f.DateOfBirth }),
	{
		Name:  FieldCountryID,
		Label: "Country",
		Rules: required,
		get: func(f *UserForm) string {
			if f.CountryID == 0 {
				return ""
			}
			return strconv.FormatInt(f.CountryID, 10)
		},
		set: func(f *UserForm, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				f.CountryID = 0
				return nil
			}
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("country id %q is not a number", v)
			}
			f.CountryID = id
			return nil
		},
	},
	textField(FieldCountryCode, "Country Code", required, func(f *UserForm) *string { return &f.CountryCode }),
	textField(FieldPhone, "Phone", Rules{Required: true, Pattern: PhonePattern, PatternMessage: "Invalid phone number"},
		func(f *UserForm) *string { return &f.Phone }),
	textField(FieldPhoneCode, "Phone Code", required, func(f *UserForm) *string { return &f.PhoneCode }),
	textField(FieldEmail, "Email", Rules{Required: true, Email: true}, func(f *UserForm) *string { return &f.Email }),
	textField(FieldType, "Type", required, func(f *UserForm) *string { return &f.Type }),
	flagField(FieldActive, "Active", func(f *UserForm) *models.Flag { return &f.Active }),
	flagField(FieldIsPremium, "Premium", func(f *UserForm) *models.Flag { return &f.IsPremium }),
	secretField(FieldPassword, "Password", func(f *UserForm) *string { return &f.Password }),
	secretField(FieldConfirmPassword, "Confirm Password", func(f *UserForm) *string { return &f.ConfirmPassword }),
}

func secretField(name, label string, p func(*UserForm) *string) UserField {
	fd := textField(name, label, required, p)
	fd.Secret = true
	return fd
}

// LookupUserField finds a field by name.
func LookupUserField(name string) (UserField, bool) {
	for _, fd := range UserFields {
		if fd.Name == name {
			return fd, true
		}
	}
	return UserField{}, false
}

// UserForm is the editable state of the user dialog. ID, CreatedAt and Code
// are carried through from the seed record without being edited.
type UserForm struct {
	ID               *int64
	Name             string
	FatherName       string
	GrandfatherName  string
	FamilyBranchName string
	Tribe            string
	Gender           string
	DateOfBirth      string
	CountryID        int64
	CountryCode      string
	Phone            string
	PhoneCode        string
	Email            string
	Type             string
	Active           models.Flag
	IsPremium        models.Flag
	CreatedAt        string
	Password         string
	ConfirmPassword  string
	Code             any

	// MatchPasswords attaches the password/confirm_password rule.
	MatchPasswords bool
}

// NewUserForm seeds a form from u; nil gives an empty form for create.
// The confirmation field always starts empty.
func NewUserForm(u *models.User, matchPasswords bool) *UserForm {
	f := &UserForm{MatchPasswords: matchPasswords}
	if u == nil {
		return f
	}

	if u.ID != 0 {
		id := u.ID
		f.ID = &id
	}
	f.Name = u.Name
	f.FatherName = u.FatherName
	f.GrandfatherName = u.GrandfatherName
	f.FamilyBranchName = u.FamilyBranchName
	f.Tribe = u.Tribe
	f.Gender = u.Gender
	f.DateOfBirth = u.DateOfBirth
	f.CountryID = u.CountryID
	f.CountryCode = u.CountryCode
	f.Phone = u.Phone
	f.PhoneCode = u.PhoneCode
	f.Email = u.Email
	f.Type = u.Type
	f.Active = u.Active
	f.IsPremium = u.IsPremium
	f.CreatedAt = u.CreatedAt
	f.Password = u.Password
	f.Code = u.Code
	return f
}

// Value returns the display text of a field.
func (f *UserForm) Value(field string) string {
	fd, ok := LookupUserField(field)
	if !ok {
		return ""
	}
	return fd.get(f)
}

// Set parses text into a field.
func (f *UserForm) Set(field, text string) error {
	fd, ok := LookupUserField(field)
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	return fd.set(f, text)
}

// FieldErrors returns the failed rules of one field.
func (f *UserForm) FieldErrors(field string) Errors {
	fd, ok := LookupUserField(field)
	if !ok {
		return nil
	}
	return fd.Rules.Check(fd.get(f))
}

// FormErrors returns the cross-field errors. The only one is
// KindMismatch, and only when MatchPasswords is set.
func (f *UserForm) FormErrors() Errors {
	if f.MatchPasswords && f.Password != f.ConfirmPassword {
		return Errors{KindMismatch: 0}
	}
	return nil
}

// Errors returns the failed rules per field; fields without errors are
// omitted.
func (f *UserForm) Errors() map[string]Errors {
	out := map[string]Errors{}
	for _, fd := range UserFields {
		if errs := fd.Rules.Check(fd.get(f)); errs != nil {
			out[fd.Name] = errs
		}
	}
	return out
}

func (f *UserForm) Valid() bool {
	return len(f.Errors()) == 0 && f.FormErrors() == nil
}

// ErrorMessage returns the message for field, or "".
func (f *UserForm) ErrorMessage(field string) string {
	fd, ok := LookupUserField(field)
	if !ok {
		return ""
	}
	return fd.Rules.Message(field, fd.Rules.Check(fd.get(f)))
}

// FormErrorMessage returns the message for the cross-field errors, or "".
func (f *UserForm) FormErrorMessage() string {
	if f.FormErrors().Has(KindMismatch) {
		return "Passwords do not match"
	}
	return ""
}

// Values returns the raw form values as a request payload.
func (f *UserForm) Values() models.UserInput {
	return models.UserInput{
		ID:               f.ID,
		Name:             f.Name,
		FatherName:       f.FatherName,
		GrandfatherName:  f.GrandfatherName,
		FamilyBranchName: f.FamilyBranchName,
		Tribe:            f.Tribe,
		Gender:           f.Gender,
		DateOfBirth:      f.DateOfBirth,
		CountryID:        f.CountryID,
		CountryCode:      f.CountryCode,
		Phone:            f.Phone,
		PhoneCode:        f.PhoneCode,
		Email:            f.Email,
		Type:             f.Type,
		Active:           f.Active,
		IsPremium:        f.IsPremium,
		CreatedAt:        f.CreatedAt,
		Password:         f.Password,
		ConfirmPassword:  f.ConfirmPassword,
		Code:             f.Code,
	}
}
