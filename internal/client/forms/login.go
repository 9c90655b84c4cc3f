package forms

// Login form field names.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

var loginRules = map[string]Rules{
	FieldUsername: {Required: true, MinLength: 4, MaxLength: 20, Email: true},
	FieldPassword: {Required: true, MinLength: 6},
}

// LoginForm is the admin sign-in form.
type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) value(field string) string {
	switch field {
	case FieldUsername:
		return f.Username
	case FieldPassword:
		return f.Password
	}
	return ""
}

// FieldErrors returns the failed rules of one field.
func (f LoginForm) FieldErrors(field string) Errors {
	return loginRules[field].Check(f.value(field))
}

// Errors returns the failed rules per field; fields without errors are
// omitted.
func (f LoginForm) Errors() map[string]Errors {
	out := map[string]Errors{}
	for _, name := range []string{FieldUsername, FieldPassword} {
		if errs := f.FieldErrors(name); errs != nil {
			out[name] = errs
		}
	}
	return out
}

func (f LoginForm) Valid() bool {
	return len(f.Errors()) == 0
}

// ErrorMessage returns the message for field, or "".
func (f LoginForm) ErrorMessage(field string) string {
	r := loginRules[field]
	return r.Message(field, r.Check(f.value(field)))
}
