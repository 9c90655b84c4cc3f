// Package forms holds the console's editable forms: the admin login form
// and the user record form. Each field carries a small set of rules; errors
// are computed on demand and turned into one display message per field.
package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidForm is returned when a strict submit meets a form with errors.
var ErrInvalidForm = errors.New("form has validation errors")

// Kind names a failed rule.
type Kind string

const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "minlength"
	KindMaxLength Kind = "maxlength"
	KindPattern   Kind = "pattern"
	KindEmail     Kind = "email"
	KindMismatch  Kind = "mismatch"
)

// precedence is the order in which field errors are reported.
var precedence = []Kind{KindRequired, KindMinLength, KindMaxLength, KindPattern, KindEmail}

// Errors maps each failed rule of one field to its parameter: the length
// bound for minlength/maxlength, zero otherwise.
type Errors map[Kind]int

func (e Errors) Has(k Kind) bool {
	_, ok := e[k]
	return ok
}

// Rules is the rule set of one field. The zero value accepts anything.
type Rules struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	// PatternMessage is shown for a pattern failure; empty means no message.
	PatternMessage string
	Email          bool
}

// Check returns the failed rules for value, or nil. Length, pattern and
// email rules do not apply to an empty value.
func (r Rules) Check(value string) Errors {
	errs := Errors{}

	if value == "" {
		if r.Required {
			errs[KindRequired] = 0
		}
		return nilIfEmpty(errs)
	}

	n := utf8.RuneCountInString(value)
	if r.MinLength > 0 && n < r.MinLength {
		errs[KindMinLength] = r.MinLength
	}
	if r.MaxLength > 0 && n > r.MaxLength {
		errs[KindMaxLength] = r.MaxLength
	}
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		errs[KindPattern] = 0
	}
	if r.Email && !IsEmail(value) {
		errs[KindEmail] = 0
	}
	return nilIfEmpty(errs)
}

// Message derives the display text for errs on the field called name. Only
// the highest-precedence error is reported; no error yields "".
func (r Rules) Message(name string, errs Errors) string {
	for _, k := range precedence {
		bound, ok := errs[k]
		if !ok {
			continue
		}
		switch k {
		case KindRequired:
			return "You must enter a value"
		case KindMinLength:
			return fmt.Sprintf("%s must be at least %d characters long", capitalize(name), bound)
		case KindMaxLength:
			return fmt.Sprintf("%s cannot be more than %d characters long", capitalize(name), bound)
		case KindPattern:
			return r.PatternMessage
		case KindEmail:
			return "Invalid email address"
		}
	}
	return ""
}

func nilIfEmpty(e Errors) Errors {
	if len(e) == 0 {
		return nil
	}
	return e
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
