package forms

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$",
)

const (
	maxEmailLength     = 254
	maxLocalPartLength = 64
)

// IsEmail reports whether s is email-shaped: a dot-atom local part of at
// most 64 characters, "@", and a hostname made of 1-63 character labels.
// A top-level domain is not required.
func IsEmail(s string) bool {
	if len(s) == 0 || len(s) > maxEmailLength {
		return false
	}
	local, _, ok := strings.Cut(s, "@")
	if !ok || len(local) > maxLocalPartLength {
		return false
	}
	return emailPattern.MatchString(s)
}
