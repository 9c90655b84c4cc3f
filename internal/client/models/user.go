// Package models defines the directory records exchanged with the backend
// API and the transient values the console builds from them.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean-like attribute. The backend is inconsistent about its
// encoding (0/1, true/false, "1"/"0"), so decoding accepts all of them and
// encoding always produces 0 or 1.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = false
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("flag: %w", err)
		}
		raw = s
	}

	v, err := ParseFlag(raw)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Flag) String() string {
	if f {
		return "true"
	}
	return "false"
}

// ParseFlag converts user or wire text into a Flag. Numbers are true when
// non-zero; the empty string is false.
func ParseFlag(s string) (Flag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "false", "no", "n", "off":
		return false, nil
	case "true", "yes", "y", "on":
		return true, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false, fmt.Errorf("flag: cannot parse %q", s)
	}
	return n != 0, nil
}

// Country is read-only reference data used to fill the dialog option lists.
type Country struct {
	ID        int64  `json:"id"`
	NameAr    string `json:"name_ar"`
	NameEn    string `json:"name_en"`
	ISO2      string `json:"iso2"`
	PhoneCode string `json:"phonecode"`
	Name      string `json:"name"`
}

// DisplayName prefers the localized name and falls back to the English one.
func (c *Country) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Name != "" {
		return c.Name
	}
	return c.NameEn
}

// User is a directory record as returned by the backend. The console only
// holds copies for display and editing. ID is assigned by the backend and
// never changes afterwards.
type User struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	FatherName       string   `json:"father_name"`
	GrandfatherName  string   `json:"grandfather_name"`
	FamilyBranchName string   `json:"family_branch_name"`
	Tribe            string   `json:"tribe"`
	Image            string   `json:"image"`
	Gender           string   `json:"gender"`
	DateOfBirth      string   `json:"date_of_birth"`
	CountryID        int64    `json:"country_id"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Type             string   `json:"type"`
	Active           Flag     `json:"active"`
	IsPremium        Flag     `json:"is_premium"`
	CountryCode      string   `json:"country_code"`
	PhoneCode        string   `json:"phone_code"`
	Password         string   `json:"password,omitempty"`
	Code             any      `json:"code,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
	Country          *Country `json:"country,omitempty"`
}

// UserInput is the payload submitted on create and update: the raw values
// of the edit dialog. ID is nil for records that do not exist yet.
type UserInput struct {
	ID               *int64 `json:"id,omitempty"`
	Name             string `json:"name"`
	FatherName       string `json:"father_name"`
	GrandfatherName  string `json:"grandfather_name"`
	FamilyBranchName string `json:"family_branch_name"`
	Tribe            string `json:"tribe"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	CountryID        int64  `json:"country_id,omitempty"`
	CountryCode      string `json:"country_code"`
	Phone            string `json:"phone"`
	PhoneCode        string `json:"phone_code"`
	Email            string `json:"email"`
	Type             string `json:"type"`
	Active           Flag   `json:"active"`
	IsPremium        Flag   `json:"is_premium"`
	CreatedAt        string `json:"created_at,omitempty"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirm_password"`
	Code             any    `json:"code,omitempty"`
}

// Page is one page of the user listing. Page is 1-indexed.
type Page struct {
	Items    []User
	Total    int
	Page     int
	PageSize int
}

// usersEnvelope mirrors {total, data: {data: [...]}}.
type usersEnvelope struct {
	Total int `json:"total"`
	Data  struct {
		Data []User `json:"data"`
	} `json:"data"`
}

// DecodePage decodes a list response body into a Page.
func DecodePage(body []byte, page, pageSize int) (*Page, error) {
	var env usersEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode users page: %w", err)
	}
	items := env.Data.Data
	if items == nil {
		items = []User{}
	}
	return &Page{Items: items, Total: env.Total, Page: page, PageSize: pageSize}, nil
}
