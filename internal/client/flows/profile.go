package flows

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/logging"
	"github.com/dmitrijs2005/diradmin/internal/netx"
)

// DefaultPlaceholderImage is shown when a profile image cannot be loaded.
const DefaultPlaceholderImage = "assets/logo.png"

// UserGetter is the part of the directory API the profile needs.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// Detail is one row of the profile view.
type Detail struct {
	Icon  string
	Label string
	Value string
}

// Profile shows one record.
type Profile struct {
	api         UserGetter
	images      netx.HTTPDoer
	placeholder string
	logger      logging.Logger

	user    *models.User
	details []Detail
}

func NewProfile(api UserGetter, images netx.HTTPDoer, placeholder string, logger logging.Logger) *Profile {
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}
	return &Profile{api: api, images: images, placeholder: placeholder, logger: logger}
}

// Load fetches the record named by idParam, the id taken from the current
// route. A missing or non-numeric id skips the fetch and returns nil.
func (p *Profile) Load(ctx context.Context, idParam string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(idParam), 10, 64)
	if err != nil {
		p.logger.Debug(ctx, "profile: no usable id in route", "param", idParam)
		return nil
	}

	u, err := p.api.GetUser(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to load profile", "id", id, "error", err)
		return err
	}

	p.user = u
	p.details = []Detail{
		{Icon: "person", Label: "Father's Name", Value: u.FatherName},
		{Icon: "person", Label: "Grandfather's Name", Value: u.GrandfatherName},
		{Icon: "group", Label: "Family Branch Name", Value: u.FamilyBranchName},
		{Icon: "group", Label: "Tribe", Value: u.Tribe},
		{Icon: "phone", Label: "Phone", Value: u.Phone},
		{Icon: "email", Label: "Email", Value: u.Email},
		{Icon: "calendar_today", Label: "Date of Birth", Value: u.DateOfBirth},
		{Icon: "location_on", Label: "Country", Value: u.Country.DisplayName()},
		{Icon: "access_time", Label: "Created At", Value: u.CreatedAt},
		{Icon: "update", Label: "Updated At", Value: u.UpdatedAt},
	}
	return nil
}

// User is the loaded record, or nil.
func (p *Profile) User() *models.User {
	return p.user
}

// Details are the display rows of the loaded record, in order.
func (p *Profile) Details() []Detail {
	return p.details
}

// Image returns the profile image location: the record's own image when it
// loads on the first try, the placeholder otherwise.
func (p *Profile) Image(ctx context.Context) string {
	if p.user == nil || p.user.Image == "" {
		return p.placeholder
	}
	if err := netx.ProbeImage(ctx, p.images, p.user.Image); err != nil {
		p.logger.Warn(ctx, "profile image unavailable", "url", p.user.Image, "error", err)
		return p.placeholder
	}
	return p.user.Image
}
