package client

import (
	"context"

	"github.com/dmitrijs2005/diradmin/internal/client/models"
)

// AuthAPI is the login half of the backend contract.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
}

// DirectoryAPI is the user-records half of the backend contract. Every call
// is a stateless pass-through: no caching, no deduplication, no retries.
type DirectoryAPI interface {
	ListUsers(ctx context.Context, page, pageSize int) (*models.Page, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, user models.UserInput, id int64) (*models.User, error)
	ListCountries(ctx context.Context) ([]models.Country, error)
}

// Client is the full backend contract.
type Client interface {
	AuthAPI
	DirectoryAPI
}
