// Package services contains application services for the directory console.
// This file defines the authentication service: admin login with token
// persistence, logout, and the local account summary shown by whoami.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diradmin/internal/client/client"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/diradmin/internal/client/session"
	"github.com/dmitrijs2005/diradmin/internal/dbx"
	"github.com/dmitrijs2005/diradmin/internal/logging"
)

// Metadata keys written next to the token on a successful login.
const (
	keyIdentifier = "identifier"
	keyLoggedInAt = "logged_in_at"
)

// AuthService defines authentication operations for the console.
//
// Contract:
//   - Login: send the credentials; when the backend grants the login, store
//     the returned token before handing the response back. The response is
//     returned unchanged either way; transport and HTTP failures are
//     returned as errors, without retry.
//   - Logout: forget the token and the remembered account.
//   - Account: report what is known locally about the current login.
type AuthService interface {
	Login(ctx context.Context, identifier, secret string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	Account(ctx context.Context) (Account, error)
}

// Account is the local view of the current login.
type Account struct {
	LoggedIn   bool
	Identifier string
	LoggedInAt time.Time
	Token      session.Info
}

type authService struct {
	client  client.AuthAPI
	session *session.Session
	db      *sql.DB
	logger  logging.Logger
	now     func() time.Time
}

// NewAuthService constructs an AuthService bound to the API client, the
// session slot and the local database.
func NewAuthService(c client.AuthAPI, s *session.Session, db *sql.DB, logger logging.Logger) AuthService {
	return &authService{client: c, session: s, db: db, logger: logger, now: time.Now}
}

func (a *authService) Login(ctx context.Context, identifier, secret string) (*models.LoginResponse, error) {
	ticket := a.session.Begin()

	resp, err := a.client.Login(ctx, models.Credentials{Identifier: identifier, Secret: secret})
	if err != nil {
		return nil, err
	}
	if !resp.Succeeded() {
		return resp, nil
	}

	if err := a.session.Commit(ctx, ticket, resp.Data.Token); err != nil {
		if errors.Is(err, session.ErrSuperseded) {
			return nil, err
		}
		return nil, fmt.Errorf("store token: %w", err)
	}

	// The token is already stored; a missing account record only affects whoami.
	if err := a.saveAccount(ctx, identifier); err != nil {
		a.logger.Warn(ctx, "store account failed", "identifier", identifier, "error", err)
	}
	return resp, nil
}

// saveAccount records who logged in and when, in a single transaction.
func (a *authService) saveAccount(ctx context.Context, identifier string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyIdentifier, []byte(identifier)); err != nil {
			return err
		}
		stamp := a.now().UTC().Format(time.RFC3339)
		return repo.Set(ctx, keyLoggedInAt, []byte(stamp))
	})
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyIdentifier); err != nil {
			return err
		}
		return repo.Delete(ctx, keyLoggedInAt)
	})
}

func (a *authService) Account(ctx context.Context) (Account, error) {
	token, ok := a.session.Token()
	if !ok {
		return Account{}, nil
	}

	repo := metadata.NewSQLiteRepository(a.db)
	id, err := repo.Get(ctx, keyIdentifier)
	if err != nil {
		return Account{}, err
	}
	stamp, err := repo.Get(ctx, keyLoggedInAt)
	if err != nil {
		return Account{}, err
	}

	acc := Account{LoggedIn: true, Identifier: string(id), Token: session.Describe(token)}
	if t, err := time.Parse(time.RFC3339, string(stamp)); err == nil {
		acc.LoggedInAt = t
	}
	return acc, nil
}
