// Package session holds the console's single bearer-token slot.
//
// A Session is passed explicitly to whoever needs the token (the request
// transport reads it, the auth service writes it). The value is kept in
// memory for reads and mirrored to a metadata repository so it survives
// restarts.
//
// Concurrent logins are sequenced with tickets: each login attempt takes a
// Ticket from Begin before it contacts the backend, and Commit only stores
// the token when no newer attempt has begun since. The most recently started
// login therefore wins regardless of the order in which replies arrive.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/diradmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/diradmin/internal/common"
)

// ErrSuperseded is returned by Commit when a newer login began after the
// ticket was issued.
var ErrSuperseded = errors.New("login superseded by a newer attempt")

// Ticket identifies one login attempt.
type Ticket uint64

type Session struct {
	mu    sync.RWMutex
	repo  metadata.Repository
	token string
	seq   Ticket
}

// Open loads the persisted token, if any, from repo.
func Open(ctx context.Context, repo metadata.Repository) (*Session, error) {
	v, err := repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	return &Session{repo: repo, token: string(v)}, nil
}

// Token returns the current token. ok is false when no token is set.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set stores token unconditionally. An empty token clears the slot.
func (s *Session) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeLocked(ctx, token)
}

// Begin starts a login attempt and invalidates every earlier ticket.
func (s *Session) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Commit stores token on behalf of the attempt identified by t.
func (s *Session) Commit(ctx context.Context, t Ticket, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t != s.seq {
		return ErrSuperseded
	}
	return s.storeLocked(ctx, token)
}

// Clear removes the token from memory and from durable storage.
func (s *Session) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}

func (s *Session) storeLocked(ctx context.Context, token string) error {
	var err error
	if token == "" {
		err = s.repo.Delete(ctx, common.TokenStorageKey)
	} else {
		err = s.repo.Set(ctx, common.TokenStorageKey, []byte(token))
	}
	if err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	s.token = token
	return nil
}
