// Package apitest runs an in-process imitation of the directory backend for
// tests. It speaks the same JSON shapes as the real API and records every
// request it receives.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/common"
	"github.com/go-chi/chi/v5"
)

// BasePath is the API prefix; clients should use Server.BaseURL.
const BasePath = "/api"

// Request is what the server saw for one call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is a fake backend. Zero-value fields are filled by New.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	accounts  map[string]string
	token     string
	users     map[int64]models.User
	nextID    int64
	countries []models.Country
	requests  []Request
	failNext  map[string]int
}

// New starts a server that accepts admin@example.com / secret123 and issues
// token "test-token". It is shut down when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		accounts: map[string]string{"admin@example.com": "secret123"},
		token:    "test-token",
		users:    map[int64]models.User{},
		nextID:   1,
		failNext: map[string]int{},
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the value to configure as the API base path.
func (s *Server) BaseURL() string { return s.URL + BasePath }

// Token is the bearer token the server issues and expects.
func (s *Server) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken changes the token issued on login and expected on every other call.
func (s *Server) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// AddAccount registers another admin login.
func (s *Server) AddAccount(identifier, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[identifier] = password
}

// SetCountries replaces the reference list; order is preserved.
func (s *Server) SetCountries(cs []models.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = append([]models.Country(nil), cs...)
}

// AddUser stores u, assigning the next id when u.ID is zero, and returns
// the stored copy.
func (s *Server) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.nextID
	}
	if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
	s.users[u.ID] = u
	return u
}

// User returns the stored record with the given id.
func (s *Server) User(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// FailNext makes the next n calls whose path ends with suffix answer 500
// with message.
func (s *Server) FailNext(suffix string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext[suffix] = n
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request, or the zero Request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.injectFailures)

	r.Route(BasePath, func(r chi.Router) {
		r.Post("/auth/admin-login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)
			r.Get("/users", s.handleListUsers)
			r.Post("/users/create", s.handleCreateUser)
			r.Get("/users/{id}", s.handleGetUser)
			r.Post("/users/{id}/edit", s.handleUpdateUser)
			r.Get("/countries", s.handleCountries)
		})
	})

	r.Get("/images/{name}", s.handleImage)
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = readAll(r)
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var fail bool
		for suffix, n := range s.failNext {
			if n > 0 && strings.HasSuffix(r.URL.Path, suffix) {
				s.failNext[suffix] = n - 1
				fail = true
				break
			}
		}
		s.mu.Unlock()

		if fail {
			writeMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "Bearer " + s.Token()
		if r.Header.Get(common.HeaderAuthorization) != want {
			writeMessage(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	if req.Type != models.LoginTypeAdmin {
		writeMessage(w, http.StatusUnprocessableEntity, "The selected type is invalid.")
		return
	}

	s.mu.Lock()
	password, ok := s.accounts[req.Field]
	token := s.token
	s.mu.Unlock()

	if !ok || password != req.Password {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  0,
			"message": "These credentials do not match our records.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": models.LoginStatusSuccess,
		"data":   map[string]string{"token": token},
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, err1 := strconv.Atoi(r.URL.Query().Get("page"))
	size, err2 := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err1 != nil || err2 != nil || page < 1 || size < 1 {
		writeMessage(w, http.StatusUnprocessableEntity, "invalid pagination")
		return
	}

	s.mu.Lock()
	all := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	s.mu.Unlock()
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start := (page - 1) * size
	end := start + size
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total": len(all),
		"data":  map[string]any{"data": all[start:end]},
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	u, ok := s.User(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": u})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := decodeBody(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	if in.ID != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "id must not be set")
		return
	}
	if msg := s.validate(in, 0); msg != "" {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}

	u := s.toUser(in)
	now := time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	u.CreatedAt, u.UpdatedAt = now, now
	u = s.AddUser(u)

	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	old, ok := s.User(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	var in models.UserInput
	if err := decodeBody(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	if msg := s.validate(in, id); msg != "" {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}

	u := s.toUser(in)
	u.ID = id
	u.CreatedAt = old.CreatedAt
	u.UpdatedAt = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	s.AddUser(u)

	writeJSON(w, http.StatusOK, map[string]any{"data": u})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("return_all") != "1" {
		writeMessage(w, http.StatusUnprocessableEntity, "return_all is required")
		return
	}
	s.mu.Lock()
	cs := append([]models.Country{}, s.countries...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": cs})
}

// 1x1 transparent GIF
var pixel = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\x00\x00\x00!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

// handleImage serves a tiny image for any name except those starting with
// "missing".
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(chi.URLParam(r, "name"), "missing") {
		http.NotFound(w, r)
		return
	}
	w.Header().Set(common.HeaderContentType, "image/gif")
	_, _ = w.Write(pixel)
}

// validate mimics the backend's checks: email must be present and unique.
func (s *Server) validate(in models.UserInput, self int64) string {
	if strings.TrimSpace(in.Email) == "" {
		return "The email field is required."
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if id != self && strings.EqualFold(u.Email, in.Email) {
			return "The email has already been taken."
		}
	}
	return ""
}

func (s *Server) toUser(in models.UserInput) models.User {
	u := models.User{
		Name:             in.Name,
		FatherName:       in.FatherName,
		GrandfatherName:  in.GrandfatherName,
		FamilyBranchName: in.FamilyBranchName,
		Tribe:            in.Tribe,
		Gender:           in.Gender,
		DateOfBirth:      in.DateOfBirth,
		CountryID:        in.CountryID,
		CountryCode:      in.CountryCode,
		Phone:            in.Phone,
		PhoneCode:        in.PhoneCode,
		Email:            in.Email,
		Type:             in.Type,
		Active:           in.Active,
		IsPremium:        in.IsPremium,
		Code:             in.Code,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.countries {
		if s.countries[i].ID == in.CountryID {
			c := s.countries[i]
			u.Country = &c
			break
		}
	}
	return u
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(common.HeaderContentType, common.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
