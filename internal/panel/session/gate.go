// Package session holds the admin session token and gates panel access
// on it. Trust decisions are made by the server only.
package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"portfolio-admin/internal/panel/recordstore"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

var (
	ErrUnauthenticated    = errors.New("session: not logged in")
	ErrInvalidCredentials = errors.New("session: invalid credentials")
)

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

type Option func(*Gate)

func WithLogger(l *zap.Logger) Option {
	return func(g *Gate) { g.log = l }
}

// Gate is the panel's view of the admin session.
type Gate struct {
	base   *recordstore.Client
	authed *recordstore.Client
	store  TokenStore
	log    *zap.Logger
	now    func() time.Time

	mu  sync.Mutex
	tok *Token
}

// New restores a stored token if one is present and unexpired.
func New(client *recordstore.Client, store TokenStore, opts ...Option) (*Gate, error) {
	g := &Gate{base: client, store: store, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	g.authed = client.Authorized(g)

	tok, err := store.Load()
	if err != nil {
		return nil, err
	}
	if tok != nil && !tok.expired(g.now()) {
		g.tok = tok
	}
	return g, nil
}

// Client returns the record store client that sends the session token.
func (g *Gate) Client() *recordstore.Client { return g.authed }

func (g *Gate) State() State {
	if g.Authenticated() {
		return Authenticated
	}
	return Unauthenticated
}

func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tok != nil && !g.tok.expired(g.now())
}

func (g *Gate) Username() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.tok == nil {
		return ""
	}
	return g.tok.Username
}

// Require returns ErrUnauthenticated unless a live session exists.
func (g *Gate) Require() error {
	if !g.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// Token implements oauth2.TokenSource for the authorized client.
func (g *Gate) Token() (*oauth2.Token, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.tok == nil || g.tok.expired(g.now()) {
		return nil, ErrUnauthenticated
	}
	return &oauth2.Token{AccessToken: g.tok.Value, TokenType: "Bearer", Expiry: g.tok.ExpiresAt}, nil
}

// Login exchanges credentials for a session token.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	var reply Token
	err := g.base.Send(ctx, "log in", http.MethodPost, "login", nil, map[string]string{
		"username": username,
		"password": password,
	}, &reply)
	if err != nil {
		var f *recordstore.Failure
		if errors.As(err, &f) && f.Unauthorized() {
			return ErrInvalidCredentials
		}
		return err
	}
	if reply.Value == "" {
		return &recordstore.Failure{Verb: "log in", Resource: "session", Status: http.StatusOK}
	}

	if err := g.store.Save(&reply); err != nil {
		return err
	}

	g.mu.Lock()
	g.tok = &reply
	g.mu.Unlock()

	g.log.Info("logged in", zap.String("username", reply.Username))
	return nil
}

// Logout ends the session locally and asks the server to revoke the
// token. The server call is best effort.
func (g *Gate) Logout(ctx context.Context) error {
	if g.Authenticated() {
		if err := g.authed.Send(ctx, "log out", http.MethodPost, "logout", nil, nil, nil); err != nil {
			g.log.Warn("server logout failed", zap.Error(err))
		}
	}
	return g.clear()
}

// Check inspects an error from a panel call. A rejected or missing session
// ends the local session and is reported as ErrUnauthenticated.
func (g *Gate) Check(err error) error {
	if err == nil {
		return nil
	}

	var f *recordstore.Failure
	if (errors.As(err, &f) && f.Unauthorized()) || errors.Is(err, ErrUnauthenticated) {
		if cerr := g.clear(); cerr != nil {
			g.log.Warn("clear token failed", zap.Error(cerr))
		}
		return ErrUnauthenticated
	}
	return err
}

func (g *Gate) clear() error {
	g.mu.Lock()
	g.tok = nil
	g.mu.Unlock()
	return g.store.Clear()
}
