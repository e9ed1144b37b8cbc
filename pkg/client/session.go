// Package client holds the Go SDK side of authentication: a session object
// whose state only becomes Authenticated once both the sign-in and the role
// lookup have completed.
package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateUnknown State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "invalid"
	}
}

// ErrSuperseded is returned by SignIn and Resume when a later SignIn, Resume
// or SignOut started before they finished. The session reflects the later
// operation.
var ErrSuperseded = errors.New("client: session operation superseded")

// Snapshot is an immutable view of a Session.
type Snapshot struct {
	State      State
	Identity   Identity // zero unless State is StateAuthenticated
	IsAdmin    bool
	Generation uint64
}

// IsLoading reports whether the session has not settled yet. Callers must not
// branch on IsAdmin while this is true.
func (s Snapshot) IsLoading() bool {
	return s.State == StateUnknown || s.State == StateLoading
}

// Authenticator performs the remote half of the session lifecycle.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (Credentials, error)
	// ResolveRole reports whether the signed-in user holds the admin role.
	ResolveRole(ctx context.Context, creds Credentials) (bool, error)
	SignOut(ctx context.Context, creds Credentials) error
}

// Session is the client-side auth state machine:
//
//	Unknown -> Loading -> {Authenticated, Anonymous}
//
// Every SignIn, Resume and SignOut bumps a generation counter. A remote call
// only commits its result if no later operation has started, so rapid
// sign-in/sign-out sequences settle on the last operation issued.
type Session struct {
	api Authenticator
	log *slog.Logger

	mu      sync.Mutex
	snap    Snapshot
	creds   Credentials
	settled chan struct{} // closed when the current generation settles
	subs    map[int]chan Snapshot
	nextSub int
}

// NewSession creates a Session in StateUnknown.
func NewSession(api Authenticator, logger *slog.Logger) *Session {
	return &Session{
		api:     api,
		log:     logger.With("component", "session"),
		settled: make(chan struct{}),
		subs:    make(map[int]chan Snapshot),
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// AccessToken returns the bearer token of an authenticated session.
func (s *Session) AccessToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.State != StateAuthenticated {
		return "", false
	}
	return s.creds.AccessToken, true
}

// Wait blocks until the session is Authenticated or Anonymous and returns
// that snapshot.
func (s *Session) Wait(ctx context.Context) (Snapshot, error) {
	for {
		s.mu.Lock()
		snap, settled := s.snap, s.settled
		s.mu.Unlock()

		if !snap.IsLoading() {
			return snap, nil
		}

		select {
		case <-settled:
		case <-ctx.Done():
			return snap, ctx.Err()
		}
	}
}

// Subscribe returns a channel that receives the latest snapshot after every
// transition. A slow reader only misses intermediate values, never the most
// recent one. Call cancel to stop receiving.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snap
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// SignIn authenticates and resolves the role before the session becomes
// Authenticated. A failed role lookup settles as a non-admin session and is
// only logged. Invalid credentials leave the session Anonymous. A session
// held before the call is revoked remotely whatever the outcome.
func (s *Session) SignIn(ctx context.Context, email, password string) (Snapshot, error) {
	gen, replaced := s.begin()
	s.revoke(ctx, replaced, "revoke replaced session failed")

	creds, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		if s.commit(gen, Snapshot{State: StateAnonymous}, Credentials{}) {
			return s.Snapshot(), err
		}
		return s.Snapshot(), ErrSuperseded
	}

	return s.resolve(ctx, gen, creds)
}

// Resume restores a previously issued session, for example after a restart.
// Empty credentials settle as Anonymous. A different session held before the
// call is revoked remotely.
func (s *Session) Resume(ctx context.Context, creds Credentials) (Snapshot, error) {
	gen, replaced := s.begin()
	if replaced.RefreshToken != creds.RefreshToken || replaced.AccessToken != creds.AccessToken {
		s.revoke(ctx, replaced, "revoke replaced session failed")
	}

	if creds.AccessToken == "" {
		if s.commit(gen, Snapshot{State: StateAnonymous}, Credentials{}) {
			return s.Snapshot(), nil
		}
		return s.Snapshot(), ErrSuperseded
	}

	return s.resolve(ctx, gen, creds)
}

// SignOut settles the session as Anonymous immediately and then revokes the
// remote session. It always succeeds locally; a remote failure is logged.
func (s *Session) SignOut(ctx context.Context) {
	s.mu.Lock()
	old := s.creds
	s.snap.Generation++
	s.settle(Snapshot{State: StateAnonymous, Generation: s.snap.Generation}, Credentials{})
	s.mu.Unlock()

	s.revoke(ctx, old, "remote sign-out failed")
}

func (s *Session) resolve(ctx context.Context, gen uint64, creds Credentials) (Snapshot, error) {
	admin, err := s.api.ResolveRole(ctx, creds)
	if err != nil {
		s.log.WarnContext(ctx, "role lookup failed, treating as non-admin",
			slog.String("user_id", creds.Identity.UserID.String()),
			slog.String("error", err.Error()),
		)
		admin = false
	}

	next := Snapshot{State: StateAuthenticated, Identity: creds.Identity, IsAdmin: admin}
	if s.commit(gen, next, creds) {
		return s.Snapshot(), nil
	}

	// A later operation owns the session now; drop the orphaned remote one.
	s.revoke(ctx, creds, "revoke superseded session failed")
	return s.Snapshot(), ErrSuperseded
}

// revoke ends creds on the server. It outlives a cancelled ctx and only logs
// failures.
func (s *Session) revoke(ctx context.Context, creds Credentials, msg string) {
	if creds.RefreshToken == "" && creds.AccessToken == "" {
		return
	}
	if err := s.api.SignOut(context.WithoutCancel(ctx), creds); err != nil {
		s.log.WarnContext(ctx, msg,
			slog.String("user_id", creds.Identity.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// begin starts a new generation, moves to Loading and hands back the
// credentials it displaced.
func (s *Session) begin() (uint64, Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := s.creds
	s.snap = Snapshot{State: StateLoading, Generation: s.snap.Generation + 1}
	s.creds = Credentials{}
	if !isOpen(s.settled) {
		s.settled = make(chan struct{})
	}
	s.publish()
	return s.snap.Generation, replaced
}

// commit applies next if gen is still current.
func (s *Session) commit(gen uint64, next Snapshot, creds Credentials) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Generation != gen {
		return false
	}
	next.Generation = gen
	s.settle(next, creds)
	return true
}

// settle must be called with s.mu held.
func (s *Session) settle(next Snapshot, creds Credentials) {
	s.snap = next
	s.creds = creds
	if isOpen(s.settled) {
		close(s.settled)
	}
	s.publish()
}

// publish must be called with s.mu held.
func (s *Session) publish() {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s.snap
	}
}

func isOpen(ch chan struct{}) bool {
	select {
	case <-ch:
		return false
	default:
		return true
	}
}
