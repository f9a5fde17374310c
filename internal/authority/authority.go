// Package authority owns the admin panel's authentication state: the
// current session, the resolved role, and the loading flag consumers read
// synchronously. All backend I/O is hidden behind the Backend boundary.
package authority

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// Snapshot is the synchronous view consumers read. It is also the input
// to guard decisions.
type Snapshot struct {
	Session *domain.AdminSession
	Role    domain.Role
	Loading bool
}

// SignInResult reports the outcome of a sign-in attempt.
type SignInResult struct {
	Success bool
	Message string
}

// NoAdminAccessMessage is returned when credentials verify but no
// authorization record exists for the user.
const NoAdminAccessMessage = "You do not have admin access"

type subscription struct {
	id int
	fn func(Snapshot)
}

// Authority is the single source of truth for one admin principal's
// session and role. It is safe for concurrent use; the last completed
// state-mutating operation wins, enforced by an operation counter.
type Authority struct {
	backend Backend
	store   TokenStore
	logger  *zap.Logger

	mu      sync.Mutex
	session *domain.AdminSession
	role    domain.Role
	loading bool
	op      uint64
	subs    []subscription
	nextSub int
}

// Option customizes Authority construction.
type Option func(*Authority)

// WithTokenStore sets the persisted-token store used for startup restore.
func WithTokenStore(store TokenStore) Option {
	return func(a *Authority) { a.store = store }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Authority) { a.logger = logger }
}

// New builds an Authority in its initial state: no session, no role,
// loading until Start completes the first session check.
func New(backend Backend, opts ...Option) *Authority {
	a := &Authority{
		backend: backend,
		store:   NewMemoryTokenStore(),
		logger:  zap.NewNop(),
		role:    domain.RoleUnresolved,
		loading: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CurrentSession returns the latest known session without blocking.
func (a *Authority) CurrentSession() *domain.AdminSession {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// CurrentRole returns the latest resolved role; RoleUnresolved while the
// lookup is pending or when there is no session.
func (a *Authority) CurrentRole() domain.Role {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.role
}

// Loading reports whether a session check or sign-in/out is in flight.
func (a *Authority) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// State returns a consistent snapshot of session, role and loading.
func (a *Authority) State() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{Session: a.session, Role: a.role, Loading: a.loading}
}

// Subscribe registers a listener fired after every actual session or role
// change, in registration order. The returned function unsubscribes.
func (a *Authority) Subscribe(fn func(Snapshot)) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs = append(a.subs, subscription{id: id, fn: fn})
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		for i, sub := range a.subs {
			if sub.id == id {
				a.subs = append(a.subs[:i], a.subs[i+1:]...)
				break
			}
		}
	}
}

// Start performs the initial session check. It blocks until the check
// completes; role resolution for a restored session continues in the
// background so it never delays the first render.
func (a *Authority) Start(ctx context.Context) {
	token, err := a.store.Load()
	if err != nil {
		a.logger.Warn("token store load failed", zap.Error(err))
		token = ""
	}
	if token == "" {
		a.applyState(nil, domain.RoleUnresolved)
		return
	}

	sess, err := a.backend.SessionFromToken(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrSessionInvalid) {
			a.logger.Warn("session restore failed", zap.Error(err))
		}
		if clearErr := a.store.Clear(); clearErr != nil {
			a.logger.Warn("token store clear failed", zap.Error(clearErr))
		}
		a.applyState(nil, domain.RoleUnresolved)
		return
	}

	a.applyState(sess, domain.RoleUnresolved)

	a.mu.Lock()
	op := a.op
	a.mu.Unlock()
	go a.resolveRole(ctx, op, sess.UserID)
}

// SignIn authenticates against the backend. A valid credential without an
// authorization record is reversed at the backend and reported as failure.
func (a *Authority) SignIn(ctx context.Context, email, password string) SignInResult {
	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return SignInResult{Message: "another authentication operation is in flight"}
	}
	a.op++
	op := a.op
	a.loading = true
	a.mu.Unlock()

	sess, err := a.backend.VerifyCredentials(ctx, email, password)
	if err != nil {
		a.settle(op)
		return SignInResult{Message: err.Error()}
	}

	role, err := a.backend.LookupRole(ctx, sess.UserID)
	if err != nil {
		// Never hold a signed-in-but-unauthorized session: reverse the
		// backend sign-in before reporting failure.
		if invErr := a.backend.InvalidateSession(ctx, sess.Token); invErr != nil {
			a.logger.Warn("rollback sign-out failed", zap.Error(invErr))
		}
		a.settle(op)
		if errors.Is(err, ErrNoRoleRecord) {
			return SignInResult{Message: NoAdminAccessMessage}
		}
		return SignInResult{Message: "could not resolve admin access"}
	}

	if err := a.backend.TouchLastLogin(ctx, sess.UserID); err != nil {
		a.logger.Warn("last-login update failed", zap.Error(err))
	}

	a.mu.Lock()
	if a.op != op {
		// A sign-out completed while this sign-in was in flight; the
		// sign-out wins and this completion is stale.
		a.mu.Unlock()
		if invErr := a.backend.InvalidateSession(ctx, sess.Token); invErr != nil {
			a.logger.Warn("stale sign-in cleanup failed", zap.Error(invErr))
		}
		return SignInResult{Message: "sign-in superseded by sign-out"}
	}
	snap, fns := a.setStateLocked(sess, role, false)
	a.mu.Unlock()

	if err := a.store.Save(sess.Token); err != nil {
		a.logger.Warn("token store save failed", zap.Error(err))
	}
	notify(snap, fns)
	return SignInResult{Success: true}
}

// SignOut clears local state first, then revokes the backend session.
// Local state reaches signed-out even when the backend call errors.
func (a *Authority) SignOut(ctx context.Context) {
	a.mu.Lock()
	a.op++
	token := ""
	if a.session != nil {
		token = a.session.Token
	}
	snap, fns := a.setStateLocked(nil, domain.RoleUnresolved, false)
	a.mu.Unlock()

	if err := a.store.Clear(); err != nil {
		a.logger.Warn("token store clear failed", zap.Error(err))
	}
	notify(snap, fns)

	if token == "" {
		return
	}
	if err := a.backend.InvalidateSession(ctx, token); err != nil {
		a.logger.Warn("backend sign-out failed; local session already cleared", zap.Error(err))
	}
}

// Invalidate handles an externally revoked session (token expiry or
// server-side invalidation): same terminal state as SignOut, without a
// backend call.
func (a *Authority) Invalidate() {
	a.mu.Lock()
	a.op++
	snap, fns := a.setStateLocked(nil, domain.RoleUnresolved, false)
	a.mu.Unlock()

	if err := a.store.Clear(); err != nil {
		a.logger.Warn("token store clear failed", zap.Error(err))
	}
	notify(snap, fns)
}

// RefreshRole retries role resolution for the current session, e.g. after
// a transient lookup failure.
func (a *Authority) RefreshRole(ctx context.Context) {
	a.mu.Lock()
	sess := a.session
	op := a.op
	a.mu.Unlock()
	if sess == nil {
		return
	}
	a.resolveRole(ctx, op, sess.UserID)
}

// Watch revalidates the current session against the backend on an
// interval, turning server-side invalidation into a local sign-out. It
// blocks until ctx is done and is meant to run on its own goroutine.
func (a *Authority) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.revalidate(ctx)
		}
	}
}

func (a *Authority) revalidate(ctx context.Context) {
	a.mu.Lock()
	sess := a.session
	a.mu.Unlock()
	if sess == nil {
		return
	}

	if _, err := a.backend.SessionFromToken(ctx, sess.Token); err != nil {
		if errors.Is(err, ErrSessionInvalid) {
			a.logger.Info("session invalidated by backend", zap.String("user_id", sess.UserID))
			a.Invalidate()
			return
		}
		a.logger.Warn("session revalidation failed", zap.Error(err))
	}
}

func (a *Authority) resolveRole(ctx context.Context, op uint64, userID string) {
	role, err := a.backend.LookupRole(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoRoleRecord) {
			a.logger.Warn("restored session has no role record", zap.String("user_id", userID))
		} else {
			a.logger.Warn("role lookup failed; continuing without elevated access", zap.Error(err))
		}
		role = domain.RoleUnresolved
	}

	a.mu.Lock()
	if a.op != op || a.session == nil || a.session.UserID != userID {
		a.mu.Unlock()
		return
	}
	snap, fns := a.setStateLocked(a.session, role, a.loading)
	a.mu.Unlock()
	notify(snap, fns)
}

// applyState replaces session/role and ends loading, publishing on change.
func (a *Authority) applyState(session *domain.AdminSession, role domain.Role) {
	a.mu.Lock()
	snap, fns := a.setStateLocked(session, role, false)
	a.mu.Unlock()
	notify(snap, fns)
}

// settle ends loading for an operation that mutated nothing, unless a
// newer operation already took over.
func (a *Authority) settle(op uint64) {
	a.mu.Lock()
	if a.op == op {
		a.loading = false
	}
	a.mu.Unlock()
}

// setStateLocked updates state and returns the listeners to fire, nil when
// neither session nor role actually changed.
func (a *Authority) setStateLocked(session *domain.AdminSession, role domain.Role, loading bool) (Snapshot, []func(Snapshot)) {
	changed := !a.session.SameAs(session) || a.role != role
	a.session = session
	a.role = role
	a.loading = loading

	snap := Snapshot{Session: session, Role: role, Loading: loading}
	if !changed {
		return snap, nil
	}
	fns := make([]func(Snapshot), len(a.subs))
	for i, sub := range a.subs {
		fns[i] = sub.fn
	}
	return snap, fns
}

func notify(snap Snapshot, fns []func(Snapshot)) {
	for _, fn := range fns {
		fn(snap)
	}
}
