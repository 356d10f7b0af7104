package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/housesell/internal/common"
	"github.com/dmitrijs2005/housesell/internal/cryptox"
	"github.com/dmitrijs2005/housesell/internal/logging"
	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
	"github.com/dmitrijs2005/housesell/internal/repositories/session"
	"github.com/dmitrijs2005/housesell/internal/repositories/users"
)

// DefaultMinPasswordLength is the shortest password Signup accepts unless
// configured otherwise.
const DefaultMinPasswordLength = 6

// SessionOptions tunes a SessionManager. Zero values select defaults.
type SessionOptions struct {
	MinPasswordLength int
	HashParams        *cryptox.Params
	Logger            logging.Logger
	Now               func() time.Time
}

// SessionManager registers users, checks credentials and tracks the current
// session. The session is read from the store once, at construction.
type SessionManager struct {
	store    kv.Store
	users    users.Repository
	sessions session.Repository

	log       logging.Logger
	params    cryptox.Params
	minPwdLen int
	now       func() time.Time

	mu      sync.Mutex
	current *models.PublicUser
}

// NewSessionManager initializes the user collection if it is missing and
// restores the persisted session, if any.
func NewSessionManager(ctx context.Context, store kv.Store, opts SessionOptions) (*SessionManager, error) {
	m := &SessionManager{
		store:     store,
		users:     users.NewKVRepository(store),
		sessions:  session.NewKVRepository(store),
		log:       opts.Logger,
		params:    cryptox.DefaultParams(),
		minPwdLen: opts.MinPasswordLength,
		now:       opts.Now,
	}
	if m.log == nil {
		m.log = logging.Discard()
	}
	m.log = m.log.With("component", "session")
	if opts.HashParams != nil {
		m.params = *opts.HashParams
	}
	if m.minPwdLen <= 0 {
		m.minPwdLen = DefaultMinPasswordLength
	}
	if m.now == nil {
		m.now = time.Now
	}

	if err := m.users.Init(ctx); err != nil {
		return nil, storageErr("init users", err)
	}

	cur, err := m.sessions.Load(ctx)
	switch {
	case errors.Is(err, kv.ErrCorrupt):
		m.log.Warn(ctx, "discarding unreadable session", "error", err)
	case err != nil:
		return nil, storageErr("load session", err)
	}
	m.current = cur
	if cur != nil {
		m.log.Debug(ctx, "session restored", "user", cur.Email)
	}

	return m, nil
}

// loadUsers reads the user collection; an unreadable one counts as empty.
func (m *SessionManager) loadUsers(ctx context.Context) ([]models.User, error) {
	list, err := m.users.Load(ctx)
	if errors.Is(err, kv.ErrCorrupt) {
		m.log.Warn(ctx, "treating unreadable user collection as empty", "error", err)
		return list, nil
	}
	if err != nil {
		return nil, storageErr("load users", err)
	}
	return list, nil
}

// Signup registers a new user and logs them in.
func (m *SessionManager) Signup(ctx context.Context, email, password string) (models.PublicUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.PublicUser{}, err
	}

	if strings.TrimSpace(email) == "" {
		return models.PublicUser{}, fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if len([]rune(password)) < m.minPwdLen {
		return models.PublicUser{}, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, m.minPwdLen)
	}

	list, err := m.loadUsers(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}
	for _, u := range list {
		if u.Email == email {
			return models.PublicUser{}, common.ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: cryptox.HashPassword([]byte(password), m.params),
		CreatedAt:    m.now().UTC(),
	}
	pub := user.Public()

	usersEntry, err := m.users.Entry(append(list, user))
	if err != nil {
		return models.PublicUser{}, storageErr("encode users", err)
	}
	sessionEntry, err := m.sessions.Entry(pub)
	if err != nil {
		return models.PublicUser{}, storageErr("encode session", err)
	}
	if err := m.store.SetMany(ctx, usersEntry, sessionEntry); err != nil {
		return models.PublicUser{}, storageErr("save signup", err)
	}

	m.current = &pub
	m.log.Info(ctx, "user registered", "id", pub.ID, "email", pub.Email)
	return pub, nil
}

// Login checks the credentials and makes the user the current session.
func (m *SessionManager) Login(ctx context.Context, email, password string) (models.PublicUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.PublicUser{}, err
	}

	list, err := m.loadUsers(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}

	var found *models.User
	for i := range list {
		if list[i].Email == email {
			found = &list[i]
			break
		}
	}
	if found == nil {
		return models.PublicUser{}, common.ErrInvalidCredentials
	}

	ok, err := cryptox.VerifyPassword([]byte(password), found.PasswordHash)
	if err != nil {
		m.log.Warn(ctx, "stored password hash is unreadable", "user", found.ID, "error", err)
		return models.PublicUser{}, common.ErrInvalidCredentials
	}
	if !ok {
		return models.PublicUser{}, common.ErrInvalidCredentials
	}

	pub := found.Public()
	if err := m.sessions.Save(ctx, pub); err != nil {
		return models.PublicUser{}, storageErr("save session", err)
	}

	m.current = &pub
	m.log.Info(ctx, "user logged in", "id", pub.ID)
	return pub, nil
}

// Logout ends the current session. It always succeeds: a failure to remove
// the persisted pointer is logged and the in-memory session is cleared
// regardless.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.current
	m.current = nil

	if err := m.sessions.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to remove persisted session", "error", storageErr("clear session", err))
	}
	if prev != nil {
		m.log.Info(ctx, "user logged out", "id", prev.ID)
	}
	return nil
}

// CurrentSession returns the logged-in user, if any.
func (m *SessionManager) CurrentSession() (models.PublicUser, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return models.PublicUser{}, false
	}
	return *m.current, true
}

func (m *SessionManager) PasswordStrength(password string) models.PasswordStrength {
	return models.RatePassword(password)
}

// MinPasswordLength is the shortest password Signup accepts.
func (m *SessionManager) MinPasswordLength() int {
	return m.minPwdLen
}
