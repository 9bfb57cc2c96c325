package session

import (
	"context"  // Context for store operations
	"errors"   // Error checks
	"net/http" // Cookie attributes
	"time"     // Cookie lifetime

	"github.com/gin-gonic/gin" // Gin web framework
)

// Options configure the session cookie
type Options struct {
	CookieName string        // Cookie name
	TTL        time.Duration // Session and cookie lifetime
	Secure     bool          // HTTPS-only cookie
}

// Manager ties the session store to the cookie carried by clients
type Manager struct {
	store  Store   // Server-side records
	signer *Signer // Cookie signing
	opts   Options // Cookie settings
}

// NewManager returns a Manager signing cookies with secret
func NewManager(store Store, secret []byte, opts Options) *Manager {
	return &Manager{
		store:  store,
		signer: &Signer{Secret: secret, TTL: opts.TTL},
		opts:   opts,
	}
}

// CookieName returns the name of the session cookie
func (m *Manager) CookieName() string {
	return m.opts.CookieName
}

// Issue creates a session for userID and returns it with its signed cookie value
func (m *Manager) Issue(ctx context.Context, userID uint) (*Session, string, error) {
	sess, err := m.store.Create(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	value, err := m.signer.Sign(sess.ID)
	if err != nil {
		_, _ = m.store.Delete(ctx, sess.ID) // Do not leave an unreachable record behind
		return nil, "", err
	}
	return sess, value, nil
}

// Start binds the client to a fresh session for userID, dropping any session it held
func (m *Manager) Start(c *gin.Context, userID uint) (*Session, error) {
	ctx := c.Request.Context()
	if old, err := m.Load(c); err == nil {
		if _, err := m.store.Delete(ctx, old.ID); err != nil {
			return nil, err
		}
	}
	sess, value, err := m.Issue(ctx, userID)
	if err != nil {
		return nil, err
	}
	m.setCookie(c, value, int(m.opts.TTL.Seconds()))
	return sess, nil
}

// Load returns the live session referenced by the request cookie
func (m *Manager) Load(c *gin.Context) (*Session, error) {
	value, err := c.Cookie(m.opts.CookieName)
	if err != nil || value == "" {
		return nil, ErrSessionNotFound
	}
	id, err := m.signer.Parse(value)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return m.store.Get(c.Request.Context(), id)
}

// End deletes sess and expires the client cookie
func (m *Manager) End(c *gin.Context, sess *Session) error {
	existed, err := m.store.Delete(c.Request.Context(), sess.ID)
	if err != nil {
		return err
	}
	m.setCookie(c, "", -1)
	if !existed {
		return ErrSessionNotFound
	}
	return nil
}

// IsNotFound reports whether err means the client has no live session
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", "", m.opts.Secure, true)
}
