package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/baivab22/ictforumFrontend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found or expired")

// Store persists admin sessions: one row per logged-in browser, binding the
// session cookie UUID to the backend bearer token and a copy of the user.
type Store struct {
	db       *sql.DB
	lifetime time.Duration
}

func NewStore(db *sql.DB, lifetime time.Duration) *Store {
	return &Store{db: db, lifetime: lifetime}
}

// Create inserts a session for the given user and bearer token. The session
// lifetime is the configured duration, capped at the token's own expiry when
// the token parses as a JWT — a session must never outlive its token.
func (s *Store) Create(user models.User, token string) (*models.Session, error) {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("session: failed to encode user: %w", err)
	}

	expires := time.Now().Add(s.lifetime)
	if exp, ok := tokenExpiry(token); ok && exp.Before(expires) {
		expires = exp
	}

	sessionUUID := uuid.New().String()
	res, err := s.db.Exec(
		"INSERT INTO sessions (uuid, token, user_json, expires) VALUES (?, ?, ?, ?)",
		sessionUUID, token, string(userJSON), expires,
	)
	if err != nil {
		return nil, fmt.Errorf("session: failed to create session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("session: failed to get session ID: %w", err)
	}

	return &models.Session{ID: id, UUID: sessionUUID, Token: token, User: user, Expires: expires}, nil
}

// Get looks up a session by its cookie UUID. Expired sessions are deleted
// on sight and reported as ErrNotFound.
func (s *Store) Get(sessionUUID string) (*models.Session, error) {
	var (
		sess     models.Session
		userJSON string
	)
	err := s.db.QueryRow(
		"SELECT id, uuid, token, user_json, expires FROM sessions WHERE uuid = ?",
		sessionUUID,
	).Scan(&sess.ID, &sess.UUID, &sess.Token, &userJSON, &sess.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("session: failed to query session: %w", err)
	}

	if time.Now().After(sess.Expires) {
		_, _ = s.db.Exec("DELETE FROM sessions WHERE uuid = ?", sessionUUID)
		return nil, ErrNotFound
	}

	if err := json.Unmarshal([]byte(userJSON), &sess.User); err != nil {
		return nil, fmt.Errorf("session: failed to decode user: %w", err)
	}
	return &sess, nil
}

// Delete removes a session, logging out that browser.
func (s *Store) Delete(sessionUUID string) error {
	result, err := s.db.Exec("DELETE FROM sessions WHERE uuid = ?", sessionUUID)
	if err != nil {
		return fmt.Errorf("session: failed to delete session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("session: failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// tokenExpiry reads the exp claim from a bearer token. The signature is not
// verified here: verification is the backend's job, the frontend only needs
// the expiry to bound the session lifetime. Opaque tokens report !ok.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Tokens adapts the store to the backend client's TokenProvider: the token
// is read from the request context, and an authorization failure deletes
// the session row so the next request falls back to the login view.
type Tokens struct {
	Store *Store
}

func (t Tokens) Token(ctx context.Context) string {
	if sess := FromContext(ctx); sess != nil {
		return sess.Token
	}
	return ""
}

func (t Tokens) Clear(ctx context.Context) {
	sess := FromContext(ctx)
	if sess == nil {
		return
	}
	if err := t.Store.Delete(sess.UUID); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("Failed to clear session %s after auth failure: %v", sess.UUID, err)
	}
}
