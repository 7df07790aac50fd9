package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// Session is a server-side session row backing the session cookie.
type Session struct {
	SID       string
	ExpiresAt time.Time
}

const getSessionSQL = `
    SELECT sid, expires_at
    FROM sessions
    WHERE sid = $1 AND expires_at > NOW()
`

// GetSession returns an unexpired session, or ErrNotFound.
func (s *Store) GetSession(ctx context.Context, sid string) (Session, error) {
	var sess Session
	err := s.pool.QueryRow(ctx, getSessionSQL, sid).Scan(&sess.SID, &sess.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	return sess, err
}

const upsertSessionSQL = `
    INSERT INTO sessions (sid, expires_at)
    VALUES ($1, $2)
    ON CONFLICT (sid) DO UPDATE
    SET expires_at = EXCLUDED.expires_at
`

// TouchSession creates the session row or extends its expiry.
func (s *Store) TouchSession(ctx context.Context, sid string, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx, upsertSessionSQL, sid, expiresAt)
	return err
}

const pruneSessionsSQL = `
    DELETE FROM sessions
    WHERE expires_at <= NOW()
`

// PruneSessions removes expired rows and reports how many were deleted.
func (s *Store) PruneSessions(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, pruneSessionsSQL)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
