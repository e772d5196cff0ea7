// heights.go - session-scoped detail panel heights
package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/timeline"
)

const (
	sessionCookie = "timeline_session"
	sessionKey    = "session"
)

// heightStore keeps the tallest reported detail-panel height per session and
// record. Heights only ever grow within a session.
type heightStore struct {
	db  *sql.DB
	now func() time.Time
}

func newHeightStore(db *sql.DB) (*heightStore, error) {
	createTable := `
	CREATE TABLE IF NOT EXISTS detail_heights (
		session_id TEXT NOT NULL,
		record_id TEXT NOT NULL,
		height INTEGER NOT NULL,
		updated_at INTEGER NOT NULL, -- unix seconds
		PRIMARY KEY (session_id, record_id)
	)`
	if _, err := db.Exec(createTable); err != nil {
		return nil, fmt.Errorf("failed to create detail_heights table: %w", err)
	}
	return &heightStore{db: db, now: time.Now}, nil
}

// load returns every height recorded for the session.
func (s *heightStore) load(ctx context.Context, session string) (timeline.Heights, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, height FROM detail_heights WHERE session_id = ?
	`, session)
	if err != nil {
		return nil, fmt.Errorf("error loading detail heights: %w", err)
	}
	defer rows.Close()

	heights := timeline.Heights{}
	for rows.Next() {
		var id string
		var height int
		if err := rows.Scan(&id, &height); err != nil {
			return nil, fmt.Errorf("error scanning detail height: %w", err)
		}
		heights[id] = height
	}
	return heights, rows.Err()
}

// report folds a measured height into the session. It returns the session's
// heights after the report and whether the stored value grew.
func (s *heightStore) report(ctx context.Context, session, id string, height float64) (timeline.Heights, bool, error) {
	current, err := s.load(ctx, session)
	if err != nil {
		return nil, false, err
	}

	next := timeline.Aggregate(current, id, height)
	if next[id] == current[id] {
		// still counts as activity for cleanup
		_, err = s.db.ExecContext(ctx, `
			UPDATE detail_heights SET updated_at = ? WHERE session_id = ?
		`, s.now().Unix(), session)
		if err != nil {
			return nil, false, fmt.Errorf("error touching detail heights: %w", err)
		}
		return current, false, nil
	}

	// MAX keeps the row monotonic under concurrent reports
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO detail_heights (session_id, record_id, height, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id, record_id) DO UPDATE
		SET height = MAX(detail_heights.height, excluded.height), updated_at = excluded.updated_at
	`, session, id, next[id], s.now().Unix())
	if err != nil {
		return nil, false, fmt.Errorf("error recording detail height: %w", err)
	}
	return next, true, nil
}

// cleanup removes sessions whose last report, grown or not, is older than ttl.
func (s *heightStore) cleanup(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := s.now().Add(-ttl).Unix()
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM detail_heights
		WHERE session_id IN (
			SELECT session_id FROM detail_heights
			GROUP BY session_id
			HAVING MAX(updated_at) < ?
		)
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error cleaning up detail heights: %w", err)
	}
	return result.RowsAffected()
}

// runCleanup prunes stale sessions every interval until ctx is done.
func (s *heightStore) runCleanup(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		rowsDeleted, err := s.cleanup(ctx, ttl)
		if err != nil {
			log.Printf("Error cleaning up detail heights: %v", err)
		} else if rowsDeleted > 0 {
			staleSessionRows.Add(float64(rowsDeleted))
			log.Printf("Session cleanup: Removed %d detail heights older than %s", rowsDeleted, ttl)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func generateSessionID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate session id:", err)
	}
	return hex.EncodeToString(bytes)
}

// sessionMiddleware attaches a timeline session id to the request, issuing a
// cookie when the visitor has none.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := c.Cookie(sessionCookie)
		if err != nil || len(session) != 32 {
			session = generateSessionID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, session, 0, "/", "", false, true)
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
