package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

// SaveTurn appends a turn and bumps the usage counter. Both writes happen in
// one transaction: the counter invariant total == lifetime saves cannot
// drift on a partial failure. The increment is relative
// (total_messages + 1) so concurrent writers do not lose updates.
// Returns the stored turn with its assigned id and timestamp.
func (c *Client) SaveTurn(ctx context.Context, turn models.Turn) (models.Turn, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Turn{}, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)

	var sessionID any
	if turn.SessionID != "" {
		sessionID = turn.SessionID
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO conversations (user_message, bot_response, language, timestamp, session_id)
		VALUES (?, ?, ?, ?, ?)
	`, turn.UserMessage, turn.BotResponse, string(turn.Locale), now.Format(timeLayout), sessionID)
	if err != nil {
		return models.Turn{}, fmt.Errorf("insert turn: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Turn{}, fmt.Errorf("turn id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE statistics
		SET total_messages = total_messages + 1,
		    last_updated = ?
		WHERE id = 1
	`, now.Format(timeLayout)); err != nil {
		return models.Turn{}, fmt.Errorf("update counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Turn{}, fmt.Errorf("commit save: %w", err)
	}

	turn.ID = id
	turn.Timestamp = now
	c.logger.Debug("turn saved", "id", id, "session_id", turn.SessionID)
	return turn, nil
}

// History returns the limit most recent turns, most recent first. Ordering
// is timestamp DESC with id DESC as tiebreaker so same-second inserts come
// back in a deterministic order.
func (c *Client) History(ctx context.Context, limit int) ([]models.Turn, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, user_message, bot_response, language, timestamp, session_id
		FROM conversations
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

// Search returns up to limit turns where keyword occurs case-insensitively
// in either the user message or the bot response, most recent first.
// Keyword validation is the transport boundary's job, not the store's.
func (c *Client) Search(ctx context.Context, keyword string, limit int) ([]models.Turn, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	pattern := "%" + keyword + "%"
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, user_message, bot_response, language, timestamp, session_id
		FROM conversations
		WHERE user_message LIKE ? OR bot_response LIKE ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("query search: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

// Statistics aggregates usage: lifetime counter, per-locale counts, counts
// for today and the trailing 7 calendar days (inclusive, by date, not a
// rolling 168h window), and the 5 most frequent user messages grouped
// case-insensitively. Ties in the top-5 break on earliest first occurrence
// (MIN(id) ASC).
func (c *Client) Statistics(ctx context.Context) (models.Statistics, error) {
	stats := models.Statistics{ByLocale: make(map[models.Locale]int)}

	err := c.db.QueryRowContext(ctx, `
		SELECT total_messages, last_updated FROM statistics WHERE id = 1
	`).Scan(&stats.TotalMessages, &stats.LastUpdated)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("query counter: %w", err)
	}
	stats.LastUpdated = stats.LastUpdated.UTC()

	rows, err := c.db.QueryContext(ctx, `
		SELECT language, COUNT(*) FROM conversations GROUP BY language
	`)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("query locale counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lang string
		var count int
		if err := rows.Scan(&lang, &count); err != nil {
			return models.Statistics{}, fmt.Errorf("scan locale count: %w", err)
		}
		stats.ByLocale[models.Locale(lang)] = count
	}
	if err := rows.Err(); err != nil {
		return models.Statistics{}, fmt.Errorf("locale counts: %w", err)
	}

	err = c.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM conversations WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.Today)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("query today count: %w", err)
	}

	err = c.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM conversations WHERE DATE(timestamp) >= DATE('now', '-7 days')
	`).Scan(&stats.ThisWeek)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("query week count: %w", err)
	}

	topRows, err := c.db.QueryContext(ctx, `
		SELECT user_message, COUNT(*) AS count
		FROM conversations
		GROUP BY LOWER(user_message)
		ORDER BY count DESC, MIN(id) ASC
		LIMIT 5
	`)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("query top messages: %w", err)
	}
	defer topRows.Close()
	for topRows.Next() {
		var mc models.MessageCount
		if err := topRows.Scan(&mc.Message, &mc.Count); err != nil {
			return models.Statistics{}, fmt.Errorf("scan top message: %w", err)
		}
		stats.TopMessages = append(stats.TopMessages, mc)
	}
	if err := topRows.Err(); err != nil {
		return models.Statistics{}, fmt.Errorf("top messages: %w", err)
	}

	return stats, nil
}

// PurgeOlderThan deletes turns whose date is strictly older than days days
// before today and returns the number deleted. The usage counter is NOT
// decremented: total_messages stays a monotonic lifetime counter, matching
// the documented behavior external consumers rely on.
func (c *Client) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, ErrInvalidDays
	}

	res, err := c.db.ExecContext(ctx, `
		DELETE FROM conversations
		WHERE DATE(timestamp) < DATE('now', '-' || ? || ' days')
	`, days)
	if err != nil {
		return 0, fmt.Errorf("purge turns: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge count: %w", err)
	}

	c.logger.Info("purged old conversations", "deleted", deleted, "days", days)
	return deleted, nil
}

func scanTurns(rows *sql.Rows) ([]models.Turn, error) {
	turns := []models.Turn{}
	for rows.Next() {
		var (
			t         models.Turn
			lang      sql.NullString
			ts        time.Time
			sessionID sql.NullString
		)
		// The columns are declared DATETIME, so the driver hands back
		// time.Time; scan it directly instead of re-parsing text.
		if err := rows.Scan(&t.ID, &t.UserMessage, &t.BotResponse, &lang, &ts, &sessionID); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.Locale = models.Locale(lang.String)
		t.SessionID = sessionID.String
		t.Timestamp = ts.UTC()
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return turns, nil
}
