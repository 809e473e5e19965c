package analytics

import (
	"context"
	"fmt"
	"time"
)

// Event kinds recorded alongside page views.
const (
	EventProjectOpen    = "project_open"
	EventResumeDownload = "resume_download"
)

// Visit is a recorded page view with a hashed IP.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Count is a subject with how often it occurred.
type Count struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}

// Message is a contact form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Delivered bool      `json:"delivered"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats summarizes everything the admin dashboard shows.
type Stats struct {
	TotalVisitors    int64   `json:"total_visitors"`
	UniqueVisitors   int64   `json:"unique_visitors"`
	VisitorsToday    int64   `json:"visitors_today"`
	VisitorsThisWeek int64   `json:"visitors_this_week"`
	ResumeDownloads  int64   `json:"resume_downloads"`
	ProjectOpens     []Count `json:"project_opens"`
	Messages         int64   `json:"messages"`
	RecentVisitors   []Visit `json:"recent_visitors"`
}

// RecordVisit stores a page view.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, created_at)
		VALUES (?, ?, ?, ?)
	`, s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordEvent stores an interaction such as opening a project.
func (s *Store) RecordEvent(ctx context.Context, kind, subject, ip string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (kind, subject, hashed_ip, created_at)
		VALUES (?, ?, ?, ?)
	`, kind, subject, s.HashIP(ip), s.now().Unix())
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// SaveMessage stores a contact message and returns its id.
func (s *Store) SaveMessage(ctx context.Context, m Message) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (name, email, body, delivered, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.Email, m.Body, m.Delivered, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("save message: %w", err)
	}
	return res.LastInsertId()
}

// MarkDelivered flags a message as relayed by mail.
func (s *Store) MarkDelivered(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE messages SET delivered = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark message delivered: %w", err)
	}
	return nil
}

// Messages lists contact messages, newest first.
func (s *Store) Messages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, delivered, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var ts int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Delivered, &ts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Timestamp = time.Unix(ts, 0)
		out = append(out, m)
	}
	return out, rows.Err()
}

// RecentVisits lists page views, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0)
		out = append(out, v)
	}
	return out, rows.Err()
}

// Stats computes the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{weekAgo.Unix()}},
		{&stats.ResumeDownloads, `SELECT COUNT(*) FROM events WHERE kind = ?`, []any{EventResumeDownload}},
		{&stats.Messages, `SELECT COUNT(*) FROM messages`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("query stats: %w", err)
		}
	}

	var err error
	stats.ProjectOpens, err = s.topEvents(ctx, EventProjectOpen, 10)
	if err != nil {
		return nil, err
	}

	stats.RecentVisitors, err = s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) topEvents(ctx context.Context, kind string, limit int) ([]Count, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, COUNT(*) AS n
		FROM events
		WHERE kind = ?
		GROUP BY subject
		ORDER BY n DESC, subject ASC
		LIMIT ?
	`, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("query %s events: %w", kind, err)
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Subject, &c.Count); err != nil {
			return nil, fmt.Errorf("scan %s events: %w", kind, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Cleanup deletes visitor and event rows older than the retention window.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-Retention).Unix()

	var total int64
	for _, table := range []string{"visitors", "events"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE created_at < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	if total > 0 {
		s.logger.Info("privacy cleanup removed old rows", "rows", total)
	}
	return total, nil
}
