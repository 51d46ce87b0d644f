package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/invitekit/internal/db"
)

// ErrNotFound is returned by Get for unknown ids.
var ErrNotFound = errors.New("export not found")

// Store persists export records.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new export. If e.ID is empty a UUID is generated; a zero
// timestamp becomes the current time. The stored record is returned.
func (s *Store) Record(ctx context.Context, e Export) (Export, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	e.Timestamp = e.Timestamp.UTC().Truncate(time.Second)
	if e.Omissions == nil {
		e.Omissions = []string{}
	}

	omissions, err := json.Marshal(e.Omissions)
	if err != nil {
		return e, fmt.Errorf("marshalling omissions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO exports (
			id, timestamp, source, archive_name, path,
			couple_names, event_date, entry_count, size_bytes, omissions
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Timestamp.Format(time.DateTime),
		string(e.Source),
		e.ArchiveName,
		e.Path,
		e.CoupleNames,
		e.EventDate,
		e.EntryCount,
		e.SizeBytes,
		string(omissions),
	)
	if err != nil {
		return e, fmt.Errorf("inserting export: %w", err)
	}
	return e, nil
}

const selectColumns = "SELECT id, timestamp, source, archive_name, path, couple_names, event_date, entry_count, size_bytes, omissions FROM exports"

// Get retrieves a single export.
func (s *Store) Get(ctx context.Context, id string) (*Export, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)
	e, err := scanInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", id, err)
	}
	return e, nil
}

// Filter controls which exports List returns.
type Filter struct {
	Source Source
	Since  *time.Time
	Limit  int
	Offset int
}

// List returns exports matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]Export, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, string(filter.Source))
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := selectColumns
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exports: %w", err)
	}
	defer rows.Close()

	var out []Export
	for rows.Next() {
		e, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// DeleteBefore removes all exports older than the given time.
// Returns the number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM exports WHERE timestamp < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old exports: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Export, error) {
	var (
		e             Export
		ts, source    string
		omissionsJSON string
	)
	err := sc.Scan(&e.ID, &ts, &source, &e.ArchiveName, &e.Path,
		&e.CoupleNames, &e.EventDate, &e.EntryCount, &e.SizeBytes, &omissionsJSON)
	if err != nil {
		return nil, err
	}
	e.Source = Source(source)

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		e.Timestamp = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		e.Timestamp = t
	}

	if err := json.Unmarshal([]byte(omissionsJSON), &e.Omissions); err != nil || e.Omissions == nil {
		e.Omissions = []string{}
	}
	return &e, nil
}
