// Package notes persists styled documents in SQLite.
//
// Every save that changes the document appends a revision, so earlier
// versions stay available for diffing. Documents are stored in the buffer
// package's JSON encoding and identified by a BLAKE3 checksum of it.
package notes

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"github.com/iw2rmb/richtext/buffer"
)

// ErrNotFound is returned when no note has the requested ID.
var ErrNotFound = errors.New("notes: not found")

// Note is the latest state of a stored document.
type Note struct {
	ID        string
	Title     string
	Body      []byte // buffer.Encode output
	Checksum  string // hex BLAKE3 of Body
	Revision  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Buffer decodes the note body.
func (n Note) Buffer() (*buffer.Buffer, error) {
	return buffer.Decode(n.Body)
}

// Revision is one saved version of a note.
type Revision struct {
	NoteID    string
	Number    int
	Body      []byte
	Checksum  string
	CreatedAt time.Time
}

// Store is safe for concurrent use.
type Store struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	body       BLOB NOT NULL,
	checksum   TEXT NOT NULL,
	revision   INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS revisions (
	note_id    TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
	number     INTEGER NOT NULL,
	body       BLOB NOT NULL,
	checksum   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (note_id, number)
);
`

// Open opens (creating when needed) the database at path and migrates it.
// ":memory:" gives a private in-memory store.
func Open(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: log, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug("notes store opened", "path", path)
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Checksum returns the hex BLAKE3 digest of body.
func Checksum(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Create stores doc as a new note at revision 1.
func (s *Store) Create(ctx context.Context, title string, doc *buffer.Buffer) (Note, error) {
	body, err := buffer.Encode(doc)
	if err != nil {
		return Note{}, fmt.Errorf("encode: %w", err)
	}
	now := s.now().UTC()
	n := Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		Checksum:  Checksum(body),
		Revision:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes (id, title, body, checksum, revision, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Body, n.Checksum, n.Revision, formatTime(n.CreatedAt), formatTime(n.UpdatedAt),
		); err != nil {
			return err
		}
		return insertRevision(ctx, tx, n)
	})
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}
	s.log.Info("note created", "id", n.ID, "title", n.Title)
	return n, nil
}

// Get returns the latest state of a note.
func (s *Store) Get(ctx context.Context, id string) (Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, body, checksum, revision, created_at, updated_at FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Note{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Note{}, fmt.Errorf("get %s: %w", id, err)
	}
	return n, nil
}

// List returns every note, most recently updated first. Bodies are included.
func (s *Store) List(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, checksum, revision, created_at, updated_at FROM notes ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Save stores doc as the next revision of note id. A document whose
// checksum matches the latest revision is not stored again and changed is
// false.
func (s *Store) Save(ctx context.Context, id string, doc *buffer.Buffer) (n Note, changed bool, err error) {
	body, err := buffer.Encode(doc)
	if err != nil {
		return Note{}, false, fmt.Errorf("encode: %w", err)
	}
	sum := Checksum(body)

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT id, title, body, checksum, revision, created_at, updated_at FROM notes WHERE id = ?`, id)
		cur, err := scanNote(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if cur.Checksum == sum {
			n = cur
			return nil
		}

		n = cur
		n.Body = body
		n.Checksum = sum
		n.Revision = cur.Revision + 1
		n.UpdatedAt = s.now().UTC()
		if _, err := tx.ExecContext(ctx,
			`UPDATE notes SET body = ?, checksum = ?, revision = ?, updated_at = ? WHERE id = ?`,
			n.Body, n.Checksum, n.Revision, formatTime(n.UpdatedAt), n.ID,
		); err != nil {
			return err
		}
		changed = true
		return insertRevision(ctx, tx, n)
	})
	if err != nil {
		return Note{}, false, fmt.Errorf("save %s: %w", id, err)
	}
	if changed {
		s.log.Info("note saved", "id", n.ID, "revision", n.Revision)
	} else {
		s.log.Debug("note unchanged", "id", n.ID, "revision", n.Revision)
	}
	return n, changed, nil
}

// Rename changes a note's title without creating a revision.
func (s *Store) Rename(ctx context.Context, id, title string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE notes SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("rename %s: %w", id, err)
	}
	return expectOne(res, id)
}

// Revisions returns every revision of a note, oldest first.
func (s *Store) Revisions(ctx context.Context, id string) ([]Revision, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT note_id, number, body, checksum, created_at FROM revisions WHERE note_id = ? ORDER BY number`, id)
	if err != nil {
		return nil, fmt.Errorf("revisions %s: %w", id, err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var (
			r       Revision
			created string
		)
		if err := rows.Scan(&r.NoteID, &r.Number, &r.Body, &r.Checksum, &created); err != nil {
			return nil, fmt.Errorf("revisions %s: %w", id, err)
		}
		if r.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("revisions %s: %w", id, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revisions %s: %w", id, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("revisions %s: %w", id, ErrNotFound)
	}
	return out, nil
}

// Delete removes a note and its revisions.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if err := expectOne(res, id); err != nil {
		return err
	}
	s.log.Info("note deleted", "id", id)
	return nil
}

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertRevision(ctx context.Context, tx *sql.Tx, n Note) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO revisions (note_id, number, body, checksum, created_at) VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.Revision, n.Body, n.Checksum, formatTime(n.UpdatedAt))
	return err
}

func expectOne(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (Note, error) {
	var (
		n                Note
		created, updated string
	)
	if err := sc.Scan(&n.ID, &n.Title, &n.Body, &n.Checksum, &n.Revision, &created, &updated); err != nil {
		return Note{}, err
	}
	var err error
	if n.CreatedAt, err = parseTime(created); err != nil {
		return Note{}, err
	}
	if n.UpdatedAt, err = parseTime(updated); err != nil {
		return Note{}, err
	}
	return n, nil
}

// timeLayout has a fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) { return time.Parse(timeLayout, s) }
