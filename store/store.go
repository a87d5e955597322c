package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/spachava753/esncontact/addressbook"
	"github.com/spachava753/esncontact/display"
)

const schema = `
CREATE TABLE IF NOT EXISTS cards (
	book_id      TEXT NOT NULL,
	book_name    TEXT NOT NULL,
	id           TEXT NOT NULL,
	display_name TEXT NOT NULL DEFAULT '',
	emails       TEXT NOT NULL DEFAULT '[]',
	tel          TEXT NOT NULL DEFAULT '[]',
	photo        TEXT NOT NULL DEFAULT '',
	writable     INTEGER,
	PRIMARY KEY (book_id, book_name, id)
);`

// Card is one cached contact record of an addressbook.
type Card struct {
	ID string
	display.Record
}

// Book identifies one addressbook present in the cache.
type Book struct {
	Meta  addressbook.Metadata
	Cards int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for schema setup and writes.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is a local SQLite cache of contact records keyed by addressbook.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the SQLite cache at path.
func Open(path string, opts ...Option) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, validationError("database path is required")
	}

	s := &Store{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, storeError("opening sqlite database failed", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storeError("connecting to sqlite database failed", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, storeError("creating schema failed", err)
	}
	s.logger.Debug("contact cache opened", zap.String("path", path))

	s.db = db
	return s, nil
}

// Close releases the database handle. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Put inserts or replaces card in the addressbook meta. An empty card ID is
// replaced by a generated one; the stored card is returned.
func (s *Store) Put(ctx context.Context, meta addressbook.Metadata, card Card) (Card, error) {
	if err := validateMeta(meta); err != nil {
		return Card{}, err
	}
	db, err := s.handle()
	if err != nil {
		return Card{}, err
	}

	card.ID = strings.TrimSpace(card.ID)
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	emails, err := encodeValues(card.Emails)
	if err != nil {
		return Card{}, err
	}
	tel, err := encodeValues(card.Tel)
	if err != nil {
		return Card{}, err
	}

	var writable any
	if card.Writable != nil {
		writable = boolInt(*card.Writable)
	}

	_, err = db.ExecContext(ctx, `
INSERT OR REPLACE INTO cards (book_id, book_name, id, display_name, emails, tel, photo, writable)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		meta.BookID(), meta.BookName(), card.ID, card.DisplayName, emails, tel, card.Photo, writable)
	if err != nil {
		return Card{}, storeError("writing card failed", err)
	}

	s.logger.Debug("card stored",
		zap.String("book_id", meta.BookID()),
		zap.String("book_name", meta.BookName()),
		zap.String("card_id", card.ID))
	return card, nil
}

// Get returns one card of the addressbook meta.
func (s *Store) Get(ctx context.Context, meta addressbook.Metadata, id string) (Card, error) {
	if err := validateMeta(meta); err != nil {
		return Card{}, err
	}
	db, err := s.handle()
	if err != nil {
		return Card{}, err
	}

	row := db.QueryRowContext(ctx, `
SELECT id, display_name, emails, tel, photo, writable
FROM cards
WHERE book_id = ? AND book_name = ? AND id = ?;`, meta.BookID(), meta.BookName(), id)
	card, err := scanCard(row)
	if err == sql.ErrNoRows {
		return Card{}, &Error{Code: ErrorCodeNotFound, Message: fmt.Sprintf("card %q", id)}
	}
	if err != nil {
		return Card{}, err
	}
	return card, nil
}

// List returns every card of the addressbook meta ordered by display name.
func (s *Store) List(ctx context.Context, meta addressbook.Metadata) ([]Card, error) {
	if err := validateMeta(meta); err != nil {
		return nil, err
	}
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
SELECT id, display_name, emails, tel, photo, writable
FROM cards
WHERE book_id = ? AND book_name = ?
ORDER BY display_name COLLATE NOCASE, id;`, meta.BookID(), meta.BookName())
	if err != nil {
		return nil, storeError("sqlite query failed", err)
	}
	defer rows.Close()

	cards := make([]Card, 0, 16)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterating sqlite rows failed", err)
	}
	return cards, nil
}

// Delete removes one card. Deleting a missing card returns ErrorCodeNotFound.
func (s *Store) Delete(ctx context.Context, meta addressbook.Metadata, id string) error {
	if err := validateMeta(meta); err != nil {
		return err
	}
	db, err := s.handle()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM cards WHERE book_id = ? AND book_name = ? AND id = ?;`,
		meta.BookID(), meta.BookName(), id)
	if err != nil {
		return storeError("deleting card failed", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeError("reading affected rows failed", err)
	}
	if n == 0 {
		return &Error{Code: ErrorCodeNotFound, Message: fmt.Sprintf("card %q", id)}
	}
	s.logger.Debug("card deleted", zap.String("card_id", id))
	return nil
}

// Books lists the cached addressbooks with their card counts.
func (s *Store) Books(ctx context.Context) ([]Book, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
SELECT book_id, book_name, COUNT(*)
FROM cards
GROUP BY book_id, book_name
ORDER BY book_id, book_name;`)
	if err != nil {
		return nil, storeError("sqlite query failed", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var (
			bookID   string
			bookName string
			count    int
		)
		if err := rows.Scan(&bookID, &bookName, &count); err != nil {
			return nil, storeError("scanning sqlite row failed", err)
		}
		books = append(books, Book{
			Meta:  addressbook.Metadata{addressbook.KeyBookID: bookID, addressbook.KeyBookName: bookName},
			Cards: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterating sqlite rows failed", err)
	}
	return books, nil
}

func (s *Store) handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (Card, error) {
	var (
		card     Card
		emails   string
		tel      string
		writable sql.NullInt64
	)
	err := row.Scan(&card.ID, &card.DisplayName, &emails, &tel, &card.Photo, &writable)
	if err == sql.ErrNoRows {
		return Card{}, err
	}
	if err != nil {
		return Card{}, storeError("scanning sqlite row failed", err)
	}
	if card.Emails, err = decodeValues(emails); err != nil {
		return Card{}, err
	}
	if card.Tel, err = decodeValues(tel); err != nil {
		return Card{}, err
	}
	if writable.Valid {
		w := writable.Int64 != 0
		card.Writable = &w
	}
	return card, nil
}

// sqliteDSN builds a SQLite URI for path, escaping every segment so that
// characters such as '?' and '#' stay part of the file name.
func sqliteDSN(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return "file:" + strings.Join(segments, "/") + "?_busy_timeout=5000"
}

func validateMeta(meta addressbook.Metadata) error {
	if meta.Empty() || meta.BookID() == "" || meta.BookName() == "" {
		return validationError("addressbook metadata is required")
	}
	return nil
}

func encodeValues(values []display.LabeledValue) (string, error) {
	if values == nil {
		values = []display.LabeledValue{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", storeError("encoding labeled values failed", err)
	}
	return string(data), nil
}

func decodeValues(raw string) ([]display.LabeledValue, error) {
	var values []display.LabeledValue
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, storeError("decoding labeled values failed", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
