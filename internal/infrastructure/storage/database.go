package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultBusyTimeout = 5 * time.Second
	defaultWorkers     = 8
)

// Options baza ochish parametrlari
type Options struct {
	Path        string
	BusyTimeout time.Duration
	// Workers jonli so'rovlarni qayta bajaradigan goroutine'lar soni
	Workers int
}

// Database SQLite handle va jadval o'zgarishlarini kuzatuvchi
type Database struct {
	db      *sql.DB
	tracker *InvalidationTracker
}

// Open SQLite bazani ochish va sxemani yaratish
func Open(ctx context.Context, opts Options) (*Database, error) {
	if opts.Path == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = defaultBusyTimeout
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, errors.Wrap(err, "db papkasini yaratib bo'lmadi")
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d&_journal_mode=WAL&_txlock=immediate",
		opts.Path, opts.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite ochilmadi")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "sqlite ping")
	}

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	tracker, err := NewInvalidationTracker(opts.Workers, Tables...)
	if err != nil {
		db.Close()
		return nil, err
	}

	zap.L().Debug("sqlite database opened",
		zap.String("path", opts.Path),
		zap.Duration("busy_timeout", opts.BusyTimeout),
		zap.Int("workers", opts.Workers))

	return &Database{db: db, tracker: tracker}, nil
}

// Tracker jadval o'zgarishlari kuzatuvchisi
func (d *Database) Tracker() *InvalidationTracker {
	return d.tracker
}

// Close kuzatuvchi va handle ni yopish
func (d *Database) Close() error {
	d.tracker.Close()
	return d.db.Close()
}

// RunInTx fn ni tranzaksiyada bajaradi. Commit muvaffaqiyatli bo'lsa tables
// kuzatuvchilari xabardor qilinadi; aks holda hammasi rollback bo'ladi.
func (d *Database) RunInTx(ctx context.Context, tables []string, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			zap.L().Debug("rollback failed", zap.Strings("tables", tables), zap.Error(rbErr))
		}
	}()

	if err := fn(tx); err != nil {
		zap.L().Debug("transaction aborted", zap.Strings("tables", tables), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	committed = true

	d.tracker.Notify(tables...)
	return nil
}

type queryer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// queryRows so'rovni bajarib har bir qatorni scan orqali o'giradi.
// Statement va rows har qanday holatda yopiladi.
func queryRows[T any](ctx context.Context, q queryer, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	stmt, err := q.PrepareContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "prepare query")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, errors.Wrap(err, "run query")
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate rows")
	}
	return result, nil
}

// queryOne bitta qator; topilmasa nil
func queryOne[T any](ctx context.Context, q queryer, scan func(rowScanner) (T, error), query string, args ...any) (*T, error) {
	items, err := queryRows(ctx, q, scan, query, args...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
