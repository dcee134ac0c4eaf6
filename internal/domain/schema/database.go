package schema

import (
	"log/slog"
	"sync"

	"github.com/leengari/memtable/internal/domain/errors"
	"github.com/leengari/memtable/internal/domain/operation"
)

// Database holds tables keyed by name.
type Database struct {
	mu     sync.RWMutex
	tables map[string]*Table
	logger *slog.Logger

	obsMu     sync.RWMutex
	observers []Observer
}

// Option configures a Database.
type Option func(*Database)

// WithLogger sets the logger used by the database and its tables.
func WithLogger(logger *slog.Logger) Option {
	return func(db *Database) {
		if logger != nil {
			db.logger = logger
		}
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(observer Observer) Option {
	return func(db *Database) {
		db.observers = append(db.observers, observer)
	}
}

// NewDatabase creates an empty database.
func NewDatabase(opts ...Option) *Database {
	db := &Database{
		tables: make(map[string]*Table),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Create makes a new empty table and stores it under name.
// An existing table with the same name is replaced along with its rows.
func (db *Database) Create(name string) *Table {
	op := operation.New(operation.KindCreate)

	table := &Table{
		name:   name,
		db:     db,
		logger: db.logger,
	}

	db.mu.Lock()
	old, replaced := db.tables[name]
	db.tables[name] = table
	db.mu.Unlock()

	if replaced {
		dropped := old.Len()
		db.logger.Warn("table replaced",
			"table", name,
			"dropped_rows", dropped,
			"op_id", op.ID,
		)
		db.notify(Event{Type: EventTableReplaced, Table: name, OpID: op.ID, Duration: op.Elapsed(), Data: dropped})
		return table
	}

	db.logger.Debug("table created", "table", name, "op_id", op.ID)
	db.notify(Event{Type: EventTableCreated, Table: name, OpID: op.ID, Duration: op.Elapsed()})
	return table
}

// Get returns the table stored under name.
func (db *Database) Get(name string) (*Table, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	table, ok := db.tables[name]
	if !ok {
		return nil, &errors.TableNotFoundError{Name: name}
	}
	return table, nil
}
