package store

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Kind identifies the storage backend that won the fallback chain.
type Kind int

const (
	BackendSQLServer Kind = iota
	BackendSQLite
	BackendWorkbook
)

func (kind Kind) String() string {
	switch kind {
	case BackendSQLServer:
		return "sqlserver"
	case BackendSQLite:
		return "sqlite"
	case BackendWorkbook:
		return "workbook"
	default:
		return "unknown"
	}
}

// Options carries everything Connect needs to try each backend tier.
// An empty DSN or path skips that tier.
type Options struct {
	SQLServerDSN string
	MaxOpenConns int
	SQLitePath   string
	WorkbookPath string
}

// Store is the active backend: a tagged kind plus exactly one live handle.
// The other handle is always nil, so dispatch happens on the kind, never on
// which field happens to be populated.
type Store struct {
	kind     Kind
	db       *gorm.DB
	workbook *Workbook
}

// Connect walks the backend chain: SQL Server, then the SQLite file, then
// the workbook. Tier failures are logged and swallowed; the returned store
// is always usable, worst case as a read-only workbook view.
func Connect(options Options) *Store {
	if options.SQLServerDSN != "" {
		handle, err := openSQLServer(options.SQLServerDSN, options.MaxOpenConns)
		if err == nil {
			log.Printf("store: connected to SQL Server")
			return &Store{kind: BackendSQLServer, db: handle}
		}
		log.Printf("store: SQL Server unavailable, falling back: %v", err)
	}

	if options.SQLitePath != "" {
		handle, err := openSQLite(options.SQLitePath)
		if err == nil {
			log.Printf("store: using SQLite database at %s", options.SQLitePath)
			return &Store{kind: BackendSQLite, db: handle}
		}
		log.Printf("store: SQLite unavailable, falling back: %v", err)
	}

	log.Printf("store: using read-only workbook at %s", options.WorkbookPath)
	return &Store{kind: BackendWorkbook, workbook: OpenWorkbook(options.WorkbookPath)}
}

func (store *Store) Kind() Kind { return store.kind }

// Writable reports whether the active backend accepts inserts, updates and
// deletes. The workbook tier is a read-only view.
func (store *Store) Writable() bool { return store.kind != BackendWorkbook }

// Close releases whichever handle is live. Safe to call exactly once at
// shutdown.
func (store *Store) Close() error {
	if store.db != nil {
		sqlDB, err := store.db.DB()
		if err != nil {
			return fmt.Errorf("unwrap sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		store.db = nil
		return nil
	}
	store.workbook = nil
	return nil
}
