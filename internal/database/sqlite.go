package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/baivab22/ictforumFrontend/config"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// DB is the shared connection to the local session database. All site
// content lives in the remote backend; this database holds admin sessions
// and nothing else.
var DB *sql.DB

// InitDB opens the session database and creates the schema.
func InitDB(cfg *config.Config) error {
	var err error
	DB, err = sql.Open("sqlite3", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	log.Printf("Successfully connected to SQLite database using DSN: %s", cfg.Database.DSN)

	return CreateTables(DB)
}

// CreateTables creates the session schema on the given connection.
func CreateTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		token TEXT NOT NULL,
		user_json TEXT NOT NULL,
		expires DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_uuid ON sessions(uuid);
	CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}

	log.Println("Database tables created or already exist.")
	return nil
}

// CleanupExpiredSessions periodically deletes expired sessions. Run it in
// its own goroutine; it never returns.
func CleanupExpiredSessions() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		result, err := DB.Exec("DELETE FROM sessions WHERE expires < ?", time.Now())
		if err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
			continue
		}
		rowsAffected, _ := result.RowsAffected()
		if rowsAffected > 0 {
			log.Printf("Cleaned up %d expired sessions.", rowsAffected)
		}
	}
}
