package sqlite

import "database/sql"

// schema sets up the expenses table. It runs on startup to ensure tables exist.
// Timestamps are unix milliseconds.
const schema = `
CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    amount REAL NOT NULL CHECK (amount > 0),
    description TEXT NOT NULL,
    paid_by TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'Other',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_created_at ON expenses(created_at);
CREATE INDEX IF NOT EXISTS idx_expenses_paid_by ON expenses(paid_by);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
