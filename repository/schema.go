package repository

import "database/sql"

// schema contains the SQL statements to set up the database tables.
// These run on startup so a fresh database is usable without manual setup.
// Trips must be created before expenses due to the foreign key constraint.
const schema = `
CREATE TABLE IF NOT EXISTS trips (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    creation_time BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS trip_participants (
    trip_id TEXT NOT NULL,
    participant TEXT NOT NULL,
    PRIMARY KEY (trip_id, participant),
    FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL,
    description TEXT NOT NULL,
    amount NUMERIC(12,2) NOT NULL,
    paid_by TEXT NOT NULL,
    split_type TEXT NOT NULL,
    settled BOOLEAN NOT NULL DEFAULT FALSE,
    creation_time BIGINT NOT NULL,
    FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS expense_participants (
    id TEXT PRIMARY KEY,
    expense_id TEXT NOT NULL,
    name TEXT NOT NULL,
    share NUMERIC(12,2),
    share_percentage NUMERIC(5,2),
    settled BOOLEAN,
    position INTEGER NOT NULL,
    FOREIGN KEY (expense_id) REFERENCES expenses(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_trip_participants_trip_id ON trip_participants(trip_id);
CREATE INDEX IF NOT EXISTS idx_expenses_trip_id ON expenses(trip_id);
CREATE INDEX IF NOT EXISTS idx_expense_participants_expense_id ON expense_participants(expense_id);
`

// runMigrations executes the schema setup
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
