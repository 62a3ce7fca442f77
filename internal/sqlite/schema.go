package sqlite

// Schema DDL. Statements are idempotent so Attach can run them against an
// existing database.
const (
	createProgramStates = `CREATE TABLE IF NOT EXISTS program_states (
    namespace TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    version INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createStateHistory = `CREATE TABLE IF NOT EXISTS state_history (
    history_id TEXT PRIMARY KEY,
    namespace TEXT NOT NULL,
    version INTEGER NOT NULL,
    value TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL for history queries.
const (
	idxStateHistoryNamespace = `CREATE INDEX IF NOT EXISTS idx_state_history_namespace ON state_history(namespace, version);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createProgramStates,
	createStateHistory,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxStateHistoryNamespace,
}
