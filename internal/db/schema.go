package db

// SchemaSQL contains the database schema initialization SQL. Statements are
// idempotent so InitSchema is safe on every process start.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS conversations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_message TEXT NOT NULL,
    bot_response TEXT NOT NULL,
    language TEXT,
    timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
    session_id TEXT
);

CREATE INDEX IF NOT EXISTS conversations_timestamp ON conversations(timestamp);
CREATE INDEX IF NOT EXISTS conversations_session ON conversations(session_id);

-- Single-row counter table. total_sessions exists for layout compatibility
-- but is never incremented.
CREATE TABLE IF NOT EXISTS statistics (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    total_messages INTEGER NOT NULL DEFAULT 0,
    total_sessions INTEGER NOT NULL DEFAULT 0,
    last_updated DATETIME DEFAULT CURRENT_TIMESTAMP
);

INSERT OR IGNORE INTO statistics (id, total_messages, total_sessions) VALUES (1, 0, 0);
`
