package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS daily_deposits (
    date        TEXT PRIMARY KEY,
    amount      REAL NOT NULL,
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contract_settings (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    start_date       TEXT NOT NULL,
    end_date         TEXT NOT NULL,
    initial_rate     REAL NOT NULL,
    rate_history     TEXT NOT NULL,
    contract_amount  REAL NOT NULL,
    saved_at         TEXT NOT NULL
);
`
