package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    type        TEXT NOT NULL,
    name        TEXT NOT NULL,
    logged_at   TEXT NOT NULL,
    cals        REAL NOT NULL,
    protein     REAL NOT NULL DEFAULT 0,
    fiber       REAL NOT NULL DEFAULT 0,
    sugar       REAL NOT NULL DEFAULT 0,
    fat         REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS profiles (
    user_id              TEXT PRIMARY KEY,
    weight_lbs           REAL NOT NULL,
    height_inches        REAL NOT NULL,
    age                  INTEGER NOT NULL,
    gender               TEXT NOT NULL,
    activity_multiplier  REAL NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    user_id             TEXT PRIMARY KEY,
    target_weight_lbs   REAL NOT NULL,
    daily_deficit_kcal  INTEGER NOT NULL,
    updated_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_user ON entries(user_id);
CREATE INDEX IF NOT EXISTS idx_entries_logged ON entries(user_id, logged_at);
`
