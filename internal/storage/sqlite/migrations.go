package sqlite

// schema contains the database schema DDL.
const schema = `
-- Saved health readings, one row per measurement
CREATE TABLE IF NOT EXISTS readings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    date TEXT NOT NULL,
    slot TEXT NOT NULL DEFAULT '',
    value REAL NOT NULL,
    saved_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(patient_id, kind, date, slot)
);
CREATE INDEX IF NOT EXISTS idx_readings_patient_date ON readings(patient_id, date);

-- Configuration
CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Reading kinds stored in readings.kind.
const (
	kindGlucose = "glucose"
	kindA1C     = "a1c"
	kindWeight  = "weight"
)
