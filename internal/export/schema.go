package export

// Schema DDL for the SQLite export. record_fields holds one row per
// schema field per record, kind-tagged, with an absent flag instead of a
// NULL so renderers can distinguish "field declared but absent" without
// re-deriving the schema.
const (
	createRecords = `CREATE TABLE records (
    record_id TEXT PRIMARY KEY,
    file_name TEXT NOT NULL,
    date TEXT NOT NULL
);`

	createRecordFields = `CREATE TABLE record_fields (
    record_id TEXT NOT NULL,
    name TEXT NOT NULL,
    kind TEXT NOT NULL,
    value TEXT,
    absent INTEGER NOT NULL,
    PRIMARY KEY (record_id, name),
    FOREIGN KEY (record_id) REFERENCES records(record_id)
);`

	createSleepCycles = `CREATE TABLE sleep_cycles (
    cycle_index INTEGER PRIMARY KEY,
    from_file TEXT NOT NULL,
    to_file TEXT NOT NULL,
    sleep_start REAL,
    wake_end REAL
);`
)

// schemaStatements lists the DDL in creation order.
var schemaStatements = []string{
	createRecords,
	createRecordFields,
	createSleepCycles,
}
