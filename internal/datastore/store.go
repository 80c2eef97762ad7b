package datastore

// Store defines the interface for the local SQLite post index
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// Upsert inserts records into the table, updating existing rows that
	// share the same key column
	Upsert(table string, keyColumn string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
