package port

// RecordWriter appends rows to one per-class CSV file.
type RecordWriter interface {
	Append(fields []string) error
	Close() error
}

// DatasetStore is the per-class CSV persistence layer.
type DatasetStore interface {
	// OpenWriter opens a fresh writer at path, truncating any prior
	// content.
	OpenWriter(path string) (RecordWriter, error)

	// ReadRows loads every non-empty row from the file at path.
	ReadRows(path string) ([][]string, error)

	// WriteRows replaces the file at path with exactly the given rows.
	WriteRows(path string, rows [][]string) error
}
