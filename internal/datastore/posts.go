package datastore

import (
	"fmt"
	"log/slog"
)

// postsSchema holds one row per known post, keyed by filename. Columns are
// filled in by whichever command last touched the post.
const postsSchema = `CREATE TABLE IF NOT EXISTS posts (
	filename TEXT PRIMARY KEY,
	date TEXT,
	author TEXT,
	tags TEXT
)`

// PostRecord is one post-index entry. Empty fields are omitted from the
// upsert so an existing row keeps what it already knows.
type PostRecord struct {
	Filename string
	Date     string
	Author   string
	Tags     string
}

func (r PostRecord) toMap() map[string]any {
	record := map[string]any{"filename": r.Filename}
	if r.Date != "" {
		record["date"] = r.Date
	}
	if r.Author != "" {
		record["author"] = r.Author
	}
	if r.Tags != "" {
		record["tags"] = r.Tags
	}
	return record
}

// SavePostIndex upserts the records into the posts table of the SQLite
// database at dbFile.
func SavePostIndex(dbFile string, records []PostRecord) error {
	if len(records) == 0 {
		return nil
	}

	store := NewSQLiteStore(dbFile)
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to post index: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(postsSchema); err != nil {
		return err
	}

	// Group records by column shape so each batch prepares one statement
	byShape := make(map[string][]map[string]any)
	shapeKey := func(m map[string]any) string {
		key := ""
		for _, col := range []string{"date", "author", "tags"} {
			if _, ok := m[col]; ok {
				key += col + ","
			}
		}
		return key
	}
	for _, r := range records {
		m := r.toMap()
		byShape[shapeKey(m)] = append(byShape[shapeKey(m)], m)
	}

	for _, batch := range byShape {
		if err := store.Upsert("posts", "filename", batch); err != nil {
			return err
		}
	}

	slog.Info("Updated post index", "dbfile", dbFile, "posts", len(records))
	return nil
}
