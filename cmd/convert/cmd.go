// Package convert turns .mdx drafts into dated .md posts: the date line is
// trimmed to its calendar date, an author line is inserted when missing, and
// the file is renamed to <date>-<stem>.md.
package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ptasevski/blogtidy/internal/datastore"
	"github.com/ptasevski/blogtidy/internal/fileutil"
)

const (
	// draftExt marks the extended markup variant produced by the blog editor
	draftExt = ".mdx"
	// postExt is the standard post extension
	postExt = ".md"
)

// Options holds configuration for the convert command.
type Options struct {
	// Dir is the directory containing the posts
	Dir string
	// Author is inserted into posts that carry no author field
	Author string
	// WriteJSON writes the run report as JSON
	WriteJSON bool
	// JSONOutput is the JSON report path (empty = json/convert.json)
	JSONOutput string
	// IndexDB is the SQLite post index path (empty = index disabled)
	IndexDB string
}

// Status is the terminal outcome of one file.
type Status string

const (
	// StatusConverted means the post was rewritten and renamed
	StatusConverted Status = "converted"
	// StatusSkippedNoDate means no valid date line was found; file untouched
	StatusSkippedNoDate Status = "skipped-no-date"
)

// Result records what happened to a single draft.
type Result struct {
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
	Date   string `json:"date,omitempty"`
	Status Status `json:"status"`
}

// ConvertPosts runs the conversion pass over every .mdx file in opts.Dir.
// Per-file issues become skip results; filesystem errors abort the run.
func ConvertPosts(opts Options) ([]Result, error) {
	files, err := fileutil.ListByExt(opts.Dir, draftExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	slog.Info("Converting drafts", "dir", opts.Dir, "count", len(files))

	var results []Result
	var records []datastore.PostRecord

	for _, file := range files {
		result, err := convertPost(file, opts.Author)
		if err != nil {
			return nil, err
		}
		results = append(results, result)

		if result.Status == StatusConverted {
			records = append(records, datastore.PostRecord{
				Filename: result.Target,
				Date:     result.Date,
				Author:   authorOfFile(filepath.Join(opts.Dir, result.Target), opts.Author),
			})
		}
	}

	converted := 0
	for _, r := range results {
		if r.Status == StatusConverted {
			converted++
		}
	}
	slog.Info("Conversion complete",
		"total", len(results),
		"converted", converted,
		"skipped", len(results)-converted)

	if opts.WriteJSON {
		jsonPath := opts.JSONOutput
		if jsonPath == "" {
			jsonPath = filepath.Join("json", "convert.json")
		}
		if _, err := fileutil.WriteJSONFile(results, jsonPath, true); err != nil {
			return nil, err
		}
	}

	if opts.IndexDB != "" {
		if err := datastore.SavePostIndex(opts.IndexDB, records); err != nil {
			// The index is advisory; a failed update never fails the run
			slog.Warn("Failed to update post index", "error", err)
		}
	}

	return results, nil
}

// convertPost processes one draft file.
func convertPost(file string, author string) (Result, error) {
	base := filepath.Base(file)

	content, err := os.ReadFile(file)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", base, err)
	}

	text := string(content)
	field, ok := findDateField(text)
	if !ok {
		slog.Info("Skipping draft: no date found", "file", base)
		return Result{Source: base, Status: StatusSkippedNoDate}, nil
	}

	text = rewriteDateLine(text, field)
	text = insertAuthor(text, author)

	// Prefix the stem with the date, unless the draft already carries it
	stem := strings.TrimSuffix(base, draftExt)
	if !strings.HasPrefix(stem, field.ISO()+"-") {
		stem = field.ISO() + "-" + stem
	}
	newName := stem + postExt
	newPath := filepath.Join(filepath.Dir(file), newName)

	// An existing target is silently overwritten
	if _, err := fileutil.WriteFileWithOverwrite(newPath, []byte(text), 0644, true); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", newName, err)
	}

	if err := os.Remove(file); err != nil {
		return Result{}, fmt.Errorf("failed to remove %s: %w", base, err)
	}

	slog.Info("Converted draft", "from", base, "to", newName)

	return Result{
		Source: base,
		Target: newName,
		Date:   field.ISO(),
		Status: StatusConverted,
	}, nil
}

// authorOfFile reads the author line from a converted post for the index.
func authorOfFile(path, fallback string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	return authorOf(string(content), fallback)
}
