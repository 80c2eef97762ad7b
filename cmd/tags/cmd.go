// Package tags normalizes the tags list in post front matter: each tag is
// trimmed, lowercased, and has internal whitespace runs collapsed. A post is
// only rewritten when that actually changes something.
package tags

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ptasevski/blogtidy/internal/datastore"
	"github.com/ptasevski/blogtidy/internal/fileutil"
	"github.com/ptasevski/blogtidy/internal/frontmatter"
)

// Options holds configuration for the tags command.
type Options struct {
	// Dir is the directory containing the posts
	Dir string
	// WriteJSON writes the run report as JSON
	WriteJSON bool
	// JSONOutput is the JSON report path (empty = json/tags.json)
	JSONOutput string
	// IndexDB is the SQLite post index path (empty = index disabled)
	IndexDB string
}

// Status is the terminal outcome of one file. Every file lands on exactly
// one of these.
type Status string

const (
	// StatusRewritten means the tags changed and the file was overwritten
	StatusRewritten Status = "rewritten"
	// StatusUnchanged means the tags were already normalized (or absent)
	StatusUnchanged Status = "unchanged"
	// StatusNoFrontMatter means the file has no front-matter block
	StatusNoFrontMatter Status = "skipped-no-front-matter"
	// StatusParseError means the front matter is not valid YAML
	StatusParseError Status = "skipped-parse-error"
)

// Result records what happened to a single post.
type Result struct {
	File   string   `json:"file"`
	Status Status   `json:"status"`
	Before []string `json:"before,omitempty"`
	After  []string `json:"after,omitempty"`
}

// NormalizePostTags runs the normalization pass over every .md and .mdx file
// in opts.Dir. Per-file issues become skip results; filesystem errors abort
// the run.
func NormalizePostTags(opts Options) ([]Result, error) {
	files, err := fileutil.ListByExt(opts.Dir, ".md", ".mdx")
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	slog.Info("Normalizing tags", "dir", opts.Dir, "count", len(files))

	var results []Result
	var records []datastore.PostRecord

	for _, file := range files {
		result, err := normalizeFile(file)
		if err != nil {
			return nil, err
		}
		results = append(results, result)

		if result.Status == StatusRewritten {
			records = append(records, datastore.PostRecord{
				Filename: result.File,
				Tags:     strings.Join(result.After, ", "),
			})
		}
	}

	rewritten := 0
	for _, r := range results {
		if r.Status == StatusRewritten {
			rewritten++
		}
	}
	slog.Info("Tag normalization complete",
		"total", len(results),
		"rewritten", rewritten,
		"skipped", len(results)-rewritten)

	if opts.WriteJSON {
		jsonPath := opts.JSONOutput
		if jsonPath == "" {
			jsonPath = filepath.Join("json", "tags.json")
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

// normalizeFile processes one post.
func normalizeFile(file string) (Result, error) {
	base := filepath.Base(file)

	content, err := os.ReadFile(file)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", base, err)
	}

	doc, err := frontmatter.Parse(content)
	if errors.Is(err, frontmatter.ErrNoFrontMatter) {
		slog.Info("Skipping post: no front matter", "file", base)
		return Result{File: base, Status: StatusNoFrontMatter}, nil
	}
	if err != nil {
		slog.Info("Skipping post: front matter parse error", "file", base, "error", err)
		return Result{File: base, Status: StatusParseError}, nil
	}

	val, ok := doc.FrontMatter.Get("tags")
	if !ok {
		return Result{File: base, Status: StatusUnchanged}, nil
	}

	// Non-list tags, or lists with non-scalar entries, are left alone
	before, ok := frontmatter.StringsFromList(val)
	if !ok {
		return Result{File: base, Status: StatusUnchanged}, nil
	}

	after := frontmatter.NormalizeTagList(before)
	if slices.Equal(before, after) {
		return Result{File: base, Status: StatusUnchanged}, nil
	}

	doc.FrontMatter.Set("tags", frontmatter.StringListValue(after))

	if err := os.WriteFile(file, doc.Build(), 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", base, err)
	}

	slog.Info("Normalized tags", "file", base, "before", before, "after", after)

	return Result{
		File:   base,
		Status: StatusRewritten,
		Before: before,
		After:  after,
	}, nil
}
