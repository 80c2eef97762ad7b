package convert

import (
	"regexp"
	"strings"
	"time"
)

// datePattern matches a front-matter date line: a calendar date optionally
// followed by a time of day. Horizontal whitespace only, so a match can
// never cross a line boundary.
var datePattern = regexp.MustCompile(`(?m)^date:[ \t]*(\d{4}-\d{2}-\d{2})(?:[ \t]+(\d{2}:\d{2}))?`)

// DateField is the first date: line found in a post.
type DateField struct {
	// Date is the calendar date, validated via time.Parse
	Date time.Time
	// HasTime reports whether the line carried a time-of-day suffix
	HasTime bool

	// Match bounds within the scanned content
	start, end int
}

// ISO returns the date in YYYY-MM-DD form.
func (d DateField) ISO() string {
	return d.Date.Format("2006-01-02")
}

// findDateField locates the first date: line with a valid calendar date.
// A line that looks like a date but doesn't parse (e.g. 2024-13-40) counts
// as no match.
func findDateField(content string) (DateField, bool) {
	loc := datePattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return DateField{}, false
	}

	parsed, err := time.Parse("2006-01-02", content[loc[2]:loc[3]])
	if err != nil {
		return DateField{}, false
	}

	return DateField{
		Date:    parsed,
		HasTime: loc[4] != -1,
		start:   loc[0],
		end:     loc[1],
	}, true
}

// rewriteDateLine replaces the matched date field with its date-only form,
// discarding the time-of-day. Only the matched span is touched.
func rewriteDateLine(content string, field DateField) string {
	return content[:field.start] + "date: " + field.ISO() + content[field.end:]
}

// insertAuthor adds an author line directly after the first date: line,
// unless the content already mentions an author field anywhere.
func insertAuthor(content, author string) string {
	if strings.Contains(content, "author:") {
		return content
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "date:") {
			lines = append(lines[:i+1], append([]string{"author: " + author}, lines[i+1:]...)...)
			break
		}
	}
	return strings.Join(lines, "\n")
}

// authorOf extracts the value of the first author: line, falling back when
// none is found.
func authorOf(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		if value, ok := strings.CutPrefix(line, "author:"); ok {
			return strings.TrimSpace(value)
		}
	}
	return fallback
}
