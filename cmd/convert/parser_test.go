package convert

import (
	"strings"
	"testing"
)

func TestFindDateField(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantOK   bool
		wantISO  string
		wantTime bool
	}{
		{
			name:     "date with time",
			content:  "---\ndate: 2024-01-05 10:00\n---\n",
			wantOK:   true,
			wantISO:  "2024-01-05",
			wantTime: true,
		},
		{
			name:    "date only",
			content: "---\ndate: 2024-01-05\n---\n",
			wantOK:  true,
			wantISO: "2024-01-05",
		},
		{
			name:    "no date line",
			content: "---\ntitle: Hello\n---\n",
			wantOK:  false,
		},
		{
			name:    "impossible calendar date",
			content: "date: 2024-13-40\n",
			wantOK:  false,
		},
		{
			name:    "date must start the line",
			content: "pubdate: 2024-01-05\n",
			wantOK:  false,
		},
		{
			name:    "first of several lines wins",
			content: "date: 2024-01-05 10:00\ndate: 2025-12-31\n",
			wantOK:  true,
			wantISO: "2024-01-05",
			wantTime: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := findDateField(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("findDateField() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if field.ISO() != tt.wantISO {
				t.Errorf("ISO() = %q, want %q", field.ISO(), tt.wantISO)
			}
			if field.HasTime != tt.wantTime {
				t.Errorf("HasTime = %v, want %v", field.HasTime, tt.wantTime)
			}
		})
	}
}

func TestRewriteDateLine(t *testing.T) {
	content := "---\ntitle: x\ndate: 2024-01-05 10:00\n---\n"
	field, ok := findDateField(content)
	if !ok {
		t.Fatal("expected a date match")
	}

	got := rewriteDateLine(content, field)
	want := "---\ntitle: x\ndate: 2024-01-05\n---\n"
	if got != want {
		t.Errorf("rewriteDateLine() = %q, want %q", got, want)
	}
}

func TestRewriteDateLineOnlyFirstMatch(t *testing.T) {
	content := "date: 2024-01-05 10:00\ndate: 2025-12-31 23:59\n"
	field, ok := findDateField(content)
	if !ok {
		t.Fatal("expected a date match")
	}

	got := rewriteDateLine(content, field)
	if !strings.Contains(got, "date: 2025-12-31 23:59\n") {
		t.Errorf("second date line must stay untouched, got %q", got)
	}
	if !strings.HasPrefix(got, "date: 2024-01-05\n") {
		t.Errorf("first date line must lose its time, got %q", got)
	}
}

func TestInsertAuthor(t *testing.T) {
	t.Run("inserted after first date line", func(t *testing.T) {
		content := "---\ndate: 2024-01-05\ntitle: x\n---\n"
		got := insertAuthor(content, "Predrag Tasevski")
		want := "---\ndate: 2024-01-05\nauthor: Predrag Tasevski\ntitle: x\n---\n"
		if got != want {
			t.Errorf("insertAuthor() = %q, want %q", got, want)
		}
	})

	t.Run("existing author wins", func(t *testing.T) {
		content := "---\ndate: 2024-01-05\nauthor: Someone Else\n---\n"
		if got := insertAuthor(content, "Predrag Tasevski"); got != content {
			t.Errorf("content changed: %q", got)
		}
	})

	t.Run("author mention anywhere blocks insertion", func(t *testing.T) {
		content := "---\ndate: 2024-01-05\n---\nThe author: field is discussed here.\n"
		if got := insertAuthor(content, "Predrag Tasevski"); got != content {
			t.Errorf("content changed: %q", got)
		}
	})

	t.Run("no date line leaves content alone", func(t *testing.T) {
		content := "---\ntitle: x\n---\n"
		if got := insertAuthor(content, "Predrag Tasevski"); got != content {
			t.Errorf("content changed: %q", got)
		}
	})
}

func TestAuthorOf(t *testing.T) {
	content := "---\ndate: 2024-01-05\nauthor: Jane Doe\n---\n"
	if got := authorOf(content, "fallback"); got != "Jane Doe" {
		t.Errorf("authorOf() = %q, want %q", got, "Jane Doe")
	}
	if got := authorOf("no author here\n", "fallback"); got != "fallback" {
		t.Errorf("authorOf() = %q, want fallback", got)
	}
}
