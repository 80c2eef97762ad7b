package frontmatter

import (
	"strings"
	"testing"
)

func TestParseMappingPreservesKeyOrder(t *testing.T) {
	input := `zebra: 1
alpha: two
mango: three
`
	m, err := ParseMapping([]byte(input))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}

	want := []string{"zebra", "alpha", "mango"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseMappingRejectsNonMapping(t *testing.T) {
	if _, err := ParseMapping([]byte("- just\n- a list\n")); err == nil {
		t.Fatal("expected error for non-mapping front matter")
	}
}

func TestParseMappingEmptyBlock(t *testing.T) {
	m, err := ParseMapping([]byte("  \n"))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty mapping, got %d keys", m.Len())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	input := `title: "My Post"
date: 2024-01-05
draft: false
tags:
- Cloud
- DevOps
meta:
  description: 'single quoted'
  words: 100
`
	m, err := ParseMapping([]byte(input))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}

	got := string(m.Encode())
	if got != input {
		t.Errorf("round trip mismatch:\ngot:\n%s\nwant:\n%s", got, input)
	}
}

func TestEncodeIndentedListFlattens(t *testing.T) {
	// Lists written with indented dashes come back at the key's level
	input := "tags:\n  - Cloud\n  - DEVOPS\n"
	m, err := ParseMapping([]byte(input))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}

	want := "tags:\n- Cloud\n- DEVOPS\n"
	if got := string(m.Encode()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSetPreservesPosition(t *testing.T) {
	m, err := ParseMapping([]byte("title: x\ntags:\n- a\ndraft: true\n"))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}

	m.Set("tags", StringListValue([]string{"b"}))

	want := "title: x\ntags:\n- b\ndraft: true\n"
	if got := string(m.Encode()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSetAppendsNewKeys(t *testing.T) {
	m := NewMapping()
	m.Set("one", StringValue("1st"))
	m.Set("two", StringValue("2nd"))

	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "one" || keys[1] != "two" {
		t.Errorf("unexpected key order: %v", keys)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	input := "tags: []\nmeta: {}\n"
	m, err := ParseMapping([]byte(input))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}
	if got := string(m.Encode()); got != input {
		t.Errorf("expected %q, got %q", input, got)
	}
}

func TestEncodeListOfMappings(t *testing.T) {
	input := `authors:
- name: Alice
  role: editor
- name: Bob
  role: writer
`
	m, err := ParseMapping([]byte(input))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}
	if got := string(m.Encode()); got != input {
		t.Errorf("expected:\n%s\ngot:\n%s", input, got)
	}
}

func TestEncodeQuotesAmbiguousStrings(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"bool lookalike", "true", `"true"`},
		{"number lookalike", "2024", `"2024"`},
		{"empty", "", `""`},
		{"leading dash", "-note", `"-note"`},
		{"plain word", "devops", "devops"},
		{"spaced words", "cloud security", "cloud security"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapping()
			m.Set("tags", StringListValue([]string{tt.tag}))

			got := string(m.Encode())
			want := "tags:\n- " + tt.want + "\n"
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestScalarStylesSurvive(t *testing.T) {
	input := "a: \"double\"\nb: 'single'\nc: plain\n"
	m, err := ParseMapping([]byte(input))
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}

	got := string(m.Encode())
	for _, line := range []string{`a: "double"`, `b: 'single'`, `c: plain`} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("expected output to contain %q, got:\n%s", line, got)
		}
	}
}
