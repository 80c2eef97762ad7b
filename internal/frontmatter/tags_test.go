package frontmatter

import (
	"slices"
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"lowercase", "DevOps", "devops"},
		{"surrounding whitespace", "  Cloud Security ", "cloud security"},
		{"internal runs collapse", "cloud    native \t apps", "cloud native apps"},
		{"already normalized", "devops", "devops"},
		{"whitespace only", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTag(tt.tag); got != tt.want {
				t.Errorf("NormalizeTag(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNormalizeTagListPreservesOrderAndDuplicates(t *testing.T) {
	got := NormalizeTagList([]string{"DevOps", "  Cloud Security ", "devops"})
	want := []string{"devops", "cloud security", "devops"}
	if !slices.Equal(got, want) {
		t.Errorf("NormalizeTagList() = %v, want %v", got, want)
	}
}

func TestStringsFromList(t *testing.T) {
	t.Run("plain string list", func(t *testing.T) {
		got, ok := StringsFromList(StringListValue([]string{"a", "b"}))
		if !ok {
			t.Fatal("expected ok")
		}
		if !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("scalar is not a list", func(t *testing.T) {
		if _, ok := StringsFromList(StringValue("cloud")); ok {
			t.Fatal("expected not ok for scalar")
		}
	})

	t.Run("list with nested mapping", func(t *testing.T) {
		nested := NewMapping()
		nested.Set("name", StringValue("x"))
		val := Value{Kind: KindList, List: []Value{
			StringValue("a"),
			{Kind: KindMapping, Mapping: nested},
		}}
		if _, ok := StringsFromList(val); ok {
			t.Fatal("expected not ok for non-scalar element")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		got, ok := StringsFromList(Value{Kind: KindList})
		if !ok || len(got) != 0 {
			t.Errorf("expected empty ok list, got %v ok=%v", got, ok)
		}
	})
}
