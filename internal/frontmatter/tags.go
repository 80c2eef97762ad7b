package frontmatter

import "strings"

// NormalizeTag normalizes a single tag: trim surrounding whitespace,
// lowercase, and collapse internal whitespace runs to single spaces.
func NormalizeTag(tag string) string {
	return strings.Join(strings.Fields(strings.ToLower(tag)), " ")
}

// NormalizeTagList normalizes every tag in the list. Order is preserved and
// duplicates are kept.
func NormalizeTagList(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		result = append(result, NormalizeTag(tag))
	}
	return result
}

// StringsFromList extracts the elements of a list value as strings.
// It reports false when the value is not a list, or when any element is not
// a plain scalar - callers should leave such values alone.
func StringsFromList(val Value) ([]string, bool) {
	if val.Kind != KindList {
		return nil, false
	}
	result := make([]string, 0, len(val.List))
	for _, item := range val.List {
		if item.Kind != KindScalar {
			return nil, false
		}
		result = append(result, item.Scalar)
	}
	return result, true
}
