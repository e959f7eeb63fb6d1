// Package debtag parses the faceted tag vocabulary carried in raw package
// tag fields. Tags are comma-separated "facet::value" strings; tags without
// a "::" separator are treated as unfaceted values.
package debtag

import "strings"

// FacetSeparator splits a tag into its facet and value parts.
const FacetSeparator = "::"

// ParseTags splits a raw tag field into individual tags. Elements are
// trimmed and empty elements are dropped; order is preserved. Duplicates
// are passed through as-is since downstream matching only needs existence.
// An empty input yields an empty sequence, not an error.
func ParseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// SplitFacet splits a tag once on the first "::" into its facet and value.
// A tag without a separator is an unfaceted value: ("", tag).
func SplitFacet(tag string) (facet, value string) {
	idx := strings.Index(tag, FacetSeparator)
	if idx < 0 {
		return "", tag
	}
	return tag[:idx], tag[idx+len(FacetSeparator):]
}

// HasTag reports whether tags contains the full tag string.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasFacet reports whether any tag belongs to the given facet.
func HasFacet(tags []string, facet string) bool {
	for _, t := range tags {
		if f, _ := SplitFacet(t); f == facet {
			return true
		}
	}
	return false
}

// TagsByFacet returns the values of all tags in the given facet, in input
// order.
func TagsByFacet(tags []string, facet string) []string {
	values := make([]string, 0, len(tags))
	for _, t := range tags {
		if f, v := SplitFacet(t); f == facet && v != "" {
			values = append(values, v)
		}
	}
	return values
}
