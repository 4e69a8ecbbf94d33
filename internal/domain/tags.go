package domain

import "slices"

// TagSet is an ordered list of labels without duplicates.
type TagSet []string

// Contains reports whether tag is already in the set.
func (s TagSet) Contains(tag string) bool {
	return slices.Contains(s, tag)
}

// With returns the set with tag appended, or s itself when tag is present.
func (s TagSet) With(tag string) TagSet {
	if s.Contains(tag) {
		return s
	}
	out := make(TagSet, 0, len(s)+1)
	out = append(out, s...)
	return append(out, tag)
}

// UserTags is one row of the tag store.
type UserTags struct {
	Address string `json:"address"`
	Tags    TagSet `json:"tags"`
}
