package curation

import (
	"errors"
	"strings"

	"github.com/eringen/frontpage/content"
)

// Label is a category derived from a post's tags.
type Label string

const (
	Hollywood  Label = "Hollywood"
	World      Label = "World"
	Exclusive  Label = "Exclusive"
	Celebverse Label = "Celebverse"
	Gossips    Label = "Gossips"
	// Blog is the residual category of the related-content chain. No keyword
	// table exists for it and Classify never reports it.
	Blog Label = "Blog"
)

// ErrUnknownLabel is returned by ParseLabel for names outside the label set.
var ErrUnknownLabel = errors.New("curation: unknown label")

type keywordRule struct {
	label    Label
	keywords []string
}

// keywordTable is shared by the multi-label classifier and the
// related-content priority chain. Keywords are lowercase.
var keywordTable = []keywordRule{
	{Hollywood, []string{"hollywood"}},
	{World, []string{"canada", "holiday", "travel"}},
	{Exclusive, []string{"images", "exclusive", "feature"}},
	{Celebverse, []string{"hollywood", "celebrity", "celeb", "actor", "actress"}},
	{Gossips, []string{"gossip", "news", "entertainment", "scandal", "buzz"}},
}

// AllLabels lists every label, keyword labels first in table order.
func AllLabels() []Label {
	out := make([]Label, 0, len(keywordTable)+1)
	for _, r := range keywordTable {
		out = append(out, r.label)
	}
	return append(out, Blog)
}

// Keywords returns a copy of the keyword list for label, or nil for Blog and
// unknown labels.
func Keywords(label Label) []string {
	for _, r := range keywordTable {
		if r.label == label {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}

// ParseLabel resolves a label name case-insensitively.
func ParseLabel(name string) (Label, error) {
	name = strings.TrimSpace(name)
	for _, l := range AllLabels() {
		if strings.EqualFold(string(l), name) {
			return l, nil
		}
	}
	return "", ErrUnknownLabel
}

// Matches reports whether any tag contains any keyword, ignoring case.
// Empty or nil tags never match.
func Matches(tags []string, keywords []string) bool {
	for _, t := range tags {
		tag := strings.ToLower(t)
		for _, k := range keywords {
			if strings.Contains(tag, strings.ToLower(k)) {
				return true
			}
		}
	}
	return false
}

func matchesLabel(tags []string, label Label) bool {
	for _, r := range keywordTable {
		if r.label == label {
			return Matches(tags, r.keywords)
		}
	}
	return false
}

// LabelSet is the result of multi-label classification.
type LabelSet map[Label]struct{}

// Has reports whether l is in the set. A nil set has no labels.
func (s LabelSet) Has(l Label) bool {
	_, ok := s[l]
	return ok
}

// Labels returns the members in keyword table order.
func (s LabelSet) Labels() []Label {
	out := make([]Label, 0, len(s))
	for _, r := range keywordTable {
		if s.Has(r.label) {
			out = append(out, r.label)
		}
	}
	return out
}

// Classify returns every keyword label whose table matches the post's tags.
// A post may carry several labels at once.
func Classify(p content.Post) LabelSet {
	set := LabelSet{}
	for _, r := range keywordTable {
		if Matches(p.Tags, r.keywords) {
			set[r.label] = struct{}{}
		}
	}
	return set
}
