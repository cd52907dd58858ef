package curation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eringen/frontpage/content"
)

func TestPrimaryCategoryPrecedence(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want Label
	}{
		{"celebrity", []string{"Celebrity"}, Celebverse},
		{"hollywood counts as celebverse", []string{"hollywood"}, Celebverse},
		{"celebverse wins over gossips", []string{"Celebrity News"}, Celebverse},
		{"celebverse wins regardless of tag order", []string{"buzz", "actor"}, Celebverse},
		{"gossips", []string{"Entertainment"}, Gossips},
		{"catch-all", []string{"recipes"}, Blog},
		{"no tags", nil, Blog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimaryCategory(post("p", tt.tags...)))
		})
	}
}

func TestInCategoryBlogExcludesChainLabels(t *testing.T) {
	assert.True(t, InCategory(post("a", "travel"), Blog))
	assert.True(t, InCategory(post("b"), Blog))
	assert.False(t, InCategory(post("c", "news"), Blog))
	assert.False(t, InCategory(post("d", "actress"), Blog))
}

func TestFilter(t *testing.T) {
	posts := []content.Post{
		post("a", "gossip"),
		post("b", "actor"),
		post("c", "buzz", "celeb"),
		post("d"),
		post("e", "Daily News"),
	}
	assert.Equal(t, []string{"a", "c", "e"}, slugs(Filter(posts, Gossips)))
	assert.Equal(t, []string{"b", "c"}, slugs(Filter(posts, Celebverse)))
	assert.Equal(t, []string{"d"}, slugs(Filter(posts, Blog)))
	assert.Empty(t, Filter(nil, World))
}

func TestKeywordTableShared(t *testing.T) {
	// Both classification styles read the same keyword table.
	for _, label := range []Label{Celebverse, Gossips} {
		for _, kw := range Keywords(label) {
			p := post("p", "x"+kw+"x")
			assert.True(t, Classify(p).Has(label), "Classify %s by %q", label, kw)
			assert.True(t, InCategory(p, label), "InCategory %s by %q", label, kw)
		}
	}
}
