package curation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eringen/frontpage/content"
)

func TestSelectRelatedFallbackScenario(t *testing.T) {
	a := post("a", "Celebrity News")
	b := post("b", "Canada Travel")
	c := post("c")
	posts := []content.Post{a, b, c}

	assert.Equal(t, []string{"b", "c"}, slugs(SelectRelated(a, posts)))
}

func TestSelectRelatedSameCategory(t *testing.T) {
	current := post("cur", "gossip")
	posts := []content.Post{
		post("g1", "Buzz"),
		current,
		post("c1", "actor"),
		post("g2", "entertainment"),
		post("b1", "recipes"),
	}
	assert.Equal(t, []string{"g1", "g2"}, slugs(SelectRelated(current, posts)))
}

func TestSelectRelatedGossipsIncludesCelebrityNews(t *testing.T) {
	// The filter for Gossips is a plain keyword match: a post whose own
	// primary category is Celebverse still qualifies when it mentions news.
	current := post("cur", "scandal")
	posts := []content.Post{current, post("x", "Celebrity News")}
	assert.Equal(t, []string{"x"}, slugs(SelectRelated(current, posts)))
}

func TestSelectRelatedBlogExcludesChainPosts(t *testing.T) {
	current := post("cur", "cooking")
	posts := []content.Post{
		post("n", "news"),
		post("t", "travel"),
		current,
		post("h", "hollywood"),
		post("e"),
	}
	assert.Equal(t, []string{"t", "e"}, slugs(SelectRelated(current, posts)))
}

func TestSelectRelatedTruncatesToMax(t *testing.T) {
	current := post("cur", "actress")
	posts := []content.Post{current}
	for i := 0; i < 9; i++ {
		posts = append(posts, post(string(rune('a'+i)), "celeb"))
	}
	got := SelectRelated(current, posts)
	assert.Len(t, got, MaxRelated)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, slugs(got))
}

func TestSelectRelatedFallbackTruncates(t *testing.T) {
	current := post("cur", "celebrity")
	posts := []content.Post{
		post("a", "travel"), post("b"), current, post("c", "food"), post("d"), post("e"),
	}
	assert.Equal(t, []string{"a", "b", "c"}, slugs(SelectRelated(current, posts)))
}

func TestSelectRelatedExcludesCurrent(t *testing.T) {
	current := post("cur", "news")
	posts := []content.Post{current, post("cur", "news"), post("x", "news")}
	for _, p := range SelectRelated(current, posts) {
		assert.NotEqual(t, "cur", p.Slug)
	}
}

func TestSelectRelatedEmptyPool(t *testing.T) {
	current := post("only", "news")
	assert.Empty(t, SelectRelated(current, []content.Post{current}))
	assert.Empty(t, SelectRelated(current, nil))
}
