package genreutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandSynonyms_IncludesOriginalsAndSynonyms(t *testing.T) {
	expanded := ExpandSynonyms([]string{"Mystery"})
	assert.Contains(t, expanded, "mystery")
	for _, want := range []string{"thriller", "crime", "detective", "suspense", "noir"} {
		assert.Contains(t, expanded, want)
	}
}

func TestExpandSynonyms_Dedupes(t *testing.T) {
	// mystery and thriller expand into each other; no label may repeat.
	expanded := ExpandSynonyms([]string{"mystery", "thriller", "MYSTERY "})
	seen := map[string]bool{}
	for _, label := range expanded {
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
}

func TestExpandSynonyms_UnknownLabelPassesThrough(t *testing.T) {
	expanded := ExpandSynonyms([]string{"beekeeping"})
	assert.Equal(t, []string{"beekeeping"}, expanded)
}

func TestExpandSynonyms_Empty(t *testing.T) {
	assert.Empty(t, ExpandSynonyms(nil))
	assert.Empty(t, ExpandSynonyms([]string{"", "   "}))
}

func TestExpandRelated_ExcludesOriginals(t *testing.T) {
	expanded := ExpandRelated([]string{"fiction"})
	assert.NotContains(t, expanded, "fiction")
	assert.Contains(t, expanded, "literary fiction")
	assert.Contains(t, expanded, "drama")
}

func TestExpandRelated_UnknownLabelExpandsToNothing(t *testing.T) {
	assert.Empty(t, ExpandRelated([]string{"beekeeping"}))
}

func TestAuthorTokens(t *testing.T) {
	tokens := AuthorTokens([]string{"Ursula K. Le Guin", "le guin"})
	assert.Contains(t, tokens, "ursula")
	assert.Contains(t, tokens, "guin")
	// Short tokens match half the catalog and are dropped.
	assert.NotContains(t, tokens, "k.")
	assert.NotContains(t, tokens, "le")
	// Duplicates across names collapse.
	assert.Equal(t, 1, count(tokens, "guin"))
}

func TestAuthorTokens_Empty(t *testing.T) {
	assert.Empty(t, AuthorTokens(nil))
	assert.Empty(t, AuthorTokens([]string{"", "  "}))
}

func count(tokens []string, want string) int {
	n := 0
	for _, token := range tokens {
		if token == want {
			n++
		}
	}
	return n
}
