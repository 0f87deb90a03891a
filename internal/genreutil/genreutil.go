// Package genreutil holds the static genre-relationship data used to widen
// catalog retrieval. Two separate tables serve two intents: the synonym table
// widens "exact" matching (labels readers use interchangeably), while the
// relationship table maps a genre to broader, lower-confidence associations.
package genreutil

import "strings"

// genreSynonyms: labels that name the same shelf. Matching against the
// catalog is substring-based, so entries stay short and lowercase.
var genreSynonyms = map[string][]string{
	"mystery":         {"thriller", "crime", "detective", "suspense", "noir"},
	"thriller":        {"mystery", "suspense", "crime"},
	"science fiction": {"sci-fi", "scifi", "speculative"},
	"sci-fi":          {"science fiction", "scifi", "speculative"},
	"fantasy":         {"epic fantasy", "urban fantasy", "magic"},
	"romance":         {"love story", "romantic"},
	"horror":          {"ghost", "supernatural", "occult"},
	"biography":       {"autobiography", "memoir"},
	"memoir":          {"autobiography", "biography"},
	"self-help":       {"self improvement", "personal development", "personal growth"},
	"history":         {"historical"},
	"young adult":     {"ya", "teen"},
	"comics":          {"graphic novel", "manga"},
	"business":        {"management", "entrepreneurship"},
	"cooking":         {"cookbook", "food"},
	"poetry":          {"poems", "verse"},
	"true crime":      {"crime", "criminal"},
}

// genreRelations: broader topical neighbors, used only by the related-genre
// tier. Distinct from synonyms on purpose; these are lower-confidence hops.
var genreRelations = map[string][]string{
	"mystery":         {"horror", "true crime", "adventure"},
	"thriller":        {"horror", "action", "espionage"},
	"science fiction": {"fantasy", "dystopian", "technology"},
	"sci-fi":          {"fantasy", "dystopian", "technology"},
	"fantasy":         {"science fiction", "mythology", "adventure"},
	"romance":         {"contemporary fiction", "drama", "women's fiction"},
	"fiction":         {"literary fiction", "drama", "contemporary"},
	"horror":          {"thriller", "dark fantasy", "gothic"},
	"biography":       {"history", "memoir", "nonfiction"},
	"memoir":          {"biography", "essays", "nonfiction"},
	"self-help":       {"psychology", "philosophy", "business"},
	"history":         {"biography", "politics", "military"},
	"young adult":     {"fantasy", "romance", "coming of age"},
	"business":        {"economics", "self-help", "finance"},
	"poetry":          {"essays", "literary fiction"},
	"travel":          {"adventure", "memoir", "geography"},
	"science":         {"nature", "technology", "mathematics"},
	"philosophy":      {"psychology", "religion", "essays"},
}

// NormalizeLabel lowercases and trims a genre label for table lookup and
// output dedup.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ExpandSynonyms returns the given labels plus their synonym-table
// expansions, deduplicated, in first-seen order.
func ExpandSynonyms(genres []string) []string {
	return expand(genres, genreSynonyms)
}

// ExpandRelated returns only the relationship-table expansions of the given
// labels, deduplicated. The originals are excluded: the exact tier already
// covers them, and re-querying them here would just burn the tier-2 budget.
func ExpandRelated(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		seen[NormalizeLabel(g)] = struct{}{}
	}

	var expanded []string
	for _, g := range genres {
		for _, related := range genreRelations[NormalizeLabel(g)] {
			if _, ok := seen[related]; ok {
				continue
			}
			seen[related] = struct{}{}
			expanded = append(expanded, related)
		}
	}
	return expanded
}

func expand(genres []string, table map[string][]string) []string {
	seen := make(map[string]struct{}, len(genres))
	var expanded []string

	add := func(label string) {
		normalized := NormalizeLabel(label)
		if normalized == "" {
			return
		}
		if _, ok := seen[normalized]; ok {
			return
		}
		seen[normalized] = struct{}{}
		expanded = append(expanded, normalized)
	}

	for _, g := range genres {
		add(g)
		for _, synonym := range table[NormalizeLabel(g)] {
			add(synonym)
		}
	}
	return expanded
}

// AuthorTokens splits author names on whitespace and keeps tokens longer than
// two runes. Short tokens ("de", "la", initials) match half the catalog.
func AuthorTokens(names []string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, name := range names {
		for _, token := range strings.Fields(name) {
			token = strings.ToLower(token)
			if len([]rune(token)) <= 2 {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return tokens
}
