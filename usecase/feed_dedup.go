package usecase

import (
	"strings"

	"github.com/shelfmate/shelfmate-server/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// normalizeText case-folds and unicode-normalizes catalog text so that
// "Ulysses " and "ULYSSES" produce the same dedup key. Caser instances are
// stateful, hence one per call.
func normalizeText(s string) string {
	return strings.TrimSpace(cases.Fold().String(norm.NFKC.String(s)))
}

// titleAuthorKey identifies a real-world book across distinct catalog
// entries (reprints, other editions, double imports).
func titleAuthorKey(b domain.Book) string {
	return normalizeText(b.Title) + "|" + normalizeText(b.PrimaryAuthor())
}

// seenSet tracks catalog ids already admitted to the superset, in admission
// order, so later tiers can exclude them at query time.
type seenSet struct {
	ids     map[primitive.ObjectID]struct{}
	ordered []primitive.ObjectID
}

func newSeenSet() *seenSet {
	return &seenSet{ids: make(map[primitive.ObjectID]struct{})}
}

// add reports whether the id was newly admitted.
func (s *seenSet) add(id primitive.ObjectID) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	s.ordered = append(s.ordered, id)
	return true
}

func (s *seenSet) IDs() []primitive.ObjectID {
	return s.ordered
}

// admitUnseen filters books already in the seen set and marks the rest. The
// queries exclude seen ids server-side, but the same id can still arrive
// twice when tiers overlap mid-request.
func admitUnseen(books []domain.Book, seen *seenSet) []domain.Book {
	admitted := books[:0:0]
	for _, b := range books {
		if seen.add(b.ID) {
			admitted = append(admitted, b)
		}
	}
	return admitted
}

// appendCandidates tags admitted books with the tier that produced them.
// Append order is the output order: exact matches sit ahead of related
// genres, which sit ahead of the popularity pool.
func appendCandidates(dst []domain.Candidate, books []domain.Book, tier int) []domain.Candidate {
	for _, b := range books {
		dst = append(dst, domain.Candidate{Book: b, Tier: tier})
	}
	return dst
}

func candidateBooks(candidates []domain.Candidate) []domain.Book {
	books := make([]domain.Book, 0, len(candidates))
	for _, c := range candidates {
		books = append(books, c.Book)
	}
	return books
}

// dedupeByTitleAuthor runs over the whole assembled superset, not per tier,
// so a duplicate edition introduced across tiers is still caught. It must
// run before the page slice: dropping rows after slicing would return short
// pages.
func dedupeByTitleAuthor(books []domain.Book) []domain.Book {
	seen := make(map[string]struct{}, len(books))
	deduped := books[:0:0]
	for _, b := range books {
		key := titleAuthorKey(b)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, b)
	}
	return deduped
}

func paginate(books []domain.Book, page, limit int) *domain.FeedPage {
	total := len(books)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &domain.FeedPage{
		Books:   books[start:end],
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: page*limit < total,
	}
}
