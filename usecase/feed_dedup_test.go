package usecase

import (
	"testing"

	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTitleAuthorKey(t *testing.T) {
	a := domain.Book{Title: "The Trial", Authors: []string{"Franz Kafka"}}
	b := domain.Book{Title: "  THE TRIAL ", Authors: []string{"franz kafka", "Max Brod"}}
	c := domain.Book{Title: "The Trial", Authors: []string{"Someone Else"}}

	assert.Equal(t, titleAuthorKey(a), titleAuthorKey(b))
	assert.NotEqual(t, titleAuthorKey(a), titleAuthorKey(c))
}

func TestTitleAuthorKey_NoAuthors(t *testing.T) {
	b := domain.Book{Title: "Beowulf"}
	assert.Equal(t, "beowulf|", titleAuthorKey(b))
}

func TestDedupeByTitleAuthor_KeepsFirstOccurrence(t *testing.T) {
	first := domain.Book{ID: primitive.NewObjectID(), Title: "Emma", Authors: []string{"Jane Austen"}}
	reprint := domain.Book{ID: primitive.NewObjectID(), Title: "EMMA", Authors: []string{"Jane Austen"}}
	other := domain.Book{ID: primitive.NewObjectID(), Title: "Persuasion", Authors: []string{"Jane Austen"}}

	deduped := dedupeByTitleAuthor([]domain.Book{first, reprint, other})
	assert.Len(t, deduped, 2)
	assert.Equal(t, first.ID, deduped[0].ID)
	assert.Equal(t, other.ID, deduped[1].ID)
}

func TestSeenSet(t *testing.T) {
	s := newSeenSet()
	id := primitive.NewObjectID()
	assert.True(t, s.add(id))
	assert.False(t, s.add(id))
	assert.Len(t, s.IDs(), 1)
}

func TestAdmitUnseen_MarksAndFilters(t *testing.T) {
	seen := newSeenSet()
	books := []domain.Book{
		{ID: primitive.NewObjectID(), Title: "A"},
		{ID: primitive.NewObjectID(), Title: "B"},
	}
	seen.add(books[0].ID)

	admitted := admitUnseen(books, seen)
	assert.Len(t, admitted, 1)
	assert.Equal(t, "B", admitted[0].Title)
	assert.Len(t, seen.IDs(), 2)
}

func TestPaginate(t *testing.T) {
	books := make([]domain.Book, 12)

	page := paginate(books, 1, 5)
	assert.Len(t, page.Books, 5)
	assert.Equal(t, 12, page.Total)
	assert.True(t, page.HasMore)

	page = paginate(books, 3, 5)
	assert.Len(t, page.Books, 2)
	assert.False(t, page.HasMore)

	// Past the end: empty but well-formed.
	page = paginate(books, 9, 5)
	assert.Empty(t, page.Books)
	assert.False(t, page.HasMore)
	assert.Equal(t, 12, page.Total)
}

func TestPaginate_Empty(t *testing.T) {
	page := paginate(nil, 1, 20)
	assert.Empty(t, page.Books)
	assert.Zero(t, page.Total)
	assert.False(t, page.HasMore)
}
