package usecase

import "github.com/shelfmate/shelfmate-server/domain"

// shuffleSeed derives the permutation seed from the user identity and page
// number: same user and page always see the same order, different users and
// pages see different ones.
func shuffleSeed(userID string, page int) int {
	sum := 0
	for _, b := range []byte(userID) {
		sum += int(b)
	}
	return (sum + page) % 10000
}

// deterministicShuffle permutes books in place with a Fisher-Yates walk whose
// swap index is fixed by the seed: j = (seed + i) mod (i + 1). Only the
// popularity tier is shuffled; the preference tiers keep their rating order.
func deterministicShuffle(books []domain.Book, seed int) {
	for i := len(books) - 1; i > 0; i-- {
		j := (seed + i) % (i + 1)
		books[i], books[j] = books[j], books[i]
	}
}
