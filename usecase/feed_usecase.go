package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/shelfmate/shelfmate-server/internal/genreutil"
)

// Per-tier fetch multipliers. Pagination is computed over a superset
// reassembled on every request, so each tier must over-fetch proportionally
// to the requested depth or deep pages would starve after dedup. Heuristic
// and tunable, not derived from a formal guarantee.
const (
	tierExactBaseFactor    = 10
	tierExactDepthFactor   = 2
	tierRelatedBaseFactor  = 5
	tierPopularBaseFactor  = 3
	tierPopularDepthOffset = 5
)

func tierExactFetchSize(page, limit int) int64 {
	n := limit * tierExactBaseFactor
	if depth := page * limit * tierExactDepthFactor; depth > n {
		n = depth
	}
	return int64(n)
}

func tierRelatedFetchSize(page, limit int) int64 {
	n := limit * tierRelatedBaseFactor
	// depth factor is 1.5
	if depth := (page*limit*3 + 1) / 2; depth > n {
		n = depth
	}
	return int64(n)
}

func tierPopularFetchSize(page, limit int) int64 {
	n := limit * tierPopularBaseFactor
	if depth := (page + tierPopularDepthOffset) * limit; depth > n {
		n = depth
	}
	return int64(n)
}

type feedUsecase struct {
	preferenceRepository domain.PreferenceRepository
	userRepository       domain.UserRepository
	catalogRepository    domain.CatalogRepository
	contextTimeout       time.Duration
}

func NewFeedUsecase(
	preferenceRepository domain.PreferenceRepository,
	userRepository domain.UserRepository,
	catalogRepository domain.CatalogRepository,
	timeout time.Duration,
) domain.FeedUsecase {
	return &feedUsecase{
		preferenceRepository: preferenceRepository,
		userRepository:       userRepository,
		catalogRepository:    catalogRepository,
		contextTimeout:       timeout,
	}
}

// resolvePreferences treats every failure as "no preferences": the feed must
// still produce popularity-tier output for a user whose record is missing or
// whose preference store is down.
func (uc *feedUsecase) resolvePreferences(ctx context.Context, userID string) domain.ResolvedPreferences {
	prefs, err := uc.preferenceRepository.GetByUserID(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("preference resolution failed, assembling without preferences")
		return domain.ResolvedPreferences{}
	}
	return prefs
}

// AssembleOnboarding builds one feed page through the three retrieval tiers.
// Tiers run in priority order and feed their seen ids forward, so the
// related and popularity queries exclude earlier admissions server-side.
// A failed tier contributes nothing; the assembly carries on.
func (uc *feedUsecase) AssembleOnboarding(ctx context.Context, userID string, page, limit int) (*domain.FeedPage, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	prefs := uc.resolvePreferences(ctx, userID)
	exactLabels := genreutil.ExpandSynonyms(prefs.GenreNames)
	relatedLabels := genreutil.ExpandRelated(prefs.GenreNames)
	authorTokens := genreutil.AuthorTokens(prefs.AuthorNames)

	seen := newSeenSet()
	var superset []domain.Candidate

	// Tier 1: synonym-expanded genres and author tokens.
	if len(exactLabels) > 0 || len(authorTokens) > 0 {
		books, err := uc.catalogRepository.FindByPreferences(ctx, exactLabels, authorTokens, tierExactFetchSize(page, limit))
		if err != nil {
			uc.logTierFailure(err, userID, domain.TierExactMatch)
		} else {
			superset = appendCandidates(superset, admitUnseen(books, seen), domain.TierExactMatch)
		}
	}

	// Tier 2: relationship-table expansion. Runs whenever the user has any
	// genre signal, even if tier 1 was rich; deep pages need this pool.
	if len(relatedLabels) > 0 {
		books, err := uc.catalogRepository.FindByCategories(ctx, relatedLabels, seen.IDs(), tierRelatedFetchSize(page, limit))
		if err != nil {
			uc.logTierFailure(err, userID, domain.TierRelatedGenre)
		} else {
			superset = appendCandidates(superset, admitUnseen(books, seen), domain.TierRelatedGenre)
		}
	}

	// Tier 3: popularity fallback, always. This is what keeps the feed
	// endless for users with no signal at all. Shuffled per (user, page) so
	// refreshes are stable but pages and users differ.
	books, err := uc.catalogRepository.FindPopular(ctx, seen.IDs(), tierPopularFetchSize(page, limit))
	if err != nil {
		uc.logTierFailure(err, userID, domain.TierPopularity)
	} else {
		tier3 := admitUnseen(books, seen)
		deterministicShuffle(tier3, shuffleSeed(userID, page))
		superset = appendCandidates(superset, tier3, domain.TierPopularity)
	}

	return paginate(dedupeByTitleAuthor(candidateBooks(superset)), page, limit), nil
}

func (uc *feedUsecase) logTierFailure(err error, userID string, tier int) {
	log.Warn().Err(err).Str("user_id", userID).Int("tier", tier).Msg("tier query failed, continuing with remaining tiers")
}

// Recommended is the default feed: one popularity-ranked query biased by the
// user's genres when present. Degrades to plain popularity on any miss.
func (uc *feedUsecase) Recommended(ctx context.Context, userID string, limit int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	prefs := uc.resolvePreferences(ctx, userID)
	if len(prefs.GenreNames) > 0 {
		labels := genreutil.ExpandSynonyms(prefs.GenreNames)
		books, err := uc.catalogRepository.FindByCategories(ctx, labels, nil, int64(limit))
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("genre recommendation query failed, falling back to popular")
		} else if len(books) > 0 {
			return books, nil
		}
	}
	return uc.catalogRepository.FindPopular(ctx, nil, int64(limit))
}

func (uc *feedUsecase) Favorites(ctx context.Context, userID string, limit int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	ids, err := uc.userRepository.FavoriteBookIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	books, err := uc.catalogRepository.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return capBooks(books, limit), nil
}

func (uc *feedUsecase) ByFavoriteAuthors(ctx context.Context, userID string, limit int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	prefs := uc.resolvePreferences(ctx, userID)
	tokens := genreutil.AuthorTokens(prefs.AuthorNames)
	if len(tokens) == 0 {
		return nil, nil
	}
	return uc.catalogRepository.FindByAuthors(ctx, tokens, int64(limit))
}

func (uc *feedUsecase) ByGenres(ctx context.Context, userID string, limit int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	prefs := uc.resolvePreferences(ctx, userID)
	if len(prefs.GenreNames) == 0 {
		return nil, nil
	}
	return uc.catalogRepository.FindByCategories(ctx, prefs.GenreNames, nil, int64(limit))
}

func (uc *feedUsecase) ContinueReading(ctx context.Context, userID string, limit int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	ids, err := uc.userRepository.ReadingBookIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	books, err := uc.catalogRepository.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return capBooks(books, limit), nil
}

func (uc *feedUsecase) FriendsActivity(ctx context.Context, userID string, limit int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	following, err := uc.userRepository.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(following) == 0 {
		return nil, nil
	}
	ids, err := uc.userRepository.FavoriteBookIDsOfUsers(ctx, following)
	if err != nil {
		return nil, err
	}
	books, err := uc.catalogRepository.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return capBooks(books, limit), nil
}

func capBooks(books []domain.Book, limit int) []domain.Book {
	if len(books) > limit {
		return books[:limit]
	}
	return books
}
