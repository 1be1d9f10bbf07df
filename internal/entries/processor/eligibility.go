package processor

import (
	"context"
	"time"

	"autojoin-server/internal/store"
)

type verdict int

const (
	eligible verdict = iota
	rejected
	unresolved
)

// Rejection and skip reasons
const (
	ReasonHidden         = "hidden"
	ReasonEntered        = "already_entered"
	ReasonEnded          = "ended"
	ReasonUnsafe         = "unsafe"
	ReasonBelowMinPrice  = "below_min_price"
	ReasonDLCDisabled    = "dlc_disabled"
	ReasonLowScore       = "low_review_score"
	ReasonFewReviews     = "few_reviews"
	ReasonTooOld         = "too_old"
	ReasonCatalogMissing = "catalog_unresolved"
	ReasonReviewsUnknown = "reviews_unknown"
	ReasonReleaseUnknown = "release_date_unknown"
)

// needsCatalog reports whether any active filter depends on catalog metadata
func needsCatalog(s store.Settings) bool {
	return !s.DLCEnabled || s.MinScore > 0 || s.MinReviews > 0 || s.MaxGameAgeYears != nil
}

func (p *EntryProcessor) evaluate(ctx context.Context, g store.Giveaway, s store.Settings, now time.Time) (verdict, string) {
	switch {
	case g.IsHidden:
		return rejected, ReasonHidden
	case g.IsEntered:
		return rejected, ReasonEntered
	case !g.IsActive(now):
		return rejected, ReasonEnded
	case g.KnownUnsafe():
		return rejected, ReasonUnsafe
	case g.PointsCost < s.MinPrice:
		return rejected, ReasonBelowMinPrice
	}

	if !needsCatalog(s) {
		return eligible, ""
	}
	if g.CatalogItemID == nil {
		return unresolved, ReasonCatalogMissing
	}
	game, err := p.catalog.Resolve(ctx, *g.CatalogItemID)
	if err != nil {
		return unresolved, ReasonCatalogMissing
	}

	if game.Type == store.GameTypeDLC && !s.DLCEnabled {
		return rejected, ReasonDLCDisabled
	}

	// review data only exists for base games
	if game.Type == store.GameTypeGame && (s.MinScore > 0 || s.MinReviews > 0) {
		if game.ReviewScore == nil || game.TotalReviews == nil {
			return unresolved, ReasonReviewsUnknown
		}
		if *game.ReviewScore < s.MinScore {
			return rejected, ReasonLowScore
		}
		if *game.TotalReviews < s.MinReviews {
			return rejected, ReasonFewReviews
		}
	}

	if s.MaxGameAgeYears != nil {
		if game.ReleaseDate == nil {
			return unresolved, ReasonReleaseUnknown
		}
		if now.Year()-game.ReleaseDate.Year() > *s.MaxGameAgeYears {
			return rejected, ReasonTooOld
		}
	}
	return eligible, ""
}
