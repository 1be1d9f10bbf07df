package processor

import (
	"context"
	"fmt"
	"time"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/metrics"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"
)

// Scan sources, used as log and metric labels
const (
	SourceAll      = "all"
	SourceWishlist = "wishlist"
	SourceDLC      = "dlc"
	SourceWon      = "won"
	SourceEntered  = "entered"
)

// ScanResult counts what a scan wrote. Updated only counts rows whose listing fields changed.
type ScanResult struct {
	New     int `json:"new"`
	Updated int `json:"updated"`
	Pages   int `json:"pages"`
}

type ScannerProcessor struct {
	site    SiteClient
	store   Store
	catalog GameInfoProvider
	metrics *metrics.Metrics
	logger  *observability.Logger
	now     func() time.Time
}

func New(site SiteClient, store Store, catalog GameInfoProvider, m *metrics.Metrics, logger *observability.Logger) *ScannerProcessor {
	return &ScannerProcessor{
		site:    site,
		store:   store,
		catalog: catalog,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Scan reads up to pages listing pages and upserts every giveaway by code.
// It stops at the first empty page. On error the counts committed so far are returned with it.
func (p *ScannerProcessor) Scan(ctx context.Context, pages int) (ScanResult, error) {
	return p.scanSource(ctx, pages, steamgifts.FilterAll, SourceAll)
}

// ScanWishlist scans the wishlist filter and flags every listed giveaway as wishlisted
func (p *ScannerProcessor) ScanWishlist(ctx context.Context, pages int) (ScanResult, error) {
	return p.scanSource(ctx, pages, steamgifts.FilterWishlist, SourceWishlist)
}

// ScanDLC scans the DLC filter
func (p *ScannerProcessor) ScanDLC(ctx context.Context, pages int) (ScanResult, error) {
	return p.scanSource(ctx, pages, steamgifts.FilterDLC, SourceDLC)
}

func (p *ScannerProcessor) scanSource(ctx context.Context, pages int, filter steamgifts.Filter, source string) (ScanResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scan_source", Value: source})

	var result ScanResult
	defer func() { p.metrics.RecordScan(source, result.New, result.Updated) }()

	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		listings, err := p.site.ListGiveaways(ctx, page, filter)
		if err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to list page %d", page), err)
			return result, fmt.Errorf("failed to list page %d: %w", page, err)
		}
		if len(listings) == 0 {
			break
		}
		result.Pages++

		created, updated, err := p.upsertPage(ctx, listings, source == SourceWishlist)
		result.New += created
		result.Updated += updated
		if err != nil {
			return result, err
		}
	}

	p.logger.Info(ctx, fmt.Sprintf("scanned %d pages: %d new, %d updated", result.Pages, result.New, result.Updated))
	return result, nil
}

func (p *ScannerProcessor) upsertPage(ctx context.Context, listings []steamgifts.Listing, wishlisted bool) (int, int, error) {
	existing, err := p.existingByCode(ctx, listings)
	if err != nil {
		return 0, 0, err
	}

	created, updated := 0, 0
	for _, l := range listings {
		current, ok := existing[l.Code]
		if !ok {
			g, err := p.store.CreateGiveaway(ctx, store.CreateGiveawayParams{
				Code:          l.Code,
				CatalogItemID: l.CatalogItemID,
				DisplayName:   l.Name,
				PointsCost:    l.PointsCost,
				Copies:        l.Copies,
				EndTime:       l.EndTime,
				IsWishlisted:  wishlisted,
			})
			if err != nil {
				return created, updated, fmt.Errorf("failed to create giveaway %s: %w", l.Code, err)
			}
			created++
			if err := p.recordSiteEntry(ctx, &g, l); err != nil {
				return created, updated, err
			}
			existing[l.Code] = g
			p.resolveCatalog(ctx, l.CatalogItemID)
			continue
		}

		if err := p.recordSiteEntry(ctx, &current, l); err != nil {
			return created, updated, err
		}
		existing[l.Code] = current

		params := store.UpdateGiveawayListingParams{
			CatalogItemID: l.CatalogItemID,
			DisplayName:   l.Name,
			PointsCost:    l.PointsCost,
			Copies:        l.Copies,
			EndTime:       l.EndTime,
			IsWishlisted:  wishlisted,
		}
		if !listingChanged(current, params) {
			continue
		}
		g, err := p.store.UpdateGiveawayListing(ctx, current.ID, params)
		if err != nil {
			return created, updated, fmt.Errorf("failed to update giveaway %s: %w", l.Code, err)
		}
		existing[l.Code] = g
		updated++
		if current.CatalogItemID == nil {
			p.resolveCatalog(ctx, l.CatalogItemID)
		}
	}
	return created, updated, nil
}

// recordSiteEntry records an entry the site already shows for the account, so the giveaway
// never becomes an entry candidate.
func (p *ScannerProcessor) recordSiteEntry(ctx context.Context, g *store.Giveaway, l steamgifts.Listing) error {
	if !l.Entered || g.IsEntered {
		return nil
	}
	at := p.now().UTC()
	if _, err := p.store.RecordExternalEntry(ctx, g.ID, g.PointsCost, at); err != nil {
		return fmt.Errorf("failed to record site entry for %s: %w", l.Code, err)
	}
	g.IsEntered = true
	g.EnteredAt = &at
	return nil
}

func (p *ScannerProcessor) existingByCode(ctx context.Context, listings []steamgifts.Listing) (map[string]store.Giveaway, error) {
	codes := make([]string, 0, len(listings))
	for _, l := range listings {
		codes = append(codes, l.Code)
	}
	rows, err := p.store.GetGiveawaysByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to load known giveaways: %w", err)
	}
	byCode := make(map[string]store.Giveaway, len(rows))
	for _, g := range rows {
		byCode[g.Code] = g
	}
	return byCode, nil
}

// resolveCatalog warms the catalog so eligibility filters have data. Failures only cost a skipped candidate later.
func (p *ScannerProcessor) resolveCatalog(ctx context.Context, id *int64) {
	if id == nil || p.catalog == nil {
		return
	}
	if _, err := p.catalog.Resolve(ctx, *id); err != nil {
		p.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "catalog_item_id", Value: *id}),
			fmt.Sprintf("catalog lookup failed: %v", err))
	}
}

// listingChanged mirrors the update statement: catalog id is only filled in, end time is only
// overwritten by a known value and the wishlist flag is sticky.
func listingChanged(current store.Giveaway, next store.UpdateGiveawayListingParams) bool {
	copies := next.Copies
	if copies < 1 {
		copies = 1
	}
	switch {
	case current.CatalogItemID == nil && next.CatalogItemID != nil:
		return true
	case current.DisplayName != next.DisplayName:
		return true
	case current.PointsCost != next.PointsCost:
		return true
	case current.Copies != copies:
		return true
	case next.EndTime != nil && (current.EndTime == nil || !current.EndTime.Equal(*next.EndTime)):
		return true
	case next.IsWishlisted && !current.IsWishlisted:
		return true
	}
	return false
}
