package processor

import (
	"context"
	"fmt"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"
)

// SyncWins reads the won history and flags won giveaways. Giveaways never seen by a scan are
// created as entered and won, with a manual entry so every entered giveaway has a successful entry.
func (p *ScannerProcessor) SyncWins(ctx context.Context, pages int) (int, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scan_source", Value: SourceWon})

	newWins := 0
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return newWins, err
		}
		listings, err := p.site.ListWon(ctx, page)
		if err != nil {
			p.logger.Error(ctx, "failed to list won giveaways", err)
			return newWins, fmt.Errorf("failed to list won page %d: %w", page, err)
		}
		if len(listings) == 0 {
			break
		}

		existing, err := p.existingByCode(ctx, listings)
		if err != nil {
			return newWins, err
		}
		for _, l := range listings {
			g, ok := existing[l.Code]
			if !ok {
				g, err = p.store.CreateGiveaway(ctx, store.CreateGiveawayParams{
					Code:          l.Code,
					CatalogItemID: l.CatalogItemID,
					DisplayName:   l.Name,
					Copies:        l.Copies,
				})
				if err != nil {
					return newWins, fmt.Errorf("failed to create won giveaway %s: %w", l.Code, err)
				}
				existing[l.Code] = g
			}
			if g.IsWon {
				continue
			}

			wonAt := p.now().UTC()
			if l.EndTime != nil {
				wonAt = *l.EndTime
			}
			if !g.IsEntered {
				if _, err := p.store.RecordExternalEntry(ctx, g.ID, g.PointsCost, wonAt); err != nil {
					return newWins, fmt.Errorf("failed to record entry for won giveaway %s: %w", l.Code, err)
				}
			}
			if err := p.store.MarkGiveawayWon(ctx, g.ID, wonAt); err != nil {
				return newWins, fmt.Errorf("failed to mark giveaway %s won: %w", l.Code, err)
			}
			newWins++
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "giveaway_code", Value: l.Code}),
				fmt.Sprintf("won giveaway %s", l.Name))
		}
	}
	p.metrics.RecordScan(SourceWon, newWins, 0)
	return newWins, nil
}

// SyncEntered reads the entered history and records entries made outside the automation
func (p *ScannerProcessor) SyncEntered(ctx context.Context, pages int) (int, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scan_source", Value: SourceEntered})

	recorded := 0
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return recorded, err
		}
		listings, err := p.site.ListEntered(ctx, page)
		if err != nil {
			p.logger.Error(ctx, "failed to list entered giveaways", err)
			return recorded, fmt.Errorf("failed to list entered page %d: %w", page, err)
		}
		if len(listings) == 0 {
			break
		}

		existing, err := p.existingByCode(ctx, listings)
		if err != nil {
			return recorded, err
		}
		for _, l := range listings {
			g, ok := existing[l.Code]
			if !ok {
				g, err = p.createFromHistory(ctx, l)
				if err != nil {
					return recorded, err
				}
				existing[l.Code] = g
			}
			if g.IsEntered {
				continue
			}
			inserted, err := p.store.RecordExternalEntry(ctx, g.ID, g.PointsCost, p.now().UTC())
			if err != nil {
				return recorded, fmt.Errorf("failed to record external entry for %s: %w", l.Code, err)
			}
			if inserted {
				recorded++
			}
		}
	}
	if recorded > 0 {
		p.logger.Info(ctx, fmt.Sprintf("recorded %d entries made outside the automation", recorded))
	}
	p.metrics.RecordScan(SourceEntered, recorded, 0)
	return recorded, nil
}

func (p *ScannerProcessor) createFromHistory(ctx context.Context, l steamgifts.Listing) (store.Giveaway, error) {
	g, err := p.store.CreateGiveaway(ctx, store.CreateGiveawayParams{
		Code:          l.Code,
		CatalogItemID: l.CatalogItemID,
		DisplayName:   l.Name,
		PointsCost:    l.PointsCost,
		Copies:        l.Copies,
		EndTime:       l.EndTime,
	})
	if err != nil {
		return store.Giveaway{}, fmt.Errorf("failed to create entered giveaway %s: %w", l.Code, err)
	}
	return g, nil
}
