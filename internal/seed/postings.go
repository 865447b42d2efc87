package seed

import (
	"context"
	"fmt"

	"lexjobs/internal/store"
	"lexjobs/internal/utils"
	"lexjobs/pkg/types"

	"github.com/k0kubun/pp/v3"
)

// Email stamped on every seeded posting. Seeding is skipped when postings for
// this poster already exist, so `just seed` stays re-runnable.
const seedPosterEmail = "seed-solicitor@lexjobs.dev"

// SeedPostings inserts a small set of sample postings for local development:
// a mix of Fixed-Fee and No-Win-No-Fee jobs, all unpaid, ready for payment
// submissions against the running server.
func SeedPostings(ctx context.Context, repo *store.PostingRepository) error {
	existing, err := repo.Postings(ctx, types.GetPostingsRequest{
		PosterEmail: seedPosterEmail,
		SortBy:      "created",
		SortOrder:   "desc",
		Limit:       1,
	})
	if err != nil {
		return fmt.Errorf("failed to check for existing seed postings: %w", err)
	}

	if len(existing) > 0 {
		return nil
	}

	postings := []*types.Posting{
		{
			Title:        "Conveyancing for residential purchase",
			Description:  "Standard freehold purchase of a three-bedroom property, searches and exchange included.",
			ClientEmail:  "amara.obi@example.com",
			Status:       types.PostingStatusUnpaid,
			FeeStructure: types.FeeStructureFixed,
			FeeAmount:    utils.Float64Ptr(950),
		},
		{
			Title:        "Employment tribunal representation",
			Description:  "Unfair dismissal claim, hearing listed for two days, bundle already prepared.",
			ClientEmail:  "dev.patel@example.com",
			Status:       types.PostingStatusUnpaid,
			FeeStructure: types.FeeStructureFixed,
			FeeAmount:    utils.Float64Ptr(2400),
		},
		{
			Title:                    "Personal injury claim after road traffic accident",
			Description:              "Rear-end collision with soft tissue injuries, liability admitted by the insurer.",
			ClientEmail:              "lucy.fletcher@example.com",
			Status:                   types.PostingStatusUnpaid,
			FeeStructure:             types.FeeStructureNoWinNoFee,
			FeePercentage:            utils.Float64Ptr(0.25),
			ExpectedSettlementAmount: utils.Float64Ptr(12000),
		},
		{
			Title:                    "Medical negligence settlement negotiation",
			Description:              "Delayed diagnosis claim against an NHS trust, expert reports obtained, pre-action protocol complete.",
			ClientEmail:              "tomasz.kowalski@example.com",
			Status:                   types.PostingStatusUnpaid,
			FeeStructure:             types.FeeStructureNoWinNoFee,
			FeePercentage:            utils.Float64Ptr(0.11),
			ExpectedSettlementAmount: utils.Float64Ptr(50000),
		},
	}

	for _, posting := range postings {
		posting.PosterEmail = seedPosterEmail
		if err := repo.CreatePosting(ctx, posting); err != nil {
			return fmt.Errorf("failed to seed posting %q: %w", posting.Title, err)
		}
	}

	pp.Println(postings)

	return nil
}
