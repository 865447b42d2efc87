// Package postings holds the posting lifecycle: creation, querying, and the
// single unpaid -> paid transition with its two fee-calculation policies.
package postings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"lexjobs/internal/utils"
	"lexjobs/pkg/types"
)

// Repository is the storage capability the service needs. *store.PostingRepository
// satisfies it; tests substitute a mock.
type Repository interface {
	CreatePosting(ctx context.Context, posting *types.Posting) error
	Posting(ctx context.Context, postingID string) (*types.Posting, error)
	Postings(ctx context.Context, req types.GetPostingsRequest) ([]*types.Posting, error)
	CountPostings(ctx context.Context) (int64, error)
	MarkPostingPaid(ctx context.Context, postingID string, payment types.PostingPayment) error
}

type Service struct {
	repo Repository

	// maxDivergence is the allowed fractional divergence of a reported
	// settlementAmount from the posting's expectedSettlementAmount.
	maxDivergence float64
}

func NewService(repo Repository, maxDivergence float64) *Service {
	return &Service{
		repo:          repo,
		maxDivergence: maxDivergence,
	}
}

// Create validates the submission and persists a new unpaid posting. The
// poster identity always comes from the authenticated caller, never from the
// request body.
func (s *Service) Create(ctx context.Context, req types.CreatePostingRequest, posterEmail string) (*types.Posting, error) {

	if err := req.Validate(); err != nil {
		return nil, err
	}

	posting := &types.Posting{
		Title:                    req.Title,
		Description:              req.Description,
		ClientEmail:              req.ClientEmail,
		PosterEmail:              posterEmail,
		Status:                   types.PostingStatusUnpaid,
		FeeStructure:             req.FeeStructure,
		FeeAmount:                req.FeeAmount,
		FeePercentage:            req.FeePercentage,
		ExpectedSettlementAmount: req.ExpectedSettlementAmount,
	}

	if err := s.repo.CreatePosting(ctx, posting); err != nil {
		return nil, fmt.Errorf("create posting: %w", err)
	}

	return posting, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.CountPostings(ctx)
}

// Find returns a page of postings filtered by whichever of clientEmail and
// posterEmail the caller supplied. Absent fields impose no constraint.
func (s *Service) Find(ctx context.Context, req types.GetPostingsRequest) ([]*types.Posting, error) {

	if err := req.Normalize(); err != nil {
		return nil, err
	}

	postings, err := s.repo.Postings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("find postings: %w", err)
	}

	return postings, nil
}

// Pay transitions a posting from unpaid to paid. Preconditions are checked in
// order and each failure is terminal: the posting must exist, must not already
// be paid, and for No-Win-No-Fee postings the reported settlementAmount must
// sit inside the tolerance band around the expected settlement amount.
//
// The returned posting is the record as it was immediately before the update
// was applied. Callers that need the post-update record re-fetch it.
func (s *Service) Pay(ctx context.Context, req types.PayPostingRequest) (*types.Posting, error) {

	posting, err := s.repo.Posting(ctx, req.ID)
	if err != nil {
		if errors.Is(err, types.ErrPostingNotFound) {
			return nil, types.ErrPostingNotFound
		}
		return nil, fmt.Errorf("fetch posting %s: %w", req.ID, err)
	}

	if posting.PaidOn != nil {
		return nil, types.ErrPostingAlreadyPaid
	}

	payment := types.PostingPayment{
		PaidOn: time.Now(),
	}

	switch posting.FeeStructure {
	case types.FeeStructureFixed:
		// The amount was fixed when the posting was created; any supplied
		// settlementAmount is ignored.
		payment.AmountPaid = utils.PtrFloat64(posting.FeeAmount)

	case types.FeeStructureNoWinNoFee:
		if req.SettlementAmount == nil {
			return nil, types.ErrSettlementAmountRequired
		}

		settlement := *req.SettlementAmount
		expected := utils.PtrFloat64(posting.ExpectedSettlementAmount)

		// The comparison uses the unrounded band edges; only the reported
		// bounds are rounded. The band is computed as expected +/- the
		// allowance so a settlement exactly at a bound lands inside it.
		allowance := expected * s.maxDivergence
		minSettlement := expected - allowance
		maxSettlement := expected + allowance
		if settlement < minSettlement || settlement > maxSettlement {
			return nil, &types.SettlementOutOfRangeError{
				Min: int64(math.Round(minSettlement)),
				Max: int64(math.Round(maxSettlement)),
			}
		}

		payment.AmountPaid = utils.PtrFloat64(posting.FeePercentage) * settlement
		payment.SettlementAmount = req.SettlementAmount

	default:
		// Creation-time validation makes this unreachable unless the stored
		// record is corrupt.
		return nil, types.ErrInvalidFeeStructure
	}

	// The store applies the transition conditionally, so a concurrent payment
	// that won the race surfaces here as ErrPostingAlreadyPaid.
	if err := s.repo.MarkPostingPaid(ctx, posting.ID, payment); err != nil {
		if errors.Is(err, types.ErrPostingAlreadyPaid) {
			return nil, types.ErrPostingAlreadyPaid
		}
		return nil, fmt.Errorf("mark posting %s paid: %w", posting.ID, err)
	}

	return posting, nil
}
