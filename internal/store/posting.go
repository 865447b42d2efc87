package store

import (
	"context"
	"fmt"
	"time"

	"lexjobs/internal/utils"
	"lexjobs/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postingTableName = "lexjobs.postings"

var postingColumns = utils.StructTagValues(types.Posting{})

// Columns a find query may be ordered by. Sort input is mapped through this
// table so caller-supplied values never reach the SQL text.
var postingSortColumns = map[string]string{
	"title":   "title",
	"created": "created",
}

type PostingRepository struct {
	pool *pgxpool.Pool
}

func NewPostingRepository(pool *pgxpool.Pool) *PostingRepository {
	return &PostingRepository{pool: pool}
}

func (r *PostingRepository) Posting(ctx context.Context, postingID string) (*types.Posting, error) {

	query, args, err := psql().Select(postingColumns...).From(postingTableName).
		Where(sq.Eq{"id": postingID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate posting query: %w", err)
	}

	var posting = new(types.Posting)
	err = pgxscan.Get(ctx, r.pool, posting, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrPostingNotFound
		}
		return nil, fmt.Errorf("failed to fetch posting: %w", err)
	}

	return posting, nil
}

func (r *PostingRepository) Postings(ctx context.Context, req types.GetPostingsRequest) ([]*types.Posting, error) {

	column, ok := postingSortColumns[req.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort column %q", req.SortBy)
	}

	order := "asc"
	if req.SortOrder == "desc" {
		order = "desc"
	}

	builder := psql().Select(postingColumns...).From(postingTableName)
	if req.ClientEmail != "" {
		builder = builder.Where(sq.Eq{"client_email": req.ClientEmail})
	}
	if req.PosterEmail != "" {
		builder = builder.Where(sq.Eq{"poster_email": req.PosterEmail})
	}

	query, args, err := builder.
		OrderBy(fmt.Sprintf("%s %s", column, order)).
		Offset(req.Offset).
		Limit(req.Limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate postings query: %w", err)
	}

	var postings = make([]*types.Posting, 0)
	err = pgxscan.Select(ctx, r.pool, &postings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch postings: %w", err)
	}

	return postings, nil
}

func (r *PostingRepository) CountPostings(ctx context.Context) (int64, error) {

	query, args, err := psql().Select("count(*)").From(postingTableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate posting count query: %w", err)
	}

	var count int64
	err = pgxscan.Get(ctx, r.pool, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count postings: %w", err)
	}

	return count, nil
}

func (r *PostingRepository) CreatePosting(ctx context.Context, posting *types.Posting) error {

	posting.ID = utils.NanoID()
	posting.Created = time.Now()

	postingMap := utils.StructToMap(posting)

	query, args, err := psql().Insert(postingTableName).SetMap(postingMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert posting query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create posting")

}

// MarkPostingPaid applies the unpaid -> paid transition as one conditional
// update. The paid_on IS NULL guard makes the transition succeed at most once
// per posting even under concurrent payment submissions; the losing call gets
// types.ErrPostingAlreadyPaid.
func (r *PostingRepository) MarkPostingPaid(ctx context.Context, postingID string, payment types.PostingPayment) error {

	builder := psql().Update(postingTableName).
		Set("status", types.PostingStatusPaid).
		Set("amount_paid", payment.AmountPaid).
		Set("paid_on", payment.PaidOn).
		Where(sq.Eq{"id": postingID}).
		Where(sq.Expr("paid_on IS NULL"))

	if payment.SettlementAmount != nil {
		builder = builder.Set("settlement_amount", *payment.SettlementAmount)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate mark-paid query for posting %s: %w", postingID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark posting paid: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrPostingAlreadyPaid
	}

	return nil
}
