package types

import (
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"
)

type PostingStatus string

const (
	PostingStatusUnpaid PostingStatus = "unpaid"
	PostingStatusPaid   PostingStatus = "paid"
)

type FeeStructure string

const (
	FeeStructureFixed      FeeStructure = "Fixed-Fee"
	FeeStructureNoWinNoFee FeeStructure = "No-Win-No-Fee"
)

type Posting struct {
	ID          string `db:"id" json:"_id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`

	ClientEmail string `db:"client_email" json:"clientEmail"`
	PosterEmail string `db:"poster_email" json:"posterEmail"`

	Created time.Time     `db:"created" json:"created"`
	Status  PostingStatus `db:"status" json:"status"`

	FeeStructure  FeeStructure `db:"fee_structure" json:"feeStructure"`
	FeeAmount     *float64     `db:"fee_amount" json:"feeAmount,omitempty"`
	FeePercentage *float64     `db:"fee_percentage" json:"feePercentage,omitempty"`

	ExpectedSettlementAmount *float64 `db:"expected_settlement_amount" json:"expectedSettlementAmount,omitempty"`
	SettlementAmount         *float64 `db:"settlement_amount" json:"settlementAmount,omitempty"`

	AmountPaid *float64   `db:"amount_paid" json:"amountPaid,omitempty"`
	PaidOn     *time.Time `db:"paid_on" json:"paidOn,omitempty"`
}

type CreatePostingRequest struct {
	Title                    string       `json:"title"`
	Description              string       `json:"description"`
	ClientEmail              string       `json:"clientEmail"`
	FeeStructure             FeeStructure `json:"feeStructure"`
	FeeAmount                *float64     `json:"feeAmount"`
	FeePercentage            *float64     `json:"feePercentage"`
	ExpectedSettlementAmount *float64     `json:"expectedSettlementAmount"`
}

// Validate enforces the business rules on a posting submission. The mutual
// exclusion of the two fee fields is checked before the per-structure rules
// so that supplying both always fails, whatever the feeStructure says.
func (r CreatePostingRequest) Validate() error {
	if l := utf8.RuneCountInString(r.Title); l < 5 || l > 100 {
		return ValidationError("title must be between 5 and 100 characters")
	}

	if l := utf8.RuneCountInString(r.Description); l < 5 || l > 4000 {
		return ValidationError("description must be between 5 and 4000 characters")
	}

	if _, err := mail.ParseAddress(r.ClientEmail); err != nil {
		return ValidationError("clientEmail must be a valid email address")
	}

	if r.FeeAmount != nil && r.FeePercentage != nil {
		return ErrBothFeeFields
	}

	switch r.FeeStructure {
	case FeeStructureFixed:
		if r.FeeAmount == nil {
			return ValidationError("Fixed-Fee jobs require feeAmount")
		}
	case FeeStructureNoWinNoFee:
		if r.FeePercentage == nil {
			return ValidationError("No-Win-No-Fee jobs require feePercentage")
		}
		if *r.FeePercentage < 0.0 || *r.FeePercentage > 1.0 {
			return ValidationError("feePercentage must be between 0.0 and 1.0")
		}
		if r.ExpectedSettlementAmount == nil {
			return ValidationError("No-Win-No-Fee jobs require expectedSettlementAmount")
		}
	default:
		return ValidationError(fmt.Sprintf("feeStructure must be %q or %q", FeeStructureFixed, FeeStructureNoWinNoFee))
	}

	return nil
}

type GetPostingsRequest struct {
	ClientEmail string `form:"clientEmail"`
	PosterEmail string `form:"posterEmail"`
	SortBy      string `form:"sortBy"`
	SortOrder   string `form:"sortOrder"`
	Offset      uint64 `form:"offset"`
	Limit       uint64 `form:"limit"`
}

// Normalize fills in query defaults and rejects unknown sort parameters.
func (r *GetPostingsRequest) Normalize() error {
	if r.SortBy == "" {
		r.SortBy = "title"
	}
	if r.SortOrder == "" {
		r.SortOrder = "asc"
	}
	if r.Limit == 0 {
		r.Limit = 20
	}

	if r.SortBy != "title" && r.SortBy != "created" {
		return ValidationError("sortBy must be title or created")
	}
	if r.SortOrder != "asc" && r.SortOrder != "desc" {
		return ValidationError("sortOrder must be asc or desc")
	}

	return nil
}

type PayPostingRequest struct {
	ID               string   `json:"_id"`
	SettlementAmount *float64 `json:"settlementAmount"`
}

// PostingPayment carries the fields written by the paid transition. The store
// applies them in a single conditional update so the transition can succeed at
// most once per posting.
type PostingPayment struct {
	AmountPaid       float64
	PaidOn           time.Time
	SettlementAmount *float64
}
