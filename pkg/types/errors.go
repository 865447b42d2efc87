package types

import "errors"

// ValidationError marks a failure of a business rule on the caller's request.
// The string is the message surfaced to the caller verbatim.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

var (
	ErrBothFeeFields            = ValidationError("feeAmount and feePercentage must not both be present")
	ErrSettlementAmountRequired = ValidationError("No-Win-No-Fee jobs require settlementAmount in the payment submission")

	ErrPostingNotFound    = errors.New("job posting _id does not exist")
	ErrPostingAlreadyPaid = errors.New("job has already been paid")

	// ErrInvalidFeeStructure indicates a stored record whose feeStructure is
	// outside the known enum. Creation-time validation makes this unreachable
	// for records this service wrote; it means the persisted state is corrupt.
	ErrInvalidFeeStructure = errors.New("invalid job fee structure")
)

// SettlementOutOfRangeError reports a settlementAmount outside the tolerance
// band around the posting's expected settlement amount. Min and Max are the
// band edges rounded to the nearest integer for display; the comparison that
// produced the error used the unrounded values.
type SettlementOutOfRangeError struct {
	Min int64
	Max int64
}

func (e *SettlementOutOfRangeError) Error() string {
	return "settlementAmount must be at least minSettlementAmount and at most maxSettlementAmount"
}
