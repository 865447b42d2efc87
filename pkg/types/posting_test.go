package types

import (
	"errors"
	"strings"
	"testing"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func validFixedFeeRequest() CreatePostingRequest {
	return CreatePostingRequest{
		Title:        "title test",
		Description:  "description test",
		ClientEmail:  "clientEmailTest@example.com",
		FeeStructure: FeeStructureFixed,
		FeeAmount:    float64Ptr(400),
	}
}

func TestCreatePostingRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreatePostingRequest)
		wantErr string
	}{
		{
			name:   "valid fixed fee",
			mutate: func(*CreatePostingRequest) {},
		},
		{
			name: "valid no win no fee",
			mutate: func(r *CreatePostingRequest) {
				r.FeeStructure = FeeStructureNoWinNoFee
				r.FeeAmount = nil
				r.FeePercentage = float64Ptr(0.11)
				r.ExpectedSettlementAmount = float64Ptr(50000)
			},
		},
		{
			name:    "title too short",
			mutate:  func(r *CreatePostingRequest) { r.Title = "abcd" },
			wantErr: "title must be between 5 and 100 characters",
		},
		{
			name:    "title too long",
			mutate:  func(r *CreatePostingRequest) { r.Title = strings.Repeat("a", 101) },
			wantErr: "title must be between 5 and 100 characters",
		},
		{
			name:    "description too long",
			mutate:  func(r *CreatePostingRequest) { r.Description = strings.Repeat("a", 4001) },
			wantErr: "description must be between 5 and 4000 characters",
		},
		{
			name:    "bad client email",
			mutate:  func(r *CreatePostingRequest) { r.ClientEmail = "not-an-email" },
			wantErr: "clientEmail must be a valid email address",
		},
		{
			name:    "unknown fee structure",
			mutate:  func(r *CreatePostingRequest) { r.FeeStructure = "Hourly" },
			wantErr: `feeStructure must be "Fixed-Fee" or "No-Win-No-Fee"`,
		},
		{
			name: "fixed fee missing amount",
			mutate: func(r *CreatePostingRequest) {
				r.FeeAmount = nil
			},
			wantErr: "Fixed-Fee jobs require feeAmount",
		},
		{
			name: "no win no fee percentage out of range",
			mutate: func(r *CreatePostingRequest) {
				r.FeeStructure = FeeStructureNoWinNoFee
				r.FeeAmount = nil
				r.FeePercentage = float64Ptr(1.5)
				r.ExpectedSettlementAmount = float64Ptr(50000)
			},
			wantErr: "feePercentage must be between 0.0 and 1.0",
		},
		{
			name: "no win no fee missing expected settlement",
			mutate: func(r *CreatePostingRequest) {
				r.FeeStructure = FeeStructureNoWinNoFee
				r.FeeAmount = nil
				r.FeePercentage = float64Ptr(0.11)
			},
			wantErr: "No-Win-No-Fee jobs require expectedSettlementAmount",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validFixedFeeRequest()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("expected %q, got %v", tc.wantErr, err)
			}

			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected a ValidationError, got %T", err)
			}
		})
	}
}

func TestCreatePostingRequestValidateBothFeeFields(t *testing.T) {
	req := validFixedFeeRequest()
	req.FeePercentage = float64Ptr(0.11)

	if err := req.Validate(); !errors.Is(err, ErrBothFeeFields) {
		t.Fatalf("expected ErrBothFeeFields, got %v", err)
	}
}

func TestGetPostingsRequestNormalize(t *testing.T) {
	var req GetPostingsRequest
	if err := req.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.SortBy != "title" || req.SortOrder != "asc" || req.Limit != 20 || req.Offset != 0 {
		t.Fatalf("unexpected defaults: %+v", req)
	}

	req = GetPostingsRequest{SortBy: "feeAmount"}
	if err := req.Normalize(); err == nil {
		t.Fatal("expected an error for an unsupported sort column")
	}

	req = GetPostingsRequest{SortOrder: "descending"}
	if err := req.Normalize(); err == nil {
		t.Fatal("expected an error for an unsupported sort order")
	}

	req = GetPostingsRequest{SortBy: "created", SortOrder: "desc", Limit: 5, Offset: 10}
	if err := req.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Limit != 5 || req.Offset != 10 {
		t.Fatalf("expected explicit paging to survive normalization: %+v", req)
	}
}
