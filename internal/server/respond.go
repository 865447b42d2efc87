package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"lexjobs/pkg/types"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// settlementRangeResponse mirrors the wire shape payment clients already
// parse; the field names are load-bearing.
type settlementRangeResponse struct {
	Error               string `json:"error"`
	MinSettlementAmount int64  `json:"minSettlementAmount"`
	MaxSettlementAmount int64  `json:"maxSettlementAmount"`
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) badRequest(w http.ResponseWriter, message string) {
	s.respondJSON(w, http.StatusBadRequest, errorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Error:      "Bad Request",
	})
}

func (s *Service) internalServerError(w http.ResponseWriter, message string) {
	s.respondJSON(w, http.StatusInternalServerError, errorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		Error:      "Internal Server Error",
	})
}

func (s *Service) unauthorized(w http.ResponseWriter) {
	s.respondJSON(w, http.StatusUnauthorized, errorResponse{
		StatusCode: http.StatusUnauthorized,
		Message:    "missing or invalid credentials",
		Error:      "Unauthorized",
	})
}

// writePostingError maps a posting service failure onto the wire. Business
// rule violations and state conflicts are the caller's 400; a corrupt stored
// fee structure is our 500.
func (s *Service) writePostingError(w http.ResponseWriter, err error) {
	var rangeErr *types.SettlementOutOfRangeError
	if errors.As(err, &rangeErr) {
		s.respondJSON(w, http.StatusBadRequest, settlementRangeResponse{
			Error:               rangeErr.Error(),
			MinSettlementAmount: rangeErr.Min,
			MaxSettlementAmount: rangeErr.Max,
		})
		return
	}

	var validationErr types.ValidationError
	switch {
	case errors.Is(err, types.ErrPostingNotFound),
		errors.Is(err, types.ErrPostingAlreadyPaid),
		errors.As(err, &validationErr):
		s.badRequest(w, err.Error())
	case errors.Is(err, types.ErrInvalidFeeStructure):
		s.logger.WithError(err).Error("stored posting has an unknown fee structure")
		s.internalServerError(w, err.Error())
	default:
		s.logger.WithError(err).Error("posting operation failed")
		s.internalServerError(w, "internal server error")
	}
}
