package server

import (
	"encoding/json"
	"net/http"

	"lexjobs/pkg/types"
)

func (s *Service) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	posterEmail, err := s.emailFromContext(r.Context())
	if err != nil {
		s.unauthorized(w)
		return
	}

	var req types.CreatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	posting, err := s.postings.Create(r.Context(), req, posterEmail)
	if err != nil {
		s.writePostingError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, posting)
}

func (s *Service) handleCountPostings(w http.ResponseWriter, r *http.Request) {
	count, err := s.postings.Count(r.Context())
	if err != nil {
		s.writePostingError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, count)
}

func (s *Service) handleFindPostings(w http.ResponseWriter, r *http.Request) {
	var req types.GetPostingsRequest
	if err := decoder.Decode(&req, r.URL.Query()); err != nil {
		s.badRequest(w, "invalid query parameters")
		return
	}

	postings, err := s.postings.Find(r.Context(), req)
	if err != nil {
		s.writePostingError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, postings)
}

func (s *Service) handlePayPosting(w http.ResponseWriter, r *http.Request) {
	var req types.PayPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	// The success body is the posting as it was before the transition; callers
	// re-fetch if they need the updated record.
	posting, err := s.postings.Pay(r.Context(), req)
	if err != nil {
		s.writePostingError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, posting)
}
