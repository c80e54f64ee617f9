package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gasthof/internal/metrics"
	"gasthof/internal/models"
	"gasthof/internal/service"
)

type inquiryRequest struct {
	Text string `json:"text"`
}

type confirmRequest struct {
	RoomName string `json:"room_name"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Query           string                `json:"query"`
	Results         []models.SearchResult `json:"results"`
	Categories      []string              `json:"categories"`
	HasRelevantData bool                  `json:"has_relevant_data"`
}

func (s *HTTPServer) handleInquiries(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("inquiries")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body inquiryRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	pending, err := s.service.SubmitInquiry(r.Context(), body.Text)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	metrics.IncInquiry("pending")
	writeJSON(w, http.StatusCreated, pending)
}

func (s *HTTPServer) handleListConfirmed(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bookings, err := s.service.ListConfirmed(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1/bookings/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)

	switch {
	case rest == "pending":
		s.handleListPending(w, r)
	case rest == "export":
		s.handleExport(w, r)
	case strings.HasSuffix(rest, "/confirm"):
		s.handleConfirm(w, r, strings.TrimSuffix(rest, "/confirm"))
	case rest != "" && !strings.Contains(rest, "/"):
		s.handleGetPending(w, r, rest)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *HTTPServer) handleListPending(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_pending")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bookings, err := s.service.ListPending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list pending bookings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (s *HTTPServer) handleGetPending(w http.ResponseWriter, r *http.Request, bookingID string) {
	metrics.IncHTTP("bookings_get")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	pending, err := s.service.GetPending(r.Context(), bookingID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

func (s *HTTPServer) handleConfirm(w http.ResponseWriter, r *http.Request, bookingID string) {
	metrics.IncHTTP("bookings_confirm")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if bookingID == "" {
		writeError(w, http.StatusBadRequest, "booking id is required")
		return
	}

	var body confirmRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.RoomName) == "" {
		writeError(w, http.StatusBadRequest, "room_name is required")
		return
	}

	confirmed, err := s.service.Confirm(r.Context(), bookingID, body.RoomName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyConfirmed):
			metrics.IncConfirmation("conflict")
		case errors.Is(err, service.ErrUnknownBooking), errors.Is(err, service.ErrOptionNotAvailable):
			metrics.IncConfirmation("not_found")
		default:
			metrics.IncConfirmation("error")
		}
		s.writeServiceError(w, err)
		return
	}

	metrics.IncConfirmation("confirmed")
	writeJSON(w, http.StatusOK, confirmed)
}

func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.exporter == nil {
		writeError(w, http.StatusNotImplemented, "export is not configured")
		return
	}

	bookings, err := s.service.ListConfirmed(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	if err := s.exporter.Write(w, bookings); err != nil {
		s.logger.Error().Err(err).Msg("export write error")
	}
}

func (s *HTTPServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("search")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body searchRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	query := strings.TrimSpace(body.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	if s.cache != nil {
		if results, found, err := s.cache.Get(r.Context(), query); err == nil && found {
			metrics.IncSearchQuery("hit")
			writeJSON(w, http.StatusOK, buildSearchResponse(query, results))
			return
		}
	}

	results, err := s.engine.Search(r.Context(), query)
	if err != nil {
		metrics.IncSearchQuery("error")
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	metrics.IncSearchQuery("miss")

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), query, results); err != nil {
			s.logger.Error().Err(err).Msg("search cache set error")
		}
	}

	writeJSON(w, http.StatusOK, buildSearchResponse(query, results))
}

func (s *HTTPServer) handleSearchRebuild(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("search_rebuild")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.engine.Rebuild(r.Context()); err != nil {
		s.logger.Error().Err(err).Msg("search index rebuild error")
		writeError(w, http.StatusInternalServerError, "rebuild failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rebuilt"})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func buildSearchResponse(query string, results []models.SearchResult) searchResponse {
	categories := make([]string, 0, len(results))
	seen := make(map[string]bool)
	for _, result := range results {
		if !seen[result.Category] {
			seen[result.Category] = true
			categories = append(categories, result.Category)
		}
	}
	return searchResponse{
		Query:           query,
		Results:         results,
		Categories:      categories,
		HasRelevantData: len(results) > 0,
	}
}

// writeServiceError maps workflow errors onto HTTP status codes.
func (s *HTTPServer) writeServiceError(w http.ResponseWriter, err error) {
	if validationErr := service.IsValidationError(err); validationErr != nil {
		metrics.IncInquiry("validation_error")
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": validationErr.Message,
			"rule":  validationErr.Rule,
		})
		return
	}
	if service.IsExtractionError(err) != nil {
		metrics.IncInquiry("extraction_error")
		writeError(w, http.StatusUnprocessableEntity, "could not extract a booking inquiry from the text")
		return
	}

	switch {
	case errors.Is(err, service.ErrUnknownBooking):
		writeError(w, http.StatusNotFound, "unknown booking")
	case errors.Is(err, service.ErrAlreadyConfirmed):
		writeError(w, http.StatusConflict, "booking is already confirmed")
	case errors.Is(err, service.ErrOptionNotAvailable):
		writeError(w, http.StatusNotFound, "room was not offered for this booking")
	default:
		s.logger.Error().Err(err).Msg("internal service error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
