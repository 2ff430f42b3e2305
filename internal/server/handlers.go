package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/career-recommender/internal/advice"
	"github.com/jonathan/career-recommender/internal/export"
	"github.com/jonathan/career-recommender/internal/history"
	"github.com/jonathan/career-recommender/internal/types"
)

// DefaultTopK is used when a request omits top_k
const DefaultTopK = 3

// Download filenames for the export endpoint
const (
	downloadJSONName = "career_recs.json"
	downloadCSVName  = "career_recs.csv"
)

// emptySkillsMessage is returned for blank queries
const emptySkillsMessage = "Please enter at least one skill."

// Example is a ready-made query offered to new users
type Example struct {
	Label  string `json:"label"`
	Skills string `json:"skills"`
}

var quickExamples = []Example{
	{Label: "Data / ML example", Skills: "Python, SQL, Machine Learning"},
	{Label: "Web dev example", Skills: "HTML, CSS, JavaScript, React"},
	{Label: "Cloud example", Skills: "AWS, Docker, Kubernetes"},
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"careers":  s.corpus.Len(),
		"strategy": s.scorer.Strategy(),
	})
}

// handleExamples returns the quick example queries
func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"examples": quickExamples})
}

// handleCareers lists the unique career names in the corpus
func (s *Server) handleCareers(w http.ResponseWriter, _ *http.Request) {
	careers := s.corpus.Careers()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"careers": careers,
		"count":   len(careers),
	})
}

// handleRecommend scores the query and returns results with advice text
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRecommendRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	recs, err := s.scorer.Recommend(req.Skills, req.TopK)
	if err != nil {
		log.Printf("[recommend] scoring failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	level := advice.Level(req.Detail)
	response := types.RecommendResponse{
		UserInput: req.Skills,
		Strategy:  string(s.scorer.Strategy()),
		Detail:    req.Detail,
		Results:   make([]types.RecommendedCareer, 0, len(recs)),
	}
	for i := range recs {
		text, err := advice.Render(req.Skills, &recs[i], level)
		if err != nil {
			log.Printf("[recommend] advice for %q failed, using description: %v", recs[i].Career, err)
			text = advice.Short(&recs[i])
		}
		response.Results = append(response.Results, types.RecommendedCareer{
			Recommendation: recs[i],
			Advice:         text,
		})
	}

	if s.history != nil {
		entry := &history.Entry{
			Query:    req.Skills,
			Strategy: string(s.scorer.Strategy()),
			TopK:     req.TopK,
			Results:  recs,
		}
		if err := s.history.Save(r.Context(), entry); err != nil {
			log.Printf("[history] failed to record query: %v", err)
		} else {
			response.HistoryID = &entry.ID
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleExport streams the recommendations as a JSON or CSV attachment
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q (valid: json, csv)", format))
		return
	}

	req, err := s.decodeRecommendRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	recs, err := s.scorer.Recommend(req.Skills, req.TopK)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	stamp := export.Stamp(s.now())
	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadCSVName))
		w.WriteHeader(http.StatusOK)
		err = export.WriteCSV(w, req.Skills, stamp, recs)
	} else {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadJSONName))
		w.WriteHeader(http.StatusOK)
		err = export.WriteJSON(w, export.NewDocument(stamp, req.Skills, recs))
	}
	if err != nil {
		log.Printf("[export] failed to write %s download: %v", format, err)
	}
}

// handleListHistory returns recent queries
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.errorResponse(w, HTTPStatus(ErrHistoryDisabled), ErrHistoryDisabled.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := s.history.List(r.Context(), limit)
	if err != nil {
		log.Printf("[history] list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list history")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

// handleGetHistory returns a single recorded query
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.errorResponse(w, HTTPStatus(ErrHistoryDisabled), ErrHistoryDisabled.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid history id")
		return
	}

	entry, err := s.history.Get(r.Context(), id)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[history] get %s failed: %v", id, err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, entry)
}

// decodeRecommendRequest parses and validates the body, applying defaults.
func (s *Server) decodeRecommendRequest(r *http.Request) (*types.RecommendRequest, error) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrValidation{Message: "Invalid request body"}
	}

	req.Skills = strings.TrimSpace(req.Skills)
	if req.Skills == "" {
		return nil, &ErrValidation{Message: emptySkillsMessage}
	}

	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Message: extractValidationErrors(err)}
	}

	if req.TopK == 0 {
		req.TopK = DefaultTopK
	}
	if req.Detail == "" {
		req.Detail = string(advice.LevelDeep)
	}
	return &req, nil
}
