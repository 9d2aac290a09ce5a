// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pdiddy/deckgen/internal/detect"
	"github.com/pdiddy/deckgen/internal/library"
	"github.com/pdiddy/deckgen/internal/mapper"
	"github.com/pdiddy/deckgen/internal/parser"
	"github.com/pdiddy/deckgen/internal/validate"
	"github.com/pdiddy/deckgen/pkg/types"
)

const maxRequestBytes = 4 << 20

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Text      string `json:"text"`
	Format    string `json:"format,omitempty"`
	Density   string `json:"density,omitempty"`
	Presenter string `json:"presenter,omitempty"`
	Date      string `json:"date,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	format, err := detect.Resolve(req.Format, req.Text, detect.DefaultWindow)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := types.DensityByName(req.Density)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tree, err := parser.Parse(req.Text, format)
	if err != nil {
		jsonError(w, "parsing input: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	slides := mapper.Map(tree, profile, req.Presenter, req.Date)

	deck := types.Deck{
		Title:     tree.Title,
		Presenter: req.Presenter,
		Date:      req.Date,
		Density:   profile.Name,
		Slides:    slides,
	}

	writeJSON(w, http.StatusOK, deck)
}

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	Slides []types.PresentationSlide `json:"slides"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	format, err := validate.ParseReportFormat(r.URL.Query().Get("format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := validate.New(validate.Options{})
	if err != nil {
		jsonError(w, "initializing validator: "+err.Error(), http.StatusInternalServerError)
		return
	}

	issues := v.Validate(types.Presentation{Slides: req.Slides})

	report, err := validate.Render(issues, format)
	if err != nil {
		jsonError(w, "rendering report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	switch format {
	case validate.ReportJSON:
		w.Header().Set("Content-Type", "application/json")
	case validate.ReportHTML:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report))
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.store.ListDecks(r.Context())
	if err != nil {
		s.log.Error("listing decks", "error", err)
		jsonError(w, "listing decks failed", http.StatusInternalServerError)
		return
	}
	if decks == nil {
		decks = []library.DeckSummary{}
	}
	writeJSON(w, http.StatusOK, decks)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := library.SearchOptions{
		Query: q.Get("q"),
		Kind:  q.Get("kind"),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		opts.MaxResults = n
	}
	if opts.Query == "" {
		jsonError(w, "q is required", http.StatusBadRequest)
		return
	}

	results, err := s.store.Search(r.Context(), opts)
	if err != nil {
		s.log.Error("searching library", "error", err)
		jsonError(w, "search failed", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []library.SearchResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
