package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/siherrmann/crmfill/model"
)

// Extractor turns a transcript into a structured record. Satisfied by
// crmfill.CRMFill.
type Extractor interface {
	Extract(ctx context.Context, text string, source string) *model.ExtractionRecord
}

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	MeetingText *string `json:"meeting_text"`
	Source      string  `json:"source"`
}

// ExtractResponse wraps the extracted record in a chat-style envelope.
type ExtractResponse struct {
	AgentMessage string                  `json:"agent_message"`
	Extracted    *model.ExtractionRecord `json:"extracted"`
}

// Server is a thin HTTP boundary around an Extractor.
type Server struct {
	extractor Extractor
	staticDir string
	log       *slog.Logger
}

// New creates a server. staticDir may be empty to disable the static file
// handler.
func New(extractor Extractor, staticDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		extractor: extractor,
		staticDir: staticDir,
		log:       logger,
	}
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/extract", s.handleExtract)
	mux.HandleFunc("/", s.handleRoot)
	if s.staticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	}
	return mux
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var request ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if request.MeetingText == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "meeting_text is required"})
		return
	}

	source := request.Source
	if strings.TrimSpace(source) == "" {
		source = "manual"
	}

	record := s.extractor.Extract(r.Context(), *request.MeetingText, source)

	writeJSON(w, http.StatusOK, ExtractResponse{
		AgentMessage: "Perfect! I've extracted and structured your CRM data:",
		Extracted:    record,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Go to /static/index.html to use the demo UI"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Warn("Failed to encode response", slog.String("error", err.Error()))
	}
}
