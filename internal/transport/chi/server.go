package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sage/internal/domain"
	"github.com/kailas-cloud/sage/internal/domain/prompt"
	"github.com/kailas-cloud/sage/internal/domain/tone"
	"github.com/kailas-cloud/sage/internal/logger"
	chatuc "github.com/kailas-cloud/sage/internal/usecase/chat"
	healthuc "github.com/kailas-cloud/sage/internal/usecase/health"
)

// maxBodyBytes bounds the request body; a max-length prompt of 4-byte runes
// with JSON escaping stays well below it.
const maxBodyBytes = 64 << 10

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the chat, health and diagnostic endpoints.
type Server struct {
	chat           *chatuc.Service
	health         *healthuc.Service
	logger         *zap.Logger
	maxPromptChars int
	strictTone     bool
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(chat *chatuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		chat:           chat,
		health:         health,
		logger:         logger,
		maxPromptChars: prompt.DefaultMaxChars,
		strictTone:     true,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusUnprocessableEntity, codeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// WithMaxPromptChars sets the accepted prompt length in characters.
func (s *Server) WithMaxPromptChars(n int) *Server {
	if n > 0 {
		s.maxPromptChars = n
	}
	return s
}

// WithStrictTone controls unknown tones: rejected with 422 when strict,
// rendered as neutral otherwise.
func (s *Server) WithStrictTone(strict bool) *Server {
	s.strictTone = strict
	return s
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/api/hello", s.Hello)
	r.Post("/chat", s.Chat)
	r.Get("/test", s.Diagnostics)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.handleDomainError(w, r, fmt.Errorf("%w: %s %s", domain.ErrNotFound, r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Hello from the sage backend!"})
}

// Hello handles GET /api/hello.
func (s *Server) Hello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Hello from the backend API!"})
}

// Chat handles POST /chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Prompt == nil {
		s.handleDomainError(w, r, domain.ErrPromptEmpty)
		return
	}
	p, err := prompt.New(*req.Prompt, s.maxPromptChars)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	t, err := s.parseTone(req.Tone)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	reply := s.chat.Reply(r.Context(), p.String(), t)
	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply.Text, Tone: string(reply.Tone)})
}

func (s *Server) parseTone(raw *string) (tone.Tone, error) {
	if raw == nil {
		return tone.Neutral, nil
	}
	t, err := tone.Parse(*raw)
	if err == nil {
		return t, nil
	}
	if !s.strictTone {
		return tone.Neutral, nil
	}
	return "", fmt.Errorf("%w: %w", domain.ErrValidation, err)
}

// Diagnostics handles GET /test.
func (s *Server) Diagnostics(w http.ResponseWriter, r *http.Request) {
	d := s.health.Diagnose(r.Context())

	resp := DiagnosticsResponse{
		Backend:          d.Backend,
		Database:         string(d.Database),
		DatabaseURL:      setOrNot(d.URLSet),
		DatabaseName:     setOrNot(d.NameSet),
		ConnectionStatus: "Not Connected",
		Collections:      d.Collections,
		Error:            d.Error,
		LatencyMS:        d.Latency.Milliseconds(),
	}
	if d.Connected {
		resp.ConnectionStatus = "Connected"
	}
	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func setOrNot(ok bool) string {
	if ok {
		return "set"
	}
	return "not_set"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns an error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		return err.Error()
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound.Error()
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
