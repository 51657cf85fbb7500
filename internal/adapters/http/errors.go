package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	api "sustainalens/internal/api"
	"sustainalens/internal/ports"
	"sustainalens/internal/scoring"
)

// statusClientClosedRequest is the nginx convention for a request the
// client abandoned before a response was written.
const statusClientClosedRequest = 499

type problem struct {
	Title    string
	Detail   string
	Problems []string
	Hint     string
	status   int
}

func problemFor(err error) problem {
	p := problem{Detail: err.Error(), Hint: errors.FlattenHints(err)}
	var verr *scoring.ValidationError
	if errors.As(err, &verr) {
		p.Problems = verr.Problems
	}
	switch {
	case errors.Is(err, scoring.ErrInvalidRecord):
		p.Title, p.status = "invalid disclosure record", http.StatusUnprocessableEntity
	case errors.Is(err, ports.ErrInvalidInput):
		p.Title, p.status = "invalid input", http.StatusBadRequest
	case errors.Is(err, ports.ErrNotFound):
		p.Title, p.status = "not found", http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		p.Title, p.status = "timed out", http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		p.Title, p.status = "request canceled", statusClientClosedRequest
	default:
		p.Title, p.status = "internal error", http.StatusInternalServerError
		p.Detail = ""
	}
	return p
}

func (p problem) api() api.Problem {
	out := api.Problem{Title: p.Title}
	if p.Detail != "" {
		out.Detail = &p.Detail
	}
	if p.Hint != "" {
		out.Hint = &p.Hint
	}
	if len(p.Problems) > 0 {
		out.Problems = &p.Problems
	}
	return out
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	p := problemFor(err)
	if p.status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeJSON(w, p.status, p.api())
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeJSON(w, status, problem{Title: title, Detail: detail}.api())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
