package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	api "sustainalens/internal/api"
	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
	"sustainalens/internal/scoring"
	"sustainalens/internal/workers/assessrunner"
)

const (
	maxBatch       = 1000
	maxBodyBytes   = 8 << 20
	defaultTimeout = 30
)

// Server implements the generated StrictServerInterface.
type Server struct {
	companies   ports.Companies
	disclosures ports.Disclosures
	assessments ports.Assessments
	jobs        ports.JobRepository
	processor   assessrunner.Processor
	policy      *scoring.Policy
	log         *zap.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(companies ports.Companies, disclosures ports.Disclosures, assessments ports.Assessments, jobs ports.JobRepository, processor assessrunner.Processor, policy *scoring.Policy, log *zap.Logger) *Server {
	return &Server{
		companies:   companies,
		disclosures: disclosures,
		assessments: assessments,
		jobs:        jobs,
		processor:   processor,
		policy:      policy,
		log:         log,
	}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer, middleware.RequestSize(maxBodyBytes))

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeProblem(w, http.StatusBadRequest, "malformed JSON body", err.Error())
		},
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeProblem(w, http.StatusBadRequest, "invalid parameter", err.Error())
		},
	})
	return r
}

func (s *Server) GetHealthz(context.Context, api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) GetPolicy(context.Context, api.GetPolicyRequestObject) (api.GetPolicyResponseObject, error) {
	return api.GetPolicy200JSONResponse{
		Name:        s.policy.Name(),
		Fingerprint: s.policy.Fingerprint(),
		Spec:        s.policy.Spec(),
	}, nil
}

func (s *Server) PostCompanies(ctx context.Context, req api.PostCompaniesRequestObject) (api.PostCompaniesResponseObject, error) {
	if req.Body == nil {
		return api.PostCompanies400JSONResponse{Title: "missing body"}, nil
	}
	c, err := s.companies.Register(ctx, ports.CompanyInput{
		ExternalID: req.Body.Id,
		Name:       deref(req.Body.Name),
		Sector:     deref(req.Body.Sector),
		Website:    deref(req.Body.Website),
	})
	if errors.Is(err, ports.ErrInvalidInput) {
		return api.PostCompanies400JSONResponse(problemFor(err).api()), nil
	}
	if err != nil {
		return nil, err
	}
	return api.PostCompanies201JSONResponse(toCompany(c)), nil
}

func (s *Server) GetCompaniesId(ctx context.Context, req api.GetCompaniesIdRequestObject) (api.GetCompaniesIdResponseObject, error) {
	c, err := s.companies.Get(ctx, req.Id)
	if errors.Is(err, ports.ErrNotFound) {
		return api.GetCompaniesId404JSONResponse(problemFor(err).api()), nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetCompaniesId200JSONResponse(toCompany(c)), nil
}

func (s *Server) GetCompaniesIdAssessmentsYear(ctx context.Context, req api.GetCompaniesIdAssessmentsYearRequestObject) (api.GetCompaniesIdAssessmentsYearResponseObject, error) {
	a, err := s.assessments.Latest(ctx, req.Id, req.Year)
	if errors.Is(err, ports.ErrNotFound) {
		return api.GetCompaniesIdAssessmentsYear404JSONResponse(problemFor(err).api()), nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetCompaniesIdAssessmentsYear200JSONResponse(toAssessment(a)), nil
}

// PostDisclosures stores a disclosure and queues its assessment. With
// wait=true the assessment runs inline, bounded by timeout seconds.
func (s *Server) PostDisclosures(ctx context.Context, req api.PostDisclosuresRequestObject) (api.PostDisclosuresResponseObject, error) {
	timeout := defaultTimeout
	if req.Params.Timeout != nil {
		timeout = *req.Params.Timeout
	}
	if timeout <= 0 {
		return api.PostDisclosures400JSONResponse{
			Title:  "invalid timeout parameter",
			Detail: ptr("timeout must be a positive number of seconds"),
		}, nil
	}
	if req.Body == nil {
		return api.PostDisclosures400JSONResponse{Title: "missing body"}, nil
	}
	rec := *req.Body

	disclosureID, jobID, err := s.disclosures.Submit(ctx, rec)
	switch {
	case errors.Is(err, scoring.ErrInvalidRecord):
		return api.PostDisclosures422JSONResponse(problemFor(err).api()), nil
	case errors.Is(err, ports.ErrInvalidInput):
		return api.PostDisclosures400JSONResponse(problemFor(err).api()), nil
	case err != nil:
		return nil, err
	}
	accepted := api.PostDisclosures202JSONResponse{DisclosureId: disclosureID, JobId: jobID}
	if req.Params.Wait == nil || !*req.Params.Wait {
		return accepted, nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()
	// A worker already claimed the job; the assessment for this submission
	// does not exist yet.
	err = assessrunner.ProcessInline(ctx, s.jobs, s.processor, disclosureID)
	if errors.Is(err, ports.ErrNotFound) {
		return accepted, nil
	}
	if err != nil {
		return nil, err
	}
	a, err := s.assessments.Latest(ctx, rec.CompanyID, rec.Year)
	if err != nil {
		return nil, err
	}
	return api.PostDisclosures200JSONResponse(toAssessment(a)), nil
}

// PostEvaluate scores a batch of records without storing anything. Invalid
// records get an error entry; the rest are still scored.
func (s *Server) PostEvaluate(ctx context.Context, req api.PostEvaluateRequestObject) (api.PostEvaluateResponseObject, error) {
	var records []domain.DisclosureRecord
	if req.Body != nil {
		records = *req.Body
	}
	if len(records) > maxBatch {
		return api.PostEvaluate413JSONResponse{
			Title:  "batch too large",
			Detail: ptr("at most 1000 records per request"),
		}, nil
	}
	outcomes, err := s.assessments.EvaluateBatch(ctx, records, 0)
	if err != nil {
		return nil, err
	}
	out := make(api.PostEvaluate200JSONResponse, len(outcomes))
	for i, o := range outcomes {
		out[i] = api.Evaluation{CompanyId: o.CompanyID, Year: o.Year, Result: o.Result}
		if o.Err != nil {
			p := problemFor(o.Err).api()
			out[i].Error = &p
		}
	}
	return out, nil
}

func toCompany(c domain.Company) api.Company {
	out := api.Company{
		Id:                c.ExternalID,
		Name:              c.Name,
		Website:           c.Website,
		RegistrableDomain: c.RegistrableDomain,
		CreatedAt:         c.CreatedAt,
	}
	if c.Sector != "" {
		out.Sector = ptr(c.Sector)
	}
	return out
}

func toAssessment(a domain.Assessment) api.Assessment {
	return api.Assessment{
		Id:                a.ID,
		PolicyFingerprint: a.PolicyFingerprint,
		ComputedAt:        a.ComputedAt,
		Result:            a.Result,
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func ptr[T any](v T) *T { return &v }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
