package assessments

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
	"sustainalens/internal/scoring"
)

type Service struct {
	engine      *scoring.Engine
	disclosures ports.DisclosureRepository
	assessments ports.AssessmentRepository
	log         *zap.Logger
	now         func() time.Time
}

func New(engine *scoring.Engine, disclosures ports.DisclosureRepository, assessments ports.AssessmentRepository, log *zap.Logger) *Service {
	return &Service{
		engine:      engine,
		disclosures: disclosures,
		assessments: assessments,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Assess scores a stored disclosure with the service's policy and stores
// the result.
func (s *Service) Assess(ctx context.Context, disclosureID string) (domain.Assessment, error) {
	d, err := s.disclosures.GetDisclosure(ctx, disclosureID)
	if err != nil {
		return domain.Assessment{}, errors.Wrapf(err, "load disclosure %s", disclosureID)
	}
	res, err := s.engine.Evaluate(d.Record)
	if err != nil {
		return domain.Assessment{}, err
	}
	a := domain.Assessment{
		ID:                uuid.NewString(),
		DisclosureID:      d.ID,
		CompanyID:         d.Record.CompanyID,
		Year:              d.Year,
		PolicyFingerprint: s.engine.Policy().Fingerprint(),
		Result:            res,
		ComputedAt:        s.now(),
	}
	if err := s.assessments.SaveAssessment(ctx, a); err != nil {
		return domain.Assessment{}, errors.Wrap(err, "save assessment")
	}
	s.log.Info("assessment stored",
		zap.String("company", a.CompanyID),
		zap.Int("year", a.Year),
		zap.Float64("composite", res.Composite),
		zap.String("risk", string(res.Risk)),
		zap.Int("gaps", len(res.Gaps)))
	return a, nil
}

func (s *Service) Latest(ctx context.Context, companyID string, year int) (domain.Assessment, error) {
	return s.assessments.LatestAssessment(ctx, companyID, year)
}

func (s *Service) EvaluateBatch(ctx context.Context, records []domain.DisclosureRecord, concurrency int) ([]domain.Outcome, error) {
	return EvaluateBatch(ctx, s.engine, records, concurrency)
}
