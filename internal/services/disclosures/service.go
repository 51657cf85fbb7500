package disclosures

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
	"sustainalens/internal/scoring"
)

type Service struct {
	engine      *scoring.Engine
	companies   ports.CompanyRepository
	disclosures ports.DisclosureRepository
	log         *zap.Logger
}

func New(engine *scoring.Engine, companies ports.CompanyRepository, disclosures ports.DisclosureRepository, log *zap.Logger) *Service {
	return &Service{engine: engine, companies: companies, disclosures: disclosures, log: log}
}

// Submit validates and stores a disclosure and queues its assessment. A
// record that cannot be scored is rejected before anything is stored. A
// record without a sector takes the registered company's sector.
func (s *Service) Submit(ctx context.Context, rec domain.DisclosureRecord) (string, string, error) {
	if err := s.engine.Validate(rec); err != nil {
		return "", "", err
	}
	company, err := s.companies.GetCompany(ctx, rec.CompanyID)
	if errors.Is(err, ports.ErrNotFound) {
		return "", "", errors.WithHint(
			errors.Mark(errors.Newf("company %q is not registered", rec.CompanyID), ports.ErrInvalidInput),
			"register the company with POST /companies first")
	}
	if err != nil {
		return "", "", errors.Wrap(err, "look up company")
	}
	if rec.Sector == "" {
		rec.Sector = company.Sector
	}
	disclosureID, jobID, err := s.disclosures.SaveDisclosure(ctx, company.ID, rec)
	if err != nil {
		return "", "", errors.Wrapf(err, "save disclosure %s/%d", rec.CompanyID, rec.Year)
	}
	s.log.Info("disclosure queued",
		zap.String("company", rec.CompanyID),
		zap.String("sector", rec.Sector),
		zap.Int("year", rec.Year),
		zap.String("disclosure", disclosureID),
		zap.String("job", jobID),
		zap.Float64("completeness", rec.Completeness()))
	return disclosureID, jobID, nil
}
