package ports

import (
	"context"

	"sustainalens/internal/domain"
)

type CompanyInput struct {
	ExternalID string `json:"id"`
	Name       string `json:"name"`
	Sector     string `json:"sector,omitempty"`
	Website    string `json:"website,omitempty"`
}

// Companies registers and looks up companies.
type Companies interface {
	Register(ctx context.Context, in CompanyInput) (domain.Company, error)
	Get(ctx context.Context, externalID string) (domain.Company, error)
}

// Disclosures accepts disclosure records for scoring.
type Disclosures interface {
	Submit(ctx context.Context, rec domain.DisclosureRecord) (disclosureID, jobID string, err error)
}

// Assessments scores disclosures and serves stored results.
type Assessments interface {
	Assess(ctx context.Context, disclosureID string) (domain.Assessment, error)
	Latest(ctx context.Context, companyID string, year int) (domain.Assessment, error)
	EvaluateBatch(ctx context.Context, records []domain.DisclosureRecord, concurrency int) ([]domain.Outcome, error)
}
