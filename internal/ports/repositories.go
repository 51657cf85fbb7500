package ports

import (
	"context"

	"github.com/cockroachdb/errors"

	"sustainalens/internal/domain"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// CompanyRepository stores companies keyed by their external identifier.
type CompanyRepository interface {
	UpsertCompany(ctx context.Context, c domain.Company) (domain.Company, error)
	GetCompany(ctx context.Context, externalID string) (domain.Company, error)
}

// DisclosureRepository stores one disclosure per company and year. Saving a
// disclosure also queues an assessment job for it.
type DisclosureRepository interface {
	SaveDisclosure(ctx context.Context, companyID string, rec domain.DisclosureRecord) (disclosureID, jobID string, err error)
	GetDisclosure(ctx context.Context, disclosureID string) (domain.Disclosure, error)
}

// AssessmentRepository keeps every assessment; readers want the latest.
type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, a domain.Assessment) error
	LatestAssessment(ctx context.Context, companyExternalID string, year int) (domain.Assessment, error)
}
