package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
)

// CompanyRepository
func (db *DB) UpsertCompany(ctx context.Context, c domain.Company) (domain.Company, error) {
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO companies (external_id, name, sector, website, registrable_domain)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (external_id) DO UPDATE SET
            name = EXCLUDED.name,
            sector = EXCLUDED.sector,
            website = COALESCE(EXCLUDED.website, companies.website),
            registrable_domain = COALESCE(EXCLUDED.registrable_domain, companies.registrable_domain)
        RETURNING id::text, website, registrable_domain, created_at
    `, c.ExternalID, c.Name, c.Sector, c.Website, c.RegistrableDomain).Scan(&c.ID, &c.Website, &c.RegistrableDomain, &c.CreatedAt)
	return c, err
}

func (db *DB) GetCompany(ctx context.Context, externalID string) (domain.Company, error) {
	c := domain.Company{ExternalID: externalID}
	err := db.Pool.QueryRow(ctx, `
        SELECT id::text, name, sector, website, registrable_domain, created_at
        FROM companies WHERE external_id = $1
    `, externalID).Scan(&c.ID, &c.Name, &c.Sector, &c.Website, &c.RegistrableDomain, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Company{}, ports.ErrNotFound
	}
	return c, err
}

// DisclosureRepository
func (db *DB) SaveDisclosure(ctx context.Context, companyID string, rec domain.DisclosureRecord) (disclosureID, jobID string, err error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", "", err
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = tx.QueryRow(ctx, `
        INSERT INTO disclosures (company_id, year, payload)
        VALUES ($1, $2, $3)
        ON CONFLICT (company_id, year) DO UPDATE SET payload = EXCLUDED.payload, submitted_at = now()
        RETURNING id::text
    `, companyID, rec.Year, payload).Scan(&disclosureID); err != nil {
		return "", "", err
	}
	// create job row
	if err = tx.QueryRow(ctx, `
        INSERT INTO assessment_jobs (disclosure_id) VALUES ($1) RETURNING id::text
    `, disclosureID).Scan(&jobID); err != nil {
		return "", "", err
	}
	return disclosureID, jobID, nil
}

func (db *DB) GetDisclosure(ctx context.Context, disclosureID string) (domain.Disclosure, error) {
	d := domain.Disclosure{ID: disclosureID}
	var payload []byte
	err := db.Pool.QueryRow(ctx, `
        SELECT company_id::text, year, payload, submitted_at FROM disclosures WHERE id = $1
    `, disclosureID).Scan(&d.CompanyID, &d.Year, &payload, &d.SubmittedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Disclosure{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Disclosure{}, err
	}
	if err := json.Unmarshal(payload, &d.Record); err != nil {
		return domain.Disclosure{}, err
	}
	return d, nil
}

// AssessmentRepository
func (db *DB) SaveAssessment(ctx context.Context, a domain.Assessment) error {
	result, err := json.Marshal(a.Result)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
        INSERT INTO assessments (id, disclosure_id, policy_fingerprint, composite, risk, result, computed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, a.ID, a.DisclosureID, a.PolicyFingerprint, a.Result.Composite, string(a.Result.Risk), result, a.ComputedAt)
	return err
}

func (db *DB) LatestAssessment(ctx context.Context, companyExternalID string, year int) (domain.Assessment, error) {
	a := domain.Assessment{CompanyID: companyExternalID, Year: year}
	var result []byte
	err := db.Pool.QueryRow(ctx, `
        SELECT a.id::text, a.disclosure_id::text, a.policy_fingerprint, a.result, a.computed_at
        FROM assessments a
        JOIN disclosures d ON d.id = a.disclosure_id
        JOIN companies c ON c.id = d.company_id
        WHERE c.external_id = $1 AND d.year = $2
        ORDER BY a.computed_at DESC
        LIMIT 1
    `, companyExternalID, year).Scan(&a.ID, &a.DisclosureID, &a.PolicyFingerprint, &result, &a.ComputedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Assessment{}, err
	}
	if err := json.Unmarshal(result, &a.Result); err != nil {
		return domain.Assessment{}, err
	}
	return a, nil
}
