package domain

import "time"

// Persisted models used by services and adapters. The scoring core only
// deals in DisclosureRecord and ReadinessResult.

type Company struct {
	ID                string
	ExternalID        string
	Name              string
	Sector            string
	Website           *string
	RegistrableDomain *string
	CreatedAt         time.Time
}

type Disclosure struct {
	ID          string
	CompanyID   string
	Year        int
	Record      DisclosureRecord
	SubmittedAt time.Time
}

type Assessment struct {
	ID                string
	DisclosureID      string
	CompanyID         string
	Year              int
	PolicyFingerprint string
	Result            ReadinessResult
	ComputedAt        time.Time
}
