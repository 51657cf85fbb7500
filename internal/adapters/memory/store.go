// Package memory is a process-local implementation of the repositories,
// used when no database is configured and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
)

type job struct {
	ports.AssessmentJob
	status   string
	attempts int
	reason   string
}

type Store struct {
	mu          sync.Mutex
	seq         int
	companies   map[string]domain.Company // by external id
	disclosures map[string]domain.Disclosure
	byYear      map[string]string // company id + year -> disclosure id
	assessments []domain.Assessment
	jobs        []*job
}

func New() *Store {
	return &Store{
		companies:   map[string]domain.Company{},
		disclosures: map[string]domain.Disclosure{},
		byYear:      map[string]string{},
	}
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Store) UpsertCompany(_ context.Context, c domain.Company) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.companies[c.ExternalID]; ok {
		c.ID, c.CreatedAt = existing.ID, existing.CreatedAt
	} else {
		c.ID, c.CreatedAt = s.nextID("company"), time.Now().UTC()
	}
	s.companies[c.ExternalID] = c
	return c, nil
}

func (s *Store) GetCompany(_ context.Context, externalID string) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[externalID]
	if !ok {
		return domain.Company{}, ports.ErrNotFound
	}
	return c, nil
}

func (s *Store) SaveDisclosure(_ context.Context, companyID string, rec domain.DisclosureRecord) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fmt.Sprintf("%s/%d", companyID, rec.Year)
	id, ok := s.byYear[key]
	if !ok {
		id = s.nextID("disclosure")
		s.byYear[key] = id
	}
	s.disclosures[id] = domain.Disclosure{
		ID:          id,
		CompanyID:   companyID,
		Year:        rec.Year,
		Record:      rec,
		SubmittedAt: time.Now().UTC(),
	}
	j := &job{AssessmentJob: ports.AssessmentJob{ID: s.nextID("job"), DisclosureID: id}, status: "queued"}
	s.jobs = append(s.jobs, j)
	return id, j.ID, nil
}

func (s *Store) GetDisclosure(_ context.Context, disclosureID string) (domain.Disclosure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.disclosures[disclosureID]
	if !ok {
		return domain.Disclosure{}, ports.ErrNotFound
	}
	return d, nil
}

func (s *Store) SaveAssessment(_ context.Context, a domain.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.disclosures[a.DisclosureID]; !ok {
		return ports.ErrNotFound
	}
	s.assessments = append(s.assessments, a)
	return nil
}

func (s *Store) LatestAssessment(_ context.Context, companyExternalID string, year int) (domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.assessments) - 1; i >= 0; i-- {
		if a := s.assessments[i]; a.CompanyID == companyExternalID && a.Year == year {
			return a, nil
		}
	}
	return domain.Assessment{}, ports.ErrNotFound
}

func (s *Store) ClaimNext(_ context.Context) (ports.AssessmentJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.status == "queued" {
			j.status = "running"
			j.attempts++
			return j.AssessmentJob, true, nil
		}
	}
	return ports.AssessmentJob{}, false, nil
}

func (s *Store) StartJobForDisclosure(_ context.Context, disclosureID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.DisclosureID == disclosureID && j.status == "queued" {
			j.status = "running"
			j.attempts++
			return j.ID, nil
		}
	}
	return "", ports.ErrNotFound
}

func (s *Store) MarkCompleted(_ context.Context, jobID string) error {
	return s.finish(jobID, "completed", "")
}

func (s *Store) MarkFailed(_ context.Context, jobID string, reason string) error {
	return s.finish(jobID, "failed", reason)
}

func (s *Store) finish(jobID, status, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.ID == jobID {
			j.status, j.reason = status, reason
			return nil
		}
	}
	return ports.ErrNotFound
}

// JobStatus reports a job's state and failure reason.
func (s *Store) JobStatus(jobID string) (status, reason string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.ID == jobID {
			return j.status, j.reason, true
		}
	}
	return "", "", false
}
