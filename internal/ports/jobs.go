package ports

import "context"

type AssessmentJob struct {
	ID           string
	DisclosureID string
}

// JobRepository supports claiming and updating assessment jobs.
type JobRepository interface {
	ClaimNext(ctx context.Context) (job AssessmentJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	// StartJobForDisclosure claims the queued job of one disclosure. It
	// returns ErrNotFound when no queued job exists, e.g. because a worker
	// got there first.
	StartJobForDisclosure(ctx context.Context, disclosureID string) (jobID string, err error)
}
