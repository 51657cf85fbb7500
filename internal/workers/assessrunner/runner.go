package assessrunner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
)

// Processor performs the assessment work for a job's disclosure id.
type Processor interface {
	Process(ctx context.Context, disclosureID string) error
}

type Assessor interface {
	Assess(ctx context.Context, disclosureID string) (domain.Assessment, error)
}

// AssessProcessor scores the disclosure and stores the assessment.
type AssessProcessor struct{ Assessments Assessor }

func (p AssessProcessor) Process(ctx context.Context, disclosureID string) error {
	_, err := p.Assessments.Assess(ctx, disclosureID)
	return err
}

// Run starts worker goroutines that claim jobs and process them. It returns
// immediately; workers stop when ctx is cancelled.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, log *zap.Logger) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.AssessmentJob, concurrency)

	// dispatcher loop
	go func() {
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							log.Warn("job claim failed", zap.Error(err))
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			wlog := log.With(zap.Int("worker", idx))
			for job := range jobsCh {
				finish(ctx, repo, processor, job, wlog)
			}
		}(i)
	}
}

func finish(ctx context.Context, repo ports.JobRepository, processor Processor, job ports.AssessmentJob, log *zap.Logger) {
	if err := processor.Process(ctx, job.DisclosureID); err != nil {
		if markErr := repo.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
			log.Error("mark failed", zap.String("job", job.ID), zap.Error(markErr))
		}
		log.Warn("job failed", zap.String("job", job.ID), zap.Error(err))
		return
	}
	if err := repo.MarkCompleted(ctx, job.ID); err != nil {
		log.Error("mark completed", zap.String("job", job.ID), zap.Error(err))
	}
}

// ProcessInline claims and processes the job of one disclosure synchronously
// using the same processor as the background workers.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor Processor, disclosureID string) error {
	jobID, err := repo.StartJobForDisclosure(ctx, disclosureID)
	if err != nil {
		return err
	}
	if err := processor.Process(ctx, disclosureID); err != nil {
		_ = repo.MarkFailed(ctx, jobID, err.Error())
		return err
	}
	return repo.MarkCompleted(ctx, jobID)
}
