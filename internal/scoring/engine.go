// Package scoring turns a raw disclosure record into intensity metrics,
// four pillar scores, a composite Net-Zero Readiness score and a greenwash
// risk category.
//
// Every function here is pure: the only shared input is the immutable
// Policy, so records can be evaluated concurrently without coordination.
package scoring

import (
	"slices"

	"sustainalens/internal/domain"
)

type Engine struct {
	policy *Policy
}

// NewEngine returns an engine for the given policy, or for the default
// policy when p is nil.
func NewEngine(p *Policy) *Engine {
	if p == nil {
		p = DefaultPolicy()
	}
	return &Engine{policy: p}
}

func (e *Engine) Policy() *Policy { return e.policy }

// Validate reports whether r can be scored. The error is a
// *ValidationError marked ErrInvalidRecord.
func (e *Engine) Validate(r domain.DisclosureRecord) error {
	problems := validateRecord(e.policy, r)
	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	subject := "record"
	if r.CompanyID != "" {
		subject = "record " + r.CompanyID
	}
	return invalid(ErrInvalidRecord, subject, problems)
}

// Evaluate runs the full pipeline for one company-year. Evaluating the same
// record twice with the same policy yields identical results.
func (e *Engine) Evaluate(r domain.DisclosureRecord) (domain.ReadinessResult, error) {
	if err := e.Validate(r); err != nil {
		return domain.ReadinessResult{}, err
	}

	var gaps []domain.Gap
	for _, f := range r.UndisclosedFields() {
		gaps = append(gaps, domain.Gap{Field: f, Kind: domain.GapMissing})
	}
	metrics, metricGaps := normalize(r)
	gaps = append(gaps, metricGaps...)

	ambition, stringency, ignored := e.ambition(r)
	gaps = append(gaps, ignored...)
	pillars := domain.PillarScores{
		Ambition:   ambition,
		Progress:   e.Progress(r, metrics),
		Disclosure: e.Disclosure(r),
	}
	pillars.Credibility = e.Credibility(stringency, pillars.Progress, r.SBTi, metrics.TargetAttainment)

	risk, gap := e.Classify(stringency, pillars.Progress, pillars.Credibility)
	return domain.ReadinessResult{
		CompanyID:    r.CompanyID,
		Year:         r.Year,
		Metrics:      metrics,
		Pillars:      pillars,
		Stringency:   stringency,
		Composite:    e.Composite(pillars),
		Risk:         risk,
		RiskGap:      gap,
		Completeness: r.Completeness(),
		Gaps:         gaps,
	}, nil
}
