package scoring

import (
	"fmt"

	"sustainalens/internal/domain"
)

// Ambition scores the stringency of stated targets. Each active target is
// turned into an implied annual reduction rate and mapped through the
// policy's rate curve; validation status adds a fixed bonus. A company with
// no active target scores 0.
func (e *Engine) Ambition(r domain.DisclosureRecord) float64 {
	s, _, _ := e.ambition(r)
	return s
}

// Stringency is the part of Ambition that comes from the targets alone,
// before any validation bonus.
func (e *Engine) Stringency(r domain.DisclosureRecord) float64 {
	_, s, _ := e.ambition(r)
	return s
}

func (e *Engine) ambition(r domain.DisclosureRecord) (score, stringency float64, gaps []domain.Gap) {
	a := e.policy.spec.Ambition
	var (
		base   float64
		active bool
	)
	targets := []struct {
		field  string
		target domain.Opt[domain.Target]
		weight float64
	}{
		{domain.FieldNearTermTarget, r.NearTermTarget, a.NearTermWeight},
		{domain.FieldLongTermTarget, r.LongTermTarget, a.LongTermWeight},
	}
	for _, t := range targets {
		v, ok := t.target.Get()
		if !ok {
			continue
		}
		horizon := v.Year - r.Year
		if horizon <= 0 {
			gaps = append(gaps, domain.Gap{
				Field:  t.field,
				Kind:   domain.GapIgnored,
				Detail: fmt.Sprintf("target year %d is not after reporting year %d", v.Year, r.Year),
			})
			continue
		}
		active = true
		rate := min(v.ReductionPct, 100) / float64(horizon)
		base += t.weight * a.RateCurve.At(rate)
	}
	if !active {
		return 0, 0, gaps
	}
	stringency = clamp01(base)
	switch r.SBTi.Normalized() {
	case domain.SBTiValidated:
		base += a.ValidatedBonus
	case domain.SBTiPending:
		base += a.PendingBonus
	}
	return clamp01(base), stringency, gaps
}

// Progress scores demonstrated reduction performance from the normalized
// metrics and the record's renewables and green capex figures. An
// unavailable YoY change contributes the policy's partial score; missing
// renewables, capex or attainment contribute nothing.
func (e *Engine) Progress(r domain.DisclosureRecord, m domain.MetricsResult) float64 {
	p := e.policy.spec.Progress

	yoy := p.UnavailableYoY
	if change, ok := m.YoYChange.Get(); ok {
		yoy = p.YoYCurve.At(-change)
	}
	var renewables, capex, attainment float64
	if v, ok := r.RenewableShare.Get(); ok {
		renewables = v / 100
	}
	if v, ok := r.GreenCapexRatio.Get(); ok {
		capex = v
	}
	if v, ok := m.TargetAttainment.Get(); ok {
		attainment = min(v, 1)
	}
	return clamp01(p.YoYWeight*yoy +
		p.RenewablesWeight*clamp01(renewables) +
		p.GreenCapexWeight*clamp01(capex) +
		p.AttainmentWeight*attainment)
}

// Disclosure scores reporting transparency. Without a rating the score comes
// from completeness alone rather than from a fixed penalty.
func (e *Engine) Disclosure(r domain.DisclosureRecord) float64 {
	d := e.policy.spec.Disclosure
	completeness := r.Completeness()
	label, ok := r.CDPRating.Get()
	if !ok {
		return clamp01(completeness)
	}
	rating, known := e.policy.Rating(label)
	if !known {
		return clamp01(completeness)
	}
	return clamp01((d.RatingWeight*rating + d.CompletenessWeight*completeness) /
		(d.RatingWeight + d.CompletenessWeight))
}

// Credibility scores whether claims are backed by action. It reads only the
// already computed target stringency and Progress score plus third-party
// validation and target attainment: it starts from the weaker of claim and
// action and is penalised when the claim runs ahead of progress by more than
// the tolerance. The claim is the stringency, not the Ambition score, so the
// validation bonus on Ambition never widens the penalised gap.
func (e *Engine) Credibility(stringency, progress float64, sbti domain.SBTiStatus, attainment domain.Metric) float64 {
	c := e.policy.spec.Credibility
	score := c.BaselineScale * min(stringency, progress)
	if gap := stringency - progress - c.GapTolerance; gap > 0 {
		score -= c.GapPenalty * gap
	}
	switch sbti.Normalized() {
	case domain.SBTiValidated:
		score += c.ValidatedBonus
	case domain.SBTiPending:
		score += c.PendingBonus
	}
	if v, ok := attainment.Get(); ok {
		score += c.AttainmentBonus * clamp01(v)
	}
	return clamp01(score)
}
