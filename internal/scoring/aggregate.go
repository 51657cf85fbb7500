package scoring

import "sustainalens/internal/domain"

// Composite is the weighted sum of the pillar scores. With pillars in [0,1]
// and weights summing to 1 the clip never changes the value.
func (e *Engine) Composite(s domain.PillarScores) float64 {
	w := e.policy.spec.Weights
	return clamp01(w.Ambition*s.Ambition +
		w.Progress*s.Progress +
		w.Disclosure*s.Disclosure +
		w.Credibility*s.Credibility)
}

// Classify flags greenwash risk from the gap between the stringency of stated
// targets and a blend of progress and credibility. Disclosure plays no part:
// a fully transparent company can still claim far more than it does.
// Validation bonuses only reach the gap through credibility, so a validated
// company never ranks riskier than the same company unvalidated.
func (e *Engine) Classify(stringency, progress, credibility float64) (domain.RiskCategory, float64) {
	r := e.policy.spec.Risk
	action := r.ProgressBlend*progress + (1-r.ProgressBlend)*credibility
	gap := stringency - action
	switch {
	case gap < r.Low:
		return domain.RiskLow, gap
	case gap < r.High:
		return domain.RiskMedium, gap
	default:
		return domain.RiskHigh, gap
	}
}
