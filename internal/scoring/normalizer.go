package scoring

import "sustainalens/internal/domain"

// Normalize converts the absolute figures of a record into scale-independent
// metrics. Every division is guarded; a metric whose inputs are missing or
// whose denominator is not positive is Unavailable, never zero.
func Normalize(r domain.DisclosureRecord) domain.MetricsResult {
	m, _ := normalize(r)
	return m
}

func normalize(r domain.DisclosureRecord) (domain.MetricsResult, []domain.Gap) {
	var (
		m    domain.MetricsResult
		gaps []domain.Gap
	)
	unavailable := func(field, detail string) {
		gaps = append(gaps, domain.Gap{Field: field, Kind: domain.GapUnavailable, Detail: detail})
	}

	total, ok := r.TotalEmissions()
	if ok {
		m.TotalEmissions = domain.Available(total)
	} else {
		unavailable("total_emissions", "no emission scope disclosed")
	}

	revenue, _ := r.Revenue.Get()
	switch {
	case !ok:
		unavailable("intensity_per_revenue", "total emissions unavailable")
	case revenue <= 0:
		unavailable("intensity_per_revenue", "revenue is not positive")
	default:
		m.IntensityPerRevenue = domain.Available(total / revenue)
	}

	employees, _ := r.Employees.Get()
	switch {
	case !ok:
		unavailable("intensity_per_employee", "total emissions unavailable")
	case employees <= 0:
		unavailable("intensity_per_employee", "employee count is not positive")
	default:
		m.IntensityPerEmployee = domain.Available(total / float64(employees))
	}

	prior, hasPrior := r.PriorYearTotal.Get()
	switch {
	case !ok:
		unavailable("yoy_change", "total emissions unavailable")
	case !hasPrior:
		unavailable("yoy_change", "prior-year total not disclosed")
	case prior <= 0:
		unavailable("yoy_change", "prior-year total is not positive")
	default:
		m.YoYChange = domain.Available((total - prior) / prior)
	}

	achieved, hasAchieved := r.InterimCutAchieved.Get()
	target, hasTarget := r.NearTermTarget.Get()
	switch {
	case !hasAchieved:
		unavailable("target_attainment", "interim cut not disclosed")
	case !hasTarget || target.ReductionPct <= 0:
		unavailable("target_attainment", "no near-term target to measure against")
	default:
		m.TargetAttainment = domain.Available(clamp01(achieved / target.ReductionPct))
	}
	return m, gaps
}
