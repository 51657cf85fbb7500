package scoring

import (
	"fmt"

	"sustainalens/internal/domain"
)

// validateRecord returns every reason the record cannot be scored. Optional
// fields that are absent are fine; present ones must be in range.
func validateRecord(p *Policy, r domain.DisclosureRecord) []string {
	var out []string
	add := func(format string, args ...any) { out = append(out, fmt.Sprintf(format, args...)) }

	if r.CompanyID == "" {
		add("%s is required", domain.FieldCompanyID)
	}
	if r.Year <= 0 {
		add("%s must be positive, got %d", domain.FieldYear, r.Year)
	}

	switch r.Revenue.State() {
	case domain.Absent:
		add("%s is required", domain.FieldRevenue)
	case domain.Invalid:
		add("%s: %s", domain.FieldRevenue, r.Revenue.Reason())
	default:
		v, _ := r.Revenue.Get()
		if !finite(v) || v < 0 {
			add("%s must be a non-negative number, got %g", domain.FieldRevenue, v)
		}
	}
	switch r.Employees.State() {
	case domain.Absent:
		add("%s is required", domain.FieldEmployees)
	case domain.Invalid:
		add("%s: %s", domain.FieldEmployees, r.Employees.Reason())
	default:
		if v, _ := r.Employees.Get(); v < 0 {
			add("%s must be non-negative, got %d", domain.FieldEmployees, v)
		}
	}

	tonnes := []struct {
		name string
		v    domain.Opt[float64]
	}{
		{domain.FieldScope1, r.Scope1},
		{domain.FieldScope2, r.Scope2},
		{domain.FieldScope3, r.Scope3},
		{domain.FieldPriorYearTotal, r.PriorYearTotal},
	}
	for _, t := range tonnes {
		out = append(out, rangeProblems(t.name, t.v, 0, inf)...)
	}
	// A negative interim cut means emissions rose against the base year.
	out = append(out, rangeProblems(domain.FieldInterimCutAchieved, r.InterimCutAchieved, -inf, 100)...)
	out = append(out, rangeProblems(domain.FieldRenewableShare, r.RenewableShare, 0, 100)...)
	out = append(out, rangeProblems(domain.FieldGreenCapexRatio, r.GreenCapexRatio, 0, 1)...)

	for name, t := range map[string]domain.Opt[domain.Target]{
		domain.FieldNearTermTarget: r.NearTermTarget,
		domain.FieldLongTermTarget: r.LongTermTarget,
	} {
		switch t.State() {
		case domain.Invalid:
			add("%s: %s", name, t.Reason())
		case domain.Present:
			v, _ := t.Get()
			if !finite(v.ReductionPct) || v.ReductionPct <= 0 || v.ReductionPct > 100 {
				add("%s: reduction_pct must be in (0,100], got %g", name, v.ReductionPct)
			}
			if v.Year <= 0 {
				add("%s: year must be positive, got %d", name, v.Year)
			}
		}
	}

	switch r.CDPRating.State() {
	case domain.Invalid:
		add("%s: %s", domain.FieldCDPRating, r.CDPRating.Reason())
	case domain.Present:
		label, _ := r.CDPRating.Get()
		if _, ok := p.Rating(label); !ok {
			add("%s: unknown rating %q", domain.FieldCDPRating, label)
		}
	}
	if !r.SBTi.Valid() {
		add("%s: unknown status %q", domain.FieldSBTi, string(r.SBTi))
	}
	return out
}

func rangeProblems(name string, o domain.Opt[float64], lo, hi float64) []string {
	switch o.State() {
	case domain.Invalid:
		return []string{fmt.Sprintf("%s: %s", name, o.Reason())}
	case domain.Present:
		v, _ := o.Get()
		if !finite(v) || v < lo || v > hi {
			return []string{fmt.Sprintf("%s: %g outside [%g,%g]", name, v, lo, hi)}
		}
	}
	return nil
}
