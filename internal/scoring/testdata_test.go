package scoring

import "sustainalens/internal/domain"

// greenwasher states maximal targets but shows rising emissions and no
// renewables, green capex or interim cut.
func greenwasher() domain.DisclosureRecord {
	return domain.DisclosureRecord{
		CompanyID:          "acme",
		Year:               2024,
		Scope1:             domain.Some(1000.0),
		Scope2:             domain.Some(2000.0),
		Scope3:             domain.Some(7000.0),
		Revenue:            domain.Some(1e6),
		Employees:          domain.Some(100),
		PriorYearTotal:     domain.Some(9500.0),
		NearTermTarget:     domain.Some(domain.Target{ReductionPct: 50, Year: 2030}),
		LongTermTarget:     domain.Some(domain.Target{ReductionPct: 100, Year: 2040}),
		InterimCutAchieved: domain.Some(0.0),
		SBTi:               domain.SBTiValidated,
		RenewableShare:     domain.Some(0.0),
		GreenCapexRatio:    domain.Some(0.0),
		CDPRating:          domain.Some("A"),
	}
}

// balanced has ambition and progress both close to 0.7.
func balanced() domain.DisclosureRecord {
	return domain.DisclosureRecord{
		CompanyID:          "steady",
		Year:               2024,
		Scope1:             domain.Some(3000.0),
		Scope2:             domain.Some(1000.0),
		Scope3:             domain.Some(5000.0),
		Revenue:            domain.Some(2e6),
		Employees:          domain.Some(450),
		PriorYearTotal:     domain.Some(10000.0),
		NearTermTarget:     domain.Some(domain.Target{ReductionPct: 28, Year: 2029}),
		InterimCutAchieved: domain.Some(14.0),
		SBTi:               domain.SBTiValidated,
		RenewableShare:     domain.Some(60.0),
		GreenCapexRatio:    domain.Some(0.35),
		CDPRating:          domain.Some("B"),
	}
}
