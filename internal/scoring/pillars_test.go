package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sustainalens/internal/domain"
)

func TestProgressTreatsUnavailableYoYAsPartialCredit(t *testing.T) {
	e := NewEngine(nil)

	improving := balanced()
	unknown := balanced()
	unknown.PriorYearTotal = domain.None[float64]()

	pImproving := e.Progress(improving, Normalize(improving))
	pUnknown := e.Progress(unknown, Normalize(unknown))

	// 0.4 weight times (1.0 - 0.3) between a 10% cut and no prior-year data.
	assert.InDelta(t, 0.28, pImproving-pUnknown, eps)
	assert.Greater(t, pUnknown, 0.0)
}

func TestProgressCapsAttainment(t *testing.T) {
	e := NewEngine(nil)
	onTarget := balanced()
	onTarget.InterimCutAchieved = domain.Some(28.0)
	beyond := balanced()
	beyond.InterimCutAchieved = domain.Some(40.0)

	assert.Equal(t, e.Progress(onTarget, Normalize(onTarget)), e.Progress(beyond, Normalize(beyond)))
}

func TestAmbitionRewardsSteeperAndCloserTargets(t *testing.T) {
	e := NewEngine(nil)
	rec := func(pct float64, year int) domain.DisclosureRecord {
		r := balanced()
		r.SBTi = domain.SBTiNone
		r.NearTermTarget = domain.Some(domain.Target{ReductionPct: pct, Year: year})
		return r
	}
	assert.Greater(t, e.Ambition(rec(40, 2030)), e.Ambition(rec(20, 2030)))
	assert.Greater(t, e.Ambition(rec(30, 2028)), e.Ambition(rec(30, 2035)))
	// Past full decarbonization pace there is nothing left to gain.
	assert.Equal(t, e.Ambition(rec(90, 2026)), e.Ambition(rec(100, 2026)))
}

func TestAmbitionValidationBonus(t *testing.T) {
	e := NewEngine(nil)
	r := balanced()
	r.SBTi = domain.SBTiNone
	none := e.Ambition(r)
	r.SBTi = domain.SBTiPending
	pending := e.Ambition(r)
	r.SBTi = domain.SBTiValidated
	validated := e.Ambition(r)

	assert.InDelta(t, 0.05, pending-none, eps)
	assert.InDelta(t, 0.15, validated-none, eps)
}

func TestDisclosureWithoutRatingUsesCompletenessOnly(t *testing.T) {
	e := NewEngine(nil)
	r := balanced()
	r.CDPRating = domain.None[string]()

	// 8 of 10 optional fields remain disclosed.
	assert.InDelta(t, 0.8, e.Disclosure(r), eps)
}

func TestDisclosureBlendsRatingAndCompleteness(t *testing.T) {
	e := NewEngine(nil)
	r := balanced()
	r.CDPRating = domain.Some("F")

	assert.InDelta(t, 0.27, e.Disclosure(r), eps)
}

func TestCredibilityPenalisesStringencyGap(t *testing.T) {
	e := NewEngine(nil)
	none := domain.Unavailable()

	assert.InDelta(t, 0.5, e.Credibility(0.55, 0.5, domain.SBTiNone, none), eps)
	// gap 0.5 exceeds the 0.1 tolerance by 0.4: 0.3 - 0.6*0.4
	assert.InDelta(t, 0.06, e.Credibility(0.8, 0.3, domain.SBTiNone, none), eps)
	assert.InDelta(t, 0.16, e.Credibility(0.8, 0.3, domain.SBTiValidated, none), eps)
	assert.InDelta(t, 0.21, e.Credibility(0.8, 0.3, domain.SBTiValidated, domain.Available(0.5)), eps)
	assert.Equal(t, 0.0, e.Credibility(1, 0, domain.SBTiNone, none))
}

func TestClassifyThresholds(t *testing.T) {
	e := NewEngine(nil)
	cases := []struct {
		name                            string
		ambition, progress, credibility float64
		want                            domain.RiskCategory
	}{
		{"matched", 0.7, 0.7, 0.7, domain.RiskLow},
		{"action ahead of claims", 0.3, 0.8, 0.6, domain.RiskLow},
		{"moderate gap", 0.7, 0.5, 0.5, domain.RiskMedium},
		{"claims only", 1.0, 0.1, 0.0, domain.RiskHigh},
		{"exactly high", 0.85, 0.5, 0.5, domain.RiskHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := e.Classify(tc.ambition, tc.progress, tc.credibility)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyIgnoresDisclosure(t *testing.T) {
	e := NewEngine(nil)
	r := greenwasher()
	res, err := e.Evaluate(r)
	assert.NoError(t, err)

	r.CDPRating = domain.Some("F")
	worse, err := e.Evaluate(r)
	assert.NoError(t, err)

	assert.Less(t, worse.Pillars.Disclosure, res.Pillars.Disclosure)
	assert.Equal(t, res.Risk, worse.Risk)
	assert.Equal(t, res.RiskGap, worse.RiskGap)
}
