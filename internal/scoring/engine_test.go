package scoring

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sustainalens/internal/domain"
)

const eps = 1e-9

func TestEvaluateBalancedRecord(t *testing.T) {
	res, err := NewEngine(nil).Evaluate(balanced())
	require.NoError(t, err)

	// 28% over 5 years is 5.6%/yr: 0.6 * 0.925 stringency plus the 0.15 bonus.
	assert.InDelta(t, 0.555, res.Stringency, eps)
	assert.InDelta(t, 0.705, res.Pillars.Ambition, eps)
	assert.InDelta(t, 0.69, res.Pillars.Progress, eps)
	assert.InDelta(t, 0.76, res.Pillars.Disclosure, eps)
	// min(0.555, 0.69) + 0.1 validated + 0.1 * 0.5 attainment
	assert.InDelta(t, 0.705, res.Pillars.Credibility, eps)
	assert.InDelta(t, 0.708, res.Composite, eps)
	assert.Equal(t, domain.RiskLow, res.Risk)
	assert.InDelta(t, -0.1425, res.RiskGap, eps)

	assert.InDelta(t, 0.9, res.Completeness, eps)
	assert.Equal(t, []string{domain.FieldLongTermTarget}, res.MissingFields())
}

func TestEvaluateGreenwasherIsHighRisk(t *testing.T) {
	res, err := NewEngine(nil).Evaluate(greenwasher())
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Pillars.Ambition)
	assert.Greater(t, res.Stringency, 0.98)
	assert.Less(t, res.Pillars.Progress, 0.1)
	assert.Equal(t, 0.0, res.Pillars.Credibility)
	assert.Equal(t, domain.RiskHigh, res.Risk)
	assert.Greater(t, res.RiskGap, 0.9)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	e := NewEngine(nil)
	for _, rec := range []domain.DisclosureRecord{balanced(), greenwasher(), {
		CompanyID: "sparse", Year: 2023, Revenue: domain.Some(0.0), Employees: domain.Some(0),
	}} {
		first, err := e.Evaluate(rec)
		require.NoError(t, err)
		second, err := e.Evaluate(rec)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestEvaluateRejectsInvalidRecord(t *testing.T) {
	rec := balanced()
	rec.Revenue = domain.Some(-5.0)
	rec.CDPRating = domain.Some("Z")

	_, err := NewEngine(nil).Evaluate(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecord))
	assert.False(t, errors.Is(err, ErrInvalidConfiguration))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)
	assert.Contains(t, err.Error(), "revenue")
	assert.Contains(t, err.Error(), `unknown rating "Z"`)
}

func TestValidateRequiredFields(t *testing.T) {
	err := NewEngine(nil).Validate(domain.DisclosureRecord{})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"company_id is required",
		"employees is required",
		"revenue is required",
		"year must be positive, got 0",
	}, verr.Problems)
}

func TestValidateReportsMalformedValues(t *testing.T) {
	rec := balanced()
	rec.Scope2 = domain.Malformed[float64]("cannot decode \"n/a\"")
	rec.RenewableShare = domain.Some(140.0)
	rec.GreenCapexRatio = domain.Some(1.5)
	rec.SBTi = "maybe"
	rec.NearTermTarget = domain.Some(domain.Target{ReductionPct: 0, Year: 2030})

	err := NewEngine(nil).Validate(rec)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 5)
}

func TestValidateAcceptsNegativeInterimCut(t *testing.T) {
	rec := balanced()
	rec.InterimCutAchieved = domain.Some(-12.0)
	require.NoError(t, NewEngine(nil).Validate(rec))

	res, err := NewEngine(nil).Evaluate(rec)
	require.NoError(t, err)
	v, ok := res.Metrics.TargetAttainment.Get()
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestEvaluateWithoutTargetsScoresZeroAmbition(t *testing.T) {
	rec := balanced()
	rec.NearTermTarget = domain.None[domain.Target]()

	res, err := NewEngine(nil).Evaluate(rec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Pillars.Ambition)
	assert.Equal(t, domain.RiskLow, res.Risk)
}

func TestExpiredTargetIsIgnoredAndAudited(t *testing.T) {
	rec := balanced()
	rec.NearTermTarget = domain.Some(domain.Target{ReductionPct: 30, Year: 2020})

	res, err := NewEngine(nil).Evaluate(rec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Pillars.Ambition)
	assert.Contains(t, res.Gaps, domain.Gap{
		Field:  domain.FieldNearTermTarget,
		Kind:   domain.GapIgnored,
		Detail: "target year 2020 is not after reporting year 2024",
	})
}

func TestEvaluateRecordsUnavailableMetrics(t *testing.T) {
	rec := balanced()
	rec.PriorYearTotal = domain.None[float64]()
	rec.Revenue = domain.Some(0.0)

	res, err := NewEngine(nil).Evaluate(rec)
	require.NoError(t, err)

	assert.False(t, res.Metrics.YoYChange.Available)
	assert.False(t, res.Metrics.IntensityPerRevenue.Available)
	assert.True(t, res.Metrics.IntensityPerEmployee.Available)
	assert.Contains(t, res.Gaps, domain.Gap{Field: domain.FieldPriorYearTotal, Kind: domain.GapMissing})
	assert.Contains(t, res.Gaps, domain.Gap{Field: "yoy_change", Kind: domain.GapUnavailable, Detail: "prior-year total not disclosed"})
	assert.Contains(t, res.Gaps, domain.Gap{Field: "intensity_per_revenue", Kind: domain.GapUnavailable, Detail: "revenue is not positive"})
}

func TestValidationNeverRaisesRisk(t *testing.T) {
	e := NewEngine(nil)
	rank := map[domain.RiskCategory]int{domain.RiskLow: 0, domain.RiskMedium: 1, domain.RiskHigh: 2}
	rec := balanced()
	rec.PriorYearTotal = domain.Some(9000.0)
	rec.RenewableShare = domain.Some(20.0)
	rec.GreenCapexRatio = domain.Some(0.1)

	results := map[domain.SBTiStatus]domain.ReadinessResult{}
	for _, status := range []domain.SBTiStatus{domain.SBTiNone, domain.SBTiPending, domain.SBTiValidated} {
		rec.SBTi = status
		res, err := e.Evaluate(rec)
		require.NoError(t, err)
		results[status] = res
	}
	none, pending, validated := results[domain.SBTiNone], results[domain.SBTiPending], results[domain.SBTiValidated]

	assert.Greater(t, validated.Pillars.Ambition, none.Pillars.Ambition)
	assert.Equal(t, none.Stringency, validated.Stringency)
	assert.Less(t, validated.RiskGap, pending.RiskGap)
	assert.Less(t, pending.RiskGap, none.RiskGap)
	assert.LessOrEqual(t, rank[validated.Risk], rank[none.Risk])
	assert.LessOrEqual(t, rank[pending.Risk], rank[none.Risk])
}
