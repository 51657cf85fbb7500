package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sustainalens/internal/domain"
)

func TestNormalizeIntensityMetricsAreIndependent(t *testing.T) {
	rec := balanced()
	rec.Revenue = domain.Some(0.0)

	m := Normalize(rec)
	assert.False(t, m.IntensityPerRevenue.Available)
	assert.Equal(t, 0.0, m.IntensityPerRevenue.Value)

	v, ok := m.IntensityPerEmployee.Get()
	require.True(t, ok)
	assert.InDelta(t, 20.0, v, eps) // 9000 t over 450 employees
}

func TestNormalizeGuardsZeroHeadcount(t *testing.T) {
	rec := balanced()
	rec.Employees = domain.Some(0)

	m := Normalize(rec)
	assert.False(t, m.IntensityPerEmployee.Available)
	v, ok := m.IntensityPerRevenue.Get()
	require.True(t, ok)
	assert.InDelta(t, 0.0045, v, eps)
}

func TestNormalizeExcludesUndisclosedScopes(t *testing.T) {
	rec := balanced()
	rec.Scope3 = domain.None[float64]()

	m := Normalize(rec)
	total, ok := m.TotalEmissions.Get()
	require.True(t, ok)
	assert.Equal(t, 4000.0, total)
}

func TestNormalizeWithoutAnyScope(t *testing.T) {
	rec := domain.DisclosureRecord{
		CompanyID:      "empty",
		Year:           2024,
		Revenue:        domain.Some(10.0),
		Employees:      domain.Some(3),
		PriorYearTotal: domain.Some(5.0),
	}
	m := Normalize(rec)
	assert.False(t, m.TotalEmissions.Available)
	assert.False(t, m.IntensityPerRevenue.Available)
	assert.False(t, m.IntensityPerEmployee.Available)
	assert.False(t, m.YoYChange.Available)
}

func TestNormalizeYoYChange(t *testing.T) {
	rec := balanced()
	m := Normalize(rec)
	v, ok := m.YoYChange.Get()
	require.True(t, ok)
	assert.InDelta(t, -0.1, v, eps)

	rec.PriorYearTotal = domain.Some(0.0)
	assert.False(t, Normalize(rec).YoYChange.Available)

	rec.PriorYearTotal = domain.None[float64]()
	assert.False(t, Normalize(rec).YoYChange.Available)
}

func TestNormalizeTargetAttainmentIsCapped(t *testing.T) {
	rec := balanced()
	rec.InterimCutAchieved = domain.Some(42.0)

	v, ok := Normalize(rec).TargetAttainment.Get()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	rec.NearTermTarget = domain.None[domain.Target]()
	assert.False(t, Normalize(rec).TargetAttainment.Available)
}
