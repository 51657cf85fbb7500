package assessments

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sustainalens/internal/adapters/memory"
	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
	"sustainalens/internal/scoring"
)

func record(company string) domain.DisclosureRecord {
	return domain.DisclosureRecord{
		CompanyID:      company,
		Year:           2024,
		Scope1:         domain.Some(500.0),
		Scope2:         domain.Some(250.0),
		Revenue:        domain.Some(1e6),
		Employees:      domain.Some(20),
		PriorYearTotal: domain.Some(800.0),
		NearTermTarget: domain.Some(domain.Target{ReductionPct: 40, Year: 2030}),
		RenewableShare: domain.Some(55.0),
		CDPRating:      domain.Some("B"),
		SBTi:           domain.SBTiPending,
	}
}

func TestAssessStoresResultWithPolicyFingerprint(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	company, err := store.UpsertCompany(ctx, domain.Company{ExternalID: "acme", Name: "Acme"})
	require.NoError(t, err)
	disclosureID, _, err := store.SaveDisclosure(ctx, company.ID, record("acme"))
	require.NoError(t, err)

	engine := scoring.NewEngine(nil)
	svc := New(engine, store, store, zap.NewNop())
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	a, err := svc.Assess(ctx, disclosureID)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "acme", a.CompanyID)
	assert.Equal(t, 2024, a.Year)
	assert.Equal(t, engine.Policy().Fingerprint(), a.PolicyFingerprint)
	assert.Equal(t, fixed, a.ComputedAt)

	want, err := engine.Evaluate(record("acme"))
	require.NoError(t, err)
	assert.Equal(t, want, a.Result)

	latest, err := svc.Latest(ctx, "acme", 2024)
	require.NoError(t, err)
	assert.Equal(t, a.ID, latest.ID)

	_, err = svc.Latest(ctx, "acme", 2023)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}

func TestAssessUnknownDisclosure(t *testing.T) {
	store := memory.New()
	svc := New(scoring.NewEngine(nil), store, store, zap.NewNop())

	_, err := svc.Assess(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
	assert.Contains(t, err.Error(), "load disclosure nope")
}

func TestEvaluateBatchIsolatesInvalidRecords(t *testing.T) {
	bad := record("broken")
	bad.Revenue = domain.Some(-1.0)
	records := []domain.DisclosureRecord{record("a"), bad, record("c"), {CompanyID: "d"}}

	out, err := EvaluateBatch(context.Background(), scoring.NewEngine(nil), records, 2)
	require.NoError(t, err)
	require.Len(t, out, 4)

	for i, want := range []string{"a", "broken", "c", "d"} {
		assert.Equal(t, want, out[i].CompanyID)
	}
	require.NotNil(t, out[0].Result)
	require.NotNil(t, out[2].Result)
	same := *out[2].Result
	same.CompanyID = "a"
	assert.Equal(t, *out[0].Result, same)

	for _, i := range []int{1, 3} {
		assert.Nil(t, out[i].Result)
		assert.True(t, errors.Is(out[i].Err, scoring.ErrInvalidRecord))
	}
}

func TestEvaluateBatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := EvaluateBatch(ctx, scoring.NewEngine(nil), []domain.DisclosureRecord{record("a"), record("b")}, 1)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, out, 2)
	for i, o := range out {
		assert.Nil(t, o.Result)
		assert.ErrorIs(t, o.Err, context.Canceled)
		assert.Equal(t, []string{"a", "b"}[i], o.CompanyID)
	}
}

func TestEvaluateBatchSetsExactlyOneOfResultAndErr(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	records := make([]domain.DisclosureRecord, 50)
	for i := range records {
		records[i] = record("c")
	}
	// Cancel part-way: whatever was not scored must still report why.
	go cancel()
	out, _ := EvaluateBatch(ctx, scoring.NewEngine(nil), records, 2)
	require.Len(t, out, len(records))
	for _, o := range out {
		assert.True(t, (o.Result == nil) != (o.Err == nil), "outcome %+v", o)
	}
}
