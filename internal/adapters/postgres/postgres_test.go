package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
	"sustainalens/internal/scoring"
)

// These tests need a disposable database; they are skipped unless
// TEST_DATABASE_URL is set.
func connect(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	_, err = db.Migrate(ctx)
	require.NoError(t, err)
	return db
}

func TestDisclosureLifecycle(t *testing.T) {
	db := connect(t)
	ctx := context.Background()
	external := "it-" + uuid.NewString()

	_, err := db.GetCompany(ctx, external)
	assert.True(t, errors.Is(err, ports.ErrNotFound))

	site := "https://www.example.com"
	c, err := db.UpsertCompany(ctx, domain.Company{ExternalID: external, Name: "Example", Website: &site})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	rec := domain.DisclosureRecord{
		CompanyID:      external,
		Year:           2024,
		Scope1:         domain.Some(100.0),
		Revenue:        domain.Some(1000.0),
		Employees:      domain.Some(4),
		NearTermTarget: domain.Some(domain.Target{ReductionPct: 30, Year: 2030}),
	}
	disclosureID, jobID, err := db.SaveDisclosure(ctx, c.ID, rec)
	require.NoError(t, err)

	d, err := db.GetDisclosure(ctx, disclosureID)
	require.NoError(t, err)
	assert.Equal(t, rec, d.Record)

	started, err := db.StartJobForDisclosure(ctx, disclosureID)
	require.NoError(t, err)
	assert.Equal(t, jobID, started)
	_, err = db.StartJobForDisclosure(ctx, disclosureID)
	assert.True(t, errors.Is(err, ports.ErrNotFound))

	res, err := scoring.NewEngine(nil).Evaluate(rec)
	require.NoError(t, err)
	a := domain.Assessment{
		ID:                uuid.NewString(),
		DisclosureID:      disclosureID,
		PolicyFingerprint: "test",
		Result:            res,
		ComputedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, db.SaveAssessment(ctx, a))
	require.NoError(t, db.MarkCompleted(ctx, jobID))

	latest, err := db.LatestAssessment(ctx, external, 2024)
	require.NoError(t, err)
	assert.Equal(t, a.ID, latest.ID)
	assert.Equal(t, res, latest.Result)
}
