package scoring

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	p, err := NewPolicy(DefaultPolicySpec())
	require.NoError(t, err)
	assert.Equal(t, "default", p.Name())
	assert.Len(t, p.Fingerprint(), 64)
}

func TestNewPolicyRejectsWeightsNotSummingToOne(t *testing.T) {
	for _, progress := range []float64{0.34, 0.36} { // sums of 0.99 and 1.01
		spec := DefaultPolicySpec()
		spec.Weights.Progress = progress

		p, err := NewPolicy(spec)
		assert.Nil(t, p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Contains(t, err.Error(), "must sum to 1")
	}
}

func TestNewPolicyRejectsUnorderedThresholds(t *testing.T) {
	for _, high := range []float64{0.15, 0.1} {
		spec := DefaultPolicySpec()
		spec.Risk.High = high

		_, err := NewPolicy(spec)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Contains(t, err.Error(), "must be below high threshold")
	}
}

func TestNewPolicyCollectsAllProblems(t *testing.T) {
	spec := DefaultPolicySpec()
	spec.Weights.Ambition = -0.2
	spec.Ratings = nil
	spec.Ambition.RateCurve = Curve{{0, 0}, {1, 1.2}}
	spec.Progress.YoYCurve = Curve{{0, 0.5}, {-1, 0.4}}
	spec.Credibility.BaselineScale = 0

	_, err := NewPolicy(spec)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "policy default", verr.Subject)

	joined := err.Error()
	for _, want := range []string{
		"weights: weight -0.2 must be finite and non-negative",
		"ratings: table is empty",
		"ambition.rate_curve[1]: y=1.2 outside [0,1]",
		"progress.yoy_curve[1]: x must be strictly increasing",
		"progress.yoy_curve[1]: y must be non-decreasing",
		"credibility.baseline_scale: 0 outside (0,1]",
	} {
		assert.Contains(t, joined, want)
	}
}

func TestNewPolicyRejectsDuplicateRatingLabels(t *testing.T) {
	spec := DefaultPolicySpec()
	spec.Ratings["a "] = 0.95

	_, err := NewPolicy(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate label "A"`)
}

func TestPolicyIsIsolatedFromItsSpec(t *testing.T) {
	spec := DefaultPolicySpec()
	p, err := NewPolicy(spec)
	require.NoError(t, err)

	spec.Ratings["A"] = 0
	spec.Ambition.RateCurve[0].Y = 0.5
	got := p.Spec()
	got.Ratings["B"] = 0

	v, ok := p.Rating("A")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 0.0, p.Spec().Ambition.RateCurve[0].Y)
	assert.Equal(t, 0.7, p.Spec().Ratings["B"])
}

func TestRatingLookupIgnoresCaseAndSpace(t *testing.T) {
	p := DefaultPolicy()
	v, ok := p.Rating(" a- ")
	require.True(t, ok)
	assert.Equal(t, 0.9, v)

	_, ok = p.Rating("AAA")
	assert.False(t, ok)
}

func TestFingerprintIgnoresName(t *testing.T) {
	a := DefaultPolicySpec()
	b := DefaultPolicySpec()
	b.Name = "lenient"
	pa, err := NewPolicy(a)
	require.NoError(t, err)
	pb, err := NewPolicy(b)
	require.NoError(t, err)
	assert.Equal(t, pa.Fingerprint(), pb.Fingerprint())

	b.Risk.High = 0.5
	pc, err := NewPolicy(b)
	require.NoError(t, err)
	assert.NotEqual(t, pa.Fingerprint(), pc.Fingerprint())
}

func TestCurveAt(t *testing.T) {
	c := Curve{{0, 0}, {2, 0.4}, {4, 1}}
	assert.Equal(t, 0.0, c.At(-3))
	assert.InDelta(t, 0.2, c.At(1), eps)
	assert.InDelta(t, 0.7, c.At(3), eps)
	assert.Equal(t, 1.0, c.At(4))
	assert.Equal(t, 1.0, c.At(100))
}
