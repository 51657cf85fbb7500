package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

const weightTolerance = 1e-9

// PillarWeights combine the four pillars into the composite score.
type PillarWeights struct {
	Ambition    float64 `json:"ambition" yaml:"ambition"`
	Progress    float64 `json:"progress" yaml:"progress"`
	Disclosure  float64 `json:"disclosure" yaml:"disclosure"`
	Credibility float64 `json:"credibility" yaml:"credibility"`
}

func (w PillarWeights) values() []float64 {
	return []float64{w.Ambition, w.Progress, w.Disclosure, w.Credibility}
}

// RiskThresholds classify the greenwash gap. ProgressBlend is the share of
// Progress (the rest is Credibility) in the action side of the gap.
type RiskThresholds struct {
	Low           float64 `json:"low" yaml:"low"`
	High          float64 `json:"high" yaml:"high"`
	ProgressBlend float64 `json:"progress_blend" yaml:"progress_blend"`
}

type AmbitionParams struct {
	NearTermWeight float64 `json:"near_term_weight" yaml:"near_term_weight"`
	LongTermWeight float64 `json:"long_term_weight" yaml:"long_term_weight"`
	// RateCurve maps the implied annual reduction rate (percent per year)
	// onto a stringency score.
	RateCurve      Curve   `json:"rate_curve" yaml:"rate_curve"`
	ValidatedBonus float64 `json:"validated_bonus" yaml:"validated_bonus"`
	PendingBonus   float64 `json:"pending_bonus" yaml:"pending_bonus"`
}

type ProgressParams struct {
	YoYWeight        float64 `json:"yoy_weight" yaml:"yoy_weight"`
	RenewablesWeight float64 `json:"renewables_weight" yaml:"renewables_weight"`
	GreenCapexWeight float64 `json:"green_capex_weight" yaml:"green_capex_weight"`
	AttainmentWeight float64 `json:"attainment_weight" yaml:"attainment_weight"`
	// YoYCurve maps the year-on-year reduction fraction (-YoY change) onto a score.
	YoYCurve Curve `json:"yoy_curve" yaml:"yoy_curve"`
	// UnavailableYoY is the partial score used when no prior-year total exists.
	UnavailableYoY float64 `json:"unavailable_yoy" yaml:"unavailable_yoy"`
}

func (p ProgressParams) weights() []float64 {
	return []float64{p.YoYWeight, p.RenewablesWeight, p.GreenCapexWeight, p.AttainmentWeight}
}

type DisclosureParams struct {
	RatingWeight       float64 `json:"rating_weight" yaml:"rating_weight"`
	CompletenessWeight float64 `json:"completeness_weight" yaml:"completeness_weight"`
}

type CredibilityParams struct {
	BaselineScale   float64 `json:"baseline_scale" yaml:"baseline_scale"`
	GapTolerance    float64 `json:"gap_tolerance" yaml:"gap_tolerance"`
	GapPenalty      float64 `json:"gap_penalty" yaml:"gap_penalty"`
	ValidatedBonus  float64 `json:"validated_bonus" yaml:"validated_bonus"`
	PendingBonus    float64 `json:"pending_bonus" yaml:"pending_bonus"`
	AttainmentBonus float64 `json:"attainment_bonus" yaml:"attainment_bonus"`
}

// PolicySpec is the plain-data form of a scoring policy, as loaded from a
// policy file. It has to go through NewPolicy before it can be used.
type PolicySpec struct {
	Name        string             `json:"name" yaml:"name"`
	Weights     PillarWeights      `json:"weights" yaml:"weights"`
	Risk        RiskThresholds     `json:"risk" yaml:"risk"`
	Ratings     map[string]float64 `json:"ratings" yaml:"ratings"`
	Ambition    AmbitionParams     `json:"ambition" yaml:"ambition"`
	Progress    ProgressParams     `json:"progress" yaml:"progress"`
	Disclosure  DisclosureParams   `json:"disclosure" yaml:"disclosure"`
	Credibility CredibilityParams  `json:"credibility" yaml:"credibility"`
}

// DefaultPolicySpec returns the standard scoring regime.
func DefaultPolicySpec() PolicySpec {
	return PolicySpec{
		Name: "default",
		Weights: PillarWeights{
			Ambition:    0.20,
			Progress:    0.35,
			Disclosure:  0.15,
			Credibility: 0.30,
		},
		Risk: RiskThresholds{Low: 0.15, High: 0.35, ProgressBlend: 0.5},
		Ratings: map[string]float64{
			"A": 1.0, "A-": 0.9,
			"B": 0.7, "B-": 0.6,
			"C": 0.5, "C-": 0.4,
			"D": 0.3, "D-": 0.2,
			"F": 0.0,
		},
		Ambition: AmbitionParams{
			NearTermWeight: 0.6,
			LongTermWeight: 0.4,
			// 4.2%/yr is the linear 1.5C-aligned absolute contraction rate.
			RateCurve:      Curve{{0, 0}, {2, 0.4}, {4.2, 0.85}, {7, 1}},
			ValidatedBonus: 0.15,
			PendingBonus:   0.05,
		},
		Progress: ProgressParams{
			YoYWeight:        0.4,
			RenewablesWeight: 0.2,
			GreenCapexWeight: 0.2,
			AttainmentWeight: 0.2,
			YoYCurve:         Curve{{-0.10, 0}, {0, 0.4}, {0.042, 0.75}, {0.10, 1}},
			UnavailableYoY:   0.3,
		},
		Disclosure: DisclosureParams{RatingWeight: 0.7, CompletenessWeight: 0.3},
		Credibility: CredibilityParams{
			BaselineScale:   1.0,
			GapTolerance:    0.1,
			GapPenalty:      0.6,
			ValidatedBonus:  0.1,
			PendingBonus:    0.03,
			AttainmentBonus: 0.1,
		},
	}
}

// Policy is a validated, immutable scoring policy. It is safe to share
// between goroutines.
type Policy struct {
	spec        PolicySpec
	ratings     map[string]float64
	fingerprint string
}

// NewPolicy validates spec and returns a Policy built from a private copy
// of it. All problems are reported at once, marked ErrInvalidConfiguration.
func NewPolicy(spec PolicySpec) (*Policy, error) {
	spec = spec.clone()
	if spec.Name == "" {
		spec.Name = "custom"
	}
	var problems []string
	problems = append(problems, weightProblems("weights", spec.Weights.values())...)

	r := spec.Risk
	switch {
	case !finite(r.Low) || !finite(r.High):
		problems = append(problems, "risk: thresholds must be finite")
	case r.Low >= r.High:
		problems = append(problems, fmt.Sprintf("risk: low threshold %g must be below high threshold %g", r.Low, r.High))
	}
	problems = append(problems, unitProblems("risk.progress_blend", r.ProgressBlend)...)

	ratings := make(map[string]float64, len(spec.Ratings))
	if len(spec.Ratings) == 0 {
		problems = append(problems, "ratings: table is empty")
	}
	for _, k := range slices.Sorted(maps.Keys(spec.Ratings)) {
		key := normalizeRating(k)
		if key == "" {
			problems = append(problems, "ratings: empty rating label")
			continue
		}
		if _, dup := ratings[key]; dup {
			problems = append(problems, fmt.Sprintf("ratings: duplicate label %q", key))
			continue
		}
		problems = append(problems, unitProblems("ratings."+key, spec.Ratings[k])...)
		ratings[key] = spec.Ratings[k]
	}

	a := spec.Ambition
	problems = append(problems, weightProblems("ambition weights", []float64{a.NearTermWeight, a.LongTermWeight})...)
	problems = append(problems, a.RateCurve.problems("ambition.rate_curve")...)
	problems = append(problems, unitProblems("ambition.validated_bonus", a.ValidatedBonus)...)
	problems = append(problems, unitProblems("ambition.pending_bonus", a.PendingBonus)...)

	p := spec.Progress
	problems = append(problems, weightProblems("progress weights", p.weights())...)
	problems = append(problems, p.YoYCurve.problems("progress.yoy_curve")...)
	problems = append(problems, unitProblems("progress.unavailable_yoy", p.UnavailableYoY)...)

	d := spec.Disclosure
	problems = append(problems, unitProblems("disclosure.rating_weight", d.RatingWeight)...)
	problems = append(problems, unitProblems("disclosure.completeness_weight", d.CompletenessWeight)...)
	if d.CompletenessWeight <= 0 {
		problems = append(problems, "disclosure.completeness_weight: must be positive")
	}

	c := spec.Credibility
	if !finite(c.BaselineScale) || c.BaselineScale <= 0 || c.BaselineScale > 1 {
		problems = append(problems, fmt.Sprintf("credibility.baseline_scale: %g outside (0,1]", c.BaselineScale))
	}
	for name, v := range map[string]float64{
		"credibility.gap_tolerance":    c.GapTolerance,
		"credibility.validated_bonus":  c.ValidatedBonus,
		"credibility.pending_bonus":    c.PendingBonus,
		"credibility.attainment_bonus": c.AttainmentBonus,
	} {
		problems = append(problems, unitProblems(name, v)...)
	}
	if !finite(c.GapPenalty) || c.GapPenalty < 0 {
		problems = append(problems, fmt.Sprintf("credibility.gap_penalty: %g must be non-negative", c.GapPenalty))
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		return nil, invalid(ErrInvalidConfiguration, "policy "+spec.Name, problems)
	}
	return &Policy{spec: spec, ratings: ratings, fingerprint: fingerprint(spec)}, nil
}

// DefaultPolicy returns a Policy built from DefaultPolicySpec.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(DefaultPolicySpec())
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Policy) Name() string { return p.spec.Name }

// Spec returns a copy of the policy's settings.
func (p *Policy) Spec() PolicySpec { return p.spec.clone() }

// Fingerprint identifies the policy settings, independent of how the spec
// was written down.
func (p *Policy) Fingerprint() string { return p.fingerprint }

// Rating maps an ordinal disclosure rating onto [0,1].
func (p *Policy) Rating(label string) (float64, bool) {
	v, ok := p.ratings[normalizeRating(label)]
	return v, ok
}

func (s PolicySpec) clone() PolicySpec {
	out := s
	out.Ratings = maps.Clone(s.Ratings)
	out.Ambition.RateCurve = s.Ambition.RateCurve.clone()
	out.Progress.YoYCurve = s.Progress.YoYCurve.clone()
	return out
}

func fingerprint(s PolicySpec) string {
	s.Name = ""
	// encoding/json sorts map keys, so equal settings hash equally.
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func weightProblems(name string, ws []float64) []string {
	var out []string
	sum := 0.0
	for _, w := range ws {
		if !finite(w) || w < 0 {
			out = append(out, fmt.Sprintf("%s: weight %g must be finite and non-negative", name, w))
		}
		sum += w
	}
	if math.Abs(sum-1) > weightTolerance {
		out = append(out, fmt.Sprintf("%s: sum to %.4f, must sum to 1", name, sum))
	}
	return out
}

func unitProblems(name string, v float64) []string {
	if !finite(v) || v < 0 || v > 1 {
		return []string{fmt.Sprintf("%s: %g outside [0,1]", name, v)}
	}
	return nil
}

func normalizeRating(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}
