package domain

import (
	"encoding/json"
	"slices"
)

// Metric is a derived value that may be unavailable. Unavailable is a distinct
// state and is never encoded as zero.
type Metric struct {
	Value     float64
	Available bool
}

func Available(v float64) Metric { return Metric{Value: v, Available: true} }

func Unavailable() Metric { return Metric{} }

func (m Metric) Get() (float64, bool) { return m.Value, m.Available }

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Available {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Unavailable()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Available(v)
	return nil
}

// MetricsResult holds the normalized intensity metrics for one record.
type MetricsResult struct {
	TotalEmissions       Metric `json:"total_emissions"`
	IntensityPerRevenue  Metric `json:"intensity_per_revenue"`
	IntensityPerEmployee Metric `json:"intensity_per_employee"`
	// YoYChange is a signed fraction; negative means emissions fell.
	YoYChange Metric `json:"yoy_change"`
	// TargetAttainment is interim cut achieved over the near-term target cut, in [0,1].
	TargetAttainment Metric `json:"target_attainment"`
}

// PillarScores are the four independently computed sub-scores, each in [0,1].
type PillarScores struct {
	Ambition    float64 `json:"ambition"`
	Progress    float64 `json:"progress"`
	Disclosure  float64 `json:"disclosure"`
	Credibility float64 `json:"credibility"`
}

type RiskCategory string

const (
	RiskLow    RiskCategory = "Low"
	RiskMedium RiskCategory = "Medium"
	RiskHigh   RiskCategory = "High"
)

// GapKind says why a field shows up in the audit list.
type GapKind string

const (
	GapMissing     GapKind = "missing"     // optional input not disclosed
	GapUnavailable GapKind = "unavailable" // derived metric could not be computed
	GapIgnored     GapKind = "ignored"     // disclosed but not usable, e.g. an expired target
)

type Gap struct {
	Field  string  `json:"field"`
	Kind   GapKind `json:"kind"`
	Detail string  `json:"detail,omitempty"`
}

// ReadinessResult is the terminal artifact of one evaluation.
type ReadinessResult struct {
	CompanyID    string        `json:"company_id"`
	Year         int           `json:"year"`
	Metrics      MetricsResult `json:"metrics"`
	Pillars      PillarScores  `json:"pillars"`
	// Stringency is Ambition without validation bonuses; risk is judged on it.
	Stringency   float64       `json:"ambition_stringency"`
	Composite    float64       `json:"composite"`
	Risk         RiskCategory  `json:"risk"`
	RiskGap      float64       `json:"risk_gap"`
	Completeness float64       `json:"completeness"`
	Gaps         []Gap         `json:"gaps"`
}

// MissingFields returns the names of every field in the audit list.
func (r ReadinessResult) MissingFields() []string {
	out := make([]string, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		if !slices.Contains(out, g.Field) {
			out = append(out, g.Field)
		}
	}
	return out
}

// Outcome is the result of one record in a batch evaluation. Exactly one of
// Result and Err is set.
type Outcome struct {
	CompanyID string
	Year      int
	Result    *ReadinessResult
	Err       error
}
