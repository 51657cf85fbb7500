package domain

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field names used in disclosures and in the audit list of a result.
const (
	FieldCompanyID          = "company_id"
	FieldYear               = "year"
	FieldScope1             = "scope1"
	FieldScope2             = "scope2"
	FieldScope3             = "scope3"
	FieldRevenue            = "revenue"
	FieldEmployees          = "employees"
	FieldPriorYearTotal     = "prior_year_total"
	FieldNearTermTarget     = "near_term_target"
	FieldLongTermTarget     = "long_term_target"
	FieldInterimCutAchieved = "interim_cut_achieved"
	FieldSBTi               = "sbti"
	FieldRenewableShare     = "renewable_share"
	FieldGreenCapexRatio    = "green_capex_ratio"
	FieldCDPRating          = "cdp_rating"
)

// SBTiStatus is the Science Based Targets initiative validation state.
type SBTiStatus string

const (
	SBTiNone      SBTiStatus = "none"
	SBTiPending   SBTiStatus = "pending"
	SBTiValidated SBTiStatus = "validated"
)

// Normalized maps the empty status to none and lowercases the rest.
func (s SBTiStatus) Normalized() SBTiStatus {
	v := SBTiStatus(strings.ToLower(strings.TrimSpace(string(s))))
	if v == "" {
		return SBTiNone
	}
	return v
}

func (s SBTiStatus) Valid() bool {
	switch s.Normalized() {
	case SBTiNone, SBTiPending, SBTiValidated:
		return true
	}
	return false
}

// UnmarshalJSON accepts the legacy boolean form (true = validated).
func (s *SBTiStatus) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = sbtiFromBool(b)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		*s = SBTiStatus(string(data))
		return nil
	}
	*s = SBTiStatus(str)
	return nil
}

func (s *SBTiStatus) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*s = sbtiFromBool(b)
		return nil
	}
	*s = SBTiStatus(node.Value)
	return nil
}

func sbtiFromBool(b bool) SBTiStatus {
	if b {
		return SBTiValidated
	}
	return SBTiNone
}

// Target is a stated emissions reduction commitment.
type Target struct {
	ReductionPct float64 `json:"reduction_pct" yaml:"reduction_pct"`
	Year         int     `json:"year" yaml:"year"`
}

// DisclosureRecord is one company-year of raw sustainability disclosure.
// Emissions are tonnes CO2e, percentages are 0-100, ratios are 0-1.
type DisclosureRecord struct {
	CompanyID string `json:"company_id" yaml:"company_id"`
	Sector    string `json:"sector,omitempty" yaml:"sector,omitempty"`
	Year      int    `json:"year" yaml:"year"`

	Scope1 Opt[float64] `json:"scope1,omitzero" yaml:"scope1,omitempty"`
	Scope2 Opt[float64] `json:"scope2,omitzero" yaml:"scope2,omitempty"`
	Scope3 Opt[float64] `json:"scope3,omitzero" yaml:"scope3,omitempty"`

	Revenue   Opt[float64] `json:"revenue,omitzero" yaml:"revenue,omitempty"`
	Employees Opt[int]     `json:"employees,omitzero" yaml:"employees,omitempty"`

	PriorYearTotal     Opt[float64] `json:"prior_year_total,omitzero" yaml:"prior_year_total,omitempty"`
	NearTermTarget     Opt[Target]  `json:"near_term_target,omitzero" yaml:"near_term_target,omitempty"`
	LongTermTarget     Opt[Target]  `json:"long_term_target,omitzero" yaml:"long_term_target,omitempty"`
	InterimCutAchieved Opt[float64] `json:"interim_cut_achieved,omitzero" yaml:"interim_cut_achieved,omitempty"`
	SBTi               SBTiStatus   `json:"sbti,omitempty" yaml:"sbti,omitempty"`
	RenewableShare     Opt[float64] `json:"renewable_share,omitzero" yaml:"renewable_share,omitempty"`
	GreenCapexRatio    Opt[float64] `json:"green_capex_ratio,omitzero" yaml:"green_capex_ratio,omitempty"`
	CDPRating          Opt[string]  `json:"cdp_rating,omitzero" yaml:"cdp_rating,omitempty"`
}

type presence struct {
	name  string
	state FieldState
}

// optionalFields lists the fields that count toward data completeness, in a
// fixed order.
func (r DisclosureRecord) optionalFields() []presence {
	return []presence{
		{FieldScope1, r.Scope1.State()},
		{FieldScope2, r.Scope2.State()},
		{FieldScope3, r.Scope3.State()},
		{FieldPriorYearTotal, r.PriorYearTotal.State()},
		{FieldNearTermTarget, r.NearTermTarget.State()},
		{FieldLongTermTarget, r.LongTermTarget.State()},
		{FieldInterimCutAchieved, r.InterimCutAchieved.State()},
		{FieldRenewableShare, r.RenewableShare.State()},
		{FieldGreenCapexRatio, r.GreenCapexRatio.State()},
		{FieldCDPRating, r.CDPRating.State()},
	}
}

// Completeness is the fraction of expected optional fields actually disclosed.
func (r DisclosureRecord) Completeness() float64 {
	fields := r.optionalFields()
	n := 0
	for _, f := range fields {
		if f.state == Present {
			n++
		}
	}
	return float64(n) / float64(len(fields))
}

// UndisclosedFields returns the optional fields that are not present.
func (r DisclosureRecord) UndisclosedFields() []string {
	var out []string
	for _, f := range r.optionalFields() {
		if f.state != Present {
			out = append(out, f.name)
		}
	}
	return out
}

// TotalEmissions sums the disclosed scopes. Undisclosed scopes are excluded
// rather than counted as zero; ok is false when no scope is disclosed.
func (r DisclosureRecord) TotalEmissions() (total float64, ok bool) {
	for _, s := range []Opt[float64]{r.Scope1, r.Scope2, r.Scope3} {
		if v, present := s.Get(); present {
			total += v
			ok = true
		}
	}
	return total, ok
}
