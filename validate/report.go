package validate

import "fmt"

// Severity splits diagnostics into failures and advisories. Only Fatal
// diagnostics affect the overall result.
type Severity int

const (
	Fatal Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "fatal"
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Stats collects the numeric outcome of a validation run. The three totals
// correspond to the objective sign conventions a reporter may have used;
// BestMatch is only filled when a reported objective was present.
type Stats struct {
	LinObj           float64 `json:"lin_obj"`
	Penalty          float64 `json:"penalty"`
	SoftViolations   int     `json:"soft_violations"`
	TotalMin         float64 `json:"total_min"`
	TotalInternal    float64 `json:"total_internal"`
	TotalMaxOriginal float64 `json:"total_max_original"`

	Reported   *float64 `json:"reported,omitempty"`
	BestMatch  string   `json:"best_match,omitempty"`
	BestValue  float64  `json:"best_match_value"`
	BestAbsErr float64  `json:"best_abs_error"`

	ViolatedCNFSoft  []int `json:"violated_cnf_soft,omitempty"`
	ViolatedWCNFSoft []int `json:"violated_wcnf_soft,omitempty"`
}

// Report is the full outcome of one validation run.
type Report struct {
	OK    bool         `json:"ok"`
	Diags []Diagnostic `json:"diagnostics"`
	Stats Stats        `json:"stats"`
}

func (r *Report) fatalf(format string, args ...any) {
	r.Diags = append(r.Diags, Diagnostic{Severity: Fatal, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(format string, args ...any) {
	r.Diags = append(r.Diags, Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the advisory diagnostics in emission order.
func (r *Report) Warnings() []Diagnostic { return r.filter(Warning) }

// Failures returns the fatal diagnostics in emission order.
func (r *Report) Failures() []Diagnostic { return r.filter(Fatal) }

func (r *Report) filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diags {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}
