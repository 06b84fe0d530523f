// Package calculator implements the ROI comparison shown on the pricing page:
// a cheap template site against a performance build, priced by what the
// faster site earns rather than by page count.
package calculator

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	TemplateCost    = 15000.0
	PerformanceCost = 35000.0
	// SpeedGainSeconds is how much faster the performance build loads.
	SpeedGainSeconds = 3.0
	// LossPerSecond is the conversion loss per second of load time, in percent.
	LossPerSecond = 7.0
)

// ConversionImprovement is the relative conversion uplift (0.21).
const ConversionImprovement = SpeedGainSeconds * LossPerSecond / 100

// Investment is the extra spend the ROI is measured against.
const Investment = PerformanceCost - TemplateCost

// Range bounds one slider.
type Range struct {
	Min, Max, Step, Default float64
}

var (
	PagesRange      = Range{Min: 3, Max: 20, Step: 1, Default: 5}
	TrafficRange    = Range{Min: 100, Max: 10000, Step: 100, Default: 1000}
	ConversionRange = Range{Min: 0.5, Max: 5, Step: 0.1, Default: 1}
	OrderValueRange = Range{Min: 100, Max: 5000, Step: 50, Default: 500}
)

// Query parameter names used by the calculator form.
const (
	ParamPages      = "pages"
	ParamTraffic    = "traffic"
	ParamConversion = "conversion"
	ParamOrderValue = "aov"
)

// Clamp forces v into the range and onto its step grid.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return r.Default
	}
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	steps := math.Round((v - r.Min) / r.Step)
	v = r.Min + steps*r.Step
	if v > r.Max {
		v = r.Max
	}
	// strip float noise such as 1.2000000000000002
	return math.Round(v*1000) / 1000
}

func (r Range) parse(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return r.Default
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return r.Default
	}
	return r.Clamp(v)
}

// Inputs are the four slider values.
type Inputs struct {
	Pages          int
	MonthlyTraffic float64
	ConversionRate float64 // percent
	AvgOrderValue  float64 // rand
}

// DefaultInputs is what the page renders before the visitor moves a slider.
func DefaultInputs() Inputs {
	return Inputs{
		Pages:          int(PagesRange.Default),
		MonthlyTraffic: TrafficRange.Default,
		ConversionRate: ConversionRange.Default,
		AvgOrderValue:  OrderValueRange.Default,
	}
}

// ParseInputs reads the calculator form. Missing or malformed values fall back
// to their defaults; everything else is clamped and snapped.
func ParseInputs(q url.Values) Inputs {
	return Inputs{
		Pages:          int(PagesRange.parse(q.Get(ParamPages))),
		MonthlyTraffic: TrafficRange.parse(q.Get(ParamTraffic)),
		ConversionRate: ConversionRange.parse(q.Get(ParamConversion)),
		AvgOrderValue:  OrderValueRange.parse(q.Get(ParamOrderValue)),
	}
}

// Normalize clamps in-memory inputs the same way ParseInputs does.
func (in Inputs) Normalize() Inputs {
	return Inputs{
		Pages:          int(PagesRange.Clamp(float64(in.Pages))),
		MonthlyTraffic: TrafficRange.Clamp(in.MonthlyTraffic),
		ConversionRate: ConversionRange.Clamp(in.ConversionRate),
		AvgOrderValue:  OrderValueRange.Clamp(in.AvgOrderValue),
	}
}

// Query encodes the inputs back into calculator query parameters.
func (in Inputs) Query() url.Values {
	q := url.Values{}
	q.Set(ParamPages, strconv.Itoa(in.Pages))
	q.Set(ParamTraffic, strconv.FormatFloat(in.MonthlyTraffic, 'f', -1, 64))
	q.Set(ParamConversion, strconv.FormatFloat(in.ConversionRate, 'f', -1, 64))
	q.Set(ParamOrderValue, strconv.FormatFloat(in.AvgOrderValue, 'f', -1, 64))
	return q
}

// Result holds every derived figure the results panel shows.
type Result struct {
	Inputs Inputs

	ImprovedConversion     float64
	MonthlyTemplate        float64
	MonthlyPerformance     float64
	AnnualGain             float64
	AnnualLostWithTemplate float64
	ROIPercent             float64
	// PaybackMonths is meaningless when PaybackNever is set.
	PaybackMonths float64
	PaybackNever  bool
}

// RoundedROI is the ROI as displayed, rounded to a whole percent.
func (r Result) RoundedROI() int {
	return int(math.Round(r.ROIPercent))
}

// Compute derives the comparison. Page count is displayed but does not change
// the figures.
func Compute(in Inputs) Result {
	in = in.Normalize()
	conv := in.ConversionRate
	improved := conv + conv*ConversionImprovement

	monthlyTemplate := in.MonthlyTraffic * (conv / 100) * in.AvgOrderValue
	monthlyPerformance := in.MonthlyTraffic * (improved / 100) * in.AvgOrderValue
	annualGain := (monthlyPerformance - monthlyTemplate) * 12

	res := Result{
		Inputs:                 in,
		ImprovedConversion:     improved,
		MonthlyTemplate:        monthlyTemplate,
		MonthlyPerformance:     monthlyPerformance,
		AnnualGain:             annualGain,
		AnnualLostWithTemplate: monthlyTemplate * ConversionImprovement * 12,
		ROIPercent:             (annualGain - Investment) / Investment * 100,
	}
	if monthlyGain := annualGain / 12; monthlyGain > 0 {
		res.PaybackMonths = Investment / monthlyGain
	} else {
		res.PaybackNever = true
	}
	return res
}
