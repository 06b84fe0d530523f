package calculator

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDefaults(t *testing.T) {
	res := Compute(DefaultInputs())

	assert.InDelta(t, 0.21, ConversionImprovement, 1e-9)
	assert.InDelta(t, 1.21, res.ImprovedConversion, 1e-9)
	assert.InDelta(t, 5000, res.MonthlyTemplate, 1e-6)
	assert.InDelta(t, 6050, res.MonthlyPerformance, 1e-6)
	assert.InDelta(t, 12600, res.AnnualGain, 1e-6)
	assert.InDelta(t, 12600, res.AnnualLostWithTemplate, 1e-6)
	assert.Equal(t, -37, res.RoundedROI())
	require.False(t, res.PaybackNever)
	assert.InDelta(t, 19.047, res.PaybackMonths, 0.001)
}

func TestComputeHighTrafficPaysBack(t *testing.T) {
	res := Compute(Inputs{Pages: 10, MonthlyTraffic: 10000, ConversionRate: 5, AvgOrderValue: 5000})

	// 10000 * 0.05 * 5000 = 2.5M per month, 21% uplift
	assert.InDelta(t, 2_500_000, res.MonthlyTemplate, 1e-3)
	assert.InDelta(t, 525_000*12, res.AnnualGain, 1e-3)
	assert.Equal(t, 31400, res.RoundedROI())
	assert.Less(t, res.PaybackMonths, 1.0)
}

func TestPagesDoNotChangeResult(t *testing.T) {
	a := Compute(Inputs{Pages: 3, MonthlyTraffic: 2500, ConversionRate: 2.3, AvgOrderValue: 750})
	b := Compute(Inputs{Pages: 20, MonthlyTraffic: 2500, ConversionRate: 2.3, AvgOrderValue: 750})
	assert.Equal(t, a.AnnualGain, b.AnnualGain)
	assert.Equal(t, a.ROIPercent, b.ROIPercent)
	assert.Equal(t, 3, a.Inputs.Pages)
	assert.Equal(t, 20, b.Inputs.Pages)
}

func TestParseInputsClampsAndSnaps(t *testing.T) {
	in := ParseInputs(url.Values{
		ParamPages:      {"42"},
		ParamTraffic:    {"1234"},
		ParamConversion: {"1.26"},
		ParamOrderValue: {"10"},
	})
	assert.Equal(t, 20, in.Pages)
	assert.Equal(t, 1200.0, in.MonthlyTraffic)
	assert.Equal(t, 1.3, in.ConversionRate)
	assert.Equal(t, 100.0, in.AvgOrderValue)
}

func TestParseInputsFallsBackToDefaults(t *testing.T) {
	in := ParseInputs(url.Values{
		ParamTraffic:    {"lots"},
		ParamConversion: {"NaN"},
		ParamOrderValue: {""},
	})
	assert.Equal(t, DefaultInputs(), in)
}

func TestQueryRoundTrip(t *testing.T) {
	in := Inputs{Pages: 7, MonthlyTraffic: 3300, ConversionRate: 2.7, AvgOrderValue: 1450}
	assert.Equal(t, in, ParseInputs(in.Query()))
}

func TestClampUpperEdgeStaysInRange(t *testing.T) {
	r := Range{Min: 0.5, Max: 5, Step: 0.3, Default: 1}
	v := r.Clamp(4.99)
	assert.LessOrEqual(t, v, 5.0)
	assert.GreaterOrEqual(t, v, 0.5)
}
