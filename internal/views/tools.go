package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/calculator"
	"endpointmedia.co.za/web/internal/countdown"
	"endpointmedia.co.za/web/internal/format"
)

// CalculatorPath is the fragment endpoint the calculator form polls.
const CalculatorPath = "/services/website-design-prices/calculator"

// CountdownPath is the fragment endpoint the special page polls.
const CountdownPath = "/december-special/countdown"

type slider struct {
	param string
	label string
	rng   calculator.Range
	value float64
	show  string
}

// Calculator renders the ROI form with its results panel. Without JavaScript
// the form submits as a GET to the page itself.
func Calculator(res calculator.Result) g.Node {
	in := res.Inputs
	sliders := []slider{
		{calculator.ParamPages, "Number of pages", calculator.PagesRange, float64(in.Pages), strconv.Itoa(in.Pages)},
		{calculator.ParamTraffic, "Monthly visitors", calculator.TrafficRange, in.MonthlyTraffic, format.Number(int64(in.MonthlyTraffic))},
		{calculator.ParamConversion, "Current conversion rate", calculator.ConversionRange, in.ConversionRate, format.Percent(in.ConversionRate, 1)},
		{calculator.ParamOrderValue, "Average order value", calculator.OrderValueRange, in.AvgOrderValue, format.Rand(in.AvgOrderValue)},
	}
	return Div(
		ID("roi-calculator"),
		Class("grid gap-8 rounded-2xl border border-slate-200 p-6 lg:grid-cols-2"),
		Form(
			Method("get"),
			Action("/services/website-design-prices#roi-calculator"),
			Class("space-y-6"),
			g.Attr("hx-get", CalculatorPath),
			g.Attr("hx-trigger", "input delay:200ms, change"),
			g.Attr("hx-target", "#roi-results"),
			g.Attr("hx-swap", "outerHTML"),
			g.Group(g.Map(sliders, sliderField)),
			NoScript(Button(Type("submit"), Class("btn btn-primary"), g.Text("Calculate"))),
		),
		CalculatorResults(res),
	)
}

func sliderField(s slider) g.Node {
	id := "calc-" + s.param
	return Div(
		Label(For(id), Class("flex justify-between text-sm font-medium"),
			Span(g.Text(s.label)),
			Span(g.Attr("data-value", s.param), g.Text(s.show)),
		),
		Input(
			ID(id),
			Type("range"),
			Name(s.param),
			Class("mt-2 w-full"),
			Min(formatFloat(s.rng.Min)),
			Max(formatFloat(s.rng.Max)),
			Step(formatFloat(s.rng.Step)),
			Value(formatFloat(s.value)),
		),
	)
}

// CalculatorResults is the panel htmx swaps when an input changes.
func CalculatorResults(res calculator.Result) g.Node {
	payback := "Never"
	if !res.PaybackNever {
		payback = format.Decimal(res.PaybackMonths, 1) + " months"
	}
	row := func(key, label, value string) g.Node {
		return Div(
			Class("flex justify-between border-b border-slate-100 py-2"),
			Dt(Class("text-slate-600"), g.Text(label)),
			Dd(Class("font-semibold"), g.Attr("data-result", key), g.Text(value)),
		)
	}
	return Div(
		ID("roi-results"),
		g.Attr("aria-live", "polite"),
		Class("rounded-xl bg-slate-50 p-6"),
		H3(Class("text-lg font-semibold"), g.Text("Your projected return")),
		Dl(
			Class("mt-4"),
			row("improved-conversion", "Conversion rate after a 3s faster site", format.Percent(res.ImprovedConversion, 2)),
			row("monthly-template", "Monthly revenue (template site)", format.Rand(res.MonthlyTemplate)),
			row("monthly-performance", "Monthly revenue (performance build)", format.Rand(res.MonthlyPerformance)),
			row("annual-gain", "Extra revenue per year", format.Rand(res.AnnualGain)),
			row("annual-lost", "Revenue a slow template loses per year", format.Rand(res.AnnualLostWithTemplate)),
			row("roi", "Return on the extra investment", strconv.Itoa(res.RoundedROI())+"%"),
			row("payback", "Payback period", payback),
		),
		P(Class("mt-4 text-xs text-slate-500"),
			g.Textf("Compares a %s template site with a %s performance build. Every second of load time costs about %s of conversions.",
				format.Rand(calculator.TemplateCost), format.Rand(calculator.PerformanceCost), format.Percent(calculator.LossPerSecond, 0)),
		),
	)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Countdown renders the time left on the special. htmx refreshes it every
// minute until the offer closes.
func Countdown(rem countdown.Remaining) g.Node {
	if rem.Expired {
		return Div(
			ID("special-countdown"),
			Class("rounded-xl bg-slate-100 p-6 text-center"),
			g.Attr("data-countdown", "expired"),
			P(Class("text-lg font-semibold"), g.Text("This offer has closed.")),
			P(Class("mt-2 text-slate-600"), g.Text("All December spots have been claimed or the booking window has ended.")),
		)
	}
	unit := func(key string, n int, label string) g.Node {
		return Div(
			Class("rounded-lg bg-white/10 px-4 py-3"),
			Span(Class("block text-3xl font-bold tabular-nums"), g.Attr("data-countdown-"+key, strconv.Itoa(n)), g.Text(strconv.Itoa(n))),
			Span(Class("text-xs uppercase tracking-wide"), g.Text(label)),
		)
	}
	return Div(
		ID("special-countdown"),
		Class("flex justify-center gap-3 text-center"),
		g.Attr("data-countdown", "running"),
		g.Attr("hx-get", CountdownPath),
		g.Attr("hx-trigger", "every 60s"),
		g.Attr("hx-swap", "outerHTML"),
		unit("days", rem.Days, "Days"),
		unit("hours", rem.Hours, "Hours"),
		unit("minutes", rem.Minutes, "Minutes"),
	)
}
