package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/leads"
	mw "endpointmedia.co.za/web/internal/middleware"
)

// HoneypotField is the hidden input bots fill in.
const HoneypotField = "website"

// FormState carries submitted values, field errors and the outcome of a post
// back into a form.
type FormState struct {
	Values map[string]string
	Errors map[string]string
	// Error is a form-level failure such as a delivery problem.
	Error string
	// Success is the receipt message; the form is replaced when set.
	Success string
	// SendTo is the Ads conversion fired on success.
	SendTo string
}

func (s FormState) value(field string) string { return s.Values[field] }

type field struct {
	name         string
	label        string
	kind         string
	autocomplete string
	required     bool
	textarea     bool
}

var (
	contactFields = []field{
		{name: "name", label: "Your name", kind: "text", autocomplete: "name", required: true},
		{name: "email", label: "Email", kind: "email", autocomplete: "email", required: true},
		{name: "phone", label: "Phone (optional)", kind: "tel", autocomplete: "tel"},
		{name: "message", label: "How can we help?", required: true, textarea: true},
	}
	auditFields = []field{
		{name: "name", label: "Your name", kind: "text", autocomplete: "name", required: true},
		{name: "business_name", label: "Business name", kind: "text", autocomplete: "organization", required: true},
		{name: "email", label: "Email", kind: "email", autocomplete: "email", required: true},
	}
	bookingFields = []field{
		{name: "companyName", label: "Company name", kind: "text", autocomplete: "organization", required: true},
		{name: "yourName", label: "Your name", kind: "text", autocomplete: "name", required: true},
		{name: "email", label: "Email", kind: "email", autocomplete: "email", required: true},
		{name: "whatsapp", label: "WhatsApp number", kind: "tel", autocomplete: "tel", required: true},
	}
)

// ContactForm posts to /contact.
func ContactForm(csrf string, st FormState) g.Node {
	return leadForm("contact-form", "/contact", "Send Message", csrf, contactFields, st)
}

// AuditForm posts to /audit.
func AuditForm(csrf string, st FormState) g.Node {
	return leadForm("audit-form", "/audit", "Get My Free Audit", csrf, auditFields, st)
}

// BookingForm posts to /december-special/book.
func BookingForm(csrf string, st FormState) g.Node {
	return leadForm("booking-form", "/december-special/book", "Book My Spot", csrf, bookingFields, st)
}

// FormFor returns the form renderer for a lead kind.
func FormFor(kind leads.Kind) func(csrf string, st FormState) g.Node {
	switch kind {
	case leads.KindAudit:
		return AuditForm
	case leads.KindBooking:
		return BookingForm
	default:
		return ContactForm
	}
}

func leadForm(id, action, submit, csrf string, fields []field, st FormState) g.Node {
	if st.Success != "" {
		return formSuccess(id, st)
	}
	return Form(
		ID(id),
		Method("post"),
		Action(action),
		Class("space-y-4"),
		g.Attr("hx-post", action),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("novalidate", ""),
		Input(Type("hidden"), Name(mw.CSRFFieldName), Value(csrf)),
		g.If(st.Error != "", Div(g.Attr("role", "alert"), Class("rounded bg-red-50 p-3 text-sm text-red-700"), g.Attr("data-form-error", ""), g.Text(st.Error))),
		g.Group(g.Map(fields, func(f field) g.Node { return formField(id, f, st) })),
		Div(
			Class("hidden"),
			g.Attr("aria-hidden", "true"),
			Label(For(id+"-"+HoneypotField), g.Text("Leave this field empty")),
			Input(ID(id+"-"+HoneypotField), Type("text"), Name(HoneypotField), TabIndex("-1"), AutoComplete("off")),
		),
		Button(Type("submit"), Class("btn btn-primary w-full"), g.Text(submit)),
	)
}

func formField(formID string, f field, st FormState) g.Node {
	inputID := formID + "-" + f.name
	errMsg := st.Errors[f.name]
	errID := inputID + "-error"
	common := []g.Node{
		ID(inputID),
		Name(f.name),
		Class("mt-1 w-full rounded border border-slate-300 px-3 py-2"),
		g.If(f.required, Required()),
		g.If(f.autocomplete != "", AutoComplete(f.autocomplete)),
		g.If(errMsg != "", g.Group([]g.Node{g.Attr("aria-invalid", "true"), g.Attr("aria-describedby", errID)})),
	}
	var control g.Node
	if f.textarea {
		control = Textarea(g.Group(common), Rows("5"), g.Text(st.value(f.name)))
	} else {
		control = Input(g.Group(common), Type(f.kind), Value(st.value(f.name)))
	}
	return Div(
		Label(For(inputID), Class("block text-sm font-medium"), g.Text(f.label)),
		control,
		g.If(errMsg != "", P(ID(errID), Class("mt-1 text-sm text-red-600"), g.Attr("data-field-error", f.name), g.Text(errMsg))),
	)
}

func formSuccess(id string, st FormState) g.Node {
	return Div(
		ID(id),
		g.Attr("role", "status"),
		Class("rounded-xl bg-teal-50 p-6 text-teal-900"),
		g.Attr("data-form-success", ""),
		conversionAttr(st.SendTo),
		P(Class("font-semibold"), g.Text("Thank you!")),
		P(Class("mt-2"), g.Text(st.Success)),
	)
}
