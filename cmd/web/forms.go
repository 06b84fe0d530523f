package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/leads"
	"endpointmedia.co.za/web/internal/observability"
	"endpointmedia.co.za/web/internal/seo"
	"endpointmedia.co.za/web/internal/site"
	"endpointmedia.co.za/web/internal/views"
)

const (
	msgDeliveryFailed = "Failed to process your inquiry. Please try again or contact us directly."
	msgFixFields      = "Please correct the highlighted fields."
	msgSpecialClosed  = "Bookings for this special are closed."
	maxFormBytes      = 64 << 10
)

// formFields lists, per kind, the posted field names in the order they map to a lead.
var formFields = map[leads.Kind][]string{
	leads.KindContact: {"name", "email", "phone", "message"},
	leads.KindAudit:   {"name", "business_name", "email"},
	leads.KindBooking: {"companyName", "yourName", "email", "whatsapp"},
}

// leadFromForm maps posted values onto a lead and keeps them for redisplay.
func leadFromForm(kind leads.Kind, form url.Values) (leads.Lead, map[string]string) {
	values := make(map[string]string, len(formFields[kind]))
	for _, f := range formFields[kind] {
		values[f] = strings.TrimSpace(form.Get(f))
	}
	lead := leads.Lead{
		Kind:     kind,
		Email:    values["email"],
		Source:   string(kind) + "-form",
		Honeypot: form.Get(views.HoneypotField),
	}
	switch kind {
	case leads.KindBooking:
		lead.Name = values["yourName"]
		lead.BusinessName = values["companyName"]
		lead.Phone = values["whatsapp"]
		lead.Source = "december-special"
	default:
		lead.Name = values["name"]
		lead.BusinessName = values["business_name"]
		lead.Phone = values["phone"]
		lead.Message = values["message"]
	}
	return lead, values
}

func conversionFor(kind leads.Kind) handlers.Conversion {
	if kind == leads.KindAudit {
		return handlers.ConversionAudit
	}
	return handlers.ConversionForm
}

// handleLeadForm accepts a form post. htmx requests get the form fragment back
// with a 200 so that it is swapped in place; plain posts get a full page.
func (a *app) handleLeadForm(kind leads.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			status := http.StatusBadRequest
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			a.formResult(w, r, kind, status, views.FormState{Error: "We could not read your submission. Please try again."})
			return
		}
		lead, values := leadFromForm(kind, r.PostForm)
		st := views.FormState{Values: values}

		if kind == leads.KindBooking && a.special.Remaining().Expired {
			st.Error = msgSpecialClosed
			a.formResult(w, r, kind, http.StatusGone, st)
			return
		}

		receipt, err := a.leads.Submit(r.Context(), lead)
		var invalid *leads.ValidationError
		switch {
		case errors.As(err, &invalid):
			st.Errors = invalid.Fields
			st.Error = msgFixFields
			a.formResult(w, r, kind, http.StatusUnprocessableEntity, st)
			return
		case err != nil:
			st.Error = msgDeliveryFailed
			a.formResult(w, r, kind, http.StatusInternalServerError, st)
			return
		}

		observability.FromContext(r.Context()).Info("lead accepted",
			zap.String("kind", string(kind)),
			zap.String("leadId", receipt.ID),
		)
		st = views.FormState{
			Success: receipt.Message,
			SendTo:  a.pages.Analytics.SendTo(conversionFor(kind)),
		}
		a.formResult(w, r, kind, http.StatusOK, st)
	}
}

func (a *app) formResult(w http.ResponseWriter, r *http.Request, kind leads.Kind, status int, st views.FormState) {
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       formTitle(kind) + " | " + site.Name,
			Description: "Your enquiry with " + site.Name + ".",
			NoIndex:     true,
		},
		NoBreadcrumbs: true,
	})
	if !ok {
		return
	}
	form := views.FormFor(kind)(p.CSRFToken, st)
	if p.HTMX {
		a.render(w, r, http.StatusOK, form)
		return
	}
	a.render(w, r, status, views.FormResultPage(p, formTitle(kind), form))
}

func formTitle(kind leads.Kind) string {
	switch kind {
	case leads.KindAudit:
		return "Free Growth Audit"
	case leads.KindBooking:
		return "Book Your December Special"
	default:
		return "Contact Us"
	}
}
