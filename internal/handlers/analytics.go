package handlers

import (
	"strings"

	"endpointmedia.co.za/web/internal/config"
)

// Conversion names a Google Ads conversion the site reports.
type Conversion string

const (
	ConversionForm     Conversion = "form"
	ConversionAudit    Conversion = "audit"
	ConversionPhone    Conversion = "phone"
	ConversionWhatsApp Conversion = "whatsapp"
)

// Analytics holds client instrumentation configuration surfaced to views.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GoogleAdsID      string // e.g. AW-17744075656
	Labels           map[Conversion]string
	Debug            bool
}

// NewAnalytics builds Analytics from configuration.
func NewAnalytics(cfg config.AnalyticsConfig) Analytics {
	labels := map[Conversion]string{}
	for k, v := range map[Conversion]string{
		ConversionForm:     cfg.LabelForm,
		ConversionAudit:    cfg.LabelAudit,
		ConversionPhone:    cfg.LabelPhone,
		ConversionWhatsApp: cfg.LabelWhatsApp,
	} {
		if v = strings.TrimSpace(v); v != "" {
			labels[k] = v
		}
	}
	return Analytics{
		GA4MeasurementID: strings.TrimSpace(cfg.GA4MeasurementID),
		GoogleAdsID:      strings.TrimSpace(cfg.GoogleAdsID),
		Labels:           labels,
		Debug:            cfg.Debug,
	}
}

// Enabled reports whether the gtag snippet should load at all.
func (a Analytics) Enabled() bool {
	return a.GA4MeasurementID != "" || a.GoogleAdsID != ""
}

// TagID is the ID gtag.js is loaded with.
func (a Analytics) TagID() string {
	if a.GA4MeasurementID != "" {
		return a.GA4MeasurementID
	}
	return a.GoogleAdsID
}

// SendTo returns the gtag send_to value for a conversion, or "" when either the
// Ads ID or the label is missing.
func (a Analytics) SendTo(c Conversion) string {
	label := a.Labels[c]
	if a.GoogleAdsID == "" || label == "" {
		return ""
	}
	return a.GoogleAdsID + "/" + label
}
