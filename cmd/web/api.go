package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"endpointmedia.co.za/web/internal/httpx"
	"endpointmedia.co.za/web/internal/indexnow"
	"endpointmedia.co.za/web/internal/leads"
	"endpointmedia.co.za/web/internal/observability"
)

const maxJSONBytes = 64 << 10

type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"businessName"`
	Message      string `json:"message"`
	Website      string `json:"website"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// readJSON reads a capped JSON body. A malformed body is a 400 rather than a
// 500 so clients can tell it apart from a delivery failure.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) (httpx.Error, bool) {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes)).Decode(dst)
	if err == nil {
		return httpx.Error{}, true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return httpx.NewError("body_too_large", "Request body too large", http.StatusRequestEntityTooLarge), false
	}
	return httpx.NewError("invalid_body", "Invalid request body", http.StatusBadRequest), false
}

func (a *app) handleAPIContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req contactRequest
	if apiErr, ok := readJSON(w, r, &req); !ok {
		httpx.WriteError(ctx, w, apiErr)
		return
	}

	receipt, err := a.leads.Submit(ctx, leads.Lead{
		Kind:         leads.KindContact,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		Message:      req.Message,
		Source:       "api",
		Honeypot:     req.Website,
	})
	var invalid *leads.ValidationError
	switch {
	case errors.As(err, &invalid):
		msg := "Name, email, and message are required"
		if !missingRequired(invalid) {
			msg = "Invalid contact details"
		}
		httpx.WriteError(ctx, w, httpx.NewError("invalid_lead", msg, http.StatusBadRequest).
			WithDetails(map[string]any{"fields": invalid.Fields}))
		return
	case err != nil:
		httpx.WriteError(ctx, w, httpx.NewError("notify_failed", msgDeliveryFailed, http.StatusInternalServerError))
		return
	}

	observability.FromContext(ctx).Info("lead accepted",
		zap.String("kind", string(leads.KindContact)),
		zap.String("leadId", receipt.ID),
	)
	httpx.WriteJSON(w, http.StatusOK, contactResponse{Success: true, Message: receipt.Message})
}

func missingRequired(e *leads.ValidationError) bool {
	for _, msg := range e.Fields {
		if strings.HasSuffix(msg, " is required") {
			return true
		}
	}
	return false
}

type indexNowRequest struct {
	URLs []string `json:"urls"`
}

type indexNowResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

func (a *app) handleAPIIndexNow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := indexnow.CheckBearer(r.Header.Get("Authorization"), a.cfg.IndexNow.Secret); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("unauthorized", "Unauthorized", http.StatusUnauthorized))
		return
	}
	var req indexNowRequest
	if apiErr, ok := readJSON(w, r, &req); !ok {
		httpx.WriteError(ctx, w, apiErr)
		return
	}

	res, err := a.indexnow.Submit(ctx, req.URLs)
	switch {
	case errors.Is(err, indexnow.ErrNoURLs):
		httpx.WriteError(ctx, w, httpx.NewError("no_urls", "No URLs to submit", http.StatusBadRequest))
		return
	case errors.Is(err, indexnow.ErrNotConfigured):
		httpx.WriteError(ctx, w, httpx.NewError("not_configured", "IndexNow is not configured", http.StatusServiceUnavailable))
		return
	case err != nil:
		observability.FromContext(ctx).Error("indexnow submit failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.NewError("indexnow_failed", "Failed to sync with IndexNow", http.StatusInternalServerError))
		return
	}

	observability.FromContext(ctx).Info("indexnow submitted",
		zap.Int("urls", len(req.URLs)),
		zap.Int("status", res.Status),
	)
	httpx.WriteJSON(w, http.StatusOK, indexNowResponse{Success: res.OK, Status: res.Status})
}
