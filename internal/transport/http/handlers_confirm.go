package httptransport

import (
	"net/http"

	"salaire/internal/salary/service"
)

// After a successful confirmation the page navigates back to the landing
// view after this fixed delay.
const confirmRedirectDelayMS = 5000

type confirmResponse struct {
	Outcome         string `json:"outcome"`
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Published       int    `json:"published,omitempty"`
	RedirectTo      string `json:"redirect_to,omitempty"`
	RedirectAfterMS int    `json:"redirect_after_ms,omitempty"`
}

// handleConfirm is the callback target of the one-time link. The identity
// service sends the browser back here with the token pair in the query
// string.
func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result := h.service.Confirm(r.Context(), service.ConfirmInput{
		AccessToken:  q.Get("access_token"),
		RefreshToken: q.Get("refresh_token"),
	})

	resp := confirmResponse{
		Outcome:   string(result.Outcome),
		Success:   result.Outcome.Success(),
		Message:   result.Message,
		Published: result.Published,
	}
	if resp.Success {
		resp.RedirectTo = "/"
		resp.RedirectAfterMS = confirmRedirectDelayMS
	}

	// The machine always terminates in a user-facing state; the HTTP status
	// only distinguishes success-toned outcomes from the rest.
	status := http.StatusOK
	if !resp.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}
