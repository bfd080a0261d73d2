package httptransport

import (
	"net/http"

	dErrors "salaire/pkg/domain-errors"
)

type optionsResponse struct {
	Options []string `json:"options"`
}

func (h *Handler) handleTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.reference.ListTitles(r.Context())
	if err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list job titles"))
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{Options: orEmpty(titles)})
}

func (h *Handler) handleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.reference.ListCities(r.Context())
	if err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cities"))
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{Options: orEmpty(cities)})
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
