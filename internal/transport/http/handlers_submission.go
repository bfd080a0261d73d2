package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"salaire/internal/salary/models"
	"salaire/internal/salary/service"
	dErrors "salaire/pkg/domain-errors"
)

// submitRequest mirrors the submission form fields. JSON keys follow the
// public table's column names.
type submitRequest struct {
	Email          string `json:"email"`
	Company        string `json:"entreprise"`
	Title          string `json:"poste"`
	Location       string `json:"localisation"`
	Level          string `json:"niveau"`
	WorkMode       string `json:"modalite_travail"`
	Compensation   string `json:"remuneration"`
	YearsAtCompany int    `json:"exp_entreprise"`
	YearsTotal     int    `json:"exp_totale"`
}

type submitResponse struct {
	Message string `json:"message"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	// One denylist snapshot per submission session.
	gate := h.gates.Load(r.Context())

	result, err := h.service.Submit(r.Context(), gate, models.SubmissionInput{
		Email:          req.Email,
		Company:        req.Company,
		Title:          req.Title,
		Location:       req.Location,
		Level:          req.Level,
		WorkMode:       req.WorkMode,
		Compensation:   req.Compensation,
		YearsAtCompany: req.YearsAtCompany,
		YearsTotal:     req.YearsTotal,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPersonalEmail):
			writeJSON(w, http.StatusBadRequest, submitResponse{
				Message: "❌ L'adresse email semble être personnelle (ex : gmail.com). Merci d'utiliser une adresse professionnelle.",
			})
		case errors.Is(err, service.ErrDuplicatePending):
			writeJSON(w, http.StatusConflict, submitResponse{
				Message: "⚠️ Une soumission identique est déjà en attente de validation.",
			})
		default:
			writeError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{Message: result.Message})
}
