package httptransport

import (
	"net/http"
	"time"

	"salaire/internal/salary/query"
)

// salaryRow is the public JSON shape of one table row. Keys match the
// shareable-link sort column names.
type salaryRow struct {
	ID             string    `json:"id"`
	Company        string    `json:"entreprise"`
	Title          string    `json:"poste"`
	Location       string    `json:"localisation"`
	Level          string    `json:"niveau"`
	WorkMode       string    `json:"modalite_travail"`
	Compensation   string    `json:"remuneration"`
	YearsAtCompany int       `json:"exp_entreprise"`
	YearsTotal     int       `json:"exp_totale"`
	PublishedAt    time.Time `json:"date_ajout"`
}

type queryResponse struct {
	Rows       []salaryRow `json:"rows"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	HasNext    bool        `json:"has_next"`
	// RowsError signals a failed page fetch; the count may still be valid,
	// and vice versa for CountError.
	RowsError  bool `json:"rows_error,omitempty"`
	CountError bool `json:"count_error,omitempty"`
}

func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	f := query.ParseParams(r.URL.Query())
	res := h.engine.Query(r.Context(), f)

	rows := make([]salaryRow, 0, len(res.Rows))
	for _, e := range res.Rows {
		rows = append(rows, salaryRow{
			ID:             e.ID.String(),
			Company:        e.Company,
			Title:          e.Title,
			Location:       e.Location,
			Level:          e.Level,
			WorkMode:       e.WorkMode,
			Compensation:   e.Compensation,
			YearsAtCompany: e.YearsAtCompany,
			YearsTotal:     e.YearsTotal,
			PublishedAt:    e.PublishedAt,
		})
	}

	writeJSON(w, http.StatusOK, queryResponse{
		Rows:       rows,
		TotalCount: res.TotalCount,
		Page:       f.Normalize().Page,
		PageSize:   query.PageSize,
		HasNext:    res.HasNext,
		RowsError:  res.RowsErr != nil,
		CountError: res.CountErr != nil,
	})
}
