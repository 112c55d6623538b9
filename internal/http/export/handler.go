package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cardledger/internal/export"
	"github.com/MrJamesThe3rd/cardledger/internal/logging"
	"github.com/MrJamesThe3rd/cardledger/internal/payment"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/payments", h.payments)
}

func (h *Handler) payments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	yearMonth := q.Get("year_month")
	if yearMonth == "" {
		http.Error(w, "year_month is required", http.StatusBadRequest)
		return
	}

	cardType := q.Get("card_type")

	var buf bytes.Buffer

	n, err := h.svc.WriteMonth(r.Context(), &buf, yearMonth, cardType)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidYearMonth) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logging.FromContext(r.Context()).Error("failed to export payments", "year_month", yearMonth, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(yearMonth, cardType)))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write export", "rows", n, "error", err)
	}
}
