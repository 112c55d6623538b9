package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/logging"
	"github.com/MrJamesThe3rd/cardledger/internal/payment"
)

type Handler struct {
	svc *payment.Service
	now func() time.Time
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.listByMonth)
	r.Get("/months", h.yearMonths)
}

func (h *Handler) SourceRoutes(r chi.Router) {
	r.Get("/", h.listSources)
	r.Get("/{id}", h.sourceDetail)
}

func (h *Handler) AnalyticsRoutes(r chi.Router) {
	r.Get("/monthly", h.monthlyTotals)
	r.Get("/sources", h.sourceTotals)
	r.Get("/categories", h.categoryTotals)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context(), h.now())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, toDashboardResponse(d))
}

func (h *Handler) listByMonth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	yearMonth := q.Get("year_month")
	if yearMonth == "" {
		yearMonth = payment.YearMonthOf(h.now())
	}

	month, err := h.svc.ListByMonth(r.Context(), yearMonth, q.Get("card_type"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, toMonthResponse(month))
}

func (h *Handler) yearMonths(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.YearMonths(r.Context(), r.URL.Query().Get("card_type"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if months == nil {
		months = []string{}
	}

	writeJSON(w, months)
}

func (h *Handler) listSources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := payment.SourceFilter{NamePrefix: q.Get("name")}

	switch c := q.Get("category_id"); c {
	case "":
	case "uncategorized":
		filter.Uncategorized = true
	default:
		id, err := uuid.Parse(c)
		if err != nil {
			http.Error(w, "invalid category_id", http.StatusBadRequest)
			return
		}

		filter.CategoryID = &id
	}

	sources, err := h.svc.Sources(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, toSourceList(sources))
}

func (h *Handler) sourceDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	detail, err := h.svc.SourceDetail(r.Context(), id, r.URL.Query().Get("card_type"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, toSourceDetailResponse(detail))
}

func (h *Handler) monthlyTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.MonthlyTotals(r.Context(), rangeFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, toMonthlyList(totals))
}

func (h *Handler) sourceTotals(w http.ResponseWriter, r *http.Request) {
	var limit int

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	totals, err := h.svc.SourceTotals(r.Context(), rangeFrom(r), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, toSourceTotalList(totals))
}

func (h *Handler) categoryTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.CategoryTotals(r.Context(), rangeFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, toCategoryTotalList(totals))
}

func rangeFrom(r *http.Request) payment.Range {
	q := r.URL.Query()

	return payment.Range{
		From:     q.Get("from"),
		To:       q.Get("to"),
		CardType: q.Get("card_type"),
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, payment.ErrInvalidYearMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, payment.ErrNotFound):
		http.Error(w, "source not found", http.StatusNotFound)
	default:
		logging.FromContext(r.Context()).Error("payment request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
