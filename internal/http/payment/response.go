package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cardledger/internal/payment"
)

type paymentResponse struct {
	ID           uuid.UUID  `json:"id"`
	Date         string     `json:"date"`
	Amount       int64      `json:"amount"`
	Quantity     int        `json:"quantity"`
	YearMonth    string     `json:"yearMonth"`
	SourceID     uuid.UUID  `json:"sourceId"`
	SourceName   string     `json:"sourceName"`
	CategoryID   *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName string     `json:"categoryName,omitempty"`
	CardTypeCode string     `json:"cardTypeCode"`
	CardTypeName string     `json:"cardTypeName"`
}

type monthResponse struct {
	YearMonth string            `json:"yearMonth"`
	Total     int64             `json:"total"`
	Payments  []paymentResponse `json:"payments"`
}

type monthlyTotalResponse struct {
	YearMonth string `json:"yearMonth"`
	Total     int64  `json:"total"`
	Count     int    `json:"count"`
}

type sourceTotalResponse struct {
	SourceID     uuid.UUID `json:"sourceId"`
	Name         string    `json:"name"`
	CategoryName string    `json:"categoryName,omitempty"`
	Total        int64     `json:"total"`
	Count        int       `json:"count"`
}

type categoryTotalResponse struct {
	CategoryID *uuid.UUID `json:"categoryId"`
	Name       string     `json:"name"`
	Total      int64      `json:"total"`
	Count      int        `json:"count"`
}

type sourceResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	CategoryID      *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName    string     `json:"categoryName,omitempty"`
	PaymentCount    int        `json:"paymentCount"`
	Total           int64      `json:"total"`
	LastPaymentDate *string    `json:"lastPaymentDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type yearlyTotalResponse struct {
	Year  int   `json:"year"`
	Total int64 `json:"total"`
	Count int   `json:"count"`
}

type sourceDetailResponse struct {
	Source   sourceResponse        `json:"source"`
	Total    int64                 `json:"total"`
	Count    int                   `json:"count"`
	Average  decimal.Decimal       `json:"average"`
	Yearly   []yearlyTotalResponse `json:"yearly"`
	Payments []paymentResponse     `json:"payments"`
}

type recentImportResponse struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"fileName"`
	YearMonth    string    `json:"yearMonth"`
	CardTypeName string    `json:"cardTypeName"`
	ImportedAt   time.Time `json:"importedAt"`
	PaymentCount int       `json:"paymentCount"`
}

type monthSummaryResponse struct {
	YearMonth string `json:"yearMonth"`
	Total     int64  `json:"total"`
	Count     int    `json:"count"`
}

type dashboardResponse struct {
	Current        monthSummaryResponse    `json:"current"`
	Previous       monthSummaryResponse    `json:"previous"`
	ChangePercent  *decimal.Decimal        `json:"changePercent"`
	AveragePayment decimal.Decimal         `json:"averagePayment"`
	RecentImports  []recentImportResponse  `json:"recentImports"`
	TopSources     []sourceTotalResponse   `json:"topSources"`
	Categories     []categoryTotalResponse `json:"categories"`
}

func toPaymentResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:           p.ID,
		Date:         p.Date.Format(time.DateOnly),
		Amount:       p.Amount,
		Quantity:     p.Quantity,
		YearMonth:    p.YearMonth,
		SourceID:     p.SourceID,
		SourceName:   p.SourceName,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		CardTypeCode: p.CardTypeCode,
		CardTypeName: p.CardTypeName,
	}
}

func toPaymentList(payments []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toPaymentResponse(p)
	}

	return resp
}

func toMonthResponse(m *payment.MonthPayments) monthResponse {
	return monthResponse{
		YearMonth: m.YearMonth,
		Total:     m.Total,
		Payments:  toPaymentList(m.Payments),
	}
}

func toMonthlyList(totals []*payment.MonthlyTotal) []monthlyTotalResponse {
	resp := make([]monthlyTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = monthlyTotalResponse(*t)
	}

	return resp
}

func toSourceTotalList(totals []*payment.SourceTotal) []sourceTotalResponse {
	resp := make([]sourceTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = sourceTotalResponse(*t)
	}

	return resp
}

func toCategoryTotalList(totals []*payment.CategoryTotal) []categoryTotalResponse {
	resp := make([]categoryTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = categoryTotalResponse(*t)
	}

	return resp
}

func toSourceResponse(s *payment.Source) sourceResponse {
	resp := sourceResponse{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		PaymentCount: s.PaymentCount,
		Total:        s.Total,
		CreatedAt:    s.CreatedAt,
	}

	if s.LastPaymentDate != nil {
		resp.LastPaymentDate = new(s.LastPaymentDate.Format(time.DateOnly))
	}

	return resp
}

func toSourceList(sources []*payment.Source) []sourceResponse {
	resp := make([]sourceResponse, len(sources))
	for i, s := range sources {
		resp[i] = toSourceResponse(s)
	}

	return resp
}

func toSourceDetailResponse(d *payment.SourceDetail) sourceDetailResponse {
	yearly := make([]yearlyTotalResponse, len(d.Yearly))
	for i, y := range d.Yearly {
		yearly[i] = yearlyTotalResponse(y)
	}

	return sourceDetailResponse{
		Source:   toSourceResponse(d.Source),
		Total:    d.Total,
		Count:    d.Count,
		Average:  d.Average,
		Yearly:   yearly,
		Payments: toPaymentList(d.Payments),
	}
}

func toDashboardResponse(d *payment.Dashboard) dashboardResponse {
	imports := make([]recentImportResponse, len(d.RecentImports))
	for i, ri := range d.RecentImports {
		imports[i] = recentImportResponse(*ri)
	}

	return dashboardResponse{
		Current:        monthSummaryResponse(d.Current),
		Previous:       monthSummaryResponse(d.Previous),
		ChangePercent:  d.ChangePercent,
		AveragePayment: d.AveragePayment,
		RecentImports:  imports,
		TopSources:     toSourceTotalList(d.TopSources),
		Categories:     toCategoryTotalList(d.Categories),
	}
}
