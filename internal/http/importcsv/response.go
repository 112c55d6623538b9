package importcsv

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/importer"
)

type resultResponse struct {
	Success      bool   `json:"success"`
	FileName     string `json:"fileName"`
	Message      string `json:"message"`
	PaymentCount *int   `json:"paymentCount,omitempty"`
	CardTypeName string `json:"cardTypeName,omitempty"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type importedFileResponse struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"fileName"`
	CardTypeName string    `json:"cardTypeName"`
	YearMonth    string    `json:"yearMonth"`
	ImportedAt   time.Time `json:"importedAt"`
	PaymentCount int       `json:"paymentCount"`
}

type cardTypeResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	Supported    bool      `json:"supported"`
}

func toResultList(results []importer.Result) []resultResponse {
	resp := make([]resultResponse, len(results))
	for i, res := range results {
		resp[i] = resultResponse(res)
	}

	return resp
}

func toImportedFileList(files []*importer.ImportedFile) []importedFileResponse {
	resp := make([]importedFileResponse, len(files))
	for i, f := range files {
		resp[i] = importedFileResponse{
			ID:           f.ID,
			FileName:     f.FileName,
			CardTypeName: f.CardTypeName,
			YearMonth:    f.YearMonth,
			ImportedAt:   f.ImportedAt,
			PaymentCount: f.PaymentCount,
		}
	}

	return resp
}

func toCardTypeList(cts []*importer.CardType) []cardTypeResponse {
	resp := make([]cardTypeResponse, len(cts))
	for i, ct := range cts {
		resp[i] = cardTypeResponse{
			ID:           ct.ID,
			Code:         ct.Code,
			Name:         ct.Name,
			DisplayOrder: ct.DisplayOrder,
			Supported:    ct.Supported,
		}
	}

	return resp
}
