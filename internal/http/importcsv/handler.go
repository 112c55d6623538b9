package importcsv

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/importer"
	"github.com/MrJamesThe3rd/cardledger/internal/logging"
)

type Handler struct {
	importSvc   *importer.Service
	uploadLimit int64
}

// NewHandler caps multipart uploads at uploadLimit bytes per request.
func NewHandler(importSvc *importer.Service, uploadLimit int64) *Handler {
	return &Handler{
		importSvc:   importSvc,
		uploadLimit: uploadLimit,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importFiles)
	r.Post("/directory", h.importDirectory)
	r.Get("/history", h.history)
	r.Delete("/{id}", h.delete)
}

// CardTypeRoutes serves the card type listing.
func (h *Handler) CardTypeRoutes(r chi.Router) {
	r.Get("/", h.cardTypes)
}

func (h *Handler) importFiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadLimit)

	if err := r.ParseMultipartForm(h.uploadLimit); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	cardType := r.FormValue("card_type")
	if cardType == "" {
		http.Error(w, "card_type field is required", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		http.Error(w, "files field is required", http.StatusBadRequest)
		return
	}

	files := make([]importer.File, 0, len(headers))

	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		files = append(files, importer.File{Name: filepath.Base(fh.Filename), Data: data})
	}

	results := h.importSvc.ImportFiles(r.Context(), files, cardType)

	logging.FromContext(r.Context()).Info("import finished", "card_type", cardType, "files", len(files))

	writeJSON(w, toResultList(results))
}

type directoryRequest struct {
	Path     string `json:"path"`
	CardType string `json:"card_type"`
}

func (h *Handler) importDirectory(w http.ResponseWriter, r *http.Request) {
	var req directoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Path == "" || req.CardType == "" {
		http.Error(w, "path and card_type are required", http.StatusBadRequest)
		return
	}

	results := h.importSvc.ImportDirectory(r.Context(), req.Path, req.CardType)

	writeJSON(w, toResultList(results))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	files, err := h.importSvc.History(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list import history", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toImportedFileList(files))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	writeJSON(w, deleteResponse(h.importSvc.DeleteImportedFile(r.Context(), id)))
}

func (h *Handler) cardTypes(w http.ResponseWriter, r *http.Request) {
	cts, err := h.importSvc.CardTypes(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list card types", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toCardTypeList(cts))
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fh.Filename, err)
	}

	return data, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
