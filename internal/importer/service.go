package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/statement"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyImported = errors.New("already imported")
	ErrFileTooLarge    = errors.New("file too large")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=importer
type Repository interface {
	FindCardType(ctx context.Context, code string) (*CardType, error)
	ListCardTypes(ctx context.Context) ([]*CardType, error)

	ImportedFileExists(ctx context.Context, fileName string, cardTypeID uuid.UUID) (bool, error)
	ListImportedFiles(ctx context.Context) ([]*ImportedFile, error)
	DeleteImportedFile(ctx context.Context, id uuid.UUID) error

	BeginImport(ctx context.Context) (ImportTx, error)
}

// ImportTx scopes the writes for a single file.
type ImportTx interface {
	CreateImportedFile(ctx context.Context, f *ImportedFile) error
	UpsertSource(ctx context.Context, name string) (uuid.UUID, error)
	CreatePayments(ctx context.Context, payments []*Payment) error
	Commit() error
	Rollback() error
}

// File is an uploaded statement.
type File struct {
	Name string
	Data []byte
}

// Result is the outcome for one file, or for the whole batch when a
// batch precondition failed.
type Result struct {
	Success  bool
	FileName string
	Message  string
	// PaymentCount is set on success only.
	PaymentCount *int
	CardTypeName string
}

type DeleteResult struct {
	Success bool
	Message string
}

type Service struct {
	repo        Repository
	registry    *Registry
	maxFileSize int64
	now         func() time.Time
}

// NewService builds the import orchestrator. A maxFileSize of 0 disables the size check.
func NewService(repo Repository, registry *Registry, maxFileSize int64) *Service {
	return &Service{
		repo:        repo,
		registry:    registry,
		maxFileSize: maxFileSize,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// source defers reading so duplicates and bad names are rejected unread.
type source struct {
	name string
	load func() ([]byte, error)
}

// ImportFiles imports each file independently, one transaction per file.
// It never returns an error: every failure is reported as a Result.
func (s *Service) ImportFiles(ctx context.Context, files []File, cardTypeCode string) []Result {
	ct, parser, err := s.resolve(ctx, cardTypeCode)
	if err != nil {
		return []Result{failure("", err)}
	}

	sources := make([]source, len(files))
	for i, f := range files {
		sources[i] = source{name: f.Name, load: func() ([]byte, error) { return f.Data, nil }}
	}

	return s.importAll(ctx, ct, parser, sources)
}

// ImportDirectory imports every entry of path accepted by the card type's
// file name check. Other entries are never opened.
func (s *Service) ImportDirectory(ctx context.Context, path, cardTypeCode string) []Result {
	ct, parser, err := s.resolve(ctx, cardTypeCode)
	if err != nil {
		return []Result{failure(path, err)}
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return []Result{failure(path, fmt.Errorf("resolving path: %w", err))}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return []Result{failure(path, fmt.Errorf("reading directory: %w", err))}
	}

	if !info.IsDir() {
		return []Result{failure(path, errors.New("not a directory"))}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []Result{failure(path, fmt.Errorf("reading directory: %w", err))}
	}

	var sources []source

	for _, e := range entries {
		if !parser.IsValidFileName(e.Name()) {
			continue
		}

		full := filepath.Join(dir, e.Name())

		// Stat follows symlinks.
		if info, err := os.Stat(full); err != nil || !info.Mode().IsRegular() {
			continue
		}
		sources = append(sources, source{name: e.Name(), load: func() ([]byte, error) { return s.readFile(full) }})
	}

	if len(sources) == 0 {
		return []Result{failure(path, errors.New("no importable CSV files found"))}
	}

	return s.importAll(ctx, ct, parser, sources)
}

// DeleteImportedFile removes an import and, by cascade, its payments.
func (s *Service) DeleteImportedFile(ctx context.Context, id uuid.UUID) DeleteResult {
	if err := s.repo.DeleteImportedFile(ctx, id); err != nil {
		slog.Warn("failed to delete imported file", "id", id, "error", err)

		if errors.Is(err, ErrNotFound) {
			return DeleteResult{Message: "imported file not found"}
		}

		return DeleteResult{Message: err.Error()}
	}

	slog.Info("deleted imported file", "id", id)

	return DeleteResult{Success: true, Message: "deleted"}
}

// History lists imported files, newest first.
func (s *Service) History(ctx context.Context) ([]*ImportedFile, error) {
	files, err := s.repo.ListImportedFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing imported files: %w", err)
	}

	return files, nil
}

// CardTypes lists the known card types and marks which ones can be imported.
func (s *Service) CardTypes(ctx context.Context) ([]*CardType, error) {
	cts, err := s.repo.ListCardTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing card types: %w", err)
	}

	codes := s.registry.Codes()
	for _, ct := range cts {
		ct.Supported = slices.Contains(codes, ct.Code)
	}

	return cts, nil
}

func (s *Service) resolve(ctx context.Context, code string) (*CardType, Parser, error) {
	ct, err := s.repo.FindCardType(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedCardType, code)
		}

		return nil, nil, fmt.Errorf("finding card type: %w", err)
	}

	parser, err := s.registry.Get(code)
	if err != nil {
		return nil, nil, err
	}

	return ct, parser, nil
}

func (s *Service) importAll(ctx context.Context, ct *CardType, parser Parser, sources []source) []Result {
	results := make([]Result, 0, len(sources))

	for _, src := range sources {
		count, err := s.importOne(ctx, ct, parser, src)
		if err != nil {
			slog.Warn("import failed", "file", src.name, "card_type", ct.Code, "error", err)

			res := failure(src.name, err)
			res.CardTypeName = ct.Name
			results = append(results, res)

			continue
		}

		slog.Info("imported statement", "file", src.name, "card_type", ct.Code, "payments", count)

		results = append(results, Result{
			Success:      true,
			FileName:     src.name,
			Message:      "imported",
			PaymentCount: new(count),
			CardTypeName: ct.Name,
		})
	}

	return results
}

func (s *Service) importOne(ctx context.Context, ct *CardType, parser Parser, src source) (int, error) {
	if !parser.IsValidFileName(src.name) {
		return 0, fmt.Errorf("%w: %q", statement.ErrInvalidFileName, src.name)
	}

	yearMonth, err := parser.ExtractYearMonth(src.name)
	if err != nil {
		return 0, err
	}

	exists, err := s.repo.ImportedFileExists(ctx, src.name, ct.ID)
	if err != nil {
		return 0, fmt.Errorf("checking for previous import: %w", err)
	}

	if exists {
		return 0, ErrAlreadyImported
	}

	data, err := src.load()
	if err != nil {
		return 0, err
	}

	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return 0, ErrFileTooLarge
	}

	parsed, err := parser.Parse(data, src.name)
	if err != nil {
		return 0, err
	}

	// Parsers may report the period themselves; otherwise the file name decides.
	if parsed.YearMonth != "" {
		yearMonth = parsed.YearMonth
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	file := &ImportedFile{
		ID:         uuid.New(),
		FileName:   src.name,
		CardTypeID: ct.ID,
		YearMonth:  yearMonth,
		ImportedAt: s.now(),
	}

	if err := itx.CreateImportedFile(ctx, file); err != nil {
		return 0, err
	}

	sourceIDs := make(map[string]uuid.UUID)
	payments := make([]*Payment, 0, len(parsed.Payments))

	for _, p := range parsed.Payments {
		sourceID, ok := sourceIDs[p.PayeeName]
		if !ok {
			sourceID, err = itx.UpsertSource(ctx, p.PayeeName)
			if err != nil {
				return 0, fmt.Errorf("resolving payment source %q: %w", p.PayeeName, err)
			}

			sourceIDs[p.PayeeName] = sourceID
		}

		payments = append(payments, &Payment{
			ID:              uuid.New(),
			ImportedFileID:  file.ID,
			PaymentSourceID: sourceID,
			CardTypeID:      ct.ID,
			Date:            p.Date,
			Amount:          p.Amount,
			Quantity:        p.Quantity,
			YearMonth:       yearMonth,
		})
	}

	if err := itx.CreatePayments(ctx, payments); err != nil {
		return 0, fmt.Errorf("creating payments: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	return len(payments), nil
}

func (s *Service) readFile(path string) ([]byte, error) {
	if s.maxFileSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}

		if info.Size() > s.maxFileSize {
			return nil, ErrFileTooLarge
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return data, nil
}

// failure turns err into a user-facing result. Known conditions get a
// fixed message; anything else carries the error text.
func failure(fileName string, err error) Result {
	msg := err.Error()
	if errors.Is(err, ErrAlreadyImported) {
		msg = ErrAlreadyImported.Error()
	}

	return Result{FileName: fileName, Message: msg}
}
