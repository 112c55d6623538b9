package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/database"
	"github.com/MrJamesThe3rd/cardledger/internal/importer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindCardType(ctx context.Context, code string) (*importer.CardType, error) {
	query := `SELECT id, code, name, display_order FROM card_types WHERE code = $1`

	var ct importer.CardType

	err := s.db.QueryRowContext(ctx, query, code).Scan(&ct.ID, &ct.Code, &ct.Name, &ct.DisplayOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, importer.ErrNotFound
		}

		return nil, fmt.Errorf("finding card type: %w", err)
	}

	return &ct, nil
}

func (s *Store) ListCardTypes(ctx context.Context) ([]*importer.CardType, error) {
	query := `SELECT id, code, name, display_order FROM card_types ORDER BY display_order ASC, code ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing card types: %w", err)
	}
	defer rows.Close()

	var cts []*importer.CardType

	for rows.Next() {
		var ct importer.CardType
		if err := rows.Scan(&ct.ID, &ct.Code, &ct.Name, &ct.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scanning card type: %w", err)
		}

		cts = append(cts, &ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card types: %w", err)
	}

	return cts, nil
}

func (s *Store) ImportedFileExists(ctx context.Context, fileName string, cardTypeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM imported_files WHERE file_name = $1 AND card_type_id = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, fileName, cardTypeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking imported file: %w", err)
	}

	return exists, nil
}

func (s *Store) ListImportedFiles(ctx context.Context) ([]*importer.ImportedFile, error) {
	query := `
		SELECT f.id, f.file_name, f.card_type_id, f.year_month, f.imported_at,
			c.name, (SELECT COUNT(*) FROM payments p WHERE p.imported_file_id = f.id)
		FROM imported_files f
		JOIN card_types c ON c.id = f.card_type_id
		ORDER BY f.imported_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing imported files: %w", err)
	}
	defer rows.Close()

	var files []*importer.ImportedFile

	for rows.Next() {
		var f importer.ImportedFile
		if err := rows.Scan(
			&f.ID, &f.FileName, &f.CardTypeID, &f.YearMonth, &f.ImportedAt,
			&f.CardTypeName, &f.PaymentCount,
		); err != nil {
			return nil, fmt.Errorf("scanning imported file: %w", err)
		}

		files = append(files, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating imported files: %w", err)
	}

	return files, nil
}

// DeleteImportedFile removes the file row; payments go with it via ON DELETE CASCADE.
func (s *Store) DeleteImportedFile(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM imported_files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting imported file: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting imported file: %w", err)
	}

	if n == 0 {
		return importer.ErrNotFound
	}

	return nil
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context) (importer.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

// CreateImportedFile reports a concurrent import of the same file as
// importer.ErrAlreadyImported.
func (itx *importTx) CreateImportedFile(ctx context.Context, f *importer.ImportedFile) error {
	query := `
		INSERT INTO imported_files (id, file_name, card_type_id, year_month, imported_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := itx.tx.ExecContext(ctx, query, f.ID, f.FileName, f.CardTypeID, f.YearMonth, f.ImportedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %w", importer.ErrAlreadyImported, err)
		}

		return fmt.Errorf("creating imported file: %w", err)
	}

	return nil
}

// UpsertSource returns the id of the source named name, creating it if needed.
func (itx *importTx) UpsertSource(ctx context.Context, name string) (uuid.UUID, error) {
	query := `
		INSERT INTO payment_sources (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id uuid.UUID
	if err := itx.tx.QueryRowContext(ctx, query, uuid.New(), name).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("upserting payment source: %w", err)
	}

	return id, nil
}

func (itx *importTx) CreatePayments(ctx context.Context, payments []*importer.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	stmt, err := itx.tx.PrepareContext(ctx, `
		INSERT INTO payments (id, imported_file_id, payment_source_id, card_type_id, payment_date, amount, quantity, year_month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return fmt.Errorf("preparing payment insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range payments {
		if _, err := stmt.ExecContext(ctx,
			p.ID,
			p.ImportedFileID,
			p.PaymentSourceID,
			p.CardTypeID,
			p.Date,
			p.Amount,
			p.Quantity,
			p.YearMonth,
		); err != nil {
			return fmt.Errorf("creating payment: %w", err)
		}
	}

	return nil
}
