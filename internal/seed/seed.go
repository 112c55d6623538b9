// Package seed installs the reference data every ledger starts with.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type CardType struct {
	Code         string `yaml:"code"`
	Name         string `yaml:"name"`
	DisplayOrder int    `yaml:"display_order"`
}

type Category struct {
	Name         string `yaml:"name"`
	DisplayOrder int    `yaml:"display_order"`
}

type Data struct {
	CardTypes  []CardType `yaml:"card_types"`
	Categories []Category `yaml:"categories"`
}

// Load returns the seed data compiled into the binary.
func Load() (*Data, error) {
	return Parse(defaultSeed)
}

func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parsing seed data: %w", err)
	}

	for i, ct := range d.CardTypes {
		if strings.TrimSpace(ct.Code) == "" || strings.TrimSpace(ct.Name) == "" {
			return nil, fmt.Errorf("card type %d: code and name are required", i)
		}
	}

	for i, c := range d.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("category %d: name is required", i)
		}
	}

	return &d, nil
}

//go:generate mockgen -source=seed.go -destination=repository_mock.go -package=seed
type Repository interface {
	// UpsertCardType creates the card type or refreshes its name and order.
	UpsertCardType(ctx context.Context, ct CardType) error
	// EnsureCategory creates the category unless one with the same name exists.
	EnsureCategory(ctx context.Context, c Category) (bool, error)
}

type Service struct {
	repo Repository
	data *Data
}

func NewService(repo Repository, data *Data) *Service {
	return &Service{repo: repo, data: data}
}

// Apply writes the seed data. Existing categories are left untouched so
// user edits to order survive restarts.
func (s *Service) Apply(ctx context.Context) error {
	var errs []error

	for _, ct := range s.data.CardTypes {
		if err := s.repo.UpsertCardType(ctx, ct); err != nil {
			errs = append(errs, fmt.Errorf("card type %q: %w", ct.Code, err))
		}
	}

	created := 0

	for _, c := range s.data.Categories {
		ok, err := s.repo.EnsureCategory(ctx, c)
		if err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", c.Name, err))
			continue
		}

		if ok {
			created++
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("applying seed data: %w", err)
	}

	slog.Info("seed data applied", "card_types", len(s.data.CardTypes), "categories_created", created)

	return nil
}
