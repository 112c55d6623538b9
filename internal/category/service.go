package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrDuplicateName = errors.New("category name already exists")
	ErrInUse         = errors.New("category is assigned to payment sources")
	ErrInvalidName   = errors.New("category name must be 1 to 50 characters")
	ErrInvalidOrder  = errors.New("display order must not be negative")
)

const maxNameLength = 50

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CountSources(ctx context.Context, id uuid.UUID) (int, error)
	AssignSources(ctx context.Context, sourceIDs []uuid.UUID, categoryID *uuid.UUID) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories by display order.
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Create(ctx context.Context, name string, displayOrder int) (*Category, error) {
	name, err := validate(name, displayOrder)
	if err != nil {
		return nil, err
	}

	c := &Category{ID: uuid.New(), Name: name, DisplayOrder: displayOrder}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, name string, displayOrder int) (*Category, error) {
	name, err := validate(name, displayOrder)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = name
	c.DisplayOrder = displayOrder

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes a category that no payment source references.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetCategory(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.CountSources(ctx, id)
	if err != nil {
		return err
	}

	if n > 0 {
		return fmt.Errorf("%w (%d sources)", ErrInUse, n)
	}

	return s.repo.DeleteCategory(ctx, id)
}

// AssignSources files the sources under categoryID, or clears their category when it is nil.
// It returns the number of sources updated.
func (s *Service) AssignSources(ctx context.Context, sourceIDs []uuid.UUID, categoryID *uuid.UUID) (int64, error) {
	if len(sourceIDs) == 0 {
		return 0, nil
	}

	if categoryID != nil {
		if _, err := s.repo.GetCategory(ctx, *categoryID); err != nil {
			return 0, err
		}
	}

	return s.repo.AssignSources(ctx, sourceIDs, categoryID)
}

func validate(name string, displayOrder int) (string, error) {
	name = strings.TrimSpace(name)

	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		return "", ErrInvalidName
	}

	if displayOrder < 0 {
		return "", ErrInvalidOrder
	}

	return name, nil
}
